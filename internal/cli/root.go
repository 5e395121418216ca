// Package cli implementa a linha de comando do pipeline.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vfg2006/sales-economics-api/internal/bootstrap"
	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/pkg/utils"
)

// Deps permite substituir a montagem de configuração e serviços nos testes
type Deps struct {
	LoadConfig   func() (*config.Config, error)
	NewContainer func(ctx context.Context, cfg *config.Config) (*bootstrap.Container, error)
}

// DefaultDeps usa a configuração do ambiente e conecta ao warehouse
func DefaultDeps() Deps {
	return Deps{
		LoadConfig:   bootstrap.LoadConfig,
		NewContainer: bootstrap.New,
	}
}

type app struct {
	deps Deps
	cfg  *config.Config
}

// NewRootCmd cria o comando raiz com todos os subcomandos
func NewRootCmd(deps Deps) *cobra.Command {
	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Pipeline ELT de vendas do e-commerce e indicadores do Banco Central",
		Long: `Extrai séries do SGS do Banco Central, carrega os CSVs de vendas no dataset raw
e dispara os jobs do orquestrador (dbt staging, marts e testes de qualidade).`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := a.deps.LoadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(a.newExtractBCBCommand())
	rootCmd.AddCommand(a.newLoadCSVCommand())
	rootCmd.AddCommand(a.newDownloadKaggleCommand())
	rootCmd.AddCommand(a.newCreateDatasetsCommand())
	rootCmd.AddCommand(a.newMigrateCommand())
	rootCmd.AddCommand(a.newRunCommand())
	rootCmd.AddCommand(a.newTokenCommand())

	return rootCmd
}

// withContainer abre a conexão, executa fn e fecha a conexão. migrate garante as tabelas de controle.
func (a *app) withContainer(cmd *cobra.Command, migrate bool, fn func(c *bootstrap.Container) error) error {
	ctx := cmd.Context()

	c, err := a.deps.NewContainer(ctx, a.cfg)
	if err != nil {
		return errors.Wrap(err, "erro ao inicializar dependências")
	}
	defer c.Close()

	if migrate {
		if err := c.Migrate(ctx); err != nil {
			return errors.Wrap(err, "erro ao aplicar migrações")
		}
	}

	return fn(c)
}

// printJSON escreve o relatório formatado na saída do comando
func printJSON(w io.Writer, payload any) error {
	out, err := utils.PrettyJSON(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
