package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vfg2006/sales-economics-api/internal/bootstrap"
	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

var dateLayouts = []string{domain.BCBDateLayout, "2006-01-02"}

// parseDate aceita dd/mm/aaaa ou aaaa-mm-dd; vazio retorna nil
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("data inválida %q, use dd/mm/aaaa ou aaaa-mm-dd", value)
}

func parseSeriesList(values []string) ([]domain.Series, error) {
	if len(values) == 0 {
		return domain.AllSeries(), nil
	}

	out := make([]domain.Series, 0, len(values))
	for _, v := range values {
		s, err := domain.ParseSeries(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (a *app) newExtractBCBCommand() *cobra.Command {
	var start, end string
	var series []string

	cmd := &cobra.Command{
		Use:   "extract-bcb",
		Short: "Extrai as séries do SGS e substitui a tabela de indicadores",
		Example: `  pipeline extract-bcb
  pipeline extract-bcb --start 01/01/2017 --end 2018-12-31 --series exchange_rate_usd,selic`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			startDate, err := parseDate(start)
			if err != nil {
				return err
			}
			endDate, err := parseDate(end)
			if err != nil {
				return err
			}
			selected, err := parseSeriesList(series)
			if err != nil {
				return err
			}

			return a.withContainer(cmd, true, func(c *bootstrap.Container) error {
				report, err := c.Extractor.ExtractSelected(cmd.Context(), selected, startDate, endDate)
				if report != nil {
					if printErr := printJSON(cmd.OutOrStdout(), report); printErr != nil {
						return printErr
					}
				}
				if err != nil {
					return errors.Wrap(err, "extração do BCB falhou")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Data inicial (padrão BCB_START_DATE)")
	cmd.Flags().StringVar(&end, "end", "", "Data final (padrão hoje)")
	cmd.Flags().StringSliceVar(&series, "series", nil, "Séries a extrair (padrão todas)")

	return cmd
}

func (a *app) newLoadCSVCommand() *cobra.Command {
	var dir, file string

	cmd := &cobra.Command{
		Use:   "load-csv",
		Short: "Carrega os CSVs de vendas no dataset raw",
		Example: `  pipeline load-csv
  pipeline load-csv --dir data/raw
  pipeline load-csv --file data/raw/olist_orders_dataset.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = a.cfg.Storage.RawDataDir
			}

			return a.withContainer(cmd, true, func(c *bootstrap.Container) error {
				ctx := cmd.Context()
				if err := c.Loader.EnsureDatasets(ctx); err != nil {
					return err
				}

				if file != "" {
					outcome, err := c.Loader.LoadFile(ctx, file)
					if printErr := printJSON(cmd.OutOrStdout(), outcome); printErr != nil {
						return printErr
					}
					if err != nil {
						return errors.Wrapf(err, "carga de %s falhou", filepath.Base(file))
					}
					return nil
				}

				report, err := c.Loader.LoadDirectory(ctx, dir)
				if err != nil {
					return errors.Wrap(err, "carga do diretório falhou")
				}
				if err := printJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
				if !report.Succeeded() {
					return fmt.Errorf("nenhum arquivo carregado com sucesso em %s", dir)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Diretório com os CSVs (padrão RAW_DATA_DIR)")
	cmd.Flags().StringVar(&file, "file", "", "Carrega apenas um arquivo")

	return cmd
}

func (a *app) newDownloadKaggleCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "download-kaggle",
		Short: "Baixa e descompacta o dataset de vendas do Kaggle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = a.cfg.Storage.RawDataDir
			}

			return a.withContainer(cmd, false, func(c *bootstrap.Container) error {
				files, err := c.Loader.Download(cmd.Context(), dir)
				if err != nil {
					return errors.Wrap(err, "download do Kaggle falhou")
				}
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Diretório de destino (padrão RAW_DATA_DIR)")

	return cmd
}

func (a *app) newCreateDatasetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-datasets",
		Short: "Cria os datasets raw e marts no warehouse",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withContainer(cmd, false, func(c *bootstrap.Container) error {
				return c.Loader.EnsureDatasets(cmd.Context())
			})
		},
	}
}

func (a *app) newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica as migrações das tabelas de controle do pipeline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withContainer(cmd, true, func(c *bootstrap.Container) error {
				log.L.Info("Migrações aplicadas")
				return nil
			})
		},
	}
}

func (a *app) newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "run <job>",
		Short:     "Executa um job do orquestrador e aguarda o fim",
		Args:      cobra.ExactArgs(1),
		ValidArgs: domain.Jobs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := domain.ParseJob(args[0])
			if err != nil {
				return err
			}

			return a.withContainer(cmd, true, func(c *bootstrap.Container) error {
				run, err := c.Pipeline.RunJob(cmd.Context(), job, domain.TriggerCLI)
				if run != nil {
					if printErr := printJSON(cmd.OutOrStdout(), run); printErr != nil {
						return printErr
					}
				}
				return err
			})
		},
	}
}

func (a *app) newTokenCommand() *cobra.Command {
	var operator, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token de operador para os endpoints do pipeline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			roleID, ok := domain.ParseRole(role)
			if !ok {
				return fmt.Errorf("perfil inválido %q (admin, operator ou viewer)", role)
			}

			// O token só depende do AUTH_SECRET, sem conexão com o warehouse
			token, err := authenticating.NewService(a.cfg).IssueToken(operator, roleID)
			if err != nil {
				return errors.Wrap(err, "erro ao emitir token")
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "", "Nome do operador")
	cmd.Flags().StringVar(&role, "role", "operator", "Perfil: admin, operator ou viewer")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}
