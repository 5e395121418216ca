// Package bootstrap monta as dependências compartilhadas pela API e pela CLI do pipeline.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-economics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-economics-api/infrastructure/integrator/bcb"
	"github.com/vfg2006/sales-economics-api/infrastructure/integrator/bcb/bcbclient"
	"github.com/vfg2006/sales-economics-api/infrastructure/integrator/dbt"
	"github.com/vfg2006/sales-economics-api/infrastructure/integrator/kaggle/kaggleclient"
	"github.com/vfg2006/sales-economics-api/infrastructure/repository"
	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/internal/scheduler"
	"github.com/vfg2006/sales-economics-api/internal/usecases/analytics"
	"github.com/vfg2006/sales-economics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-economics-api/internal/usecases/extracting"
	"github.com/vfg2006/sales-economics-api/internal/usecases/loading"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

// LoadConfig lê a configuração, ajusta o nível de log e valida o mapeamento de tabelas
func LoadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	level := log.Configure(cfg.App.LogLevel)
	log.L.Debugf("Nível de log configurado para: %s", level)

	if err := domain.ValidateSchemaOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Container reúne conexão, repositórios e serviços do processo
type Container struct {
	Config *config.Config
	Conn   *postgres.Connection

	IndicatorRepo repository.IndicatorRepository
	RawRepo       repository.RawTableRepository
	MetadataRepo  repository.LoadMetadataRepository
	RunRepo       repository.PipelineRunRepository
	MartRepo      repository.MartRepository

	Extractor     extracting.Extractor
	Loader        loading.Loader
	Runner        dbt.Runner
	Dashboard     analytics.Dashboard
	Authenticator authenticating.Authenticator
	Pipeline      *scheduler.PipelineService

	// Migrator aplica as migrações; substituível nos testes
	Migrator func(ctx context.Context) error
}

// New conecta ao warehouse e monta os serviços
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao warehouse: %w", err)
	}

	log.L.WithFields(log.Fields{
		"raw":   cfg.Datasets.Raw,
		"marts": cfg.Datasets.Marts,
	}).Info("Conexão com o warehouse estabelecida com sucesso")

	return Build(cfg, conn), nil
}

// Build monta os serviços sobre uma conexão já aberta
func Build(cfg *config.Config, conn *postgres.Connection) *Container {
	c := &Container{
		Config:        cfg,
		Conn:          conn,
		IndicatorRepo: repository.NewIndicatorRepository(conn),
		RawRepo:       repository.NewRawTableRepository(conn),
		MetadataRepo:  repository.NewLoadMetadataRepository(conn),
		RunRepo:       repository.NewPipelineRunRepository(conn),
		MartRepo:      repository.NewMartRepository(conn, cfg.Datasets.Marts),
		Runner:        dbt.NewRunner(cfg),
		Authenticator: authenticating.NewService(cfg),
	}

	bcbIntegrator := bcb.New(bcbclient.NewClient(cfg))
	c.Extractor = extracting.NewService(cfg, bcbIntegrator, c.IndicatorRepo)
	c.Loader = loading.NewService(cfg, c.RawRepo, c.MetadataRepo, kaggleclient.NewClient(cfg))
	c.Dashboard = analytics.NewService(cfg, c.MartRepo, c.IndicatorRepo)
	c.Pipeline = scheduler.NewPipelineService(cfg, c.Extractor, c.Loader, c.Runner, c.Dashboard, c.RunRepo)
	c.Migrator = func(ctx context.Context) error {
		return postgres.Migrate(ctx, conn, cfg.Datasets.Raw, cfg.Datasets.Marts)
	}

	return c
}

// Migrate cria os datasets e as tabelas de controle do pipeline
func (c *Container) Migrate(ctx context.Context) error {
	if c.Migrator == nil {
		return nil
	}
	return c.Migrator(ctx)
}

// Close encerra a conexão com o warehouse
func (c *Container) Close() {
	if c.Conn == nil {
		return
	}
	if err := c.Conn.Close(); err != nil {
		log.L.WithError(err).Warn("Erro ao fechar conexão com o warehouse")
	}
}
