package main

import (
	"context"

	"github.com/vfg2006/sales-economics-api/internal/api"
	"github.com/vfg2006/sales-economics-api/internal/bootstrap"
	"github.com/vfg2006/sales-economics-api/internal/metrics"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	metrics.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao inicializar dependências")
	}
	defer container.Close()

	if err := container.Migrate(ctx); err != nil {
		log.L.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	// Inicia o orquestrador em background
	if err := container.Pipeline.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o orquestrador do pipeline")
	} else {
		log.L.Info("Orquestrador do pipeline iniciado com sucesso")
	}

	server, err := api.New(cfg, container.Dashboard, container.Pipeline, container.Authenticator)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
