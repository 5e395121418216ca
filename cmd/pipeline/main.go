package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vfg2006/sales-economics-api/internal/cli"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(cli.DefaultDeps()).ExecuteContext(ctx); err != nil {
		log.L.WithError(err).Error("Comando falhou")
		stop()
		os.Exit(1)
	}
}
