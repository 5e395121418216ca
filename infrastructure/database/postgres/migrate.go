package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrations embed.FS

// EnsureSchemas cria os datasets (schemas) que ainda não existem
func EnsureSchemas(ctx context.Context, q Queryer, schemas ...string) error {
	for _, schema := range schemas {
		if schema == "" {
			continue
		}
		query := fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", QualifiedName("", schema))
		if _, err := q.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("erro ao criar dataset %s: %w", schema, err)
		}
		logrus.Debugf("Dataset %s disponível", schema)
	}
	return nil
}

// Migrate cria os datasets e aplica as migrações pendentes das tabelas de controle.
// As tabelas são criadas no schema do search_path da conexão (dataset raw).
func Migrate(ctx context.Context, conn *Connection, schemas ...string) error {
	if err := EnsureSchemas(ctx, conn.DB, schemas...); err != nil {
		return err
	}

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("erro ao configurar dialeto: %w", err)
	}

	if err := goose.UpContext(ctx, conn.DB, "migrations"); err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, conn.DB)
	if err == nil {
		logrus.Infof("Migrações aplicadas, versão atual: %d", version)
	}

	return nil
}
