package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-economics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

//go:generate mockgen -source=raw_table.go -destination=mocks/raw_table.go -package=mocks

type RawTableRepository interface {
	EnsureDatasets(ctx context.Context, datasets ...string) error
	ReplaceTable(ctx context.Context, dataset, table string, columns []domain.Column, rows [][]any) (int64, error)
	CountRows(ctx context.Context, dataset, table string) (int64, error)
}

type rawTableRepository struct {
	conn *postgres.Connection
}

func NewRawTableRepository(conn *postgres.Connection) RawTableRepository {
	return &rawTableRepository{
		conn: conn,
	}
}

func (r *rawTableRepository) EnsureDatasets(ctx context.Context, datasets ...string) error {
	return postgres.EnsureSchemas(ctx, r.conn.DB, datasets...)
}

// ReplaceTable recria a tabela e carrega as linhas via COPY, tudo na mesma transação
func (r *rawTableRepository) ReplaceTable(ctx context.Context, dataset, table string, columns []domain.Column, rows [][]any) (int64, error) {
	if len(columns) == 0 {
		return 0, fmt.Errorf("tabela %s sem colunas", table)
	}

	qualified := postgres.QualifiedName(dataset, table)
	names := make([]string, len(columns))
	defs := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
		defs[i] = fmt.Sprintf("%s %s", pq.QuoteIdentifier(col.Name), col.Type.SQLType())
	}

	var loaded int64
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+qualified); err != nil {
			return fmt.Errorf("erro ao remover tabela %s: %w", table, err)
		}

		createQuery := fmt.Sprintf("CREATE TABLE %s (%s)", qualified, strings.Join(defs, ", "))
		if _, err := tx.ExecContext(ctx, createQuery); err != nil {
			return fmt.Errorf("erro ao criar tabela %s: %w", table, err)
		}

		stmt, err := tx.PrepareContext(ctx, pq.CopyInSchema(dataset, table, names...))
		if err != nil {
			return fmt.Errorf("erro ao preparar COPY em %s: %w", table, err)
		}
		defer stmt.Close()

		for _, row := range rows {
			if _, err := stmt.ExecContext(ctx, row...); err != nil {
				return fmt.Errorf("erro ao copiar linha para %s: %w", table, err)
			}
			loaded++
		}

		if _, err := stmt.ExecContext(ctx); err != nil {
			return fmt.Errorf("erro ao finalizar COPY em %s: %w", table, err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return loaded, nil
}

func (r *rawTableRepository) CountRows(ctx context.Context, dataset, table string) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(postgres.QualifiedName(dataset, table)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar linhas de %s: %w", table, err)
	}

	return count, nil
}
