// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-economics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

//go:generate mockgen -source=indicator.go -destination=mocks/indicator.go -package=mocks

// Quantidade de linhas por INSERT em lote
const insertBatchSize = 1000

type IndicatorRepository interface {
	ReplaceAll(ctx context.Context, indicators []domain.EconomicIndicator) error
	LastExtractedAt(ctx context.Context) (*time.Time, error)
	MonthlyAverages(ctx context.Context, series []domain.Series) ([]domain.MonthlyIndicator, error)
}

type indicatorRepository struct {
	conn *postgres.Connection
}

func NewIndicatorRepository(conn *postgres.Connection) IndicatorRepository {
	return &indicatorRepository{
		conn: conn,
	}
}

// ReplaceAll substitui todo o conteúdo da tabela de indicadores numa única transação
func (r *indicatorRepository) ReplaceAll(ctx context.Context, indicators []domain.EconomicIndicator) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, args, err := squirrel.
			Delete(domain.IndicatorsTable).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, args...); err != nil {
			return fmt.Errorf("erro ao limpar indicadores: %w", err)
		}

		for start := 0; start < len(indicators); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(indicators) {
				end = len(indicators)
			}

			query := squirrel.
				Insert(domain.IndicatorsTable).
				Columns("date", "value", "series_name", "series_id", "extracted_at").
				PlaceholderFormat(squirrel.Dollar)

			for _, ind := range indicators[start:end] {
				query = query.Values(ind.Date, ind.Value, string(ind.SeriesName), ind.SeriesID, ind.ExtractedAt)
			}

			insertQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção: %w", err)
			}

			if _, err := tx.ExecContext(ctx, insertQuery, args...); err != nil {
				return fmt.Errorf("erro ao inserir indicadores: %w", err)
			}
		}

		return nil
	})
}

// LastExtractedAt retorna o instante da última extração gravada, ou nil se a tabela está vazia
func (r *indicatorRepository) LastExtractedAt(ctx context.Context) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(extracted_at)").
		From(domain.IndicatorsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var last sql.NullTime
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&last); err != nil {
		if postgres.IsUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar última extração: %w", err)
	}

	if !last.Valid {
		return nil, nil
	}
	return &last.Time, nil
}

// MonthlyAverages retorna a média mensal de cada série informada, ou vazio se a tabela ainda não existe
func (r *indicatorRepository) MonthlyAverages(ctx context.Context, series []domain.Series) ([]domain.MonthlyIndicator, error) {
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = string(s)
	}

	query, args, err := squirrel.
		Select("date_trunc('month', date)::date AS month", "series_name", "AVG(value)").
		From(domain.IndicatorsTable).
		Where(squirrel.Eq{"series_name": names}).
		GroupBy("month", "series_name").
		OrderBy("month", "series_name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		// Sem extração ainda: o dashboard segue sem indicadores
		if postgres.IsUndefinedTable(err) {
			return []domain.MonthlyIndicator{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.MonthlyIndicator, 0)
	for rows.Next() {
		var (
			item   domain.MonthlyIndicator
			series string
		)
		if err := rows.Scan(&item.Month, &series, &item.Value); err != nil {
			return nil, fmt.Errorf("erro ao escanear média mensal: %w", err)
		}
		item.Series = domain.Series(series)
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}
