package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-economics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

//go:generate mockgen -source=load_metadata.go -destination=mocks/load_metadata.go -package=mocks

type LoadMetadataRepository interface {
	Save(ctx context.Context, metadata domain.LoadMetadata) error
	ListLatest(ctx context.Context) ([]domain.LoadMetadata, error)
}

type loadMetadataRepository struct {
	conn *postgres.Connection
}

func NewLoadMetadataRepository(conn *postgres.Connection) LoadMetadataRepository {
	return &loadMetadataRepository{
		conn: conn,
	}
}

func (r *loadMetadataRepository) Save(ctx context.Context, m domain.LoadMetadata) error {
	query, args, err := squirrel.
		Insert(domain.LoadMetadataTable).
		Columns(
			"table_name",
			"file_name",
			"file_hash",
			"source_uri",
			"load_timestamp",
			"load_status",
			"row_count",
			"bad_records",
			"error_message",
		).
		Values(
			m.TableName,
			m.FileName,
			m.FileHash,
			m.SourceURI,
			m.LoadTimestamp,
			m.LoadStatus,
			m.RowCount,
			m.BadRecords,
			nullString(m.ErrorMessage),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar metadados de carga: %w", err)
	}

	return nil
}

// ListLatest retorna a carga mais recente de cada tabela
func (r *loadMetadataRepository) ListLatest(ctx context.Context) ([]domain.LoadMetadata, error) {
	query, args, err := squirrel.
		Select(
			"table_name",
			"file_name",
			"file_hash",
			"source_uri",
			"load_timestamp",
			"load_status",
			"row_count",
			"bad_records",
			"COALESCE(error_message, '')",
		).
		Options("DISTINCT ON (table_name)").
		From(domain.LoadMetadataTable).
		OrderBy("table_name", "load_timestamp DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.LoadMetadata, 0)
	for rows.Next() {
		m, err := r.scanMetadata(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear metadados: %w", err)
		}
		result = append(result, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *loadMetadataRepository) scanMetadata(rows *sql.Rows) (*domain.LoadMetadata, error) {
	m := &domain.LoadMetadata{}

	err := rows.Scan(
		&m.TableName,
		&m.FileName,
		&m.FileHash,
		&m.SourceURI,
		&m.LoadTimestamp,
		&m.LoadStatus,
		&m.RowCount,
		&m.BadRecords,
		&m.ErrorMessage,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
