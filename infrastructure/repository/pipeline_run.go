package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-economics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=pipeline_run.go -destination=mocks/pipeline_run.go -package=mocks

type PipelineRunRepository interface {
	Save(ctx context.Context, run *domain.PipelineRun) error
	ListRecent(ctx context.Context, job string, limit uint64) ([]domain.PipelineRun, error)
	LastStepSuccess(ctx context.Context, step string) (*time.Time, error)
}

type pipelineRunRepository struct {
	conn *postgres.Connection
}

func NewPipelineRunRepository(conn *postgres.Connection) PipelineRunRepository {
	return &pipelineRunRepository{
		conn: conn,
	}
}

// Save grava ou atualiza o relatório de uma execução
func (r *pipelineRunRepository) Save(ctx context.Context, run *domain.PipelineRun) error {
	steps, err := json.Marshal(run.Steps)
	if err != nil {
		return fmt.Errorf("erro ao serializar etapas: %w", err)
	}

	var summary []byte
	if run.TestSummary != nil {
		summary, err = json.Marshal(run.TestSummary)
		if err != nil {
			return fmt.Errorf("erro ao serializar resumo de testes: %w", err)
		}
	}

	query, args, err := squirrel.
		Insert(domain.PipelineRunsTable).
		Columns("id", "job", "trigger", "status", "started_at", "finished_at", "steps", "test_summary", "error").
		Values(
			run.ID,
			run.Job,
			string(run.Trigger),
			string(run.Status),
			run.StartedAt,
			run.FinishedAt,
			string(steps),
			nullBytes(summary),
			nullString(run.Error),
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				status = EXCLUDED.status,
				finished_at = EXCLUDED.finished_at,
				steps = EXCLUDED.steps,
				test_summary = EXCLUDED.test_summary,
				error = EXCLUDED.error
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar execução %s: %w", run.ID, err)
	}

	return nil
}

// ListRecent retorna as execuções mais recentes, opcionalmente filtradas por job
func (r *pipelineRunRepository) ListRecent(ctx context.Context, job string, limit uint64) ([]domain.PipelineRun, error) {
	builder := squirrel.
		Select("id", "job", "trigger", "status", "started_at", "finished_at", "steps", "test_summary", "COALESCE(error, '')").
		From(domain.PipelineRunsTable).
		OrderBy("started_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if job != "" {
		builder = builder.Where(squirrel.Eq{"job": job})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.PipelineRun, 0)
	for rows.Next() {
		run, err := r.scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

// LastStepSuccess retorna quando a etapa terminou com sucesso pela última vez
func (r *pipelineRunRepository) LastStepSuccess(ctx context.Context, step string) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX((s->>'finished_at')::timestamptz)").
		From(domain.PipelineRunsTable + ", jsonb_array_elements(steps) AS s").
		Where(squirrel.Eq{"s->>'name'": step}).
		Where(squirrel.Eq{"s->>'status'": string(domain.RunSuccess)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var last sql.NullTime
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&last); err != nil {
		return nil, fmt.Errorf("erro ao consultar etapa %s: %w", step, err)
	}

	if !last.Valid {
		return nil, nil
	}
	return &last.Time, nil
}

func (r *pipelineRunRepository) scanRun(rows *sql.Rows) (*domain.PipelineRun, error) {
	var (
		run        domain.PipelineRun
		trigger    string
		status     string
		finishedAt sql.NullTime
		steps      []byte
		summary    []byte
	)

	err := rows.Scan(
		&run.ID,
		&run.Job,
		&trigger,
		&status,
		&run.StartedAt,
		&finishedAt,
		&steps,
		&summary,
		&run.Error,
	)
	if err != nil {
		return nil, err
	}

	run.Trigger = domain.Trigger(trigger)
	run.Status = domain.RunStatus(status)
	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}

	run.Steps = make([]domain.StepOutcome, 0)
	if len(steps) > 0 {
		if err := json.Unmarshal(steps, &run.Steps); err != nil {
			return nil, fmt.Errorf("erro ao decodificar etapas: %w", err)
		}
	}
	if len(summary) > 0 {
		run.TestSummary = &domain.TestSummary{}
		if err := json.Unmarshal(summary, run.TestSummary); err != nil {
			return nil, fmt.Errorf("erro ao decodificar resumo de testes: %w", err)
		}
	}

	return &run, nil
}

func nullBytes(b []byte) sql.NullString {
	return sql.NullString{String: string(b), Valid: len(b) > 0}
}
