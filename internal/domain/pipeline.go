package domain

import (
	"fmt"
	"time"
)

// Nomes dos jobs do orquestrador
const (
	JobDailyFullPipeline = "daily_full_pipeline"
	JobEconomicUpdate    = "economic_update_pipeline"
	JobQualityCheck      = "quality_check_pipeline"
	JobSalesRefresh      = "sales_refresh_pipeline"
	PipelineRunsTable    = "pipeline_runs"
	LoadMetadataTable    = "_load_metadata"
	DbtStagingSelector   = "stg_*"
	DbtMartsSelector     = "fct_*"
	MartFreshnessWindow  = 10 * time.Minute
	IndicatorStaleAfter  = 24 * time.Hour
)

var jobs = []string{
	JobDailyFullPipeline,
	JobEconomicUpdate,
	JobQualityCheck,
	JobSalesRefresh,
}

// Jobs retorna os jobs do orquestrador em ordem fixa
func Jobs() []string {
	out := make([]string, len(jobs))
	copy(out, jobs)
	return out
}

// ParseJob valida o nome de um job
func ParseJob(name string) (string, error) {
	for _, job := range jobs {
		if job == name {
			return job, nil
		}
	}
	return "", fmt.Errorf("%w: %s (disponíveis: %v)", ErrUnknownJob, name, jobs)
}

// Trigger indica a origem de uma execução
type Trigger string

const (
	TriggerSchedule Trigger = "schedule"
	TriggerSensor   Trigger = "sensor"
	TriggerManual   Trigger = "manual"
	TriggerCLI      Trigger = "cli"
)

// RunStatus é o estado de uma execução ou etapa
type RunStatus string

const (
	RunRunning RunStatus = "running"
	RunSuccess RunStatus = "success"
	RunFailed  RunStatus = "failed"
	RunSkipped RunStatus = "skipped"
	RunWarning RunStatus = "warning"
)

// Status do resumo de testes de qualidade
const (
	TestStatusSuccess = "SUCCESS"
	TestStatusWarning = "WARNING"
	TestStatusFailed  = "FAILED"
)

// TestSummary é o resumo da execução dos testes de qualidade do dbt
type TestSummary struct {
	Passed  int    `json:"passed"`
	Warned  int    `json:"warned"`
	Errors  int    `json:"errors"`
	Skipped int    `json:"skipped"`
	Total   int    `json:"total"`
	Status  string `json:"status"`
}

// ResolveStatus calcula o status a partir dos contadores
func (t *TestSummary) ResolveStatus() {
	switch {
	case t.Errors > 0:
		t.Status = TestStatusFailed
	case t.Warned > 0:
		t.Status = TestStatusWarning
	default:
		t.Status = TestStatusSuccess
	}
}

// StepOutcome é o resultado de uma etapa de um job
type StepOutcome struct {
	Name       string        `json:"name"`
	Status     RunStatus     `json:"status"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Rows       int64         `json:"rows,omitempty"`
	Message    string        `json:"message,omitempty"`
	Items      []ItemOutcome `json:"items,omitempty"`
}

// PipelineRun é o relatório persistido de uma execução de job
type PipelineRun struct {
	ID          string        `json:"id"`
	Job         string        `json:"job"`
	Trigger     Trigger       `json:"trigger"`
	Status      RunStatus     `json:"status"`
	StartedAt   time.Time     `json:"started_at"`
	FinishedAt  *time.Time    `json:"finished_at,omitempty"`
	Steps       []StepOutcome `json:"steps"`
	TestSummary *TestSummary  `json:"test_summary,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// LoadMetadata registra a carga de um arquivo no dataset raw
type LoadMetadata struct {
	TableName     string    `json:"table_name"`
	FileName      string    `json:"file_name"`
	FileHash      string    `json:"file_hash"`
	SourceURI     string    `json:"source_uri"`
	LoadTimestamp time.Time `json:"load_timestamp"`
	LoadStatus    string    `json:"load_status"`
	RowCount      int64     `json:"row_count"`
	BadRecords    int       `json:"bad_records"`
	ErrorMessage  string    `json:"error_message,omitempty"`
}
