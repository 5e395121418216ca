package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

// Nomes das etapas dos jobs
const (
	StepDownloadSales    = "download_sales"
	StepLoadSales        = "load_sales"
	StepExtractBCB       = "extract_bcb"
	StepDbtStaging       = "dbt_staging"
	StepDbtMarts         = "dbt_marts"
	StepDbtTests         = "dbt_tests"
	StepRefreshDashboard = "refresh_dashboard"
	StepReport           = "report"
)

// step é uma etapa de um job. Etapas sem gate registram a falha como alerta e
// não interrompem as seguintes; etapas always rodam mesmo após uma falha.
type step struct {
	name   string
	run    func(ctx context.Context, run *domain.PipelineRun, out *domain.StepOutcome) error
	gate   bool
	always bool
}

func (s *PipelineService) jobSteps(job string) ([]step, error) {
	job, err := domain.ParseJob(job)
	if err != nil {
		return nil, err
	}

	var names []string
	switch job {
	case domain.JobDailyFullPipeline:
		names = []string{StepDownloadSales, StepLoadSales, StepExtractBCB, StepDbtStaging, StepDbtMarts, StepDbtTests, StepRefreshDashboard, StepReport}
	case domain.JobEconomicUpdate:
		names = []string{StepExtractBCB, StepDbtStaging, StepDbtMarts, StepDbtTests, StepRefreshDashboard, StepReport}
	case domain.JobQualityCheck:
		names = []string{StepDbtTests, StepReport}
	case domain.JobSalesRefresh:
		names = []string{StepLoadSales, StepDbtStaging, StepDbtMarts, StepDbtTests, StepReport}
	}

	steps := make([]step, 0, len(names))
	for _, name := range names {
		steps = append(steps, s.step(name))
	}
	return steps, nil
}

func (s *PipelineService) step(name string) step {
	switch name {
	case StepDownloadSales:
		// Sem credenciais do Kaggle a carga segue com os arquivos já presentes
		return step{name: name, run: s.downloadSales}
	case StepLoadSales:
		return step{name: name, run: s.loadSales, gate: true}
	case StepExtractBCB:
		return step{name: name, run: s.extractBCB, gate: true}
	case StepDbtStaging:
		return step{name: name, run: s.dbtRun(domain.DbtStagingSelector), gate: true}
	case StepDbtMarts:
		return step{name: name, run: s.dbtRun(domain.DbtMartsSelector), gate: true}
	case StepDbtTests:
		return step{name: name, run: s.dbtTests}
	case StepRefreshDashboard:
		return step{name: name, run: s.refreshDashboard, gate: true}
	default:
		return step{name: StepReport, run: s.report, always: true}
	}
}

func (s *PipelineService) downloadSales(ctx context.Context, _ *domain.PipelineRun, out *domain.StepOutcome) error {
	files, err := s.loader.Download(ctx, s.cfg.Storage.RawDataDir)
	if err != nil {
		return err
	}
	out.Rows = int64(len(files))
	out.Message = fmt.Sprintf("%d arquivos baixados", len(files))
	return nil
}

func (s *PipelineService) loadSales(ctx context.Context, _ *domain.PipelineRun, out *domain.StepOutcome) error {
	if err := s.loader.EnsureDatasets(ctx); err != nil {
		return err
	}

	report, err := s.loader.LoadDirectory(ctx, s.cfg.Storage.RawDataDir)
	if err != nil {
		return err
	}

	out.Items = report.Items
	out.Rows = report.TotalRows()
	if !report.Succeeded() {
		return fmt.Errorf("nenhum arquivo carregado com sucesso em %s", s.cfg.Storage.RawDataDir)
	}
	out.Message = fmt.Sprintf("%d arquivos carregados, %d falhas", report.Count(domain.OutcomeSuccess), report.Count(domain.OutcomeFailed))
	return nil
}

func (s *PipelineService) extractBCB(ctx context.Context, _ *domain.PipelineRun, out *domain.StepOutcome) error {
	report, err := s.extractor.ExtractAll(ctx, nil, nil)
	if report != nil {
		out.Items = report.Items
		out.Rows = report.TotalRows()
	}
	if err != nil {
		return err
	}
	out.Message = fmt.Sprintf("%d séries extraídas, %d falhas", report.Count(domain.OutcomeSuccess), report.Count(domain.OutcomeFailed))
	return nil
}

func (s *PipelineService) dbtRun(selector string) func(context.Context, *domain.PipelineRun, *domain.StepOutcome) error {
	return func(ctx context.Context, _ *domain.PipelineRun, out *domain.StepOutcome) error {
		models, err := s.runner.Run(ctx, selector)
		if err != nil {
			return err
		}
		out.Rows = int64(models)
		out.Message = fmt.Sprintf("%d modelos materializados (%s)", models, selector)
		return nil
	}
}

func (s *PipelineService) dbtTests(ctx context.Context, run *domain.PipelineRun, out *domain.StepOutcome) error {
	summary, err := s.runner.Test(ctx)
	if err != nil {
		return err
	}

	run.TestSummary = summary
	out.Message = fmt.Sprintf("PASS=%d WARN=%d ERROR=%d SKIP=%d TOTAL=%d",
		summary.Passed, summary.Warned, summary.Errors, summary.Skipped, summary.Total)

	if summary.Status == domain.TestStatusFailed {
		return fmt.Errorf("%d testes de qualidade falharam", summary.Errors)
	}
	if summary.Status == domain.TestStatusWarning {
		return fmt.Errorf("%d testes de qualidade com alerta", summary.Warned)
	}
	return nil
}

func (s *PipelineService) refreshDashboard(ctx context.Context, _ *domain.PipelineRun, out *domain.StepOutcome) error {
	s.dashboard.Refresh(ctx)

	// Recarrega as marts para que a primeira visão não pague a leitura
	opts, err := s.dashboard.Options(ctx)
	if err != nil {
		return fmt.Errorf("erro ao recarregar marts do dashboard: %w", err)
	}
	out.Message = fmt.Sprintf("cache do dashboard recarregado (%d categorias, %d estados)", len(opts.Categories), len(opts.States))
	return nil
}

func (s *PipelineService) report(ctx context.Context, run *domain.PipelineRun, out *domain.StepOutcome) error {
	parts := make([]string, 0, len(run.Steps))
	for _, st := range run.Steps {
		parts = append(parts, fmt.Sprintf("%s=%s", st.Name, st.Status))
	}
	out.Message = strings.Join(parts, " ")

	fields := log.Fields{"steps": out.Message}
	if run.TestSummary != nil {
		fields["tests"] = run.TestSummary.Status
	}
	if run.Error != "" {
		fields["error"] = run.Error
	}
	log.ForContext(ctx).WithFields(fields).Info("Relatório da execução")
	return nil
}
