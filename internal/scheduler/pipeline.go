package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/vfg2006/sales-economics-api/infrastructure/integrator/dbt"
	"github.com/vfg2006/sales-economics-api/infrastructure/repository"
	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/internal/metrics"
	"github.com/vfg2006/sales-economics-api/internal/usecases/analytics"
	"github.com/vfg2006/sales-economics-api/internal/usecases/extracting"
	"github.com/vfg2006/sales-economics-api/internal/usecases/loading"
	"github.com/vfg2006/sales-economics-api/pkg/log"
	"github.com/vfg2006/sales-economics-api/pkg/utils"
)

//go:generate mockgen -source=pipeline.go -destination=mocks/pipeline.go -package=mocks

// Orchestrator é a interface usada pela API para disparar e acompanhar os jobs
type Orchestrator interface {
	RunJob(ctx context.Context, job string, trigger domain.Trigger) (*domain.PipelineRun, error)
	TriggerManualSync(ctx context.Context, job string) (string, error)
	RecentRuns(ctx context.Context, job string, limit uint64) ([]domain.PipelineRun, error)
	GetStatus() map[string]any
}

// PipelineService agenda e executa os jobs do pipeline e os sensores de atualização
type PipelineService struct {
	scheduler *gocron.Scheduler
	cfg       *config.Config

	extractor extracting.Extractor
	loader    loading.Loader
	runner    dbt.Runner
	dashboard analytics.Dashboard
	runRepo   repository.PipelineRunRepository

	mu       sync.Mutex
	running  map[string]string
	lastRuns map[string]domain.PipelineRun
	cronJobs map[string]*gocron.Job

	sensorMu         sync.Mutex
	lastMartsRefresh time.Time

	now func() time.Time
}

// NewPipelineService cria o orquestrador
func NewPipelineService(
	cfg *config.Config,
	extractor extracting.Extractor,
	loader loading.Loader,
	runner dbt.Runner,
	dashboard analytics.Dashboard,
	runRepo repository.PipelineRunRepository,
) *PipelineService {
	log.L.WithFields(log.Fields{
		"schedules_enabled":        cfg.Pipeline.Enabled,
		"daily_full_cron":          cfg.Pipeline.DailyFullCron,
		"economic_update_cron":     cfg.Pipeline.EconomicUpdateCron,
		"quality_check_cron":       cfg.Pipeline.QualityCheckCron,
		"sales_refresh_cron":       cfg.Pipeline.SalesRefreshCron,
		"bcb_freshness_sensor":     cfg.Sensors.BCBFreshnessEnabled,
		"dashboard_refresh_sensor": cfg.Sensors.DashboardRefreshEnabled,
	}).Info("Configuração do orquestrador carregada")

	return &PipelineService{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       cfg,
		extractor: extractor,
		loader:    loader,
		runner:    runner,
		dashboard: dashboard,
		runRepo:   runRepo,
		running:   make(map[string]string),
		lastRuns:  make(map[string]domain.PipelineRun),
		cronJobs:  make(map[string]*gocron.Job),
		now:       time.Now,
	}
}

// Start registra os agendamentos habilitados e inicia o agendador
func (s *PipelineService) Start(ctx context.Context) error {
	// Execuções em andamento não são canceladas no desligamento
	runCtx := context.WithoutCancel(ctx)
	registered := 0

	if s.cfg.Pipeline.Enabled {
		for job, cron := range s.schedules() {
			job := job
			scheduled, err := s.scheduler.Cron(cron).Tag(job).Do(func() {
				_, _ = s.RunJob(runCtx, job, domain.TriggerSchedule)
			})
			if err != nil {
				return fmt.Errorf("erro ao agendar %s (%s): %w", job, cron, err)
			}
			s.cronJobs[job] = scheduled
			registered++
		}
	} else {
		log.L.Info("Agendamentos do pipeline desabilitados por configuração")
	}

	if s.cfg.Sensors.BCBFreshnessEnabled {
		_, err := s.scheduler.Every(s.cfg.Sensors.BCBFreshnessIntervalSeconds).Seconds().Tag("bcb_freshness_sensor").Do(func() {
			s.checkBCBFreshness(runCtx)
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar sensor de atualização do BCB: %w", err)
		}
		registered++
	}

	if s.cfg.Sensors.DashboardRefreshEnabled {
		_, err := s.scheduler.Every(s.cfg.Sensors.DashboardRefreshIntervalSeconds).Seconds().Tag("dashboard_refresh_sensor").Do(func() {
			s.checkDashboardRefresh(runCtx)
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar sensor de atualização do dashboard: %w", err)
		}
		registered++
	}

	if registered == 0 {
		return nil
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando orquestrador do pipeline")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PipelineService) schedules() map[string]string {
	return map[string]string{
		domain.JobDailyFullPipeline: s.cfg.Pipeline.DailyFullCron,
		domain.JobEconomicUpdate:    s.cfg.Pipeline.EconomicUpdateCron,
		domain.JobQualityCheck:      s.cfg.Pipeline.QualityCheckCron,
		domain.JobSalesRefresh:      s.cfg.Pipeline.SalesRefreshCron,
	}
}

// RunJob executa um job de forma síncrona. Se o mesmo job já estiver em execução a
// chamada é ignorada e retorna ErrJobAlreadyRunning.
func (s *PipelineService) RunJob(ctx context.Context, job string, trigger domain.Trigger) (*domain.PipelineRun, error) {
	steps, runID, err := s.acquire(ctx, job, trigger)
	if err != nil {
		return nil, err
	}
	defer s.release(job)

	return s.execute(ctx, job, runID, trigger, steps)
}

// TriggerManualSync inicia um job em segundo plano e retorna o ID da execução
func (s *PipelineService) TriggerManualSync(ctx context.Context, job string) (string, error) {
	steps, runID, err := s.acquire(ctx, job, domain.TriggerManual)
	if err != nil {
		return "", err
	}

	runCtx := context.WithoutCancel(ctx)
	go func() {
		defer s.release(job)
		_, _ = s.execute(runCtx, job, runID, domain.TriggerManual, steps)
	}()

	return runID, nil
}

func (s *PipelineService) acquire(ctx context.Context, job string, trigger domain.Trigger) ([]step, string, error) {
	steps, err := s.jobSteps(job)
	if err != nil {
		return nil, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if runID, running := s.running[job]; running {
		log.ForContext(ctx).WithFields(log.Fields{
			"job":     job,
			"run_id":  runID,
			"trigger": string(trigger),
		}).Info("Job já em andamento, ignorando")
		return nil, "", fmt.Errorf("%w: %s (execução %s)", domain.ErrJobAlreadyRunning, job, runID)
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, "", fmt.Errorf("erro ao gerar ID da execução: %w", err)
	}

	s.running[job] = runID
	return steps, runID, nil
}

func (s *PipelineService) release(job string) {
	s.mu.Lock()
	delete(s.running, job)
	s.mu.Unlock()
}

func (s *PipelineService) execute(ctx context.Context, job, runID string, trigger domain.Trigger, steps []step) (*domain.PipelineRun, error) {
	ctx = log.WithRun(ctx, job, runID)
	logger := log.ForContext(ctx)

	run := &domain.PipelineRun{
		ID:        runID,
		Job:       job,
		Trigger:   trigger,
		Status:    domain.RunRunning,
		StartedAt: s.now().UTC(),
		Steps:     make([]domain.StepOutcome, 0, len(steps)),
	}
	s.saveRun(ctx, run)

	logger.WithField("trigger", string(trigger)).Info("Iniciando execução do job")

	var aborted, warned bool
	for _, st := range steps {
		if aborted && !st.always {
			run.Steps = append(run.Steps, domain.StepOutcome{Name: st.name, Status: domain.RunSkipped})
			continue
		}

		outcome := domain.StepOutcome{Name: st.name, StartedAt: s.now().UTC()}
		err := st.run(ctx, run, &outcome)
		outcome.FinishedAt = s.now().UTC()

		stepLogger := logger.WithField("step", st.name)
		switch {
		case err == nil:
			outcome.Status = domain.RunSuccess
			stepLogger.Info("Etapa concluída")
		case !st.gate:
			outcome.Status = domain.RunWarning
			outcome.Message = err.Error()
			warned = true
			stepLogger.WithError(err).Warn("Etapa com alertas, seguindo com o job")
		default:
			outcome.Status = domain.RunFailed
			outcome.Message = err.Error()
			run.Error = fmt.Sprintf("%s: %v", st.name, err)
			aborted = true
			stepLogger.WithError(err).Error("Etapa falhou, abortando o job")
		}

		metrics.StepDuration.WithLabelValues(job, st.name, string(outcome.Status)).
			Observe(outcome.FinishedAt.Sub(outcome.StartedAt).Seconds())

		run.Steps = append(run.Steps, outcome)
		s.saveRun(ctx, run)
	}

	finishedAt := s.now().UTC()
	run.FinishedAt = &finishedAt
	switch {
	case aborted:
		run.Status = domain.RunFailed
	case warned:
		run.Status = domain.RunWarning
	default:
		run.Status = domain.RunSuccess
	}
	s.saveRun(ctx, run)

	metrics.ObserveRun(job, string(trigger), string(run.Status), run.StartedAt)

	s.mu.Lock()
	s.lastRuns[job] = *run
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"status":   string(run.Status),
		"duration": finishedAt.Sub(run.StartedAt).String(),
	}).Info("Execução do job finalizada")

	if aborted {
		return run, fmt.Errorf("job %s falhou em %s", job, run.Error)
	}
	return run, nil
}

// saveRun persiste o relatório; falhas de gravação não interrompem o job
func (s *PipelineService) saveRun(ctx context.Context, run *domain.PipelineRun) {
	if err := s.runRepo.Save(ctx, run); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gravar relatório da execução")
	}
}

// RecentRuns retorna as últimas execuções persistidas, opcionalmente de um único job
func (s *PipelineService) RecentRuns(ctx context.Context, job string, limit uint64) ([]domain.PipelineRun, error) {
	if job != "" {
		if _, err := domain.ParseJob(job); err != nil {
			return nil, err
		}
	}
	return s.runRepo.ListRecent(ctx, job, limit)
}

// GetStatus retorna o status atual do orquestrador
func (s *PipelineService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedules := s.schedules()
	jobs := make(map[string]any, len(schedules))
	for _, job := range domain.Jobs() {
		status := map[string]any{
			"cron":    schedules[job],
			"running": false,
		}
		if runID, ok := s.running[job]; ok {
			status["running"] = true
			status["run_id"] = runID
		}
		if scheduled, ok := s.cronJobs[job]; ok {
			status["next_run"] = scheduled.NextRun()
		}
		if last, ok := s.lastRuns[job]; ok {
			status["last_run"] = last
		}
		jobs[job] = status
	}

	return map[string]any{
		"schedules_enabled": s.cfg.Pipeline.Enabled,
		"jobs":              jobs,
		"sensors": map[string]any{
			"bcb_freshness": map[string]any{
				"enabled":          s.cfg.Sensors.BCBFreshnessEnabled,
				"interval_seconds": s.cfg.Sensors.BCBFreshnessIntervalSeconds,
			},
			"dashboard_refresh": map[string]any{
				"enabled":          s.cfg.Sensors.DashboardRefreshEnabled,
				"interval_seconds": s.cfg.Sensors.DashboardRefreshIntervalSeconds,
			},
		},
	}
}
