package scheduler

import (
	"context"
	"errors"

	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

// checkBCBFreshness dispara o job econômico quando a última extração é mais antiga que
// IndicatorStaleAfter. Retorna true quando uma execução foi iniciada.
func (s *PipelineService) checkBCBFreshness(ctx context.Context) bool {
	logger := log.ForContext(ctx).WithField("sensor", "bcb_freshness")

	lastExtractedAt, err := s.extractor.LastExtractedAt(ctx)
	if err != nil {
		logger.WithError(err).Warn("Erro ao consultar última extração do BCB")
		return false
	}

	if lastExtractedAt != nil && s.now().Sub(*lastExtractedAt) < domain.IndicatorStaleAfter {
		logger.WithField("last_extracted_at", lastExtractedAt.Format("2006-01-02 15:04:05")).Debug("Indicadores atualizados")
		return false
	}

	logger.Info("Indicadores desatualizados, disparando atualização econômica")

	steps, runID, err := s.acquire(ctx, domain.JobEconomicUpdate, domain.TriggerSensor)
	if err != nil {
		if !errors.Is(err, domain.ErrJobAlreadyRunning) {
			logger.WithError(err).Error("Erro ao disparar atualização econômica")
		}
		return false
	}

	go func() {
		defer s.release(domain.JobEconomicUpdate)
		_, _ = s.execute(ctx, domain.JobEconomicUpdate, runID, domain.TriggerSensor, steps)
	}()

	return true
}

// checkDashboardRefresh descarta o cache do dashboard quando as marts foram
// materializadas dentro de MartFreshnessWindow e ainda não foram observadas.
func (s *PipelineService) checkDashboardRefresh(ctx context.Context) bool {
	logger := log.ForContext(ctx).WithField("sensor", "dashboard_refresh")

	materializedAt, err := s.runRepo.LastStepSuccess(ctx, StepDbtMarts)
	if err != nil {
		logger.WithError(err).Warn("Erro ao consultar última materialização das marts")
		return false
	}
	if materializedAt == nil || s.now().Sub(*materializedAt) > domain.MartFreshnessWindow {
		return false
	}

	s.sensorMu.Lock()
	defer s.sensorMu.Unlock()

	if !materializedAt.After(s.lastMartsRefresh) {
		return false
	}
	s.lastMartsRefresh = *materializedAt

	logger.WithField("materialized_at", materializedAt.Format("2006-01-02 15:04:05")).Info("Marts materializadas recentemente, descartando cache do dashboard")
	s.dashboard.Refresh(ctx)
	return true
}
