package extracting

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/vfg2006/sales-economics-api/infrastructure/integrator/bcb"
	"github.com/vfg2006/sales-economics-api/infrastructure/repository"
	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/internal/metrics"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Extractor interface {
	// ExtractSeries busca e normaliza uma série, sem gravar
	ExtractSeries(ctx context.Context, series domain.Series, start, end *time.Time) ([]domain.EconomicIndicator, error)
	// ExtractAll busca todas as séries e substitui a tabela de indicadores
	ExtractAll(ctx context.Context, start, end *time.Time) (*domain.BatchReport, error)
	// ExtractSelected faz o mesmo que ExtractAll para um subconjunto de séries
	ExtractSelected(ctx context.Context, series []domain.Series, start, end *time.Time) (*domain.BatchReport, error)
	LastExtractedAt(ctx context.Context) (*time.Time, error)
}

type Service struct {
	cfg           *config.Config
	bcbIntegrator bcb.BCBIntegrator
	indicatorRepo repository.IndicatorRepository
	now           func() time.Time
}

func NewService(cfg *config.Config, bcbIntegrator bcb.BCBIntegrator, indicatorRepo repository.IndicatorRepository) Extractor {
	return &Service{
		cfg:           cfg,
		bcbIntegrator: bcbIntegrator,
		indicatorRepo: indicatorRepo,
		now:           time.Now,
	}
}

func (s *Service) ExtractSeries(ctx context.Context, series domain.Series, start, end *time.Time) ([]domain.EconomicIndicator, error) {
	observations, err := s.bcbIntegrator.GetSeries(ctx, series, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar série %s: %w", series, err)
	}

	indicators := NormalizeObservations(series, observations, s.now().UTC())

	dropped := len(observations) - len(indicators)
	metrics.BCBObservations.WithLabelValues(series.String(), "kept").Add(float64(len(indicators)))
	metrics.BCBObservations.WithLabelValues(series.String(), "dropped").Add(float64(dropped))

	if dropped > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"series": series.String(),
			"rows":   dropped,
		}).Warn("Observações descartadas por data ou valor inválido")
	}

	return indicators, nil
}

func (s *Service) ExtractAll(ctx context.Context, start, end *time.Time) (*domain.BatchReport, error) {
	return s.ExtractSelected(ctx, domain.AllSeries(), start, end)
}

func (s *Service) ExtractSelected(ctx context.Context, series []domain.Series, start, end *time.Time) (*domain.BatchReport, error) {
	logger := log.ForContext(ctx)
	report := domain.NewBatchReport("extract_bcb")

	if start == nil {
		defaultStart, err := s.defaultStartDate()
		if err != nil {
			return report, err
		}
		start = &defaultStart
	}

	all := make([]domain.EconomicIndicator, 0)
	for _, item := range series {
		seriesLogger := logger.WithField("series", item.String())

		indicators, err := s.ExtractSeries(ctx, item, start, end)
		if err != nil {
			seriesLogger.WithError(err).Warn("Falha ao extrair série, seguindo para a próxima")
			metrics.BCBSeriesExtractions.WithLabelValues(item.String(), string(domain.OutcomeFailed)).Inc()
			report.Add(domain.ItemOutcome{
				Item:   item.String(),
				Target: strconv.Itoa(item.ID()),
				Status: domain.OutcomeFailed,
				Reason: err.Error(),
			})
			continue
		}

		if len(indicators) == 0 {
			seriesLogger.Warn("Série sem observações válidas no período")
			metrics.BCBSeriesExtractions.WithLabelValues(item.String(), string(domain.OutcomeEmpty)).Inc()
			report.Add(domain.ItemOutcome{
				Item:   item.String(),
				Target: strconv.Itoa(item.ID()),
				Status: domain.OutcomeEmpty,
			})
			continue
		}

		seriesLogger.WithField("rows", len(indicators)).Info("Série extraída")
		metrics.BCBSeriesExtractions.WithLabelValues(item.String(), string(domain.OutcomeSuccess)).Inc()
		report.Add(domain.ItemOutcome{
			Item:   item.String(),
			Target: strconv.Itoa(item.ID()),
			Status: domain.OutcomeSuccess,
			Rows:   int64(len(indicators)),
		})
		all = append(all, indicators...)
	}

	report.Finish()

	if len(all) == 0 {
		return report, domain.ErrNoIndicatorData
	}

	if err := s.indicatorRepo.ReplaceAll(ctx, all); err != nil {
		return report, fmt.Errorf("erro ao gravar indicadores: %w", err)
	}

	logger.WithField("rows", len(all)).Infof("Tabela %s substituída", domain.IndicatorsTable)

	return report, nil
}

func (s *Service) LastExtractedAt(ctx context.Context) (*time.Time, error) {
	return s.indicatorRepo.LastExtractedAt(ctx)
}

func (s *Service) defaultStartDate() (time.Time, error) {
	start, err := time.ParseInLocation(domain.BCBDateLayout, s.cfg.BCB.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("BCB_START_DATE inválida (%s), esperado DD/MM/YYYY: %w", s.cfg.BCB.StartDate, err)
	}
	return start, nil
}
