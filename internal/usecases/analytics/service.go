// Package analytics calcula as visões do dashboard a partir das tabelas mart
package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/vfg2006/sales-economics-api/infrastructure/repository"
	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/internal/metrics"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const snapshotKey = "marts"

// Dashboard expõe as visões do dashboard. Todas recalculam os agregados a partir das
// linhas filtradas em cada chamada; apenas o conteúdo das marts fica em cache.
type Dashboard interface {
	Options(ctx context.Context) (*domain.FilterOptions, error)
	ResolveFilters(ctx context.Context, filters domain.DashboardFilters) (domain.DashboardFilters, error)
	Overview(ctx context.Context, filters domain.DashboardFilters) (*domain.OverviewView, error)
	Categories(ctx context.Context, filters domain.DashboardFilters, trendCategory string) (*domain.CategoryView, error)
	Geography(ctx context.Context, filters domain.DashboardFilters) (*domain.GeographyView, error)
	Economic(ctx context.Context, filters domain.DashboardFilters) (*domain.EconomicView, error)
	Correlations(ctx context.Context, filters domain.DashboardFilters) (*domain.CorrelationView, error)
	Cohorts(ctx context.Context, filters domain.DashboardFilters) (*domain.CohortView, error)
	Customers(ctx context.Context, filters domain.DashboardFilters) (*domain.CustomerView, error)
	Products(ctx context.Context, filters domain.DashboardFilters) (*domain.ProductView, error)
	Raw(ctx context.Context, filters domain.DashboardFilters) (*domain.RawView, error)
	// Refresh descarta o cache; a próxima visão recarrega as marts
	Refresh(ctx context.Context)
	// LoadedAt retorna quando as marts em cache foram carregadas, ou nil sem cache
	LoadedAt() *time.Time
}

type Service struct {
	martRepo      repository.MartRepository
	indicatorRepo repository.IndicatorRepository
	cache         *expirable.LRU[string, *domain.MartSnapshot]
	group         singleflight.Group
	now           func() time.Time
}

func NewService(cfg *config.Config, martRepo repository.MartRepository, indicatorRepo repository.IndicatorRepository) Dashboard {
	size := cfg.Dashboard.CacheSize
	if size <= 0 {
		size = 1
	}

	return &Service{
		martRepo:      martRepo,
		indicatorRepo: indicatorRepo,
		cache:         expirable.NewLRU[string, *domain.MartSnapshot](size, nil, cfg.Dashboard.CacheTTL),
		now:           time.Now,
	}
}

func (s *Service) Options(ctx context.Context) (*domain.FilterOptions, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	opts := BuildOptions(snapshot)
	return &opts, nil
}

func (s *Service) ResolveFilters(ctx context.Context, filters domain.DashboardFilters) (domain.DashboardFilters, error) {
	_, resolved, err := s.prepare(ctx, filters)
	return resolved, err
}

func (s *Service) Overview(ctx context.Context, filters domain.DashboardFilters) (*domain.OverviewView, error) {
	snapshot, f, err := s.prepare(ctx, filters, domain.MartCategoryPerformance)
	if err != nil {
		return nil, err
	}

	view := BuildOverview(FilterCategories(snapshot.Categories, f), f)
	return &view, nil
}

func (s *Service) Categories(ctx context.Context, filters domain.DashboardFilters, trendCategory string) (*domain.CategoryView, error) {
	snapshot, f, err := s.prepare(ctx, filters, domain.MartCategoryPerformance)
	if err != nil {
		return nil, err
	}

	view := BuildCategoryView(FilterCategories(snapshot.Categories, f), f.Language, trendCategory)
	return &view, nil
}

func (s *Service) Geography(ctx context.Context, filters domain.DashboardFilters) (*domain.GeographyView, error) {
	snapshot, f, err := s.prepare(ctx, filters, domain.MartGeographicSales)
	if err != nil {
		return nil, err
	}

	view := BuildGeographyView(FilterGeography(snapshot.Geography, f), f.Language)
	return &view, nil
}

func (s *Service) Economic(ctx context.Context, filters domain.DashboardFilters) (*domain.EconomicView, error) {
	snapshot, f, err := s.prepare(ctx, filters, domain.MartCategoryPerformance)
	if err != nil {
		return nil, err
	}

	view := BuildEconomicView(
		FilterCategories(snapshot.Categories, f),
		FilterIndicators(snapshot.Indicators, f),
		f.Language,
	)
	return &view, nil
}

func (s *Service) Correlations(ctx context.Context, filters domain.DashboardFilters) (*domain.CorrelationView, error) {
	snapshot, f, err := s.prepare(ctx, filters, domain.MartCategoryPerformance)
	if err != nil {
		return nil, err
	}

	return &domain.CorrelationView{
		MinMonths: MinCorrelationMonths,
		Entries: CategoryCorrelations(
			FilterCategories(snapshot.Categories, f),
			FilterIndicators(snapshot.Indicators, f),
			f.Language,
		),
	}, nil
}

func (s *Service) Cohorts(ctx context.Context, filters domain.DashboardFilters) (*domain.CohortView, error) {
	snapshot, f, err := s.prepare(ctx, filters, domain.MartCustomerSegments)
	if err != nil {
		return nil, err
	}

	return &domain.CohortView{
		MaxOffset: MaxCohortOffset,
		Cohorts:   CohortRetention(FilterCustomers(snapshot.Customers, f), MaxCohortOffset),
	}, nil
}

func (s *Service) Customers(ctx context.Context, filters domain.DashboardFilters) (*domain.CustomerView, error) {
	snapshot, f, err := s.prepare(ctx, filters, domain.MartCustomerSegments)
	if err != nil {
		return nil, err
	}

	view := BuildCustomerView(FilterCustomers(snapshot.Customers, f))
	return &view, nil
}

func (s *Service) Products(ctx context.Context, filters domain.DashboardFilters) (*domain.ProductView, error) {
	snapshot, f, err := s.prepare(ctx, filters, domain.MartProductPerformance)
	if err != nil {
		return nil, err
	}

	view := BuildProductView(FilterProducts(snapshot.Products, f), f.Language, TopProducts)
	return &view, nil
}

func (s *Service) Raw(ctx context.Context, filters domain.DashboardFilters) (*domain.RawView, error) {
	snapshot, f, err := s.prepare(ctx, filters, domain.MartCategoryPerformance)
	if err != nil {
		return nil, err
	}

	view := BuildRawView(FilterCategories(snapshot.Categories, f), RawRowsLimit)
	return &view, nil
}

func (s *Service) Refresh(ctx context.Context) {
	s.cache.Purge()
	metrics.DashboardCache.WithLabelValues("purge").Inc()
	log.ForContext(ctx).Info("Cache do dashboard descartado")
}

func (s *Service) LoadedAt() *time.Time {
	snapshot, ok := s.cache.Peek(snapshotKey)
	if !ok {
		return nil
	}
	loadedAt := snapshot.LoadedAt
	return &loadedAt
}

// prepare valida os filtros, garante as marts necessárias e completa os filtros com os padrões
func (s *Service) prepare(ctx context.Context, filters domain.DashboardFilters, marts ...string) (*domain.MartSnapshot, domain.DashboardFilters, error) {
	if err := filters.Validate(); err != nil {
		return nil, filters, err
	}

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, filters, err
	}

	if err := snapshot.Require(optionMarts(filters, marts)...); err != nil {
		return nil, filters, err
	}

	return snapshot, ResolveFilters(filters, BuildOptions(snapshot)), nil
}

// optionMarts acrescenta as marts de onde saem os padrões dos filtros não informados.
// Categorias vêm da mart de categorias e estados da mart geográfica.
func optionMarts(filters domain.DashboardFilters, marts []string) []string {
	required := append([]string(nil), marts...)
	for _, mart := range marts {
		switch mart {
		case domain.MartGeographicSales, domain.MartProductPerformance:
			if filters.Categories == nil {
				required = append(required, domain.MartCategoryPerformance)
			}
		case domain.MartCustomerSegments:
			if filters.States == nil {
				required = append(required, domain.MartGeographicSales)
			}
		}
	}
	return required
}

func (s *Service) snapshot(ctx context.Context) (*domain.MartSnapshot, error) {
	if snapshot, ok := s.cache.Get(snapshotKey); ok {
		metrics.DashboardCache.WithLabelValues("hit").Inc()
		return snapshot, nil
	}
	metrics.DashboardCache.WithLabelValues("miss").Inc()

	value, err, _ := s.group.Do(snapshotKey, func() (any, error) {
		snapshot, err := s.load(ctx)
		if err != nil {
			return nil, err
		}

		// Com marts faltando não guarda em cache, para enxergar a próxima materialização
		if len(snapshot.Missing) == 0 {
			s.cache.Add(snapshotKey, snapshot)
		}
		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}

	return value.(*domain.MartSnapshot), nil
}

// load lê as marts e os indicadores em paralelo. Mart inexistente não é erro: fica registrada
// em Missing e as visões que dependem dela respondem ErrMartUnavailable.
func (s *Service) load(ctx context.Context) (*domain.MartSnapshot, error) {
	logger := log.ForContext(ctx)
	snapshot := &domain.MartSnapshot{}

	var mu sync.Mutex
	missing := func(mart string, err error) error {
		if !errors.Is(err, domain.ErrMartUnavailable) {
			return fmt.Errorf("erro ao carregar %s: %w", mart, err)
		}
		logger.WithField("table", mart).Warnf("Mart indisponível, execute: %s", domain.MartRemediation)
		mu.Lock()
		snapshot.Missing = append(snapshot.Missing, mart)
		mu.Unlock()
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.martRepo.ListCategoryPerformance(gctx)
		if err != nil {
			return missing(domain.MartCategoryPerformance, err)
		}
		snapshot.Categories = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.martRepo.ListGeographicSales(gctx)
		if err != nil {
			return missing(domain.MartGeographicSales, err)
		}
		snapshot.Geography = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.martRepo.ListCustomerSegments(gctx)
		if err != nil {
			return missing(domain.MartCustomerSegments, err)
		}
		snapshot.Customers = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.martRepo.ListProductPerformance(gctx)
		if err != nil {
			return missing(domain.MartProductPerformance, err)
		}
		snapshot.Products = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.indicatorRepo.MonthlyAverages(gctx, domain.AllSeries())
		if err != nil {
			return fmt.Errorf("erro ao carregar indicadores: %w", err)
		}
		snapshot.Indicators = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(snapshot.Missing)
	snapshot.LoadedAt = s.now().UTC()
	logger.WithFields(log.Fields{
		"categories": len(snapshot.Categories),
		"geography":  len(snapshot.Geography),
		"customers":  len(snapshot.Customers),
		"products":   len(snapshot.Products),
	}).Info("Marts do dashboard carregadas")

	return snapshot, nil
}
