package analytics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/sales-economics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

type dashboardMocks struct {
	marts      *repomocks.MockMartRepository
	indicators *repomocks.MockIndicatorRepository
}

func newTestDashboard(t *testing.T) (*Service, dashboardMocks) {
	ctrl := gomock.NewController(t)
	m := dashboardMocks{
		marts:      repomocks.NewMockMartRepository(ctrl),
		indicators: repomocks.NewMockIndicatorRepository(ctrl),
	}

	cfg := &config.Config{}
	cfg.Dashboard.CacheTTL = time.Hour
	cfg.Dashboard.CacheSize = 4

	return NewService(cfg, m.marts, m.indicators).(*Service), m
}

func expectSnapshotLoad(m dashboardMocks, snapshot *domain.MartSnapshot, times int) {
	m.marts.EXPECT().ListCategoryPerformance(gomock.Any()).Return(snapshot.Categories, nil).Times(times)
	m.marts.EXPECT().ListGeographicSales(gomock.Any()).Return(snapshot.Geography, nil).Times(times)
	m.marts.EXPECT().ListCustomerSegments(gomock.Any()).Return(snapshot.Customers, nil).Times(times)
	m.marts.EXPECT().ListProductPerformance(gomock.Any()).Return(snapshot.Products, nil).Times(times)
	m.indicators.EXPECT().MonthlyAverages(gomock.Any(), domain.AllSeries()).Return(snapshot.Indicators, nil).Times(times)
}

func TestService_CacheDeMarts(t *testing.T) {
	svc, m := newTestDashboard(t)
	expectSnapshotLoad(m, sampleSnapshot(), 1)

	ctx := context.Background()
	assert.Nil(t, svc.LoadedAt())

	overview, err := svc.Overview(ctx, domain.DashboardFilters{})
	require.NoError(t, err)
	assert.Equal(t, 5, overview.Categories)

	// Segunda visão usa o cache: os mocks esperam uma única carga
	_, err = svc.Geography(ctx, domain.DashboardFilters{States: []string{"SP"}, Categories: []string{"electronics"}})
	require.NoError(t, err)
	assert.NotNil(t, svc.LoadedAt())
}

func TestService_Refresh(t *testing.T) {
	svc, m := newTestDashboard(t)
	expectSnapshotLoad(m, sampleSnapshot(), 2)

	ctx := context.Background()
	_, err := svc.Options(ctx)
	require.NoError(t, err)

	svc.Refresh(ctx)
	assert.Nil(t, svc.LoadedAt())

	opts, err := svc.Options(ctx)
	require.NoError(t, err)
	assert.Len(t, opts.States, 7)
}

func TestService_MartIndisponivel(t *testing.T) {
	svc, m := newTestDashboard(t)
	snapshot := sampleSnapshot()
	unavailable := fmt.Errorf("%w: brazilian_sales_marts.%s", domain.ErrMartUnavailable, domain.MartCustomerSegments)

	// Sem cache enquanto faltar mart: cada visão recarrega
	m.marts.EXPECT().ListCategoryPerformance(gomock.Any()).Return(snapshot.Categories, nil).Times(2)
	m.marts.EXPECT().ListGeographicSales(gomock.Any()).Return(snapshot.Geography, nil).Times(2)
	m.marts.EXPECT().ListCustomerSegments(gomock.Any()).Return(nil, unavailable).Times(2)
	m.marts.EXPECT().ListProductPerformance(gomock.Any()).Return(snapshot.Products, nil).Times(2)
	m.indicators.EXPECT().MonthlyAverages(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	ctx := context.Background()

	_, err := svc.Cohorts(ctx, domain.DashboardFilters{})
	assert.ErrorIs(t, err, domain.ErrMartUnavailable)
	assert.ErrorContains(t, err, domain.MartCustomerSegments)

	economic, err := svc.Economic(ctx, domain.DashboardFilters{Categories: []string{"electronics"}})
	require.NoError(t, err)
	assert.True(t, economic.ElasticityAvailable)
	assert.Nil(t, svc.LoadedAt())
}

func TestService_ErroNaCarga(t *testing.T) {
	svc, m := newTestDashboard(t)

	m.marts.EXPECT().ListCategoryPerformance(gomock.Any()).Return(nil, errors.New("connection reset")).AnyTimes()
	m.marts.EXPECT().ListGeographicSales(gomock.Any()).Return(nil, nil).AnyTimes()
	m.marts.EXPECT().ListCustomerSegments(gomock.Any()).Return(nil, nil).AnyTimes()
	m.marts.EXPECT().ListProductPerformance(gomock.Any()).Return(nil, nil).AnyTimes()
	m.indicators.EXPECT().MonthlyAverages(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := svc.Overview(context.Background(), domain.DashboardFilters{})
	assert.ErrorContains(t, err, "connection reset")
	assert.NotErrorIs(t, err, domain.ErrMartUnavailable)
}

func TestService_FiltrosInvalidos(t *testing.T) {
	svc, _ := newTestDashboard(t)

	_, err := svc.Overview(context.Background(), domain.DashboardFilters{Language: "klingon"})
	assert.ErrorIs(t, err, domain.ErrInvalidFilters)
}

func TestService_Visoes(t *testing.T) {
	svc, m := newTestDashboard(t)
	expectSnapshotLoad(m, sampleSnapshot(), 1)

	ctx := context.Background()
	f := domain.DashboardFilters{
		Categories: []string{"electronics", "toys"},
		States:     []string{"SP", "RJ"},
		Language:   domain.LanguagePortuguese,
	}

	categories, err := svc.Categories(ctx, f, "")
	require.NoError(t, err)
	assert.Equal(t, "eletronicos", categories.Top[0].Category)

	correlations, err := svc.Correlations(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, MinCorrelationMonths, correlations.MinMonths)
	assert.Empty(t, correlations.Entries)

	cohorts, err := svc.Cohorts(ctx, f)
	require.NoError(t, err)
	require.Len(t, cohorts.Cohorts, 2)
	assert.Equal(t, 100.0, cohorts.Cohorts[0].Retention[0])

	customers, err := svc.Customers(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 3, customers.TotalCustomers)

	products, err := svc.Products(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 2, products.TotalProducts)

	raw, err := svc.Raw(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 4, raw.Total)

	resolved, err := svc.ResolveFilters(ctx, domain.DashboardFilters{})
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageEnglish, resolved.Language)
}

func TestService_PadroesDeMartAusente(t *testing.T) {
	tests := []struct {
		name     string
		missing  string
		view     func(svc *Service, ctx context.Context) (any, error)
		wantErr  bool
		validate func(t *testing.T, view any)
	}{
		{
			name:    "geografia sem mart de categorias e sem categorias informadas",
			missing: domain.MartCategoryPerformance,
			view: func(svc *Service, ctx context.Context) (any, error) {
				return svc.Geography(ctx, domain.DashboardFilters{})
			},
			wantErr: true,
		},
		{
			name:    "produtos sem mart de categorias e sem categorias informadas",
			missing: domain.MartCategoryPerformance,
			view: func(svc *Service, ctx context.Context) (any, error) {
				return svc.Products(ctx, domain.DashboardFilters{})
			},
			wantErr: true,
		},
		{
			name:    "clientes sem mart geográfica e sem estados informados",
			missing: domain.MartGeographicSales,
			view: func(svc *Service, ctx context.Context) (any, error) {
				return svc.Customers(ctx, domain.DashboardFilters{})
			},
			wantErr: true,
		},
		{
			name:    "geografia com categorias informadas dispensa a mart de categorias",
			missing: domain.MartCategoryPerformance,
			view: func(svc *Service, ctx context.Context) (any, error) {
				return svc.Geography(ctx, domain.DashboardFilters{Categories: []string{"electronics"}, States: []string{"SP"}})
			},
			validate: func(t *testing.T, view any) {
				geography := view.(*domain.GeographyView)
				require.Len(t, geography.States, 1)
				assert.Equal(t, int64(100), geography.States[0].Orders)
				assert.Len(t, geography.TopCities, 2)
			},
		},
		{
			name:    "produtos com categorias informadas dispensam a mart de categorias",
			missing: domain.MartCategoryPerformance,
			view: func(svc *Service, ctx context.Context) (any, error) {
				return svc.Products(ctx, domain.DashboardFilters{Categories: []string{"electronics"}})
			},
			validate: func(t *testing.T, view any) {
				assert.Equal(t, 1, view.(*domain.ProductView).TotalProducts)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestDashboard(t)
			snapshot := sampleSnapshot()
			unavailable := fmt.Errorf("%w: brazilian_sales_marts.%s", domain.ErrMartUnavailable, tt.missing)

			categories, geography := snapshot.Categories, snapshot.Geography
			var categoriesErr, geographyErr error
			switch tt.missing {
			case domain.MartCategoryPerformance:
				categories, categoriesErr = nil, unavailable
			case domain.MartGeographicSales:
				geography, geographyErr = nil, unavailable
			}

			m.marts.EXPECT().ListCategoryPerformance(gomock.Any()).Return(categories, categoriesErr)
			m.marts.EXPECT().ListGeographicSales(gomock.Any()).Return(geography, geographyErr)
			m.marts.EXPECT().ListCustomerSegments(gomock.Any()).Return(snapshot.Customers, nil)
			m.marts.EXPECT().ListProductPerformance(gomock.Any()).Return(snapshot.Products, nil)
			m.indicators.EXPECT().MonthlyAverages(gomock.Any(), gomock.Any()).Return(nil, nil)

			view, err := tt.view(svc, context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrMartUnavailable)
				assert.ErrorContains(t, err, tt.missing)
				return
			}
			require.NoError(t, err)
			tt.validate(t, view)
		})
	}
}
