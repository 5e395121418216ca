package extracting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-economics-api/infrastructure/integrator/bcb/bcbclient"
	bcbmocks "github.com/vfg2006/sales-economics-api/infrastructure/integrator/bcb/mocks"
	repomocks "github.com/vfg2006/sales-economics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (*Service, *bcbmocks.MockBCBIntegrator, *repomocks.MockIndicatorRepository) {
	integrator := bcbmocks.NewMockBCBIntegrator(ctrl)
	repo := repomocks.NewMockIndicatorRepository(ctrl)

	cfg := &config.Config{}
	cfg.BCB.StartDate = "01/01/2016"

	svc := NewService(cfg, integrator, repo).(*Service)
	svc.now = func() time.Time { return fixedNow }

	return svc, integrator, repo
}

func TestNormalizeObservations(t *testing.T) {
	tests := []struct {
		name         string
		observations []bcbclient.Observation
		expected     []domain.EconomicIndicator
	}{
		{
			name: "Deve descartar valor não numérico",
			observations: []bcbclient.Observation{
				{Data: "01/01/2016", Valor: "3.25"},
				{Data: "02/01/2016", Valor: "abc"},
			},
			expected: []domain.EconomicIndicator{
				{
					Date:        time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
					Value:       3.25,
					SeriesName:  domain.SeriesExchangeRateUSD,
					SeriesID:    1,
					ExtractedAt: fixedNow,
				},
			},
		},
		{
			name: "Deve descartar data fora do formato DD/MM/YYYY",
			observations: []bcbclient.Observation{
				{Data: "2016-01-01", Valor: "3.25"},
				{Data: "31/02/2016", Valor: "3.25"},
				{Data: "", Valor: "3.25"},
			},
			expected: []domain.EconomicIndicator{},
		},
		{
			name: "Deve descartar valores não finitos e vazios",
			observations: []bcbclient.Observation{
				{Data: "01/01/2016", Valor: "NaN"},
				{Data: "02/01/2016", Valor: "Inf"},
				{Data: "03/01/2016", Valor: ""},
				{Data: " 04/01/2016 ", Valor: " 4.1 "},
			},
			expected: []domain.EconomicIndicator{
				{
					Date:        time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC),
					Value:       4.1,
					SeriesName:  domain.SeriesExchangeRateUSD,
					SeriesID:    1,
					ExtractedAt: fixedNow,
				},
			},
		},
		{
			name:         "Entrada vazia gera saída vazia",
			observations: nil,
			expected:     []domain.EconomicIndicator{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeObservations(domain.SeriesExchangeRateUSD, tt.observations, fixedNow)
			assert.Equal(t, tt.expected, result)
			assert.LessOrEqual(t, len(result), len(tt.observations))
		})
	}
}

func TestService_ExtractAll(t *testing.T) {
	start := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	valid := []bcbclient.Observation{{Data: "01/01/2016", Valor: "3.25"}}

	tests := []struct {
		name     string
		setup    func(integrator *bcbmocks.MockBCBIntegrator, repo *repomocks.MockIndicatorRepository)
		err      error
		validate func(t *testing.T, report *domain.BatchReport)
	}{
		{
			name: "Deve gravar todas as séries extraídas",
			setup: func(integrator *bcbmocks.MockBCBIntegrator, repo *repomocks.MockIndicatorRepository) {
				integrator.EXPECT().GetSeries(gomock.Any(), gomock.Any(), &start, nil).Return(valid, nil).Times(5)
				repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Len(5)).Return(nil)
			},
			validate: func(t *testing.T, report *domain.BatchReport) {
				assert.Equal(t, 5, report.Count(domain.OutcomeSuccess))
				assert.Equal(t, int64(5), report.TotalRows())
			},
		},
		{
			name: "Falha em uma série não interrompe as demais",
			setup: func(integrator *bcbmocks.MockBCBIntegrator, repo *repomocks.MockIndicatorRepository) {
				integrator.EXPECT().GetSeries(gomock.Any(), domain.SeriesSELIC, gomock.Any(), gomock.Any()).
					Return(nil, errors.New("timeout"))
				integrator.EXPECT().GetSeries(gomock.Any(), gomock.Not(domain.SeriesSELIC), gomock.Any(), gomock.Any()).
					Return(valid, nil).Times(4)
				repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Len(4)).Return(nil)
			},
			validate: func(t *testing.T, report *domain.BatchReport) {
				assert.Equal(t, 4, report.Count(domain.OutcomeSuccess))
				assert.Equal(t, 1, report.Count(domain.OutcomeFailed))
				assert.Equal(t, "selic", report.Items[2].Item)
				assert.Equal(t, "4189", report.Items[2].Target)
			},
		},
		{
			name: "Sem dados em nenhuma série não deve tocar a tabela",
			setup: func(integrator *bcbmocks.MockBCBIntegrator, repo *repomocks.MockIndicatorRepository) {
				integrator.EXPECT().GetSeries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bcbclient.Observation{{Data: "01/01/2016", Valor: "-"}}, nil).Times(5)
				repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Times(0)
			},
			err: domain.ErrNoIndicatorData,
			validate: func(t *testing.T, report *domain.BatchReport) {
				assert.Equal(t, 5, report.Count(domain.OutcomeEmpty))
			},
		},
		{
			name: "Erro ao gravar deve ser propagado",
			setup: func(integrator *bcbmocks.MockBCBIntegrator, repo *repomocks.MockIndicatorRepository) {
				integrator.EXPECT().GetSeries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(valid, nil).Times(5)
				repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			err: errors.New("erro ao gravar indicadores: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, integrator, repo := newTestService(ctrl)
			tt.setup(integrator, repo)

			report, err := svc.ExtractAll(context.Background(), nil, nil)

			switch {
			case tt.err == nil:
				require.NoError(t, err)
			case errors.Is(tt.err, domain.ErrNoIndicatorData):
				assert.ErrorIs(t, err, domain.ErrNoIndicatorData)
			default:
				assert.EqualError(t, err, tt.err.Error())
			}

			require.NotNil(t, report)
			assert.False(t, report.FinishedAt.IsZero())
			if tt.validate != nil {
				tt.validate(t, report)
			}
		})
	}
}

func TestService_ExtractSelected_DataInicialInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestService(ctrl)
	svc.cfg.BCB.StartDate = "2016-01-01"

	_, err := svc.ExtractSelected(context.Background(), []domain.Series{domain.SeriesIPCA}, nil, nil)
	assert.ErrorContains(t, err, "BCB_START_DATE inválida")
}

func TestService_ExtractSelected_RespeitaPeriodoInformado(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, integrator, repo := newTestService(ctrl)

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	integrator.EXPECT().GetSeries(gomock.Any(), domain.SeriesIPCA, &start, &end).
		Return([]bcbclient.Observation{{Data: "01/01/2023", Valor: "0.53"}}, nil)
	repo.EXPECT().ReplaceAll(gomock.Any(), []domain.EconomicIndicator{{
		Date:        time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Value:       0.53,
		SeriesName:  domain.SeriesIPCA,
		SeriesID:    433,
		ExtractedAt: fixedNow,
	}}).Return(nil)

	report, err := svc.ExtractSelected(context.Background(), []domain.Series{domain.SeriesIPCA}, &start, &end)
	require.NoError(t, err)
	assert.True(t, report.Succeeded())
}
