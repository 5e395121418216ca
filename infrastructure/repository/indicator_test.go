package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

func TestIndicatorRepository_ReplaceAll(t *testing.T) {
	extractedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	indicators := []domain.EconomicIndicator{
		{Date: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), Value: 3.25, SeriesName: domain.SeriesExchangeRateUSD, SeriesID: 1, ExtractedAt: extractedAt},
		{Date: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), Value: 1.27, SeriesName: domain.SeriesIPCA, SeriesID: 433, ExtractedAt: extractedAt},
	}

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		hasError bool
	}{
		{
			name: "Deve limpar a tabela e inserir todos os indicadores na mesma transação",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM bcb_economic_indicators").WillReturnResult(sqlmock.NewResult(0, 10))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bcb_economic_indicators (date,value,series_name,series_id,extracted_at) VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10)")).
					WithArgs(
						indicators[0].Date, 3.25, "exchange_rate_usd", 1, extractedAt,
						indicators[1].Date, 1.27, "ipca", 433, extractedAt,
					).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
		},
		{
			name: "Falha na inserção deve desfazer a limpeza",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM bcb_economic_indicators").WillReturnResult(sqlmock.NewResult(0, 10))
				mock.ExpectExec("INSERT INTO bcb_economic_indicators").WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			err := NewIndicatorRepository(conn).ReplaceAll(context.Background(), indicators)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIndicatorRepository_ReplaceAll_EmLotes(t *testing.T) {
	conn, mock := newMockConnection(t)

	indicators := make([]domain.EconomicIndicator, insertBatchSize+1)
	for i := range indicators {
		indicators[i] = domain.EconomicIndicator{SeriesName: domain.SeriesSELIC, SeriesID: 4189}
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bcb_economic_indicators").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO bcb_economic_indicators").WillReturnResult(sqlmock.NewResult(0, insertBatchSize))
	mock.ExpectExec("INSERT INTO bcb_economic_indicators").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewIndicatorRepository(conn).ReplaceAll(context.Background(), indicators))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIndicatorRepository_LastExtractedAt(t *testing.T) {
	last := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		expected *time.Time
		hasError bool
	}{
		{
			name: "Deve retornar a última extração",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT MAX(extracted_at) FROM bcb_economic_indicators")).
					WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(last))
			},
			expected: &last,
		},
		{
			name: "Tabela vazia retorna nil",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT MAX").WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))
			},
		},
		{
			name: "Tabela inexistente retorna nil",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT MAX").WillReturnError(&pq.Error{Code: "42P01"})
			},
		},
		{
			name: "Outros erros são propagados",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT MAX").WillReturnError(errors.New("connection reset"))
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			result, err := NewIndicatorRepository(conn).LastExtractedAt(context.Background())
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIndicatorRepository_MonthlyAverages(t *testing.T) {
	conn, mock := newMockConnection(t)
	jan := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT date_trunc('month', date)::date AS month, series_name, AVG(value) FROM bcb_economic_indicators WHERE series_name IN ($1,$2)")).
		WithArgs("exchange_rate_usd", "selic").
		WillReturnRows(sqlmock.NewRows([]string{"month", "series_name", "avg"}).
			AddRow(jan, "exchange_rate_usd", 3.19).
			AddRow(jan, "selic", 13.65))

	result, err := NewIndicatorRepository(conn).MonthlyAverages(context.Background(), []domain.Series{domain.SeriesExchangeRateUSD, domain.SeriesSELIC})
	require.NoError(t, err)
	assert.Equal(t, []domain.MonthlyIndicator{
		{Month: jan, Series: domain.SeriesExchangeRateUSD, Value: 3.19},
		{Month: jan, Series: domain.SeriesSELIC, Value: 13.65},
	}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIndicatorRepository_MonthlyAverages_TabelaInexistente(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectQuery("FROM bcb_economic_indicators").
		WillReturnError(&pq.Error{Code: "42P01", Message: "relation \"bcb_economic_indicators\" does not exist"})

	result, err := NewIndicatorRepository(conn).MonthlyAverages(context.Background(), domain.CorrelationSeries)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
