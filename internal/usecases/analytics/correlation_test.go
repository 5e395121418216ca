package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-economics-api/internal/domain"
)

func TestPearson(t *testing.T) {
	tests := []struct {
		name     string
		x        []float64
		y        []float64
		expected *float64
	}{
		{name: "Correlação perfeita positiva", x: []float64{1, 2, 3, 4}, y: []float64{2, 4, 6, 8}, expected: float64Ptr(1)},
		{name: "Correlação perfeita negativa", x: []float64{1, 2, 3, 4}, y: []float64{8, 6, 4, 2}, expected: float64Ptr(-1)},
		{name: "Correlação parcial arredondada", x: []float64{1, 2, 3, 4, 5}, y: []float64{2, 1, 4, 3, 5}, expected: float64Ptr(0.8)},
		{name: "Variância zero é indefinida", x: []float64{1, 2, 3}, y: []float64{5, 5, 5}},
		{name: "Tamanhos diferentes é indefinida", x: []float64{1, 2}, y: []float64{1}},
		{name: "Um único ponto é indefinida", x: []float64{1}, y: []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Pearson(tt.x, tt.y))
		})
	}
}

func TestCategoryCorrelations(t *testing.T) {
	months := make([]time.Time, 8)
	for i := range months {
		months[i] = time.Date(2017, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
	}

	indicators := make([]domain.MonthlyIndicator, 0)
	for i, m := range months {
		indicators = append(indicators,
			domain.MonthlyIndicator{Month: m, Series: domain.SeriesExchangeRateUSD, Value: 3 + float64(i)*0.1},
			domain.MonthlyIndicator{Month: m, Series: domain.SeriesIPCA, Value: 0.5},
			domain.MonthlyIndicator{Month: m, Series: domain.SeriesSELIC, Value: 14 - float64(i)},
		)
	}

	rows := make([]domain.CategoryPerformance, 0)
	for i, m := range months {
		rows = append(rows, domain.CategoryPerformance{CategoryName: "electronics", OrderMonth: m.AddDate(0, 0, 14), TotalRevenueUSD: 100 + float64(i)*10})
		if i < 6 {
			// Apenas seis meses: não atinge o mínimo
			rows = append(rows, domain.CategoryPerformance{CategoryName: "toys", OrderMonth: m, TotalRevenueUSD: 50})
		}
	}

	result := CategoryCorrelations(rows, indicators, domain.LanguageEnglish)
	require.Len(t, result, 1)

	entry := result[0]
	assert.Equal(t, "electronics", entry.Category)
	assert.Equal(t, 8, entry.Months)
	assert.Equal(t, float64Ptr(1), entry.Correlations[domain.SeriesExchangeRateUSD])
	assert.Equal(t, float64Ptr(-1), entry.Correlations[domain.SeriesSELIC])
	assert.Nil(t, entry.Correlations[domain.SeriesIPCA])
	assert.Contains(t, entry.Correlations, domain.SeriesIPCA)
}

func TestCategoryCorrelations_MesesSemIndicador(t *testing.T) {
	rows := make([]domain.CategoryPerformance, 0)
	indicators := make([]domain.MonthlyIndicator, 0)
	for i := 0; i < 10; i++ {
		m := time.Date(2018, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		rows = append(rows, domain.CategoryPerformance{CategoryName: "books", OrderMonth: m, TotalRevenueUSD: float64(i)})
		// A SELIC só tem os três primeiros meses
		indicators = append(indicators,
			domain.MonthlyIndicator{Month: m, Series: domain.SeriesExchangeRateUSD, Value: float64(i)},
			domain.MonthlyIndicator{Month: m, Series: domain.SeriesIPCA, Value: float64(i)},
		)
		if i < 3 {
			indicators = append(indicators, domain.MonthlyIndicator{Month: m, Series: domain.SeriesSELIC, Value: float64(i)})
		}
	}

	assert.Empty(t, CategoryCorrelations(rows, indicators, domain.LanguageEnglish))
}

func float64Ptr(v float64) *float64 {
	return &v
}
