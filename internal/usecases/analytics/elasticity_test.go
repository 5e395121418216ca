package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-economics-api/internal/domain"
)

func TestElasticity(t *testing.T) {
	tests := []struct {
		name     string
		strong   int64
		weak     int64
		expected float64
	}{
		{name: "Aumento de pedidos no real fraco", strong: 100, weak: 150, expected: 50},
		{name: "Queda de pedidos no real fraco", strong: 200, weak: 50, expected: -75},
		{name: "Sem pedidos no real forte retorna zero", strong: 0, weak: 40, expected: 0},
		{name: "Sem pedidos em nenhum período", strong: 0, weak: 0, expected: 0},
		{name: "Sem variação", strong: 10, weak: 10, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Elasticity(tt.strong, tt.weak))
		})
	}
}

func TestRankElasticity(t *testing.T) {
	t.Run("Electronics com 100 pedidos no real forte e 150 no fraco", func(t *testing.T) {
		result := RankElasticity(map[string]PeriodCounts{"Electronics": {Strong: 100, Weak: 150}}, ElasticityTopN)
		require.Len(t, result, 1)
		assert.Equal(t, domain.ElasticityEntry{Category: "Electronics", StrongCount: 100, WeakCount: 150, Elasticity: 50.0}, result[0])
	})

	t.Run("Deve ordenar de forma decrescente com desempate pelo nome", func(t *testing.T) {
		result := RankElasticity(map[string]PeriodCounts{
			"toys":      {Strong: 10, Weak: 5},
			"books":     {Strong: 10, Weak: 20},
			"audio":     {Strong: 10, Weak: 20},
			"new_stuff": {Strong: 0, Weak: 30},
		}, 0)

		names := make([]string, len(result))
		for i, r := range result {
			names[i] = r.Category
		}
		assert.Equal(t, []string{"audio", "books", "new_stuff", "toys"}, names)
	})

	t.Run("Deve limitar ao top N", func(t *testing.T) {
		counts := make(map[string]PeriodCounts)
		for i := 0; i < 20; i++ {
			counts[string(rune('a'+i))] = PeriodCounts{Strong: 10, Weak: int64(i)}
		}
		result := RankElasticity(counts, ElasticityTopN)
		require.Len(t, result, ElasticityTopN)
		assert.Equal(t, "t", result[0].Category)
	})
}

func TestCategoryElasticity(t *testing.T) {
	month := time.Date(2017, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.CategoryPerformance{
		{CategoryName: "electronics", CategoryNamePT: "eletronicos", OrderMonth: month, OrderCount: 60, ExchangeRatePeriod: domain.PeriodStrongBRL},
		{CategoryName: "electronics", CategoryNamePT: "eletronicos", OrderMonth: month, OrderCount: 40, ExchangeRatePeriod: domain.PeriodStrongBRL},
		{CategoryName: "electronics", CategoryNamePT: "eletronicos", OrderMonth: month, OrderCount: 150, ExchangeRatePeriod: domain.PeriodWeakBRL},
		{CategoryName: "toys", CategoryNamePT: "brinquedos", OrderMonth: month, OrderCount: 12, ExchangeRatePeriod: domain.PeriodWeakBRL},
	}

	t.Run("Deve agrupar pelo nome de exibição", func(t *testing.T) {
		result, available := CategoryElasticity(rows, domain.LanguagePortuguese, ElasticityTopN)
		require.True(t, available)
		require.Len(t, result, 2)
		assert.Equal(t, "eletronicos", result[0].Category)
		assert.Equal(t, 50.0, result[0].Elasticity)
		assert.Equal(t, "brinquedos", result[1].Category)
		assert.Equal(t, 0.0, result[1].Elasticity)
	})

	t.Run("Indisponível quando falta um dos períodos", func(t *testing.T) {
		result, available := CategoryElasticity(rows[2:], domain.LanguageEnglish, ElasticityTopN)
		assert.False(t, available)
		assert.Empty(t, result)
	})
}
