package analytics

import (
	"sort"

	"github.com/vfg2006/sales-economics-api/internal/domain"
)

// ElasticityTopN é a quantidade de categorias exibidas no gráfico de sensibilidade
const ElasticityTopN = 15

// PeriodCounts guarda a quantidade de pedidos de uma categoria em cada período de câmbio
type PeriodCounts struct {
	Strong int64
	Weak   int64
}

// Elasticity é a variação percentual de pedidos do real forte para o real fraco.
// Sem pedidos no período forte o resultado é 0.
func Elasticity(strong, weak int64) float64 {
	if strong == 0 {
		return 0
	}
	return 100 * float64(weak-strong) / float64(strong)
}

// RankElasticity calcula a sensibilidade de cada categoria e retorna as topN maiores,
// em ordem decrescente e desempate pelo nome. topN <= 0 retorna todas.
func RankElasticity(counts map[string]PeriodCounts, topN int) []domain.ElasticityEntry {
	entries := make([]domain.ElasticityEntry, 0, len(counts))
	for category, c := range counts {
		entries = append(entries, domain.ElasticityEntry{
			Category:    category,
			StrongCount: c.Strong,
			WeakCount:   c.Weak,
			Elasticity:  Elasticity(c.Strong, c.Weak),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Elasticity != entries[j].Elasticity {
			return entries[i].Elasticity > entries[j].Elasticity
		}
		return entries[i].Category < entries[j].Category
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

// CategoryElasticity agrupa os pedidos por categoria de exibição e período.
// O segundo retorno é falso quando os dados filtrados não contêm os dois períodos.
func CategoryElasticity(rows []domain.CategoryPerformance, lang domain.Language, topN int) ([]domain.ElasticityEntry, bool) {
	counts := make(map[string]PeriodCounts)
	var hasStrong, hasWeak bool

	for _, row := range rows {
		category := domain.DisplayCategory(row.CategoryName, row.CategoryNamePT, lang)
		c := counts[category]
		switch row.ExchangeRatePeriod {
		case domain.PeriodStrongBRL:
			c.Strong += row.OrderCount
			hasStrong = true
		case domain.PeriodWeakBRL:
			c.Weak += row.OrderCount
			hasWeak = true
		default:
			continue
		}
		counts[category] = c
	}

	if !hasStrong || !hasWeak {
		return []domain.ElasticityEntry{}, false
	}

	return RankElasticity(counts, topN), true
}
