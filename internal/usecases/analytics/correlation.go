package analytics

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/pkg/utils"
)

// MinCorrelationMonths: a correlação só é calculada com mais meses do que isso
const MinCorrelationMonths = 6

// Pearson retorna o coeficiente de correlação entre x e y, ou nil quando indefinido
// (tamanhos diferentes, menos de dois pontos ou variância zero).
func Pearson(x, y []float64) *float64 {
	if len(x) != len(y) || len(x) < 2 {
		return nil
	}

	// Variância zero resulta em NaN
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil
	}
	r = utils.Round(r, 4)
	return &r
}

// CategoryCorrelations correlaciona a receita mensal em USD de cada categoria com a média
// mensal dos indicadores. Só entram os meses com valor para todos os indicadores, e só
// categorias com mais de MinCorrelationMonths meses.
func CategoryCorrelations(rows []domain.CategoryPerformance, indicators []domain.MonthlyIndicator, lang domain.Language) []domain.CorrelationEntry {
	bySeries := make(map[domain.Series]map[time.Time]float64, len(domain.CorrelationSeries))
	for _, s := range domain.CorrelationSeries {
		bySeries[s] = make(map[time.Time]float64)
	}
	for _, ind := range indicators {
		if values, ok := bySeries[ind.Series]; ok {
			values[utils.MonthStart(ind.Month)] = ind.Value
		}
	}

	revenue := make(map[string]map[time.Time]float64)
	for _, row := range rows {
		category := domain.DisplayCategory(row.CategoryName, row.CategoryNamePT, lang)
		if revenue[category] == nil {
			revenue[category] = make(map[time.Time]float64)
		}
		revenue[category][utils.MonthStart(row.OrderMonth)] += row.TotalRevenueUSD
	}

	entries := make([]domain.CorrelationEntry, 0, len(revenue))
	for category, monthly := range revenue {
		months := joinedMonths(monthly, bySeries)
		if len(months) <= MinCorrelationMonths {
			continue
		}

		sales := make([]float64, len(months))
		for i, m := range months {
			sales[i] = monthly[m]
		}

		entry := domain.CorrelationEntry{
			Category:     category,
			Months:       len(months),
			Correlations: make(map[domain.Series]*float64, len(domain.CorrelationSeries)),
		}
		for _, s := range domain.CorrelationSeries {
			values := make([]float64, len(months))
			for i, m := range months {
				values[i] = bySeries[s][m]
			}
			entry.Correlations[s] = Pearson(sales, values)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Category < entries[j].Category
	})
	return entries
}

func joinedMonths(monthly map[time.Time]float64, bySeries map[domain.Series]map[time.Time]float64) []time.Time {
	months := make([]time.Time, 0, len(monthly))
	for m := range monthly {
		complete := true
		for _, values := range bySeries {
			if _, ok := values[m]; !ok {
				complete = false
				break
			}
		}
		if complete {
			months = append(months, m)
		}
	}

	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}
