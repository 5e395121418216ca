package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/pkg/utils"
)

// MaxCohortOffset é o último mês de retenção calculado
const MaxCohortOffset = 12

// CohortRetention agrupa os clientes pelo mês da primeira compra. A retenção no deslocamento k
// é o percentual de clientes da coorte cujo intervalo entre o mês da primeira e da última
// compra cobre pelo menos k meses. Clientes sem data de primeira compra são ignorados.
func CohortRetention(customers []domain.CustomerSegment, maxOffset int) []domain.CohortRow {
	if maxOffset < 0 {
		maxOffset = 0
	}

	spans := make(map[time.Time][]int)
	for _, c := range customers {
		if c.FirstPurchaseDate.IsZero() {
			continue
		}
		cohort := utils.MonthStart(c.FirstPurchaseDate)

		last := c.LastPurchaseDate
		if last.IsZero() || last.Before(c.FirstPurchaseDate) {
			last = c.FirstPurchaseDate
		}
		spans[cohort] = append(spans[cohort], utils.MonthsBetween(c.FirstPurchaseDate, last))
	}

	rows := make([]domain.CohortRow, 0, len(spans))
	for cohort, members := range spans {
		row := domain.CohortRow{
			Cohort:    cohort,
			Size:      len(members),
			Retention: make([]float64, maxOffset+1),
		}
		for k := 0; k <= maxOffset; k++ {
			covered := 0
			for _, span := range members {
				if span >= k {
					covered++
				}
			}
			row.Retention[k] = utils.RoundWithTwoDecimalPlace(utils.Percent(float64(covered), float64(row.Size)))
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Cohort.Before(rows[j].Cohort) })
	return rows
}
