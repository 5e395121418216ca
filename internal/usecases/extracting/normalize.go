package extracting

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-economics-api/infrastructure/integrator/bcb/bcbclient"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

// NormalizeObservations converte as observações do SGS em indicadores. Linhas com data
// ou valor inválidos são descartadas, então o resultado nunca é maior que a entrada.
func NormalizeObservations(series domain.Series, observations []bcbclient.Observation, extractedAt time.Time) []domain.EconomicIndicator {
	result := make([]domain.EconomicIndicator, 0, len(observations))

	for _, obs := range observations {
		date, err := time.ParseInLocation(domain.BCBDateLayout, strings.TrimSpace(obs.Data), time.UTC)
		if err != nil {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(obs.Valor), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}

		result = append(result, domain.EconomicIndicator{
			Date:        date,
			Value:       value,
			SeriesName:  series,
			SeriesID:    series.ID(),
			ExtractedAt: extractedAt,
		})
	}

	return result
}
