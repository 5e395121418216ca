package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-economics-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCohortRetention(t *testing.T) {
	customers := []domain.CustomerSegment{
		{CustomerID: "a", FirstPurchaseDate: date(2017, 1, 5), LastPurchaseDate: date(2017, 1, 20)},
		{CustomerID: "b", FirstPurchaseDate: date(2017, 1, 31), LastPurchaseDate: date(2017, 3, 1)},
		{CustomerID: "c", FirstPurchaseDate: date(2017, 1, 10), LastPurchaseDate: date(2018, 6, 10)},
		{CustomerID: "d", FirstPurchaseDate: date(2017, 1, 15), LastPurchaseDate: date(2017, 2, 1)},
		{CustomerID: "e", FirstPurchaseDate: date(2017, 2, 1)},
		{CustomerID: "f"},
	}

	rows := CohortRetention(customers, MaxCohortOffset)
	require.Len(t, rows, 2)

	jan := rows[0]
	assert.Equal(t, date(2017, 1, 1), jan.Cohort)
	assert.Equal(t, 4, jan.Size)
	require.Len(t, jan.Retention, MaxCohortOffset+1)
	assert.Equal(t, 100.0, jan.Retention[0])
	assert.Equal(t, 75.0, jan.Retention[1])
	assert.Equal(t, 50.0, jan.Retention[2])
	assert.Equal(t, 25.0, jan.Retention[3])
	assert.Equal(t, 25.0, jan.Retention[12])

	feb := rows[1]
	assert.Equal(t, date(2017, 2, 1), feb.Cohort)
	assert.Equal(t, 1, feb.Size)
	assert.Equal(t, 100.0, feb.Retention[0])
	assert.Equal(t, 0.0, feb.Retention[1])
}

func TestCohortRetention_DeslocamentoZeroSempreCem(t *testing.T) {
	customers := make([]domain.CustomerSegment, 0)
	for i := 0; i < 37; i++ {
		first := date(2016, time.Month(i%12+1), i%27+1)
		customers = append(customers, domain.CustomerSegment{
			FirstPurchaseDate: first,
			LastPurchaseDate:  first.AddDate(0, i%5, 0),
		})
	}

	for _, row := range CohortRetention(customers, MaxCohortOffset) {
		assert.Equal(t, 100.0, row.Retention[0], row.Cohort.String())
		for k := 1; k < len(row.Retention); k++ {
			assert.LessOrEqual(t, row.Retention[k], row.Retention[k-1])
		}
	}
}
