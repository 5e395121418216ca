package utils

import (
	"fmt"
	"time"
)

var monthLayouts = []string{"2006-01", "2006-01-02"}

// ParseMonth aceita YYYY-MM ou YYYY-MM-DD e retorna o primeiro dia do mês. Vazio retorna nil.
func ParseMonth(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for _, layout := range monthLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			month := MonthStart(parsed)
			return &month, nil
		}
	}

	return nil, fmt.Errorf("mês inválido %q, esperado YYYY-MM", value)
}

func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween conta os meses inteiros entre os meses de from e to
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
