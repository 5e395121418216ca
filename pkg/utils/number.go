package utils

import "math"

func Round(f float64, places int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	factor := math.Pow(10, float64(places))
	return math.Round(f*factor) / factor
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}

// Percent retorna 100 * part / total, ou 0 quando total é zero
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * part / total
}
