// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"time"
)

// Series identifica uma série temporal do SGS do Banco Central
type Series string

const (
	SeriesExchangeRateUSD    Series = "exchange_rate_usd"   // Dólar diário (PTAX venda)
	SeriesIPCA               Series = "ipca"                // Inflação IPCA
	SeriesSELIC              Series = "selic"               // Taxa SELIC
	SeriesIGPM               Series = "igpm"                // Inflação IGP-M
	SeriesExchangeCommercial Series = "exchange_commercial" // Dólar comercial
)

// IndicatorsTable é a tabela de destino dos indicadores no dataset raw
const IndicatorsTable = "bcb_economic_indicators"

// BCBDateLayout é o formato de data usado pela API do Banco Central (DD/MM/YYYY)
const BCBDateLayout = "02/01/2006"

var seriesIDs = map[Series]int{
	SeriesExchangeRateUSD:    1,
	SeriesIPCA:               433,
	SeriesSELIC:              4189,
	SeriesIGPM:               189,
	SeriesExchangeCommercial: 12,
}

// Ordem fixa de extração
var seriesOrder = []Series{
	SeriesExchangeRateUSD,
	SeriesIPCA,
	SeriesSELIC,
	SeriesIGPM,
	SeriesExchangeCommercial,
}

// AllSeries retorna todas as séries conhecidas, sempre na mesma ordem
func AllSeries() []Series {
	out := make([]Series, len(seriesOrder))
	copy(out, seriesOrder)
	return out
}

// ParseSeries valida o nome de uma série
func ParseSeries(name string) (Series, error) {
	s := Series(name)
	if _, ok := seriesIDs[s]; !ok {
		return "", fmt.Errorf("%w: %s (disponíveis: %v)", ErrUnknownSeries, name, seriesOrder)
	}
	return s, nil
}

// ID retorna o código da série no SGS
func (s Series) ID() int {
	return seriesIDs[s]
}

func (s Series) String() string {
	return string(s)
}

// CorrelationSeries são os indicadores comparados com a receita mensal no dashboard
var CorrelationSeries = []Series{SeriesExchangeRateUSD, SeriesIPCA, SeriesSELIC}

// EconomicIndicator é uma observação normalizada de uma série do Banco Central
type EconomicIndicator struct {
	Date        time.Time `json:"data"`
	Value       float64   `json:"valor"`
	SeriesName  Series    `json:"series_name"`
	SeriesID    int       `json:"series_id"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// MonthlyIndicator é a média mensal de uma série
type MonthlyIndicator struct {
	Month  time.Time `json:"month"`
	Series Series    `json:"series_name"`
	Value  float64   `json:"value"`
}
