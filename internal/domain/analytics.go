package domain

import "time"

// MonthlyPoint é um ponto da série mensal de vendas
type MonthlyPoint struct {
	Month           time.Time `json:"month"`
	Orders          int64     `json:"orders"`
	RevenueBRL      float64   `json:"revenue_brl"`
	RevenueUSD      float64   `json:"revenue_usd"`
	AvgExchangeRate float64   `json:"avg_exchange_rate"`
}

// OverviewView resume as vendas filtradas
type OverviewView struct {
	TotalOrders      int64          `json:"total_orders"`
	TotalRevenueBRL  float64        `json:"total_revenue_brl"`
	TotalRevenueUSD  float64        `json:"total_revenue_usd"`
	AvgOrderValueBRL float64        `json:"avg_order_value_brl"`
	AvgExchangeRate  float64        `json:"avg_exchange_rate"`
	Categories       int            `json:"categories"`
	States           int            `json:"states"`
	Monthly          []MonthlyPoint `json:"monthly"`
}

// CategorySummary agrega as vendas de uma categoria
type CategorySummary struct {
	Category         string  `json:"category"`
	Orders           int64   `json:"orders"`
	RevenueBRL       float64 `json:"revenue_brl"`
	RevenueUSD       float64 `json:"revenue_usd"`
	AvgOrderValueBRL float64 `json:"avg_order_value_brl"`
	AvgExchangeRate  float64 `json:"avg_exchange_rate"`
}

// PeriodRevenue é a receita de uma categoria em um período de câmbio
type PeriodRevenue struct {
	Category   string  `json:"category"`
	Period     string  `json:"period"`
	Orders     int64   `json:"orders"`
	RevenueUSD float64 `json:"revenue_usd"`
}

// CategoryView é a aba de categorias
type CategoryView struct {
	Top           []CategorySummary `json:"top"`
	ByPeriod      []PeriodRevenue   `json:"by_period"`
	TrendCategory string            `json:"trend_category,omitempty"`
	Trend         []MonthlyPoint    `json:"trend"`
}

// StateSummary agrega as vendas de um estado. Share é a participação nos pedidos.
type StateSummary struct {
	State      string  `json:"state"`
	Orders     int64   `json:"orders"`
	RevenueBRL float64 `json:"revenue_brl"`
	RevenueUSD float64 `json:"revenue_usd"`
	Share      float64 `json:"share"`
}

// HeatmapCell é o volume de pedidos de uma combinação estado x categoria
type HeatmapCell struct {
	State    string `json:"state"`
	Category string `json:"category"`
	Orders   int64  `json:"orders"`
}

// CitySummary agrega as vendas de uma cidade
type CitySummary struct {
	City       string  `json:"city"`
	State      string  `json:"state"`
	Orders     int64   `json:"orders"`
	RevenueBRL float64 `json:"revenue_brl"`
	RevenueUSD float64 `json:"revenue_usd"`
}

// GeographyView é a aba geográfica
type GeographyView struct {
	States     []StateSummary `json:"states"`
	OrderShare []StateSummary `json:"order_share"`
	Heatmap    []HeatmapCell  `json:"heatmap"`
	TopCities  []CitySummary  `json:"top_cities"`
}

// PeriodSummary agrega as vendas de um período de câmbio
type PeriodSummary struct {
	Period          string  `json:"period"`
	Orders          int64   `json:"orders"`
	RevenueBRL      float64 `json:"revenue_brl"`
	RevenueUSD      float64 `json:"revenue_usd"`
	AvgExchangeRate float64 `json:"avg_exchange_rate"`
}

// ElasticityEntry é a sensibilidade de uma categoria ao câmbio
type ElasticityEntry struct {
	Category    string  `json:"category"`
	StrongCount int64   `json:"strong_brl_orders"`
	WeakCount   int64   `json:"weak_brl_orders"`
	Elasticity  float64 `json:"elasticity"`
}

// EconomicView é a aba de impacto econômico
type EconomicView struct {
	Periods             []PeriodSummary    `json:"periods"`
	ElasticityAvailable bool               `json:"elasticity_available"`
	Elasticity          []ElasticityEntry  `json:"elasticity"`
	Indicators          []MonthlyIndicator `json:"indicators"`
}

// CorrelationEntry é a correlação de Pearson de uma categoria com cada indicador.
// Valores nulos indicam correlação indefinida (variância zero).
type CorrelationEntry struct {
	Category     string              `json:"category"`
	Months       int                 `json:"months"`
	Correlations map[Series]*float64 `json:"correlations"`
}

// CorrelationView é a aba de correlações
type CorrelationView struct {
	MinMonths int                `json:"min_months"`
	Entries   []CorrelationEntry `json:"entries"`
}

// CohortRow é a retenção de uma coorte de primeira compra
type CohortRow struct {
	Cohort    time.Time `json:"cohort"`
	Size      int       `json:"size"`
	Retention []float64 `json:"retention"`
}

// CohortView é a aba de coortes
type CohortView struct {
	MaxOffset int         `json:"max_offset"`
	Cohorts   []CohortRow `json:"cohorts"`
}

// SegmentSummary agrega os clientes de um segmento RFM
type SegmentSummary struct {
	Segment   string  `json:"segment"`
	Customers int     `json:"customers"`
	AvgLTV    float64 `json:"avg_ltv"`
	AvgSpent  float64 `json:"avg_spent"`
}

// CustomerView é a aba de clientes
type CustomerView struct {
	TotalCustomers int              `json:"total_customers"`
	Segments       []SegmentSummary `json:"segments"`
	ValueTiers     map[string]int   `json:"value_tiers"`
	Statuses       map[string]int   `json:"statuses"`
}

// ProductView é a aba de produtos
type ProductView struct {
	TotalProducts   int                  `json:"total_products"`
	AvgFreightRatio float64              `json:"avg_freight_ratio"`
	Top             []ProductPerformance `json:"top"`
}

// RawView expõe as primeiras linhas filtradas
type RawView struct {
	Total int                   `json:"total"`
	Rows  []CategoryPerformance `json:"rows"`
}
