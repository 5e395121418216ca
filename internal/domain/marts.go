package domain

import (
	"fmt"
	"time"
)

// Tabelas mart materializadas pelo dbt
const (
	MartCategoryPerformance = "fct_category_performance_economics"
	MartGeographicSales     = "fct_geographic_sales_economics"
	MartCustomerSegments    = "fct_customer_segments"
	MartProductPerformance  = "fct_product_performance"
)

// Marts lista as tabelas lidas pelo dashboard
func Marts() []string {
	return []string{
		MartCategoryPerformance,
		MartGeographicSales,
		MartCustomerSegments,
		MartProductPerformance,
	}
}

// Períodos de câmbio usados na classificação das vendas
const (
	PeriodStrongBRL = "Strong BRL"
	PeriodWeakBRL   = "Weak BRL"
)

// ExchangePeriods retorna os períodos de câmbio conhecidos
func ExchangePeriods() []string {
	return []string{PeriodStrongBRL, PeriodWeakBRL}
}

// CategoryPerformance é uma linha de fct_category_performance_economics
type CategoryPerformance struct {
	CategoryName       string    `json:"category_name"`
	CategoryNamePT     string    `json:"category_name_pt"`
	OrderMonth         time.Time `json:"order_month"`
	CustomerState      string    `json:"customer_state"`
	OrderCount         int64     `json:"order_count"`
	TotalRevenueBRL    float64   `json:"total_revenue_brl"`
	TotalRevenueUSD    float64   `json:"total_revenue_usd"`
	AvgOrderValueBRL   float64   `json:"avg_order_value_brl"`
	AvgExchangeRate    float64   `json:"avg_exchange_rate"`
	ExchangeRatePeriod string    `json:"exchange_rate_period"`
}

// GeographicSales é uma linha de fct_geographic_sales_economics
type GeographicSales struct {
	CustomerState    string    `json:"customer_state"`
	CustomerCity     string    `json:"customer_city"`
	OrderMonth       time.Time `json:"order_month"`
	CategoryName     string    `json:"category_name"`
	CategoryNamePT   string    `json:"category_name_pt"`
	OrderCount       int64     `json:"order_count"`
	TotalRevenueBRL  float64   `json:"total_revenue_brl"`
	TotalRevenueUSD  float64   `json:"total_revenue_usd"`
	AvgExchangeRate  float64   `json:"avg_exchange_rate"`
	CurrencyStrength string    `json:"currency_strength"`
}

// CustomerSegment é uma linha de fct_customer_segments
type CustomerSegment struct {
	CustomerID        string    `json:"customer_id"`
	CustomerState     string    `json:"customer_state"`
	OrderCount        int64     `json:"order_count"`
	TotalSpent        float64   `json:"total_spent"`
	AvgOrderValue     float64   `json:"avg_order_value"`
	FirstPurchaseDate time.Time `json:"first_purchase_date"`
	LastPurchaseDate  time.Time `json:"last_purchase_date"`
	RecencyScore      int       `json:"recency_score"`
	FrequencyScore    int       `json:"frequency_score"`
	MonetaryScore     int       `json:"monetary_score"`
	RFMSegment        string    `json:"rfm_segment"`
	CustomerStatus    string    `json:"customer_status"`
	ValueTier         string    `json:"value_tier"`
	EstimatedLTV      float64   `json:"estimated_ltv"`
}

// ProductPerformance é uma linha de fct_product_performance
type ProductPerformance struct {
	ProductID      string  `json:"product_id"`
	CategoryName   string  `json:"category_name"`
	CategoryNamePT string  `json:"category_name_pt"`
	OrderCount     int64   `json:"order_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgPrice       float64 `json:"avg_price"`
	TotalFreight   float64 `json:"total_freight"`
	AvgFreight     float64 `json:"avg_freight"`
	FreightRatio   float64 `json:"freight_ratio"`
	RevenueRank    int64   `json:"revenue_rank"`
}

// MartSnapshot agrupa o conteúdo das tabelas mart carregado para o dashboard
type MartSnapshot struct {
	Categories []CategoryPerformance `json:"-"`
	Geography  []GeographicSales     `json:"-"`
	Customers  []CustomerSegment     `json:"-"`
	Products   []ProductPerformance  `json:"-"`
	Indicators []MonthlyIndicator    `json:"-"`
	// Missing lista as marts que ainda não foram materializadas
	Missing  []string  `json:"missing,omitempty"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Require retorna ErrMartUnavailable se alguma das marts informadas não foi carregada
func (s *MartSnapshot) Require(marts ...string) error {
	for _, mart := range marts {
		for _, missing := range s.Missing {
			if mart == missing {
				return fmt.Errorf("%w: %s", ErrMartUnavailable, mart)
			}
		}
	}
	return nil
}
