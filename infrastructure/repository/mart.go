package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-economics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

//go:generate mockgen -source=mart.go -destination=mocks/mart.go -package=mocks

// MartRepository lê as tabelas materializadas pelo dbt no dataset de marts
type MartRepository interface {
	ListCategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error)
	ListGeographicSales(ctx context.Context) ([]domain.GeographicSales, error)
	ListCustomerSegments(ctx context.Context) ([]domain.CustomerSegment, error)
	ListProductPerformance(ctx context.Context) ([]domain.ProductPerformance, error)
}

type martRepository struct {
	conn    *postgres.Connection
	dataset string
}

func NewMartRepository(conn *postgres.Connection, dataset string) MartRepository {
	return &martRepository{
		conn:    conn,
		dataset: dataset,
	}
}

func (r *martRepository) ListCategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error) {
	builder := squirrel.
		Select(
			"COALESCE(category_name, '')",
			"COALESCE(category_name_pt, '')",
			"order_month",
			"COALESCE(customer_state, '')",
			"COALESCE(order_count, 0)",
			"COALESCE(total_revenue_brl, 0)",
			"COALESCE(total_revenue_usd, 0)",
			"COALESCE(avg_order_value_brl, 0)",
			"COALESCE(avg_exchange_rate, 0)",
			"COALESCE(exchange_rate_period, '')",
		).
		From(postgres.QualifiedName(r.dataset, domain.MartCategoryPerformance)).
		OrderBy("order_month", "category_name", "customer_state")

	result := make([]domain.CategoryPerformance, 0)
	err := r.query(ctx, domain.MartCategoryPerformance, builder, func(rows *sql.Rows) error {
		var item domain.CategoryPerformance
		if err := rows.Scan(
			&item.CategoryName,
			&item.CategoryNamePT,
			&item.OrderMonth,
			&item.CustomerState,
			&item.OrderCount,
			&item.TotalRevenueBRL,
			&item.TotalRevenueUSD,
			&item.AvgOrderValueBRL,
			&item.AvgExchangeRate,
			&item.ExchangeRatePeriod,
		); err != nil {
			return err
		}
		result = append(result, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *martRepository) ListGeographicSales(ctx context.Context) ([]domain.GeographicSales, error) {
	builder := squirrel.
		Select(
			"COALESCE(customer_state, '')",
			"COALESCE(customer_city, '')",
			"order_month",
			"COALESCE(category_name, '')",
			"COALESCE(category_name_pt, '')",
			"COALESCE(order_count, 0)",
			"COALESCE(total_revenue_brl, 0)",
			"COALESCE(total_revenue_usd, 0)",
			"COALESCE(avg_exchange_rate, 0)",
			"COALESCE(currency_strength, '')",
		).
		From(postgres.QualifiedName(r.dataset, domain.MartGeographicSales)).
		OrderBy("order_month", "customer_state", "customer_city")

	result := make([]domain.GeographicSales, 0)
	err := r.query(ctx, domain.MartGeographicSales, builder, func(rows *sql.Rows) error {
		var item domain.GeographicSales
		if err := rows.Scan(
			&item.CustomerState,
			&item.CustomerCity,
			&item.OrderMonth,
			&item.CategoryName,
			&item.CategoryNamePT,
			&item.OrderCount,
			&item.TotalRevenueBRL,
			&item.TotalRevenueUSD,
			&item.AvgExchangeRate,
			&item.CurrencyStrength,
		); err != nil {
			return err
		}
		result = append(result, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *martRepository) ListCustomerSegments(ctx context.Context) ([]domain.CustomerSegment, error) {
	builder := squirrel.
		Select(
			"customer_id",
			"COALESCE(customer_state, '')",
			"COALESCE(order_count, 0)",
			"COALESCE(total_spent, 0)",
			"COALESCE(avg_order_value, 0)",
			"first_purchase_date",
			"last_purchase_date",
			"COALESCE(recency_score, 0)",
			"COALESCE(frequency_score, 0)",
			"COALESCE(monetary_score, 0)",
			"COALESCE(rfm_segment, '')",
			"COALESCE(customer_status, '')",
			"COALESCE(value_tier, '')",
			"COALESCE(estimated_ltv, 0)",
		).
		From(postgres.QualifiedName(r.dataset, domain.MartCustomerSegments)).
		Where("first_purchase_date IS NOT NULL").
		Where("last_purchase_date IS NOT NULL")

	result := make([]domain.CustomerSegment, 0)
	err := r.query(ctx, domain.MartCustomerSegments, builder, func(rows *sql.Rows) error {
		var item domain.CustomerSegment
		if err := rows.Scan(
			&item.CustomerID,
			&item.CustomerState,
			&item.OrderCount,
			&item.TotalSpent,
			&item.AvgOrderValue,
			&item.FirstPurchaseDate,
			&item.LastPurchaseDate,
			&item.RecencyScore,
			&item.FrequencyScore,
			&item.MonetaryScore,
			&item.RFMSegment,
			&item.CustomerStatus,
			&item.ValueTier,
			&item.EstimatedLTV,
		); err != nil {
			return err
		}
		result = append(result, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *martRepository) ListProductPerformance(ctx context.Context) ([]domain.ProductPerformance, error) {
	builder := squirrel.
		Select(
			"product_id",
			"COALESCE(category_name, '')",
			"COALESCE(category_name_pt, '')",
			"COALESCE(order_count, 0)",
			"COALESCE(total_revenue, 0)",
			"COALESCE(avg_price, 0)",
			"COALESCE(total_freight, 0)",
			"COALESCE(avg_freight, 0)",
			"COALESCE(freight_ratio, 0)",
			"COALESCE(revenue_rank, 0)",
		).
		From(postgres.QualifiedName(r.dataset, domain.MartProductPerformance)).
		OrderBy("revenue_rank")

	result := make([]domain.ProductPerformance, 0)
	err := r.query(ctx, domain.MartProductPerformance, builder, func(rows *sql.Rows) error {
		var item domain.ProductPerformance
		if err := rows.Scan(
			&item.ProductID,
			&item.CategoryName,
			&item.CategoryNamePT,
			&item.OrderCount,
			&item.TotalRevenue,
			&item.AvgPrice,
			&item.TotalFreight,
			&item.AvgFreight,
			&item.FreightRatio,
			&item.RevenueRank,
		); err != nil {
			return err
		}
		result = append(result, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// query executa a consulta e traduz tabela inexistente em ErrMartUnavailable
func (r *martRepository) query(ctx context.Context, table string, builder squirrel.SelectBuilder, scan func(*sql.Rows) error) error {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if postgres.IsUndefinedTable(err) {
			return fmt.Errorf("%w: %s.%s", domain.ErrMartUnavailable, r.dataset, table)
		}
		return fmt.Errorf("erro ao consultar %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("erro ao escanear %s: %w", table, err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return nil
}
