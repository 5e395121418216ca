package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/pkg/utils"
)

const (
	TopCategories = 10
	TopStateShare = 10
	TopCities     = 15
	TopProducts   = 20
	RawRowsLimit  = 100
)

// BuildOverview resume as vendas filtradas e a série mensal de receita
func BuildOverview(rows []domain.CategoryPerformance, f domain.DashboardFilters) domain.OverviewView {
	view := domain.OverviewView{
		Categories: len(f.Categories),
		States:     len(f.States),
		Monthly:    monthlySeries(rows),
	}

	var rateSum float64
	for _, row := range rows {
		view.TotalOrders += row.OrderCount
		view.TotalRevenueBRL += row.TotalRevenueBRL
		view.TotalRevenueUSD += row.TotalRevenueUSD
		rateSum += row.AvgExchangeRate
	}

	if view.TotalOrders > 0 {
		view.AvgOrderValueBRL = utils.RoundWithTwoDecimalPlace(view.TotalRevenueBRL / float64(view.TotalOrders))
	}
	if len(rows) > 0 {
		view.AvgExchangeRate = utils.Round(rateSum/float64(len(rows)), 4)
	}
	view.TotalRevenueBRL = utils.RoundWithTwoDecimalPlace(view.TotalRevenueBRL)
	view.TotalRevenueUSD = utils.RoundWithTwoDecimalPlace(view.TotalRevenueUSD)

	return view
}

// BuildCategoryView monta o ranking de categorias por receita em USD, a comparação por
// período de câmbio e a tendência mensal de uma categoria. Sem categoria informada a
// tendência usa a primeira em ordem alfabética.
func BuildCategoryView(rows []domain.CategoryPerformance, lang domain.Language, trendCategory string) domain.CategoryView {
	type acc struct {
		summary domain.CategorySummary
		rateSum float64
		rows    int
	}

	byCategory := make(map[string]*acc)
	byPeriod := make(map[[2]string]*domain.PeriodRevenue)
	for _, row := range rows {
		category := domain.DisplayCategory(row.CategoryName, row.CategoryNamePT, lang)

		a, ok := byCategory[category]
		if !ok {
			a = &acc{summary: domain.CategorySummary{Category: category}}
			byCategory[category] = a
		}
		a.summary.Orders += row.OrderCount
		a.summary.RevenueBRL += row.TotalRevenueBRL
		a.summary.RevenueUSD += row.TotalRevenueUSD
		a.rateSum += row.AvgExchangeRate
		a.rows++

		key := [2]string{category, row.ExchangeRatePeriod}
		p, ok := byPeriod[key]
		if !ok {
			p = &domain.PeriodRevenue{Category: category, Period: row.ExchangeRatePeriod}
			byPeriod[key] = p
		}
		p.Orders += row.OrderCount
		p.RevenueUSD += row.TotalRevenueUSD
	}

	names := make([]string, 0, len(byCategory))
	top := make([]domain.CategorySummary, 0, len(byCategory))
	for name, a := range byCategory {
		names = append(names, name)
		s := a.summary
		if s.Orders > 0 {
			s.AvgOrderValueBRL = utils.RoundWithTwoDecimalPlace(s.RevenueBRL / float64(s.Orders))
		}
		s.AvgExchangeRate = utils.Round(a.rateSum/float64(a.rows), 4)
		s.RevenueBRL = utils.RoundWithTwoDecimalPlace(s.RevenueBRL)
		s.RevenueUSD = utils.RoundWithTwoDecimalPlace(s.RevenueUSD)
		top = append(top, s)
	}
	sort.Strings(names)
	sort.Slice(top, func(i, j int) bool {
		if top[i].RevenueUSD != top[j].RevenueUSD {
			return top[i].RevenueUSD > top[j].RevenueUSD
		}
		return top[i].Category < top[j].Category
	})
	if len(top) > TopCategories {
		top = top[:TopCategories]
	}

	periods := make([]domain.PeriodRevenue, 0, len(byPeriod))
	for _, p := range byPeriod {
		p.RevenueUSD = utils.RoundWithTwoDecimalPlace(p.RevenueUSD)
		periods = append(periods, *p)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Category != periods[j].Category {
			return periods[i].Category < periods[j].Category
		}
		return periods[i].Period < periods[j].Period
	})

	if trendCategory == "" && len(names) > 0 {
		trendCategory = names[0]
	}

	trendRows := make([]domain.CategoryPerformance, 0)
	for _, row := range rows {
		if domain.DisplayCategory(row.CategoryName, row.CategoryNamePT, lang) == trendCategory {
			trendRows = append(trendRows, row)
		}
	}

	return domain.CategoryView{
		Top:           top,
		ByPeriod:      periods,
		TrendCategory: trendCategory,
		Trend:         monthlySeries(trendRows),
	}
}

// BuildGeographyView monta as vendas por estado, a participação dos dez maiores estados
// nos pedidos, o mapa estado x categoria e as principais cidades.
func BuildGeographyView(rows []domain.GeographicSales, lang domain.Language) domain.GeographyView {
	byState := make(map[string]*domain.StateSummary)
	heat := make(map[[2]string]int64)
	byCity := make(map[[2]string]*domain.CitySummary)
	var totalOrders int64

	for _, row := range rows {
		s, ok := byState[row.CustomerState]
		if !ok {
			s = &domain.StateSummary{State: row.CustomerState}
			byState[row.CustomerState] = s
		}
		s.Orders += row.OrderCount
		s.RevenueBRL += row.TotalRevenueBRL
		s.RevenueUSD += row.TotalRevenueUSD
		totalOrders += row.OrderCount

		category := domain.DisplayCategory(row.CategoryName, row.CategoryNamePT, lang)
		heat[[2]string{row.CustomerState, category}] += row.OrderCount

		cityKey := [2]string{row.CustomerState, row.CustomerCity}
		c, ok := byCity[cityKey]
		if !ok {
			c = &domain.CitySummary{City: row.CustomerCity, State: row.CustomerState}
			byCity[cityKey] = c
		}
		c.Orders += row.OrderCount
		c.RevenueBRL += row.TotalRevenueBRL
		c.RevenueUSD += row.TotalRevenueUSD
	}

	states := make([]domain.StateSummary, 0, len(byState))
	for _, s := range byState {
		s.Share = utils.RoundWithTwoDecimalPlace(utils.Percent(float64(s.Orders), float64(totalOrders)))
		s.RevenueBRL = utils.RoundWithTwoDecimalPlace(s.RevenueBRL)
		s.RevenueUSD = utils.RoundWithTwoDecimalPlace(s.RevenueUSD)
		states = append(states, *s)
	}
	sort.Slice(states, func(i, j int) bool {
		if states[i].RevenueUSD != states[j].RevenueUSD {
			return states[i].RevenueUSD > states[j].RevenueUSD
		}
		return states[i].State < states[j].State
	})

	share := append([]domain.StateSummary(nil), states...)
	if len(share) > TopStateShare {
		share = share[:TopStateShare]
	}
	var shareOrders int64
	for _, s := range share {
		shareOrders += s.Orders
	}
	for i := range share {
		share[i].Share = utils.RoundWithTwoDecimalPlace(utils.Percent(float64(share[i].Orders), float64(shareOrders)))
	}

	heatmap := make([]domain.HeatmapCell, 0, len(heat))
	for key, orders := range heat {
		heatmap = append(heatmap, domain.HeatmapCell{State: key[0], Category: key[1], Orders: orders})
	}
	sort.Slice(heatmap, func(i, j int) bool {
		if heatmap[i].State != heatmap[j].State {
			return heatmap[i].State < heatmap[j].State
		}
		return heatmap[i].Category < heatmap[j].Category
	})

	cities := make([]domain.CitySummary, 0, len(byCity))
	for _, c := range byCity {
		c.RevenueBRL = utils.RoundWithTwoDecimalPlace(c.RevenueBRL)
		c.RevenueUSD = utils.RoundWithTwoDecimalPlace(c.RevenueUSD)
		cities = append(cities, *c)
	}
	sort.Slice(cities, func(i, j int) bool {
		if cities[i].RevenueUSD != cities[j].RevenueUSD {
			return cities[i].RevenueUSD > cities[j].RevenueUSD
		}
		if cities[i].State != cities[j].State {
			return cities[i].State < cities[j].State
		}
		return cities[i].City < cities[j].City
	})
	if len(cities) > TopCities {
		cities = cities[:TopCities]
	}

	return domain.GeographyView{
		States:     states,
		OrderShare: share,
		Heatmap:    heatmap,
		TopCities:  cities,
	}
}

// BuildEconomicView compara os períodos de câmbio e calcula a sensibilidade das categorias
func BuildEconomicView(rows []domain.CategoryPerformance, indicators []domain.MonthlyIndicator, lang domain.Language) domain.EconomicView {
	type acc struct {
		summary domain.PeriodSummary
		rateSum float64
		rows    int
	}

	byPeriod := make(map[string]*acc)
	for _, row := range rows {
		a, ok := byPeriod[row.ExchangeRatePeriod]
		if !ok {
			a = &acc{summary: domain.PeriodSummary{Period: row.ExchangeRatePeriod}}
			byPeriod[row.ExchangeRatePeriod] = a
		}
		a.summary.Orders += row.OrderCount
		a.summary.RevenueBRL += row.TotalRevenueBRL
		a.summary.RevenueUSD += row.TotalRevenueUSD
		a.rateSum += row.AvgExchangeRate
		a.rows++
	}

	periods := make([]domain.PeriodSummary, 0, len(byPeriod))
	for _, a := range byPeriod {
		s := a.summary
		s.RevenueBRL = utils.RoundWithTwoDecimalPlace(s.RevenueBRL)
		s.RevenueUSD = utils.RoundWithTwoDecimalPlace(s.RevenueUSD)
		s.AvgExchangeRate = utils.Round(a.rateSum/float64(a.rows), 4)
		periods = append(periods, s)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Period < periods[j].Period })

	elasticity, available := CategoryElasticity(rows, lang, ElasticityTopN)

	return domain.EconomicView{
		Periods:             periods,
		ElasticityAvailable: available,
		Elasticity:          elasticity,
		Indicators:          indicators,
	}
}

// BuildCustomerView resume os clientes por segmento RFM, faixa de valor e status
func BuildCustomerView(rows []domain.CustomerSegment) domain.CustomerView {
	type acc struct {
		customers int
		ltv       float64
		spent     float64
	}

	view := domain.CustomerView{
		TotalCustomers: len(rows),
		ValueTiers:     make(map[string]int),
		Statuses:       make(map[string]int),
	}

	bySegment := make(map[string]*acc)
	for _, row := range rows {
		a, ok := bySegment[row.RFMSegment]
		if !ok {
			a = &acc{}
			bySegment[row.RFMSegment] = a
		}
		a.customers++
		a.ltv += row.EstimatedLTV
		a.spent += row.TotalSpent

		view.ValueTiers[row.ValueTier]++
		view.Statuses[row.CustomerStatus]++
	}

	view.Segments = make([]domain.SegmentSummary, 0, len(bySegment))
	for segment, a := range bySegment {
		view.Segments = append(view.Segments, domain.SegmentSummary{
			Segment:   segment,
			Customers: a.customers,
			AvgLTV:    utils.RoundWithTwoDecimalPlace(a.ltv / float64(a.customers)),
			AvgSpent:  utils.RoundWithTwoDecimalPlace(a.spent / float64(a.customers)),
		})
	}
	sort.Slice(view.Segments, func(i, j int) bool {
		if view.Segments[i].Customers != view.Segments[j].Customers {
			return view.Segments[i].Customers > view.Segments[j].Customers
		}
		return view.Segments[i].Segment < view.Segments[j].Segment
	})

	return view
}

// BuildProductView retorna os produtos de maior receita com o nome de categoria de exibição
func BuildProductView(rows []domain.ProductPerformance, lang domain.Language, topN int) domain.ProductView {
	view := domain.ProductView{TotalProducts: len(rows)}

	var ratioSum float64
	products := make([]domain.ProductPerformance, len(rows))
	for i, row := range rows {
		ratioSum += row.FreightRatio
		row.CategoryName = domain.DisplayCategory(row.CategoryName, row.CategoryNamePT, lang)
		products[i] = row
	}
	if len(rows) > 0 {
		view.AvgFreightRatio = utils.Round(ratioSum/float64(len(rows)), 4)
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].TotalRevenue != products[j].TotalRevenue {
			return products[i].TotalRevenue > products[j].TotalRevenue
		}
		return products[i].ProductID < products[j].ProductID
	})
	if topN > 0 && len(products) > topN {
		products = products[:topN]
	}
	view.Top = products

	return view
}

// BuildRawView retorna as primeiras linhas filtradas da mart de categorias
func BuildRawView(rows []domain.CategoryPerformance, limit int) domain.RawView {
	view := domain.RawView{Total: len(rows)}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	view.Rows = append([]domain.CategoryPerformance{}, rows...)
	return view
}

// monthlySeries agrega as linhas por mês, em ordem cronológica
func monthlySeries(rows []domain.CategoryPerformance) []domain.MonthlyPoint {
	type acc struct {
		point   domain.MonthlyPoint
		rateSum float64
		rows    int
	}

	byMonth := make(map[time.Time]*acc)
	for _, row := range rows {
		month := utils.MonthStart(row.OrderMonth)
		a, ok := byMonth[month]
		if !ok {
			a = &acc{point: domain.MonthlyPoint{Month: month}}
			byMonth[month] = a
		}
		a.point.Orders += row.OrderCount
		a.point.RevenueBRL += row.TotalRevenueBRL
		a.point.RevenueUSD += row.TotalRevenueUSD
		a.rateSum += row.AvgExchangeRate
		a.rows++
	}

	points := make([]domain.MonthlyPoint, 0, len(byMonth))
	for _, a := range byMonth {
		p := a.point
		p.RevenueBRL = utils.RoundWithTwoDecimalPlace(p.RevenueBRL)
		p.RevenueUSD = utils.RoundWithTwoDecimalPlace(p.RevenueUSD)
		p.AvgExchangeRate = utils.Round(a.rateSum/float64(a.rows), 4)
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month.Before(points[j].Month) })

	return points
}
