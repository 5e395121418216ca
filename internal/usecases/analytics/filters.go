package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/pkg/utils"
)

// BuildOptions extrai os valores disponíveis para os filtros a partir das marts
func BuildOptions(snapshot *domain.MartSnapshot) domain.FilterOptions {
	opts := domain.FilterOptions{
		Categories:      make([]string, 0),
		States:          make([]string, 0),
		ExchangePeriods: make([]string, 0),
		Languages:       []domain.Language{domain.LanguageEnglish, domain.LanguagePortuguese, domain.LanguageBoth},
	}

	categories := make(map[string]bool)
	periods := make(map[string]bool)
	for _, row := range snapshot.Categories {
		month := utils.MonthStart(row.OrderMonth)
		if opts.MinMonth == nil || month.Before(*opts.MinMonth) {
			m := month
			opts.MinMonth = &m
		}
		if opts.MaxMonth == nil || month.After(*opts.MaxMonth) {
			m := month
			opts.MaxMonth = &m
		}
		if row.CategoryName != "" {
			categories[row.CategoryName] = true
		}
		if row.ExchangeRatePeriod != "" {
			periods[row.ExchangeRatePeriod] = true
		}
	}

	states := make(map[string]bool)
	for _, row := range snapshot.Geography {
		if row.CustomerState != "" {
			states[row.CustomerState] = true
		}
	}

	opts.Categories = sortedKeys(categories)
	opts.States = sortedKeys(states)
	opts.ExchangePeriods = sortedKeys(periods)

	return opts
}

// ResolveFilters completa os filtros não informados com os padrões: período inteiro,
// as primeiras categorias e estados em ordem alfabética, todos os períodos de câmbio e inglês.
// Uma seleção esvaziada pelo usuário (lista vazia, não nil) é mantida.
func ResolveFilters(filters domain.DashboardFilters, opts domain.FilterOptions) domain.DashboardFilters {
	resolved := filters

	if resolved.StartMonth == nil {
		resolved.StartMonth = opts.MinMonth
	} else {
		m := utils.MonthStart(*resolved.StartMonth)
		resolved.StartMonth = &m
	}
	if resolved.EndMonth == nil {
		resolved.EndMonth = opts.MaxMonth
	} else {
		m := utils.MonthStart(*resolved.EndMonth)
		resolved.EndMonth = &m
	}

	if resolved.Categories == nil {
		resolved.Categories = firstN(opts.Categories, domain.DefaultSelectionSize)
	}
	if resolved.States == nil {
		resolved.States = firstN(opts.States, domain.DefaultSelectionSize)
	}
	if resolved.ExchangePeriods == nil {
		resolved.ExchangePeriods = append([]string(nil), opts.ExchangePeriods...)
	}
	if resolved.Language == "" {
		resolved.Language = domain.LanguageEnglish
	}

	return resolved
}

// FilterCategories aplica período, categorias e períodos de câmbio à mart de categorias
func FilterCategories(rows []domain.CategoryPerformance, f domain.DashboardFilters) []domain.CategoryPerformance {
	categories := toSet(f.Categories)
	periods := toSet(f.ExchangePeriods)

	out := make([]domain.CategoryPerformance, 0, len(rows))
	for _, row := range rows {
		if !inRange(row.OrderMonth, f) || !categories[row.CategoryName] || !periods[row.ExchangeRatePeriod] {
			continue
		}
		out = append(out, row)
	}
	return out
}

// FilterGeography aplica período, estados e categorias à mart geográfica
func FilterGeography(rows []domain.GeographicSales, f domain.DashboardFilters) []domain.GeographicSales {
	categories := toSet(f.Categories)
	states := toSet(f.States)

	out := make([]domain.GeographicSales, 0, len(rows))
	for _, row := range rows {
		if !inRange(row.OrderMonth, f) || !states[row.CustomerState] || !categories[row.CategoryName] {
			continue
		}
		out = append(out, row)
	}
	return out
}

// FilterCustomers aplica estados e o período (pelo mês da primeira compra) à mart de clientes
func FilterCustomers(rows []domain.CustomerSegment, f domain.DashboardFilters) []domain.CustomerSegment {
	states := toSet(f.States)

	out := make([]domain.CustomerSegment, 0, len(rows))
	for _, row := range rows {
		if !states[row.CustomerState] {
			continue
		}
		if !row.FirstPurchaseDate.IsZero() && !inRange(row.FirstPurchaseDate, f) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// FilterProducts aplica as categorias à mart de produtos
func FilterProducts(rows []domain.ProductPerformance, f domain.DashboardFilters) []domain.ProductPerformance {
	categories := toSet(f.Categories)

	out := make([]domain.ProductPerformance, 0, len(rows))
	for _, row := range rows {
		if categories[row.CategoryName] {
			out = append(out, row)
		}
	}
	return out
}

// FilterIndicators aplica o período às médias mensais dos indicadores
func FilterIndicators(rows []domain.MonthlyIndicator, f domain.DashboardFilters) []domain.MonthlyIndicator {
	out := make([]domain.MonthlyIndicator, 0, len(rows))
	for _, row := range rows {
		if inRange(row.Month, f) {
			out = append(out, row)
		}
	}
	return out
}

func inRange(t time.Time, f domain.DashboardFilters) bool {
	month := utils.MonthStart(t)
	if f.StartMonth != nil && month.Before(*f.StartMonth) {
		return false
	}
	if f.EndMonth != nil && month.After(*f.EndMonth) {
		return false
	}
	return true
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		values = values[:n]
	}
	return append([]string(nil), values...)
}
