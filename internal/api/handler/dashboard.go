package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/internal/usecases/analytics"
	"github.com/vfg2006/sales-economics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

// dashboardView monta um handler que aplica os filtros da sessão a uma visão do dashboard
func dashboardView[T any](store *FilterStore, name string, view func(ctx context.Context, r *http.Request, filters domain.DashboardFilters) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := store.Load(r)

		result, err := view(r.Context(), r, filters)
		if err != nil {
			writeDomainError(w, r, err, "Erro ao montar visão "+name)
			return
		}

		writeJSON(w, r, result)
	}
}

// GetDashboardOptions retorna os valores disponíveis para os filtros
func GetDashboardOptions(dashboard analytics.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := dashboard.Options(r.Context())
		if err != nil {
			writeDomainError(w, r, err, "Erro ao carregar opções de filtro")
			return
		}
		writeJSON(w, r, opts)
	}
}

// GetDashboardFilters retorna os filtros efetivos da sessão, já com os padrões aplicados
func GetDashboardFilters(dashboard analytics.Dashboard, store *FilterStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resolved, err := dashboard.ResolveFilters(r.Context(), store.Load(r))
		if err != nil {
			writeDomainError(w, r, err, "Erro ao resolver filtros do dashboard")
			return
		}
		writeJSON(w, r, resolved)
	}
}

// UpdateDashboardFilters substitui os filtros da sessão
func UpdateDashboardFilters(dashboard analytics.Dashboard, store *FilterStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req FiltersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		filters, err := req.ToFilters()
		if err != nil {
			writeDomainError(w, r, err, "Filtros do dashboard inválidos")
			return
		}

		resolved, err := dashboard.ResolveFilters(r.Context(), filters)
		if err != nil {
			writeDomainError(w, r, err, "Erro ao resolver filtros do dashboard")
			return
		}

		if err := store.Save(w, r, filters); err != nil {
			logger.WithError(err).Error("Erro ao gravar sessão do dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gravar filtros", nil)
			return
		}

		logger.WithFields(log.Fields{
			"categories": len(resolved.Categories),
			"states":     len(resolved.States),
			"language":   string(resolved.Language),
		}).Info("Filtros do dashboard atualizados")

		writeJSON(w, r, resolved)
	}
}

// ResetDashboardFilters volta a sessão para os filtros padrão
func ResetDashboardFilters(store *FilterStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Clear(w, r); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao limpar sessão do dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao limpar filtros", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func GetOverview(dashboard analytics.Dashboard, store *FilterStore) http.HandlerFunc {
	return dashboardView(store, "overview", func(ctx context.Context, _ *http.Request, f domain.DashboardFilters) (*domain.OverviewView, error) {
		return dashboard.Overview(ctx, f)
	})
}

// GetCategories aceita ?trend=<categoria> para a série mensal de uma categoria
func GetCategories(dashboard analytics.Dashboard, store *FilterStore) http.HandlerFunc {
	return dashboardView(store, "categories", func(ctx context.Context, r *http.Request, f domain.DashboardFilters) (*domain.CategoryView, error) {
		return dashboard.Categories(ctx, f, r.URL.Query().Get("trend"))
	})
}

func GetGeography(dashboard analytics.Dashboard, store *FilterStore) http.HandlerFunc {
	return dashboardView(store, "geography", func(ctx context.Context, _ *http.Request, f domain.DashboardFilters) (*domain.GeographyView, error) {
		return dashboard.Geography(ctx, f)
	})
}

func GetEconomic(dashboard analytics.Dashboard, store *FilterStore) http.HandlerFunc {
	return dashboardView(store, "economic", func(ctx context.Context, _ *http.Request, f domain.DashboardFilters) (*domain.EconomicView, error) {
		return dashboard.Economic(ctx, f)
	})
}

func GetCorrelations(dashboard analytics.Dashboard, store *FilterStore) http.HandlerFunc {
	return dashboardView(store, "correlations", func(ctx context.Context, _ *http.Request, f domain.DashboardFilters) (*domain.CorrelationView, error) {
		return dashboard.Correlations(ctx, f)
	})
}

func GetCohorts(dashboard analytics.Dashboard, store *FilterStore) http.HandlerFunc {
	return dashboardView(store, "cohorts", func(ctx context.Context, _ *http.Request, f domain.DashboardFilters) (*domain.CohortView, error) {
		return dashboard.Cohorts(ctx, f)
	})
}

func GetCustomers(dashboard analytics.Dashboard, store *FilterStore) http.HandlerFunc {
	return dashboardView(store, "customers", func(ctx context.Context, _ *http.Request, f domain.DashboardFilters) (*domain.CustomerView, error) {
		return dashboard.Customers(ctx, f)
	})
}

func GetProducts(dashboard analytics.Dashboard, store *FilterStore) http.HandlerFunc {
	return dashboardView(store, "products", func(ctx context.Context, _ *http.Request, f domain.DashboardFilters) (*domain.ProductView, error) {
		return dashboard.Products(ctx, f)
	})
}

func GetRawData(dashboard analytics.Dashboard, store *FilterStore) http.HandlerFunc {
	return dashboardView(store, "raw", func(ctx context.Context, _ *http.Request, f domain.DashboardFilters) (*domain.RawView, error) {
		return dashboard.Raw(ctx, f)
	})
}
