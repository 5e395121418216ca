package handler

import (
	"net/http"

	"github.com/vfg2006/sales-economics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-economics-api/internal/metrics"
	"github.com/vfg2006/sales-economics-api/internal/scheduler"
	"github.com/vfg2006/sales-economics-api/internal/usecases/analytics"
	"github.com/vfg2006/sales-economics-api/pkg/middleware"
)

func Healthcheck(dashboard analytics.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dashboard),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

// Dashboard retorna as rotas públicas do dashboard; os filtros vivem na sessão do navegador
func Dashboard(dashboard analytics.Dashboard, store *FilterStore) []router.Route {
	return []router.Route{
		{Path: "/v1/dashboard/options", Method: http.MethodGet, Handler: GetDashboardOptions(dashboard)},
		{Path: "/v1/dashboard/filters", Method: http.MethodGet, Handler: GetDashboardFilters(dashboard, store)},
		{Path: "/v1/dashboard/filters", Method: http.MethodPut, Handler: UpdateDashboardFilters(dashboard, store)},
		{Path: "/v1/dashboard/filters", Method: http.MethodDelete, Handler: ResetDashboardFilters(store)},
		{Path: "/v1/dashboard/overview", Method: http.MethodGet, Handler: GetOverview(dashboard, store)},
		{Path: "/v1/dashboard/categories", Method: http.MethodGet, Handler: GetCategories(dashboard, store)},
		{Path: "/v1/dashboard/geography", Method: http.MethodGet, Handler: GetGeography(dashboard, store)},
		{Path: "/v1/dashboard/economic", Method: http.MethodGet, Handler: GetEconomic(dashboard, store)},
		{Path: "/v1/dashboard/correlations", Method: http.MethodGet, Handler: GetCorrelations(dashboard, store)},
		{Path: "/v1/dashboard/cohorts", Method: http.MethodGet, Handler: GetCohorts(dashboard, store)},
		{Path: "/v1/dashboard/customers", Method: http.MethodGet, Handler: GetCustomers(dashboard, store)},
		{Path: "/v1/dashboard/products", Method: http.MethodGet, Handler: GetProducts(dashboard, store)},
		{Path: "/v1/dashboard/raw", Method: http.MethodGet, Handler: GetRawData(dashboard, store)},
	}
}

func Pipeline(orchestrator scheduler.Orchestrator, dashboard analytics.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pipeline/status",
			Method:      http.MethodGet,
			Handler:     GetPipelineStatus(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pipeline/runs",
			Method:      http.MethodGet,
			Handler:     ListPipelineRuns(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pipeline/:job/run",
			Method:      http.MethodPost,
			Handler:     RunPipelineJob(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/admin/dashboard/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDashboard(dashboard),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}
