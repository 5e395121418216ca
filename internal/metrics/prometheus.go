package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Extração do Banco Central
	BCBObservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_economics_bcb_observations_total",
			Help: "Observações recebidas do SGS por série",
		},
		[]string{"series", "outcome"}, // outcome: kept|dropped
	)

	BCBSeriesExtractions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_economics_bcb_series_extractions_total",
			Help: "Extrações de séries do SGS",
		},
		[]string{"series", "status"}, // status: success|failed|empty
	)

	// Carga de arquivos
	FileLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_economics_file_loads_total",
			Help: "Arquivos CSV processados",
		},
		[]string{"table", "status"}, // status: success|failed|skipped
	)

	RowsLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_economics_rows_loaded_total",
			Help: "Linhas carregadas no dataset raw",
		},
		[]string{"table"},
	)

	// Orquestrador
	PipelineRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_economics_pipeline_runs_total",
			Help: "Execuções de jobs do pipeline",
		},
		[]string{"job", "trigger", "status"},
	)

	PipelineDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_economics_pipeline_duration_seconds",
			Help:    "Duração das execuções de jobs",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600},
		},
		[]string{"job"},
	)

	StepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_economics_pipeline_step_duration_seconds",
			Help:    "Duração das etapas dos jobs",
			Buckets: []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"job", "step", "status"},
	)

	PipelineLastRun = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sales_economics_pipeline_last_run_timestamp",
			Help: "Unix timestamp da última execução do job",
		},
		[]string{"job"},
	)

	// Dashboard
	DashboardCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_economics_dashboard_cache_events_total",
			Help: "Eventos do cache de marts do dashboard",
		},
		[]string{"event"}, // event: hit|miss|purge
	)

	// HTTP
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_economics_http_requests_total",
			Help: "Requisições HTTP atendidas",
		},
		[]string{"method", "code"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_economics_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

var initOnce sync.Once

// Init registra as métricas no registry padrão. Pode ser chamada mais de uma vez.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(BCBObservations)
		prometheus.MustRegister(BCBSeriesExtractions)
		prometheus.MustRegister(FileLoads)
		prometheus.MustRegister(RowsLoaded)
		prometheus.MustRegister(PipelineRuns)
		prometheus.MustRegister(PipelineDuration)
		prometheus.MustRegister(StepDuration)
		prometheus.MustRegister(PipelineLastRun)
		prometheus.MustRegister(DashboardCache)
		prometheus.MustRegister(HTTPRequests)
		prometheus.MustRegister(HTTPDuration)
	})
}

// ObserveRun registra o fim de uma execução de job
func ObserveRun(job, trigger, status string, startedAt time.Time) {
	PipelineRuns.WithLabelValues(job, trigger, status).Inc()
	PipelineDuration.WithLabelValues(job).Observe(time.Since(startedAt).Seconds())
	PipelineLastRun.WithLabelValues(job).Set(float64(time.Now().Unix()))
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
