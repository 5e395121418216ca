package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/internal/scheduler"
	"github.com/vfg2006/sales-economics-api/internal/usecases/analytics"
	"github.com/vfg2006/sales-economics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-economics-api/pkg/log"
	"github.com/vfg2006/sales-economics-api/pkg/middleware"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 200
)

// RunPipelineJob dispara manualmente um job do pipeline em segundo plano
func RunPipelineJob(orchestrator scheduler.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		job := httprouter.ParamsFromContext(r.Context()).ByName("job")
		if job == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Job não especificado", nil)
			return
		}

		operator := ""
		if claims, ok := middleware.ClaimsFromContext(r); ok {
			operator = claims.Operator
		}

		runID, err := orchestrator.TriggerManualSync(r.Context(), job)
		if err != nil {
			writeDomainError(w, r, err, "Erro ao disparar job")
			return
		}

		logger.WithFields(log.Fields{
			"job":      job,
			"run_id":   runID,
			"operator": operator,
		}).Info("Job disparado manualmente")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Job iniciado com sucesso",
			"job":     job,
			"run_id":  runID,
		})
	}
}

// GetPipelineStatus retorna o status dos jobs e sensores
func GetPipelineStatus(orchestrator scheduler.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, orchestrator.GetStatus())
	}
}

// ListPipelineRuns retorna o histórico de execuções, opcionalmente filtrado por job
func ListPipelineRuns(orchestrator scheduler.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		limit := uint64(defaultRunsLimit)
		if raw := query.Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = min(parsed, maxRunsLimit)
		}

		runs, err := orchestrator.RecentRuns(r.Context(), query.Get("job"), limit)
		if err != nil {
			writeDomainError(w, r, err, "Erro ao listar execuções do pipeline")
			return
		}
		if runs == nil {
			runs = []domain.PipelineRun{}
		}

		writeJSON(w, r, map[string]any{
			"runs":  runs,
			"count": len(runs),
		})
	}
}

// RefreshDashboard descarta o cache de marts do dashboard
func RefreshDashboard(dashboard analytics.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard.Refresh(r.Context())
		writeJSON(w, r, map[string]string{
			"message": "Cache do dashboard descartado",
		})
	}
}
