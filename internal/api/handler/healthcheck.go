package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-economics-api/internal/usecases/analytics"
)

func HealthcheckHandler(dashboard analytics.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"status": "ok",
			"time":   time.Now().UTC(),
		}
		if loadedAt := dashboard.LoadedAt(); loadedAt != nil {
			response["marts_loaded_at"] = loadedAt
		}
		writeJSON(w, r, response)
	})
}
