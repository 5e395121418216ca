package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON codifica a resposta com status 200
func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeDomainError traduz os erros de domínio para o formato padronizado da API
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	switch {
	case errors.Is(err, domain.ErrMartUnavailable):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrMartUnavailable, err.Error(), map[string]string{
			"remediation": domain.MartRemediation,
		})
	case errors.Is(err, domain.ErrInvalidFilters):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, domain.ErrUnknownJob):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrUnknownJob, err.Error(), map[string][]string{
			"jobs": domain.Jobs(),
		})
	case errors.Is(err, domain.ErrJobAlreadyRunning):
		logger.Info(message)
		apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, err.Error(), nil)
	default:
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}
