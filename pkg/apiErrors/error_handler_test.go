package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		details    any
		wantStatus int
	}{
		{name: "mart indisponível vira 503", code: ErrMartUnavailable, details: map[string]string{"remediation": "dbt run --select fct_*"}, wantStatus: http.StatusServiceUnavailable},
		{name: "job em execução vira 409", code: ErrJobAlreadyRunning, wantStatus: http.StatusConflict},
		{name: "token inválido vira 401", code: ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{name: "código desconhecido vira 500", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", tt.details)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			if tt.details == nil {
				assert.Nil(t, body.Details)
			} else {
				assert.NotNil(t, body.Details)
			}
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrDatabaseOperation).Code)

	apiErr := FromError(errors.New("conexão recusada"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "conexão recusada", apiErr.Message)
}
