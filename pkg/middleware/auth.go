package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-economics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// ProtectedPrefixes são os caminhos que exigem token de operador
var ProtectedPrefixes = []string{"/v1/pipeline", "/v1/admin"}

func isProtected(path string) bool {
	for _, prefix := range ProtectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// AuthMiddleware valida o token Bearer nas rotas do pipeline e de administração.
// Dashboard, métricas e healthcheck são públicos.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtected(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				logger := log.ForContext(r.Context()).WithError(err)
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Operator != "" {
					logger = logger.WithField("operator", authErr.Operator)
				}

				// Falha que não é do token, como AUTH_SECRET ausente, é erro do servidor
				if !authenticating.IsAuthorizationError(err) {
					logger.Error("Erro ao validar token de operador")
					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar token", nil)
					return
				}

				logger.Warn("Token de operador rejeitado")
				if errors.Is(err, authenticating.ErrExpiredToken) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// WithClaims associa o operador autenticado ao contexto
func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}
