package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

func newTestService(secret string, ttl time.Duration) *Service {
	return &Service{
		cfg: &config.Config{Auth: config.Auth{Secret: secret, TokenTTL: ttl}},
		now: time.Now,
	}
}

func TestService_IssueToken(t *testing.T) {
	tests := []struct {
		name     string
		service  *Service
		operator string
		roleID   int
		wantErr  error
	}{
		{
			name:     "token emitido para operador",
			service:  newTestService("segredo", time.Hour),
			operator: "maria",
			roleID:   domain.RoleOperator,
		},
		{
			name:     "sem segredo configurado",
			service:  newTestService("", time.Hour),
			operator: "maria",
			roleID:   domain.RoleOperator,
			wantErr:  ErrMissingSecret,
		},
		{
			name:     "operador vazio",
			service:  newTestService("segredo", time.Hour),
			operator: "",
			roleID:   domain.RoleAdmin,
			wantErr:  ErrMissingOperator,
		},
		{
			name:     "perfil inexistente",
			service:  newTestService("segredo", time.Hour),
			operator: "maria",
			roleID:   42,
			wantErr:  ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.service.IssueToken(tt.operator, tt.roleID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := tt.service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.operator, claims.Operator)
			assert.Equal(t, tt.roleID, claims.RoleID)
			assert.Equal(t, tokenIssuer, claims.Issuer)
			assert.NotEmpty(t, claims.ID)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	s := newTestService("segredo", time.Hour)

	t.Run("token expirado", func(t *testing.T) {
		expired := newTestService("segredo", time.Hour)
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := expired.IssueToken("maria", domain.RoleAdmin)
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "AUTH_007", authErr.Code)
		assert.Equal(t, "maria", authErr.Operator)
	})

	t.Run("segredo ausente não é erro de autorização", func(t *testing.T) {
		_, err := newTestService("", time.Hour).ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrMissingSecret)
		assert.False(t, IsAuthorizationError(err))
	})

	t.Run("assinado com outro segredo", func(t *testing.T) {
		token, err := newTestService("outro", time.Hour).IssueToken("maria", domain.RoleAdmin)
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("algoritmo diferente de HMAC", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{Operator: "maria", RoleID: domain.RoleAdmin})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = s.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("texto que não é um token", func(t *testing.T) {
		_, err := s.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "AUTH_006", authErr.Code)
	})
}

func TestService_IssueToken_PerfilInvalido(t *testing.T) {
	_, err := newTestService("segredo", time.Hour).IssueToken("joana", 99)
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.False(t, IsAuthorizationError(err))

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "AUTH_008", authErr.Code)
	assert.Equal(t, "joana", authErr.Operator)
}
