package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const (
	tokenIssuer     = "sales-economics-api"
	defaultTokenTTL = 24 * time.Hour
)

// Authenticator emite e valida os tokens dos operadores do pipeline
type Authenticator interface {
	IssueToken(operator string, roleID int) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *Service) IssueToken(operator string, roleID int) (string, error) {
	if s.cfg.Auth.Secret == "" {
		return "", ErrMissingSecret
	}
	if operator == "" {
		return "", ErrMissingOperator
	}
	if domain.RoleName(roleID) == "unknown" {
		authErr := NewAuthError(ErrInvalidRole, "AUTH_008", fmt.Sprintf("role_id=%d", roleID))
		authErr.Operator = operator
		return "", authErr
	}

	ttl := s.cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		Operator: operator,
		RoleID:   roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   operator,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.cfg.Auth.Secret == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			// A assinatura já foi verificada, então o operador do token é confiável
			authErr := NewAuthError(ErrExpiredToken, "AUTH_007", err.Error())
			if token != nil {
				if claims, ok := token.Claims.(*domain.Claims); ok {
					authErr.Operator = claims.Operator
				}
			}
			return nil, authErr
		}
		return nil, NewAuthError(ErrInvalidToken, "AUTH_006", err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
