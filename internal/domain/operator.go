package domain

import "github.com/golang-jwt/jwt/v5"

// Perfis de acesso aos endpoints do pipeline
const (
	RoleAdmin    = 1
	RoleOperator = 2
	RoleViewer   = 3
)

// Claims são as informações carregadas no token de um operador
type Claims struct {
	Operator string `json:"operator"`
	RoleID   int    `json:"role_id"`
	jwt.RegisteredClaims
}

// RoleName retorna o nome do perfil para logs e respostas
func RoleName(roleID int) string {
	switch roleID {
	case RoleAdmin:
		return "admin"
	case RoleOperator:
		return "operator"
	case RoleViewer:
		return "viewer"
	default:
		return "unknown"
	}
}

// ParseRole converte o nome de um perfil no seu identificador
func ParseRole(name string) (int, bool) {
	switch name {
	case "admin":
		return RoleAdmin, true
	case "operator":
		return RoleOperator, true
	case "viewer":
		return RoleViewer, true
	default:
		return 0, false
	}
}
