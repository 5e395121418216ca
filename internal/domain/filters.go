package domain

import (
	"fmt"
	"time"
)

// Language define como os nomes de categoria são exibidos
type Language string

const (
	LanguageEnglish    Language = "english"
	LanguagePortuguese Language = "portuguese"
	LanguageBoth       Language = "both"
)

// DefaultSelectionSize é a quantidade de categorias/estados selecionados por padrão
const DefaultSelectionSize = 5

// ParseLanguage valida o idioma de exibição; vazio vira inglês
func ParseLanguage(value string) (Language, error) {
	switch Language(value) {
	case "":
		return LanguageEnglish, nil
	case LanguageEnglish, LanguagePortuguese, LanguageBoth:
		return Language(value), nil
	}
	return "", fmt.Errorf("%w: idioma %q", ErrInvalidFilters, value)
}

// DisplayCategory retorna o nome de exibição da categoria no idioma escolhido
func DisplayCategory(english, portuguese string, lang Language) string {
	switch lang {
	case LanguagePortuguese:
		if portuguese == "" {
			return english
		}
		return portuguese
	case LanguageBoth:
		if portuguese == "" || portuguese == english {
			return english
		}
		return fmt.Sprintf("%s (%s)", english, portuguese)
	default:
		return english
	}
}

// DashboardFilters é o estado de filtro de uma sessão do dashboard. Nas listas, nil
// significa não informado (usa o padrão) e lista vazia significa seleção esvaziada.
type DashboardFilters struct {
	StartMonth      *time.Time `json:"start_month,omitempty"`
	EndMonth        *time.Time `json:"end_month,omitempty"`
	Categories      []string   `json:"categories"`
	States          []string   `json:"states"`
	ExchangePeriods []string   `json:"exchange_periods"`
	Language        Language   `json:"language,omitempty"`
}

// Validate verifica a consistência dos filtros informados pelo usuário
func (f DashboardFilters) Validate() error {
	if _, err := ParseLanguage(string(f.Language)); err != nil {
		return err
	}

	if f.StartMonth != nil && f.EndMonth != nil && f.EndMonth.Before(*f.StartMonth) {
		return fmt.Errorf("%w: data final anterior à inicial", ErrInvalidFilters)
	}

	for _, p := range f.ExchangePeriods {
		if p != PeriodStrongBRL && p != PeriodWeakBRL {
			return fmt.Errorf("%w: período de câmbio %q", ErrInvalidFilters, p)
		}
	}

	return nil
}

// FilterOptions são os valores disponíveis para seleção no dashboard
type FilterOptions struct {
	MinMonth        *time.Time `json:"min_month,omitempty"`
	MaxMonth        *time.Time `json:"max_month,omitempty"`
	Categories      []string   `json:"categories"`
	States          []string   `json:"states"`
	ExchangePeriods []string   `json:"exchange_periods"`
	Languages       []Language `json:"languages"`
}
