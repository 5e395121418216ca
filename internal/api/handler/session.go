package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/pkg/log"
	"github.com/vfg2006/sales-economics-api/pkg/utils"
)

const filtersKey = "filters"

// FilterStore guarda os filtros do dashboard em um cookie assinado por sessão do navegador
type FilterStore struct {
	store sessions.Store
	name  string
}

func NewFilterStore(cfg *config.Config) *FilterStore {
	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	name := cfg.Session.Name
	if name == "" {
		name = "dashboard"
	}

	return &FilterStore{store: store, name: name}
}

// Load retorna os filtros da sessão. Cookie ausente ou inválido resulta em filtros vazios.
func (s *FilterStore) Load(r *http.Request) domain.DashboardFilters {
	var filters domain.DashboardFilters

	session, err := s.store.Get(r, s.name)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Debug("Sessão do dashboard inválida, usando filtros padrão")
		return filters
	}

	raw, ok := session.Values[filtersKey].(string)
	if !ok || raw == "" {
		return filters
	}

	if err := json.UnmarshalFromString(raw, &filters); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Filtros da sessão corrompidos, usando filtros padrão")
		return domain.DashboardFilters{}
	}
	return filters
}

// Save grava os filtros na sessão
func (s *FilterStore) Save(w http.ResponseWriter, r *http.Request, filters domain.DashboardFilters) error {
	raw, err := json.MarshalToString(filters)
	if err != nil {
		return fmt.Errorf("erro ao serializar filtros: %w", err)
	}

	session, _ := s.store.Get(r, s.name)
	session.Values[filtersKey] = raw
	return session.Save(r, w)
}

// Clear remove os filtros da sessão
func (s *FilterStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, s.name)
	delete(session.Values, filtersKey)
	return session.Save(r, w)
}

// FiltersRequest é o corpo aceito para alterar os filtros do dashboard. Meses aceitam
// YYYY-MM ou YYYY-MM-DD.
type FiltersRequest struct {
	StartMonth      string   `json:"start_month"`
	EndMonth        string   `json:"end_month"`
	Categories      []string `json:"categories"`
	States          []string `json:"states"`
	ExchangePeriods []string `json:"exchange_periods"`
	Language        string   `json:"language"`
}

// ToFilters converte a requisição em filtros validados
func (req FiltersRequest) ToFilters() (domain.DashboardFilters, error) {
	start, err := utils.ParseMonth(req.StartMonth)
	if err != nil {
		return domain.DashboardFilters{}, fmt.Errorf("%w: start_month %q", domain.ErrInvalidFilters, req.StartMonth)
	}
	end, err := utils.ParseMonth(req.EndMonth)
	if err != nil {
		return domain.DashboardFilters{}, fmt.Errorf("%w: end_month %q", domain.ErrInvalidFilters, req.EndMonth)
	}

	language, err := domain.ParseLanguage(req.Language)
	if err != nil {
		return domain.DashboardFilters{}, err
	}

	filters := domain.DashboardFilters{
		StartMonth:      start,
		EndMonth:        end,
		Categories:      compact(req.Categories),
		States:          upper(compact(req.States)),
		ExchangePeriods: compact(req.ExchangePeriods),
		Language:        language,
	}
	if err := filters.Validate(); err != nil {
		return domain.DashboardFilters{}, err
	}
	return filters, nil
}

// compact remove valores em branco. Campo ausente continua nil; lista enviada vazia
// continua vazia e esvazia a seleção.
func compact(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func upper(values []string) []string {
	for i, v := range values {
		values[i] = strings.ToUpper(v)
	}
	return values
}
