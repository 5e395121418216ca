package domain

import "errors"

var (
	ErrUnknownSeries      = errors.New("série desconhecida")
	ErrNoIndicatorData    = errors.New("nenhuma série retornou dados")
	ErrMartUnavailable    = errors.New("tabela mart indisponível")
	ErrTooManyBadRecords  = errors.New("limite de registros inválidos excedido")
	ErrUnknownJob         = errors.New("job desconhecido")
	ErrUnmappedFile       = errors.New("arquivo fora do mapeamento de tabelas")
	ErrInvalidFilters     = errors.New("filtros inválidos")
	ErrJobAlreadyRunning  = errors.New("job já em execução")
	ErrMissingCredentials = errors.New("credenciais ausentes")
)

// MartRemediation é o comando sugerido quando as tabelas mart ainda não existem
const MartRemediation = "dbt run --select fct_*"
