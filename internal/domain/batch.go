package domain

import "time"

// OutcomeStatus é o resultado do processamento de um item de um lote
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailed  OutcomeStatus = "failed"
	OutcomeSkipped OutcomeStatus = "skipped"
	OutcomeEmpty   OutcomeStatus = "empty"
)

// ItemOutcome registra o resultado de um item (série, arquivo, tabela)
type ItemOutcome struct {
	Item       string        `json:"item"`
	Target     string        `json:"target,omitempty"`
	Status     OutcomeStatus `json:"status"`
	Rows       int64         `json:"rows"`
	BadRecords int           `json:"bad_records,omitempty"`
	Reason     string        `json:"reason,omitempty"`
}

// BatchReport acumula os resultados de uma execução em lote
type BatchReport struct {
	Name       string        `json:"name"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Items      []ItemOutcome `json:"items"`
}

// NewBatchReport cria um relatório vazio
func NewBatchReport(name string) *BatchReport {
	return &BatchReport{
		Name:      name,
		StartedAt: time.Now(),
		Items:     make([]ItemOutcome, 0),
	}
}

// Add registra o resultado de um item
func (b *BatchReport) Add(outcome ItemOutcome) {
	b.Items = append(b.Items, outcome)
}

// Finish marca o fim da execução
func (b *BatchReport) Finish() {
	b.FinishedAt = time.Now()
}

// Count retorna quantos itens terminaram com o status informado
func (b *BatchReport) Count(status OutcomeStatus) int {
	n := 0
	for _, item := range b.Items {
		if item.Status == status {
			n++
		}
	}
	return n
}

// TotalRows soma as linhas dos itens carregados com sucesso
func (b *BatchReport) TotalRows() int64 {
	var total int64
	for _, item := range b.Items {
		if item.Status == OutcomeSuccess {
			total += item.Rows
		}
	}
	return total
}

// Succeeded indica se pelo menos um item foi processado com sucesso
func (b *BatchReport) Succeeded() bool {
	return b.Count(OutcomeSuccess) > 0
}
