// Package csvfile lê os arquivos CSV do dataset de vendas e converte as linhas
// para os tipos das colunas de destino.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vfg2006/sales-economics-api/internal/domain"
)

// Options controla a leitura de um arquivo
type Options struct {
	// Columns é o schema explícito. Quando vazio o schema é inferido da amostra.
	Columns       []domain.Column
	MaxBadRecords int
	SampleRows    int
}

// DefaultOptions retorna as opções padrão de carga
func DefaultOptions() Options {
	return Options{
		MaxBadRecords: domain.MaxBadRecords,
		SampleRows:    domain.SchemaSampleRows,
	}
}

// Table é o conteúdo convertido de um arquivo
type Table struct {
	Columns    []domain.Column
	Rows       [][]any
	BadRecords int
	SourceRows int
}

// ColumnNames retorna os nomes das colunas na ordem do arquivo
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Read abre e converte um arquivo CSV
func Read(path string, opts Options) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return Parse(file, opts)
}

// Parse converte o conteúdo CSV. A primeira linha nomeia as colunas e não é carregada.
// Linhas curtas são completadas com NULL; linhas longas ou com valores que não
// convertem para o tipo da coluna contam como registros inválidos.
func Parse(r io.Reader, opts Options) (*Table, error) {
	if opts.MaxBadRecords < 0 {
		opts.MaxBadRecords = 0
	}
	if opts.SampleRows <= 0 {
		opts.SampleRows = domain.SchemaSampleRows
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("arquivo sem cabeçalho")
		}
		return nil, fmt.Errorf("erro ao ler cabeçalho: %w", err)
	}
	header = normalizeHeader(header)

	records := make([][]string, 0)
	bad := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				bad++
				if bad > opts.MaxBadRecords {
					return nil, fmt.Errorf("%w: %d", domain.ErrTooManyBadRecords, bad)
				}
				continue
			}
			return nil, fmt.Errorf("erro ao ler arquivo: %w", err)
		}
		records = append(records, record)
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = InferSchema(header, records, opts.SampleRows)
	}

	table := &Table{
		Columns:    columns,
		Rows:       make([][]any, 0, len(records)),
		SourceRows: len(records) + bad,
		BadRecords: bad,
	}

	for _, record := range records {
		row, ok := convertRecord(record, columns)
		if !ok {
			table.BadRecords++
			if table.BadRecords > opts.MaxBadRecords {
				return nil, fmt.Errorf("%w: %d", domain.ErrTooManyBadRecords, table.BadRecords)
			}
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func convertRecord(record []string, columns []domain.Column) ([]any, bool) {
	if len(record) > len(columns) {
		return nil, false
	}

	row := make([]any, len(columns))
	for i, col := range columns {
		if i >= len(record) {
			row[i] = nil
			continue
		}
		value, ok := ConvertValue(record[i], col.Type)
		if !ok {
			return nil, false
		}
		row[i] = value
	}
	return row, true
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		} else {
			seen[name] = 1
		}
		out[i] = name
	}
	return out
}
