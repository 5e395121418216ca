package csvfile

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-economics-api/internal/domain"
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Ordem de especificidade usada na inferência
var inferenceOrder = []domain.ColumnType{
	domain.ColumnBoolean,
	domain.ColumnInteger,
	domain.ColumnFloat,
	domain.ColumnTimestamp,
}

// InferSchema escolhe, para cada coluna, o tipo mais específico aceito por todos os
// valores não vazios da amostra. Coluna sem valores vira STRING.
func InferSchema(header []string, records [][]string, sampleRows int) []domain.Column {
	if sampleRows > len(records) {
		sampleRows = len(records)
	}
	sample := records[:sampleRows]

	columns := make([]domain.Column, len(header))
	for i, name := range header {
		columns[i] = domain.Column{Name: name, Type: inferColumn(sample, i)}
	}
	return columns
}

func inferColumn(sample [][]string, idx int) domain.ColumnType {
	candidates := make(map[domain.ColumnType]bool, len(inferenceOrder))
	for _, t := range inferenceOrder {
		candidates[t] = true
	}

	seen := false
	for _, record := range sample {
		if idx >= len(record) {
			continue
		}
		value := strings.TrimSpace(record[idx])
		if value == "" {
			continue
		}
		seen = true
		for t, ok := range candidates {
			if !ok {
				continue
			}
			if _, valid := ConvertValue(value, t); !valid {
				candidates[t] = false
			}
		}
	}

	if !seen {
		return domain.ColumnString
	}
	for _, t := range inferenceOrder {
		if candidates[t] {
			return t
		}
	}
	return domain.ColumnString
}

// ConvertValue converte um valor textual para o tipo da coluna. Vazio vira NULL.
func ConvertValue(raw string, columnType domain.ColumnType) (any, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, true
	}

	switch columnType {
	case domain.ColumnBoolean:
		switch strings.ToLower(value) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return nil, false
	case domain.ColumnInteger:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	case domain.ColumnFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case domain.ColumnTimestamp:
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, value); err == nil {
				return ts, true
			}
		}
		return nil, false
	default:
		return raw, true
	}
}
