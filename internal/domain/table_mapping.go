package domain

import (
	"fmt"
	"sort"
)

// ColumnType é o tipo lógico de uma coluna carregada no warehouse
type ColumnType string

const (
	ColumnString    ColumnType = "STRING"
	ColumnInteger   ColumnType = "INTEGER"
	ColumnFloat     ColumnType = "FLOAT"
	ColumnBoolean   ColumnType = "BOOLEAN"
	ColumnTimestamp ColumnType = "TIMESTAMP"
)

// SQLType retorna o tipo correspondente no PostgreSQL
func (c ColumnType) SQLType() string {
	switch c {
	case ColumnInteger:
		return "BIGINT"
	case ColumnFloat:
		return "DOUBLE PRECISION"
	case ColumnBoolean:
		return "BOOLEAN"
	case ColumnTimestamp:
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}

// Column descreve uma coluna de uma tabela raw
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// Limites de tolerância na carga de arquivos
const (
	MaxBadRecords     = 1000
	SchemaSampleRows  = 500
	SkipLeadingRows   = 1
	DefaultKaggleData = "olistbr/brazilian-ecommerce"
)

var kaggleTableMapping = map[string]string{
	"olist_customers_dataset.csv":           "public-Customers",
	"olist_geolocation_dataset.csv":         "public-Geolocation",
	"olist_order_items_dataset.csv":         "public-Order_Items",
	"olist_order_payments_dataset.csv":      "public-order_payments",
	"olist_order_reviews_dataset.csv":       "public-reviews",
	"olist_orders_dataset.csv":              "public-orders",
	"olist_products_dataset.csv":            "public-products",
	"olist_sellers_dataset.csv":             "public-sellers",
	"product_category_name_translation.csv": "public-product_category",
}

var schemaOverrides = map[string][]Column{
	"public-product_category": {
		{Name: "product_category_name", Type: ColumnString},
		{Name: "product_category_name_english", Type: ColumnString},
	},
}

// KaggleTableMapping retorna uma cópia do mapeamento arquivo -> tabela
func KaggleTableMapping() map[string]string {
	out := make(map[string]string, len(kaggleTableMapping))
	for k, v := range kaggleTableMapping {
		out[k] = v
	}
	return out
}

// TableForFile retorna a tabela de destino de um arquivo
func TableForFile(fileName string) (string, bool) {
	table, ok := kaggleTableMapping[fileName]
	return table, ok
}

// SchemaOverride retorna o schema explícito de uma tabela, quando registrado
func SchemaOverride(table string) ([]Column, bool) {
	cols, ok := schemaOverrides[table]
	if !ok {
		return nil, false
	}
	out := make([]Column, len(cols))
	copy(out, cols)
	return out, true
}

// SalesTables são as tabelas raw de vendas usadas nas estatísticas de extração
func SalesTables() []string {
	tables := make([]string, 0, len(kaggleTableMapping))
	for _, t := range kaggleTableMapping {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	return tables
}

// ValidateSchemaOverrides verifica a consistência do mapeamento, dos schemas explícitos e das séries.
// Deve ser chamada na inicialização do processo.
func ValidateSchemaOverrides() error {
	known := make(map[string]bool, len(kaggleTableMapping))
	for file, table := range kaggleTableMapping {
		if table == "" {
			return fmt.Errorf("mapeamento inválido: arquivo %s sem tabela", file)
		}
		if known[table] {
			return fmt.Errorf("mapeamento inválido: tabela %s duplicada", table)
		}
		known[table] = true
	}

	for table, cols := range schemaOverrides {
		if !known[table] {
			return fmt.Errorf("schema explícito para tabela desconhecida: %s", table)
		}
		if len(cols) == 0 {
			return fmt.Errorf("schema explícito vazio para tabela %s", table)
		}
	}

	ids := make(map[int]Series, len(seriesIDs))
	for _, s := range seriesOrder {
		id, ok := seriesIDs[s]
		if !ok {
			return fmt.Errorf("série %s sem código SGS", s)
		}
		if other, dup := ids[id]; dup {
			return fmt.Errorf("código SGS %d repetido em %s e %s", id, other, s)
		}
		ids[id] = s
	}

	return nil
}
