package loading

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	kagglemocks "github.com/vfg2006/sales-economics-api/infrastructure/integrator/kaggle/mocks"
	repomocks "github.com/vfg2006/sales-economics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

// memoryRawTables guarda as tabelas em memória com a mesma semântica de substituição do repositório
type memoryRawTables struct {
	mu       sync.Mutex
	tables   map[string][][]any
	columns  map[string][]domain.Column
	datasets []string
	failOn   string
}

func newMemoryRawTables() *memoryRawTables {
	return &memoryRawTables{
		tables:  make(map[string][][]any),
		columns: make(map[string][]domain.Column),
	}
}

func (m *memoryRawTables) EnsureDatasets(_ context.Context, datasets ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.datasets = append(m.datasets, datasets...)
	return nil
}

func (m *memoryRawTables) ReplaceTable(_ context.Context, dataset, table string, columns []domain.Column, rows [][]any) (int64, error) {
	if table == m.failOn {
		return 0, errors.New("permission denied")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := dataset + "." + table
	m.tables[key] = rows
	m.columns[key] = columns
	return int64(len(rows)), nil
}

func (m *memoryRawTables) CountRows(_ context.Context, dataset, table string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.tables[dataset+"."+table]
	if !ok {
		return 0, errors.New("tabela inexistente")
	}
	return int64(len(rows)), nil
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Datasets.Raw = "brazilian_sales"
	cfg.Datasets.Marts = "brazilian_sales_marts"
	cfg.Storage.BucketName = "sales-raw-data"
	cfg.Kaggle.Dataset = domain.DefaultKaggleData
	return cfg
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sellersCSV = "seller_id,seller_zip_code_prefix,seller_city,seller_state\n" +
	"s1,13023,campinas,SP\n" +
	"s2,13844,mogi guacu,SP\n" +
	"s3,20031,rio de janeiro,RJ\n"

func TestService_LoadFile_Idempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	metadataRepo := repomocks.NewMockLoadMetadataRepository(ctrl)
	metadataRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	raw := newMemoryRawTables()
	svc := NewService(newTestConfig(), raw, metadataRepo, nil)

	path := writeFile(t, t.TempDir(), "olist_sellers_dataset.csv", sellersCSV)

	first, err := svc.LoadFile(context.Background(), path)
	require.NoError(t, err)
	firstCount, err := raw.CountRows(context.Background(), "brazilian_sales", "public-sellers")
	require.NoError(t, err)

	second, err := svc.LoadFile(context.Background(), path)
	require.NoError(t, err)
	secondCount, err := raw.CountRows(context.Background(), "brazilian_sales", "public-sellers")
	require.NoError(t, err)

	assert.Equal(t, int64(3), firstCount)
	assert.Equal(t, firstCount, secondCount)
	assert.Equal(t, first.Rows, second.Rows)
}

func TestService_LoadFile(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		setup    func(metadataRepo *repomocks.MockLoadMetadataRepository)
		hasError bool
		validate func(t *testing.T, outcome domain.ItemOutcome, raw *memoryRawTables)
	}{
		{
			name:    "Deve registrar metadados com hash, origem e contagem",
			file:    "olist_sellers_dataset.csv",
			content: sellersCSV,
			setup: func(metadataRepo *repomocks.MockLoadMetadataRepository) {
				metadataRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m domain.LoadMetadata) error {
						assert.Equal(t, "public-sellers", m.TableName)
						assert.Equal(t, "olist_sellers_dataset.csv", m.FileName)
						assert.Equal(t, "gs://sales-raw-data/olist_sellers_dataset.csv", m.SourceURI)
						assert.Equal(t, "success", m.LoadStatus)
						assert.Equal(t, int64(3), m.RowCount)
						assert.Len(t, m.FileHash, 32)
						assert.False(t, m.LoadTimestamp.IsZero())
						return nil
					})
			},
			validate: func(t *testing.T, outcome domain.ItemOutcome, raw *memoryRawTables) {
				assert.Equal(t, domain.OutcomeSuccess, outcome.Status)
				assert.Equal(t, "public-sellers", outcome.Target)
				assert.Equal(t, int64(3), outcome.Rows)
			},
		},
		{
			name:    "Deve usar o schema explícito da tabela de tradução de categorias",
			file:    "product_category_name_translation.csv",
			content: "product_category_name,product_category_name_english\nbeleza_saude,health_beauty\n1,2\n",
			setup: func(metadataRepo *repomocks.MockLoadMetadataRepository) {
				metadataRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, outcome domain.ItemOutcome, raw *memoryRawTables) {
				assert.Equal(t, int64(2), outcome.Rows)
				columns := raw.columns["brazilian_sales.public-product_category"]
				require.Len(t, columns, 2)
				assert.Equal(t, domain.ColumnString, columns[0].Type)
				assert.Equal(t, domain.ColumnString, columns[1].Type)
				assert.Equal(t, "1", raw.tables["brazilian_sales.public-product_category"][1][0])
			},
		},
		{
			name:    "Falha na escrita deve registrar metadados de falha",
			file:    "olist_orders_dataset.csv",
			content: "order_id,order_status\no1,delivered\n",
			setup: func(metadataRepo *repomocks.MockLoadMetadataRepository) {
				metadataRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m domain.LoadMetadata) error {
						assert.Equal(t, "failed", m.LoadStatus)
						assert.Contains(t, m.ErrorMessage, "permission denied")
						return nil
					})
			},
			hasError: true,
			validate: func(t *testing.T, outcome domain.ItemOutcome, raw *memoryRawTables) {
				assert.Equal(t, domain.OutcomeFailed, outcome.Status)
				assert.Contains(t, outcome.Reason, "permission denied")
			},
		},
		{
			name:    "Erro ao gravar metadados não falha a carga",
			file:    "olist_sellers_dataset.csv",
			content: sellersCSV,
			setup: func(metadataRepo *repomocks.MockLoadMetadataRepository) {
				metadataRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("relation does not exist"))
			},
			validate: func(t *testing.T, outcome domain.ItemOutcome, raw *memoryRawTables) {
				assert.Equal(t, domain.OutcomeSuccess, outcome.Status)
			},
		},
		{
			name:     "Arquivo sem mapeamento não é carregado",
			file:     "notes.csv",
			content:  "a,b\n1,2\n",
			setup:    func(metadataRepo *repomocks.MockLoadMetadataRepository) {},
			hasError: true,
			validate: func(t *testing.T, outcome domain.ItemOutcome, raw *memoryRawTables) {
				assert.Equal(t, domain.OutcomeSkipped, outcome.Status)
				assert.Empty(t, raw.tables)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			metadataRepo := repomocks.NewMockLoadMetadataRepository(ctrl)
			tt.setup(metadataRepo)

			raw := newMemoryRawTables()
			raw.failOn = "public-orders"
			svc := NewService(newTestConfig(), raw, metadataRepo, nil)

			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			outcome, err := svc.LoadFile(context.Background(), path)

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			tt.validate(t, outcome, raw)
		})
	}
}

func TestService_LoadFile_MuitosRegistrosInvalidos(t *testing.T) {
	ctrl := gomock.NewController(t)
	metadataRepo := repomocks.NewMockLoadMetadataRepository(ctrl)
	metadataRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	var b strings.Builder
	b.WriteString("seller_id,seller_zip_code_prefix\n")
	for i := 0; i < 10; i++ {
		b.WriteString("s1,1000\n")
	}
	for i := 0; i <= domain.MaxBadRecords; i++ {
		b.WriteString("s2,1000,extra\n")
	}

	svc := NewService(newTestConfig(), newMemoryRawTables(), metadataRepo, nil)
	path := writeFile(t, t.TempDir(), "olist_sellers_dataset.csv", b.String())

	outcome, err := svc.LoadFile(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrTooManyBadRecords)
	assert.Equal(t, domain.OutcomeFailed, outcome.Status)
}

func TestService_LoadDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	metadataRepo := repomocks.NewMockLoadMetadataRepository(ctrl)
	metadataRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	dir := t.TempDir()
	writeFile(t, dir, "olist_sellers_dataset.csv", sellersCSV)
	writeFile(t, dir, "olist_orders_dataset.csv", "order_id,order_status\no1,delivered\n")
	writeFile(t, dir, "unknown.csv", "a\n1\n")
	writeFile(t, dir, "README.md", "ignorado")

	raw := newMemoryRawTables()
	raw.failOn = "public-orders"
	svc := NewService(newTestConfig(), raw, metadataRepo, nil)

	report, err := svc.LoadDirectory(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, report.Items, 3)
	assert.Equal(t, "olist_orders_dataset.csv", report.Items[0].Item)
	assert.Equal(t, domain.OutcomeFailed, report.Items[0].Status)
	assert.Equal(t, "olist_sellers_dataset.csv", report.Items[1].Item)
	assert.Equal(t, domain.OutcomeSuccess, report.Items[1].Status)
	assert.Equal(t, "unknown.csv", report.Items[2].Item)
	assert.Equal(t, domain.OutcomeSkipped, report.Items[2].Status)
	assert.Equal(t, int64(3), report.TotalRows())
	assert.False(t, report.FinishedAt.IsZero())
}

func TestService_LoadDirectory_DiretorioInexistente(t *testing.T) {
	svc := NewService(newTestConfig(), newMemoryRawTables(), nil, nil)

	_, err := svc.LoadDirectory(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestService_EnsureDatasets(t *testing.T) {
	raw := newMemoryRawTables()
	svc := NewService(newTestConfig(), raw, nil, nil)

	require.NoError(t, svc.EnsureDatasets(context.Background()))
	assert.Equal(t, []string{"brazilian_sales", "brazilian_sales_marts"}, raw.datasets)
}

func TestService_Download(t *testing.T) {
	tests := []struct {
		name     string
		username string
		setup    func(client *kagglemocks.MockClient)
		err      error
	}{
		{
			name:     "Deve baixar o dataset configurado",
			username: "analyst",
			setup: func(client *kagglemocks.MockClient) {
				client.EXPECT().DownloadDataset(gomock.Any(), "olistbr/brazilian-ecommerce", gomock.Any()).
					Return([]string{"olist_orders_dataset.csv"}, nil)
			},
		},
		{
			name:     "Sem credenciais não deve chamar a API",
			username: "",
			setup:    func(client *kagglemocks.MockClient) {},
			err:      domain.ErrMissingCredentials,
		},
		{
			name:     "Erro no download deve ser propagado",
			username: "analyst",
			setup: func(client *kagglemocks.MockClient) {
				client.EXPECT().DownloadDataset(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("401 Unauthorized"))
			},
			err: errors.New("401 Unauthorized"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kagglemocks.NewMockClient(ctrl)
			tt.setup(client)

			cfg := newTestConfig()
			cfg.Kaggle.Username = tt.username
			cfg.Kaggle.Key = "key"

			svc := NewService(cfg, newMemoryRawTables(), nil, client)
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			files, err := svc.Download(ctx, filepath.Join(t.TempDir(), "raw"))

			switch {
			case tt.err == nil:
				require.NoError(t, err)
				assert.Equal(t, []string{"olist_orders_dataset.csv"}, files)
			case errors.Is(tt.err, domain.ErrMissingCredentials):
				assert.ErrorIs(t, err, domain.ErrMissingCredentials)
			default:
				assert.ErrorContains(t, err, tt.err.Error())
			}
		})
	}
}
