package loading

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vfg2006/sales-economics-api/infrastructure/csvfile"
	"github.com/vfg2006/sales-economics-api/infrastructure/integrator/kaggle/kaggleclient"
	"github.com/vfg2006/sales-economics-api/infrastructure/repository"
	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
	"github.com/vfg2006/sales-economics-api/internal/metrics"
	"github.com/vfg2006/sales-economics-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const (
	loadStatusSuccess = "success"
	loadStatusFailed  = "failed"
)

type Loader interface {
	// EnsureDatasets cria os datasets raw e marts quando ainda não existem
	EnsureDatasets(ctx context.Context) error
	// Download baixa o dataset de vendas e extrai os CSVs em destDir
	Download(ctx context.Context, destDir string) ([]string, error)
	// LoadDirectory carrega todos os CSVs mapeados do diretório
	LoadDirectory(ctx context.Context, dir string) (*domain.BatchReport, error)
	// LoadFile carrega um único arquivo, substituindo a tabela de destino
	LoadFile(ctx context.Context, path string) (domain.ItemOutcome, error)
}

type Service struct {
	cfg          *config.Config
	rawRepo      repository.RawTableRepository
	metadataRepo repository.LoadMetadataRepository
	kaggleClient kaggleclient.Client
	now          func() time.Time
}

func NewService(
	cfg *config.Config,
	rawRepo repository.RawTableRepository,
	metadataRepo repository.LoadMetadataRepository,
	kaggleClient kaggleclient.Client,
) Loader {
	return &Service{
		cfg:          cfg,
		rawRepo:      rawRepo,
		metadataRepo: metadataRepo,
		kaggleClient: kaggleClient,
		now:          time.Now,
	}
}

func (s *Service) EnsureDatasets(ctx context.Context) error {
	if err := s.rawRepo.EnsureDatasets(ctx, s.cfg.Datasets.Raw, s.cfg.Datasets.Marts); err != nil {
		return fmt.Errorf("erro ao criar datasets: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"raw":   s.cfg.Datasets.Raw,
		"marts": s.cfg.Datasets.Marts,
	}).Info("Datasets disponíveis")

	return nil
}

func (s *Service) Download(ctx context.Context, destDir string) ([]string, error) {
	if err := s.cfg.Kaggle.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório %s: %w", destDir, err)
	}

	files, err := s.kaggleClient.DownloadDataset(ctx, s.cfg.Kaggle.Dataset, destDir)
	if err != nil {
		return nil, fmt.Errorf("erro ao baixar dataset %s: %w", s.cfg.Kaggle.Dataset, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset": s.cfg.Kaggle.Dataset,
		"files":   len(files),
	}).Info("Dataset baixado")

	return files, nil
}

func (s *Service) LoadDirectory(ctx context.Context, dir string) (*domain.BatchReport, error) {
	logger := log.ForContext(ctx)
	report := domain.NewBatchReport("load_sales")

	info, err := os.Stat(dir)
	if err != nil {
		return report, fmt.Errorf("diretório de dados inválido %s: %w", dir, err)
	}
	if !info.IsDir() {
		return report, fmt.Errorf("%s não é um diretório", dir)
	}

	// Glob já retorna os caminhos ordenados
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return report, fmt.Errorf("erro ao listar arquivos em %s: %w", dir, err)
	}

	if len(files) == 0 {
		logger.Warnf("Nenhum arquivo CSV encontrado em %s", dir)
	}

	for _, path := range files {
		name := filepath.Base(path)

		if _, ok := domain.TableForFile(name); !ok {
			logger.WithField("file", name).Warn("Arquivo sem tabela mapeada, ignorando")
			metrics.FileLoads.WithLabelValues("", string(domain.OutcomeSkipped)).Inc()
			report.Add(domain.ItemOutcome{
				Item:   name,
				Status: domain.OutcomeSkipped,
				Reason: domain.ErrUnmappedFile.Error(),
			})
			continue
		}

		outcome, err := s.LoadFile(ctx, path)
		if err != nil {
			logger.WithField("file", name).WithError(err).Error("Falha ao carregar arquivo, seguindo para o próximo")
		}
		report.Add(outcome)
	}

	report.Finish()

	logger.WithFields(log.Fields{
		"loaded":  report.Count(domain.OutcomeSuccess),
		"failed":  report.Count(domain.OutcomeFailed),
		"skipped": report.Count(domain.OutcomeSkipped),
		"rows":    report.TotalRows(),
	}).Info("Carga de arquivos concluída")

	return report, nil
}

func (s *Service) LoadFile(ctx context.Context, path string) (domain.ItemOutcome, error) {
	name := filepath.Base(path)
	outcome := domain.ItemOutcome{Item: name}

	table, ok := domain.TableForFile(name)
	if !ok {
		outcome.Status = domain.OutcomeSkipped
		outcome.Reason = domain.ErrUnmappedFile.Error()
		return outcome, fmt.Errorf("%w: %s", domain.ErrUnmappedFile, name)
	}
	outcome.Target = table

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"file":  name,
		"table": table,
	})

	metadata := domain.LoadMetadata{
		TableName: table,
		FileName:  name,
		SourceURI: s.cfg.SourceURI(name),
	}

	rows, badRecords, err := s.load(ctx, path, table, &metadata)
	metadata.LoadTimestamp = s.now().UTC()
	metadata.BadRecords = badRecords

	if err != nil {
		metadata.LoadStatus = loadStatusFailed
		metadata.ErrorMessage = err.Error()
		s.saveMetadata(ctx, metadata)
		metrics.FileLoads.WithLabelValues(table, string(domain.OutcomeFailed)).Inc()

		outcome.Status = domain.OutcomeFailed
		outcome.BadRecords = badRecords
		outcome.Reason = err.Error()
		return outcome, err
	}

	metadata.LoadStatus = loadStatusSuccess
	metadata.RowCount = rows
	s.saveMetadata(ctx, metadata)
	metrics.FileLoads.WithLabelValues(table, string(domain.OutcomeSuccess)).Inc()
	metrics.RowsLoaded.WithLabelValues(table).Add(float64(rows))

	if badRecords > 0 {
		logger.WithField("rows", badRecords).Warn("Registros inválidos ignorados")
	}
	logger.WithField("rows", rows).Info("Arquivo carregado")

	outcome.Status = domain.OutcomeSuccess
	outcome.Rows = rows
	outcome.BadRecords = badRecords
	return outcome, nil
}

func (s *Service) load(ctx context.Context, path, table string, metadata *domain.LoadMetadata) (int64, int, error) {
	hash, err := fileMD5(path)
	if err != nil {
		return 0, 0, err
	}
	metadata.FileHash = hash

	opts := csvfile.DefaultOptions()
	if columns, ok := domain.SchemaOverride(table); ok {
		opts.Columns = columns
	}

	parsed, err := csvfile.Read(path, opts)
	if err != nil {
		return 0, 0, err
	}

	rows, err := s.rawRepo.ReplaceTable(ctx, s.cfg.Datasets.Raw, table, parsed.Columns, parsed.Rows)
	if err != nil {
		return 0, parsed.BadRecords, err
	}

	return rows, parsed.BadRecords, nil
}

// Falha ao gravar metadados não invalida a carga
func (s *Service) saveMetadata(ctx context.Context, metadata domain.LoadMetadata) {
	if err := s.metadataRepo.Save(ctx, metadata); err != nil {
		log.ForContext(ctx).WithField("file", metadata.FileName).WithError(err).Warn("Erro ao gravar metadados de carga")
	}
}

func fileMD5(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("erro ao abrir arquivo %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("erro ao calcular hash de %s: %w", path, err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
