package kaggleclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-economics-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type Client interface {
	DownloadDataset(ctx context.Context, dataset string, destDir string) ([]string, error)
}

type KaggleClient struct {
	httpClient *http.Client
	config     config.Kaggle
}

// NewClient cria o cliente de download de datasets do Kaggle
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Kaggle.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}

	return &KaggleClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg.Kaggle,
	}
}
