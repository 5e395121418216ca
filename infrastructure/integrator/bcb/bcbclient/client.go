package bcbclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-economics-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type Client interface {
	GetSeries(ctx context.Context, params SeriesParams) (SeriesResponse, error)
}

type BCBClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente da API SGS do Banco Central
func NewClient(cfg *config.Config) Client {
	timeout := cfg.BCB.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &BCBClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.BCB.BaseURL,
	}
}
