package bcb

import (
	"context"
	"time"

	"github.com/vfg2006/sales-economics-api/infrastructure/integrator/bcb/bcbclient"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type BCBIntegrator interface {
	GetSeries(ctx context.Context, series domain.Series, start, end *time.Time) ([]bcbclient.Observation, error)
}

type BCBService struct {
	Client bcbclient.Client
}

func New(client bcbclient.Client) BCBIntegrator {
	return &BCBService{
		Client: client,
	}
}

func (s *BCBService) GetSeries(ctx context.Context, series domain.Series, start, end *time.Time) ([]bcbclient.Observation, error) {
	params := bcbclient.SeriesParams{
		SeriesID: series.ID(),
	}
	if start != nil {
		params.StartDate = start.Format(domain.BCBDateLayout)
	}
	if end != nil {
		params.EndDate = end.Format(domain.BCBDateLayout)
	}

	resp, err := s.Client.GetSeries(ctx, params)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
