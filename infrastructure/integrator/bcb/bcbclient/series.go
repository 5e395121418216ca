package bcbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const seriesPlaceholder = "{series_id}"

type SeriesParams struct {
	SeriesID int
	// Datas no formato DD/MM/YYYY. Vazio omite o parâmetro.
	StartDate string
	EndDate   string
}

// Observation é um ponto da série como devolvido pelo SGS
type Observation struct {
	Data  string `json:"data"`
	Valor string `json:"valor"`
}

type SeriesResponse []Observation

func (c *BCBClient) GetSeries(ctx context.Context, params SeriesParams) (SeriesResponse, error) {
	var response SeriesResponse

	// Construir a URL da requisição.
	endpoint, err := url.Parse(strings.ReplaceAll(c.baseURL, seriesPlaceholder, strconv.Itoa(params.SeriesID)))
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	query := endpoint.Query()
	query.Set("formato", "json")
	if params.StartDate != "" {
		query.Set("dataInicial", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("dataFinal", params.EndDate)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição da série %d falhou com status: %s", params.SeriesID, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
