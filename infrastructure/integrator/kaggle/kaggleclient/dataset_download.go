package kaggleclient

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// DownloadDataset baixa o zip do dataset (owner/name) e extrai os arquivos CSV em destDir.
// Retorna os caminhos extraídos em ordem alfabética.
func (c *KaggleClient) DownloadDataset(ctx context.Context, dataset string, destDir string) ([]string, error) {
	if !strings.Contains(dataset, "/") {
		return nil, fmt.Errorf("dataset inválido %q: esperado owner/nome", dataset)
	}

	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "datasets/download", dataset)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.SetBasicAuth(c.config.Username, c.config.Key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download do dataset %s falhou com status: %s", dataset, resp.Status)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório %s: %w", destDir, err)
	}

	archive, err := os.CreateTemp(destDir, "dataset-*.zip")
	if err != nil {
		return nil, fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}
	defer func() {
		_ = archive.Close()
		_ = os.Remove(archive.Name())
	}()

	if _, err := io.Copy(archive, resp.Body); err != nil {
		return nil, fmt.Errorf("erro ao gravar o download: %w", err)
	}

	return extractCSVFiles(archive.Name(), destDir)
}

func extractCSVFiles(archivePath, destDir string) ([]string, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o zip: %w", err)
	}
	defer reader.Close()

	extracted := make([]string, 0, len(reader.File))
	for _, file := range reader.File {
		if file.FileInfo().IsDir() || !strings.EqualFold(filepath.Ext(file.Name), ".csv") {
			continue
		}

		// Só o nome do arquivo é usado no destino
		name := filepath.Base(filepath.FromSlash(file.Name))
		if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
			return nil, fmt.Errorf("nome de arquivo inválido no zip: %s", file.Name)
		}
		target := filepath.Join(destDir, name)

		if err := extractFile(file, target); err != nil {
			return nil, err
		}
		extracted = append(extracted, target)
	}

	sort.Strings(extracted)
	return extracted, nil
}

func extractFile(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("erro ao abrir %s no zip: %w", file.Name, err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("erro ao criar %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("erro ao extrair %s: %w", file.Name, err)
	}
	return nil
}
