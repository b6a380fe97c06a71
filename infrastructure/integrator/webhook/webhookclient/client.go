package webhookclient

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type WebhookClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &WebhookClient{
		httpClient: &http.Client{
			Timeout: cfg.Webhooks.RequestTimeout,
		},
		config: cfg,
	}
}

// Fetch busca o payload bruto de um feed de webhook. A resposta precisa ser
// JSON válido, mas nenhuma forma é assumida além disso; o normalizador é quem
// resolve envelopes aninhados.
func (c *WebhookClient) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("URL do webhook não configurada")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	// O dashboard exige dados ao vivo
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	if !json.Valid(body) {
		return nil, errors.New("corpo da resposta não é JSON válido")
	}

	return body, nil
}
