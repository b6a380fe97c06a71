package n8nclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	n8ndomain "github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/n8n/domain"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ListExecutions(ctx context.Context) ([]n8ndomain.Execution, error)
}

type N8NClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &N8NClient{
		httpClient: &http.Client{
			Timeout: cfg.N8N.RequestTimeout,
		},
		config: cfg,
	}
}

// ListExecutions consulta as execuções de workflows da plataforma de automação.
// Os erros saem categorizados (autenticação, servidor upstream, genérico) para
// que o handler espelhe a classe de falha no status HTTP.
func (c *N8NClient) ListExecutions(ctx context.Context) ([]n8ndomain.Execution, error) {
	if c.config.N8N.BaseURL == "" || c.config.N8N.APIKey == "" {
		return nil, n8ndomain.ErrMissingConfig
	}

	endpoint, err := url.Parse(c.config.N8N.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/api/v1/executions")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("X-N8N-API-KEY", c.config.N8N.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response n8ndomain.ExecutionListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return response.Data, nil
}

// handleResponse faz a triagem do status HTTP para as categorias de erro
func (c *N8NClient) handleResponse(resp *http.Response) ([]byte, error) {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errors.Wrap(n8ndomain.ErrAuthentication, fmt.Sprintf("status: %s", resp.Status))
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errors.Wrap(n8ndomain.ErrUpstreamServer, fmt.Sprintf("status: %s", resp.Status))
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	return body, nil
}
