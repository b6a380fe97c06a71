package n8nclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	n8ndomain "github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/n8n/domain"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
)

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		N8N: config.N8N{
			BaseURL:        baseURL,
			APIKey:         "test-key",
			RequestTimeout: 5 * time.Second,
		},
	}
}

func TestN8NClient_ListExecutions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/executions", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-N8N-API-KEY"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [
			{"id": 101, "workflowId": "wf-1", "status": "success", "finished": true,
			 "startedAt": "2024-07-01T09:00:00.000Z", "stoppedAt": "2024-07-01T09:00:12.000Z"},
			{"id": "102", "workflowId": "wf-2", "status": "running", "finished": false,
			 "startedAt": "2024-07-01T09:05:00.000Z"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))

	executions, err := client.ListExecutions(context.Background())

	require.NoError(t, err)
	require.Len(t, executions, 2)
	assert.Equal(t, "success", executions[0].Status)
	assert.True(t, executions[0].Finished)
	assert.Equal(t, "running", executions[1].Status)
}

func TestN8NClient_ListExecutions_ErrosCategorizados(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected error
	}{
		{name: "credenciais rejeitadas", status: http.StatusUnauthorized, expected: n8ndomain.ErrAuthentication},
		{name: "acesso proibido", status: http.StatusForbidden, expected: n8ndomain.ErrAuthentication},
		{name: "erro interno no upstream", status: http.StatusInternalServerError, expected: n8ndomain.ErrUpstreamServer},
		{name: "gateway fora do ar", status: http.StatusBadGateway, expected: n8ndomain.ErrUpstreamServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(newTestConfig(server.URL))

			executions, err := client.ListExecutions(context.Background())

			assert.Nil(t, executions)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected))
		})
	}
}

func TestN8NClient_ListExecutions_StatusInesperadoViraErroGenerico(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))

	_, err := client.ListExecutions(context.Background())

	require.Error(t, err)
	assert.False(t, errors.Is(err, n8ndomain.ErrAuthentication))
	assert.False(t, errors.Is(err, n8ndomain.ErrUpstreamServer))
}

func TestN8NClient_ListExecutions_ConfiguracaoAusente(t *testing.T) {
	client := NewClient(&config.Config{})

	_, err := client.ListExecutions(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, n8ndomain.ErrMissingConfig))
}
