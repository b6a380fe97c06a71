package executing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	n8ndomain "github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/n8n/domain"
	"github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/n8n/mocks"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
	"github.com/vfg2006/engage-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func timePtr(ts time.Time) *time.Time {
	return &ts
}

func finishedExecution(id, status string, started time.Time, duration time.Duration) domain.Execution {
	return domain.Execution{
		ID:        id,
		Status:    status,
		Finished:  true,
		StartedAt: timePtr(started),
		StoppedAt: timePtr(started.Add(duration)),
	}
}

func TestService_GetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	executions := []domain.Execution{
		finishedExecution("1", domain.ExecutionStatusSuccess, base, 10*time.Second),
		finishedExecution("2", domain.ExecutionStatusSuccess, base, 20*time.Second),
		finishedExecution("3", domain.ExecutionStatusSuccess, base, 30*time.Second),
		finishedExecution("4", domain.ExecutionStatusError, base, 20*time.Second),
		{ID: "5", Status: domain.ExecutionStatusRunning, StartedAt: timePtr(base)},
	}

	mockN8N := mocks.NewMockN8NIntegrator(ctrl)
	mockN8N.EXPECT().GetExecutions(gomock.Any()).Return(executions, nil)

	cfg := &config.Config{
		ExecutionSummary: config.ExecutionSummary{CacheTTL: time.Minute},
	}
	service := NewService(cfg, mockN8N)

	summary, err := service.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalExecutions)
	assert.Equal(t, 3, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Running)
	// 3 sucessos sobre 4 encerradas
	assert.Equal(t, 75.0, summary.SuccessRate)
	// média sobre as 4 concluídas: (10+20+30+20)/4
	assert.Equal(t, 20.0, summary.AverageDurationSeconds)
}

func TestService_GetSummary_SnapshotDentroDaJanelaEvitaNovaBusca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockN8N := mocks.NewMockN8NIntegrator(ctrl)
	mockN8N.EXPECT().
		GetExecutions(gomock.Any()).
		Return([]domain.Execution{}, nil).
		Times(1)

	cfg := &config.Config{
		ExecutionSummary: config.ExecutionSummary{CacheTTL: time.Minute},
	}
	service := NewService(cfg, mockN8N)

	first, err := service.GetSummary(context.Background())
	require.NoError(t, err)

	second, err := service.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestService_GetSummary_JanelaExpiradaBuscaDadosVivos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockN8N := mocks.NewMockN8NIntegrator(ctrl)
	mockN8N.EXPECT().
		GetExecutions(gomock.Any()).
		Return([]domain.Execution{}, nil).
		Times(2)

	cfg := &config.Config{
		ExecutionSummary: config.ExecutionSummary{CacheTTL: 0},
	}
	service := NewService(cfg, mockN8N)

	_, err := service.GetSummary(context.Background())
	require.NoError(t, err)

	_, err = service.GetSummary(context.Background())
	require.NoError(t, err)
}

func TestService_GetSummary_ErroCategorizadoPropaga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockN8N := mocks.NewMockN8NIntegrator(ctrl)
	mockN8N.EXPECT().
		GetExecutions(gomock.Any()).
		Return(nil, errors.Wrap(n8ndomain.ErrAuthentication, "status: 401 Unauthorized"))

	cfg := &config.Config{
		ExecutionSummary: config.ExecutionSummary{CacheTTL: time.Minute},
	}
	service := NewService(cfg, mockN8N)

	summary, err := service.GetSummary(context.Background())

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, n8ndomain.ErrAuthentication))
}
