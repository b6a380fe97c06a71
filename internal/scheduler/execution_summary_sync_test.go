package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
	"github.com/vfg2006/engage-dashboard-api/internal/domain"
	"github.com/vfg2006/engage-dashboard-api/internal/usecases/executing/mocks"
	"go.uber.org/mock/gomock"
)

func newSyncService(summarizer *mocks.MockExecutionSummarizer, enabled bool) *ExecutionSummarySyncService {
	return &ExecutionSummarySyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config: ExecutionSummarySyncConfig{
			CronSchedule: "*/5 * * * *",
			SyncEnabled:  enabled,
		},
		summarizer: summarizer,
	}
}

func TestExecutionSummarySyncService_syncSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummarizer := mocks.NewMockExecutionSummarizer(ctrl)
	service := newSyncService(mockSummarizer, true)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T)
	}{
		{
			name: "Disparo normal atualiza o snapshot",
			setup: func() {
				mockSummarizer.EXPECT().
					RefreshSummary(gomock.Any()).
					Return(&domain.ExecutionSummary{TotalExecutions: 3}, nil).
					Times(1)
			},
			validate: func(t *testing.T) {
				// Flag de execução liberada para o próximo disparo
				assert.False(t, service.syncRunning)
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Disparo sobreposto é ignorado sem tocar no summarizer",
			setup: func() {
				service.syncRunning = true
				// Nenhuma chamada esperada em RefreshSummary
			},
			validate: func(t *testing.T) {
				assert.True(t, service.syncRunning)
				service.syncRunning = false
			},
		},
		{
			name: "Erro do summarizer não deixa a flag de execução presa",
			setup: func() {
				mockSummarizer.EXPECT().
					RefreshSummary(gomock.Any()).
					Return(nil, errors.New("plataforma de automação indisponível")).
					Times(1)
			},
			validate: func(t *testing.T) {
				assert.False(t, service.syncRunning)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.syncSummary(context.Background())

			tt.validate(t)
		})
	}
}

func TestExecutionSummarySyncService_Start_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummarizer := mocks.NewMockExecutionSummarizer(ctrl)
	service := newSyncService(mockSummarizer, false)

	err := service.Start(context.Background())

	assert.NoError(t, err)
	// Nenhum job agendado quando o pré-aquecimento está desabilitado
	assert.Empty(t, service.scheduler.Jobs())
}

func TestNewExecutionSummarySyncService_CarregaConfiguracao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummarizer := mocks.NewMockExecutionSummarizer(ctrl)

	cfg := &config.Config{
		ExecutionSummary: config.ExecutionSummary{
			CronSchedule: "*/10 * * * *",
			SyncEnabled:  true,
		},
	}

	service := NewExecutionSummarySyncService(mockSummarizer, cfg)

	assert.Equal(t, "*/10 * * * *", service.config.CronSchedule)
	assert.True(t, service.config.SyncEnabled)
	assert.NotNil(t, service.scheduler)
}
