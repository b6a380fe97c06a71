package aggregating

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/webhook/mocks"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
	"github.com/vfg2006/engage-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const voiceFixture = `{"voice_analytics": {
	"summary": {"total_duration_seconds": 300},
	"recent_calls": [
		{"id": "c1", "started_at": "2024-03-01T10:00:00Z", "duration": 60, "price": "1.25"},
		{"id": "c2", "started_at": "2024-03-02T11:00:00Z", "duration": 90, "price": 0.75}
	]
}}`

const chatFixture = `{"chat_analytics": {
	"summary": {},
	"recent_sessions": [
		{"id": "s1", "started_at": "2024-03-02T09:00:00Z", "duration_seconds": 45,
		 "dialogue": "User: Hello\nAgent: Hi there"}
	]
}}`

func TestService_GetDashboardAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockSourceFetcher(ctrl)
	service := NewService(&config.Config{}, mockFetcher)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, result *domain.DashboardAnalytics)
	}{
		{
			name: "falha total das duas fontes degrada para o documento zerado",
			setup: func() {
				mockFetcher.EXPECT().
					FetchAnalytics(gomock.Any()).
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.DashboardAnalytics) {
				assert.Equal(t, 0, result.VoiceAnalytics.Summary.TotalCalls)
				assert.Equal(t, 0, result.ChatAnalytics.Summary.TotalSessions)
				assert.NotNil(t, result.VoiceAnalytics.RecentCalls)
				assert.Empty(t, result.VoiceAnalytics.RecentCalls)
				assert.NotNil(t, result.ChatAnalytics.RecentSessions)
				assert.Empty(t, result.ChatAnalytics.RecentSessions)
				assert.Empty(t, result.VoiceChartData)
				assert.Empty(t, result.ChatChartData)
			},
		},
		{
			name: "documento completo com os dois domínios",
			setup: func() {
				mockFetcher.EXPECT().
					FetchAnalytics(gomock.Any()).
					Return([]byte(voiceFixture), []byte(chatFixture))
			},
			validate: func(t *testing.T, result *domain.DashboardAnalytics) {
				voice := result.VoiceAnalytics
				assert.Equal(t, 2, voice.Summary.TotalCalls)
				assert.Equal(t, float64(300), voice.Summary.TotalDurationSeconds)
				assert.Equal(t, float64(2), voice.Summary.TotalCost)
				assert.Equal(t, float64(1), voice.Summary.AverageCost)
				require.Len(t, voice.RecentCalls, 2)
				assert.Equal(t, "c2", voice.RecentCalls[0].ID)

				require.Len(t, result.VoiceChartData, 2)
				assert.Equal(t, domain.VoiceChartPoint{Date: "Mar 1", Calls: 1}, result.VoiceChartData[0])
				assert.Equal(t, domain.VoiceChartPoint{Date: "Mar 2", Calls: 1}, result.VoiceChartData[1])

				chat := result.ChatAnalytics
				assert.Equal(t, 1, chat.Summary.TotalSessions)
				require.Len(t, chat.RecentSessions, 1)
				assert.Equal(t, float64(45), chat.RecentSessions[0].EffectiveDurationSeconds)
				assert.Equal(t, []domain.DialogueTurn{
					{Sender: "user", Text: "Hello"},
					{Sender: "assistant", Text: "Hi there"},
				}, chat.RecentSessions[0].Dialogue)

				require.Len(t, result.ChatChartData, 1)
				assert.Equal(t, domain.ChatChartPoint{Date: "Mar 2", Sessions: 1}, result.ChatChartData[0])
			},
		},
		{
			name: "uma fonte fora do ar não afeta a outra",
			setup: func() {
				mockFetcher.EXPECT().
					FetchAnalytics(gomock.Any()).
					Return([]byte(voiceFixture), nil)
			},
			validate: func(t *testing.T, result *domain.DashboardAnalytics) {
				assert.Equal(t, 2, result.VoiceAnalytics.Summary.TotalCalls)
				assert.Equal(t, 0, result.ChatAnalytics.Summary.TotalSessions)
				assert.Empty(t, result.ChatAnalytics.RecentSessions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.GetDashboardAnalytics(context.Background())

			require.NoError(t, err)
			require.NotNil(t, result)
			tt.validate(t, result)
		})
	}
}

func TestRecoverDomainPanic_AbsorveEAplicaValorZerado(t *testing.T) {
	resetCalled := false

	// O mesmo par defer + pânico que roda dentro de cada goroutine de domínio
	func() {
		defer recoverDomainPanic(domain.VoiceDomain, func() { resetCalled = true })
		panic("estado inesperado na etapa de métricas")
	}()

	assert.True(t, resetCalled)
}

func TestRecoverDomainPanic_SemPanicoNaoAplicaReset(t *testing.T) {
	resetCalled := false

	func() {
		defer recoverDomainPanic(domain.ChatDomain, func() { resetCalled = true })
	}()

	assert.False(t, resetCalled)
}

func TestRecoverDomainPanic_PanicoEmGoroutineNaoDerrubaAChamada(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	var voiceAnalytics domain.VoiceAnalytics
	var voiceChart []domain.VoiceChartPoint

	go func() {
		defer wg.Done()
		defer recoverDomainPanic(domain.VoiceDomain, func() {
			voiceAnalytics = domain.VoiceAnalytics{RecentCalls: []domain.CallRecord{}}
			voiceChart = []domain.VoiceChartPoint{}
		})
		panic("estado inesperado")
	}()

	// Sem a guarda dentro da goroutine o processo cairia antes do Wait retornar
	wg.Wait()

	assert.NotNil(t, voiceAnalytics.RecentCalls)
	assert.Empty(t, voiceAnalytics.RecentCalls)
	assert.NotNil(t, voiceChart)
	assert.Empty(t, voiceChart)
}

func TestService_GetDashboardAnalytics_EquivalenciaDeCodificacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockSourceFetcher(ctrl)
	service := NewService(&config.Config{}, mockFetcher)

	doublyEncoded, err := json.Marshal(map[string]any{"json": voiceFixture})
	require.NoError(t, err)

	mockFetcher.EXPECT().FetchAnalytics(gomock.Any()).Return([]byte(voiceFixture), nil)
	direct, err := service.GetDashboardAnalytics(context.Background())
	require.NoError(t, err)

	mockFetcher.EXPECT().FetchAnalytics(gomock.Any()).Return(doublyEncoded, nil)
	wrapped, err := service.GetDashboardAnalytics(context.Background())
	require.NoError(t, err)

	// O envelope duplamente codificado normaliza idêntico ao direto
	assert.Equal(t, direct, wrapped)
}
