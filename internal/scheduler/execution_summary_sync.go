package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
	"github.com/vfg2006/engage-dashboard-api/internal/usecases/executing"
)

// ExecutionSummarySyncConfig representa a configuração do agendador de
// pré-aquecimento do resumo de execuções
type ExecutionSummarySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ExecutionSummarySyncService mantém o snapshot do resumo de execuções quente,
// para que a primeira requisição após a janela de revalidação não pague a
// latência da plataforma de automação
type ExecutionSummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              ExecutionSummarySyncConfig
	summarizer          executing.ExecutionSummarizer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewExecutionSummarySyncService(
	summarizer executing.ExecutionSummarizer,
	appConfig *config.Config,
) *ExecutionSummarySyncService {
	syncConfig := ExecutionSummarySyncConfig{
		CronSchedule: appConfig.ExecutionSummary.CronSchedule,
		SyncEnabled:  appConfig.ExecutionSummary.SyncEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do resumo de execuções carregada")

	return &ExecutionSummarySyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		summarizer: summarizer,
	}
}

// Start inicia o agendador
func (s *ExecutionSummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Pré-aquecimento do resumo de execuções desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do resumo de execuções")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSummary(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o pré-aquecimento do resumo de execuções: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do resumo de execuções")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSummary roda uma atualização do snapshot, ignorando disparos sobrepostos
func (s *ExecutionSummarySyncService) syncSummary(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do resumo de execuções já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	syncCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := s.summarizer.RefreshSummary(syncCtx); err != nil {
		logrus.WithError(err).Error("Erro ao pré-aquecer o resumo de execuções")
		return
	}

	logrus.WithField("duration", time.Since(s.lastSyncStartedAt)).Info("Resumo de execuções pré-aquecido")
}
