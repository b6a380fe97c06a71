package executing

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/n8n"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
	"github.com/vfg2006/engage-dashboard-api/internal/domain"
	"github.com/vfg2006/engage-dashboard-api/pkg/utils"
)

// ExecutionSummarizer resume as execuções de workflows da plataforma de
// automação. Diferente da agregação de analytics, este caminho falha alto: os
// erros sobem categorizados porque exigem ação do operador.
type ExecutionSummarizer interface {
	GetSummary(ctx context.Context) (*domain.ExecutionSummary, error)
	RefreshSummary(ctx context.Context) (*domain.ExecutionSummary, error)
}

// Service mantém um snapshot imutável do resumo, trocado atomicamente a cada
// revalidação; leitores nunca observam um resumo parcialmente escrito
type Service struct {
	cfg        *config.Config
	n8nService n8n.N8NIntegrator

	mu        sync.RWMutex
	snapshot  *domain.ExecutionSummary
	fetchedAt time.Time
}

func NewService(cfg *config.Config, n8nService n8n.N8NIntegrator) *Service {
	return &Service{
		cfg:        cfg,
		n8nService: n8nService,
	}
}

// GetSummary serve o snapshot em cache enquanto estiver dentro da janela de
// revalidação; expirado (ou inexistente), busca dados ao vivo
func (s *Service) GetSummary(ctx context.Context) (*domain.ExecutionSummary, error) {
	s.mu.RLock()
	if s.snapshot != nil && time.Since(s.fetchedAt) < s.cfg.ExecutionSummary.CacheTTL {
		snapshot := s.snapshot
		s.mu.RUnlock()
		return snapshot, nil
	}
	s.mu.RUnlock()

	// Chamadas concorrentes após a janela expirar podem disparar buscas
	// paralelas; a última escrita vence o snapshot. O pré-aquecimento via
	// agendador mantém esse caminho raro.
	return s.RefreshSummary(ctx)
}

// RefreshSummary busca as execuções ao vivo e troca o snapshot. Erros da
// integração não degradam: a categoria (autenticação, upstream, genérico)
// chega intacta ao handler.
func (s *Service) RefreshSummary(ctx context.Context) (*domain.ExecutionSummary, error) {
	executions, err := s.n8nService.GetExecutions(ctx)
	if err != nil {
		return nil, err
	}

	summary := summarizeExecutions(executions)

	s.mu.Lock()
	s.snapshot = summary
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"total_executions": summary.TotalExecutions,
		"success_rate":     summary.SuccessRate,
	}).Debug("Snapshot do resumo de execuções atualizado")

	return summary, nil
}

// summarizeExecutions computa contagens por status, taxa de sucesso sobre as
// execuções encerradas e duração média sobre as concluídas
func summarizeExecutions(executions []domain.Execution) *domain.ExecutionSummary {
	summary := &domain.ExecutionSummary{
		TotalExecutions: len(executions),
		GeneratedAt:     time.Now().UTC(),
	}

	totalDuration := 0.0
	completed := 0

	for _, execution := range executions {
		switch execution.Status {
		case domain.ExecutionStatusSuccess:
			summary.Succeeded++
		case domain.ExecutionStatusError, "crashed", "failed":
			summary.Failed++
		case domain.ExecutionStatusRunning, "waiting":
			summary.Running++
		}

		if execution.Finished && execution.StartedAt != nil && execution.StoppedAt != nil {
			totalDuration += execution.DurationSeconds()
			completed++
		}
	}

	finished := summary.Succeeded + summary.Failed
	if finished > 0 {
		summary.SuccessRate = utils.RoundWithTwoDecimalPlace(
			float64(summary.Succeeded) / float64(finished) * 100,
		)
	}

	if completed > 0 {
		summary.AverageDurationSeconds = utils.RoundWithTwoDecimalPlace(totalDuration / float64(completed))
	}

	return summary
}
