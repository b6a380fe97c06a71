package n8n

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/n8n/n8nclient"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
	"github.com/vfg2006/engage-dashboard-api/internal/domain"
	"github.com/vfg2006/engage-dashboard-api/pkg/utils"
)

type N8NIntegrator interface {
	GetExecutions(ctx context.Context) ([]domain.Execution, error)
}

type N8NService struct {
	cfg    *config.Config
	Client n8nclient.Client
}

func New(cfg *config.Config, client n8nclient.Client) N8NIntegrator {
	return &N8NService{
		cfg:    cfg,
		Client: client,
	}
}

// GetExecutions converte as execuções do formato da API para o domínio interno.
// Timestamps que não parseiam viram nil e a execução fica sem duração calculável.
func (s *N8NService) GetExecutions(ctx context.Context) ([]domain.Execution, error) {
	wireExecutions, err := s.Client.ListExecutions(ctx)
	if err != nil {
		return nil, err
	}

	executions := make([]domain.Execution, 0, len(wireExecutions))
	for _, wire := range wireExecutions {
		execution := domain.Execution{
			ID:         stringifyID(wire.ID),
			WorkflowID: stringifyID(wire.WorkflowID),
			Status:     wire.Status,
			Finished:   wire.Finished,
		}

		if wire.StartedAt != "" {
			ts, err := utils.ParseTimestamp(wire.StartedAt)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"execution_id": execution.ID,
					"started_at":   wire.StartedAt,
				}).Warn("Timestamp de início inválido em execução")
			} else {
				execution.StartedAt = ts
			}
		}

		if wire.StoppedAt != "" {
			if ts, err := utils.ParseTimestamp(wire.StoppedAt); err == nil {
				execution.StoppedAt = ts
			}
		}

		executions = append(executions, execution)
	}

	return executions, nil
}

// stringifyID normaliza IDs que a API retorna ora como número, ora como string
func stringifyID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
