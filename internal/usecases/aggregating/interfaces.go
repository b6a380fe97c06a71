package aggregating

import (
	"context"

	"github.com/vfg2006/engage-dashboard-api/internal/domain"
)

// Aggregator monta o documento de analytics do dashboard a partir dos dois
// feeds de webhook. Degrada para o documento zerado, nunca para um erro de
// pipeline: o erro retornado só sinaliza falhas inesperadas no próprio handler.
type Aggregator interface {
	GetDashboardAnalytics(ctx context.Context) (*domain.DashboardAnalytics, error)
}
