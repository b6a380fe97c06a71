package handler

import (
	"net/http"

	"github.com/pkg/errors"
	n8ndomain "github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/n8n/domain"
	"github.com/vfg2006/engage-dashboard-api/internal/usecases/executing"
	"github.com/vfg2006/engage-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/engage-dashboard-api/pkg/log"
)

// GetExecutionSummary devolve o resumo de execuções de workflows. Ao contrário
// do endpoint de analytics, este falha alto: o status HTTP espelha a classe da
// falha upstream e o corpo carrega o código categorizado.
func GetExecutionSummary(service executing.ExecutionSummarizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("executions: fetching workflow execution summary")

		summary, err := service.GetSummary(r.Context())
		if err != nil {
			logger.WithError(err).Error("executions: failed to summarize workflow executions")

			switch {
			case errors.Is(err, n8ndomain.ErrAuthentication):
				apiErrors.WriteError(w, apiErrors.ErrUpstreamCredentials, err.Error(), nil)
			case errors.Is(err, n8ndomain.ErrUpstreamServer):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			case errors.Is(err, n8ndomain.ErrMissingConfig):
				apiErrors.WriteError(w, apiErrors.ErrMissingConfig, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"total_executions": summary.TotalExecutions,
			"success_rate":     summary.SuccessRate,
		}).Info("executions: workflow execution summary assembled")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("executions: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
