package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/engage-dashboard-api/internal/domain"
	"github.com/vfg2006/engage-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/engage-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetDashboardAnalytics devolve o documento agregado do dashboard. Falha de
// agregação não vira erro HTTP: o cliente recebe o documento zerado bem
// formado e o problema fica nos logs do operador.
func GetDashboardAnalytics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("analytics: aggregating dashboard analytics")

		analytics, err := service.GetDashboardAnalytics(r.Context())
		if err != nil {
			logger.WithError(err).Error("analytics: aggregation failed, returning zero-valued document")
			analytics = domain.EmptyDashboardAnalytics()
		}

		logger.WithFields(log.Fields{
			"total_calls":    analytics.VoiceAnalytics.Summary.TotalCalls,
			"total_sessions": analytics.ChatAnalytics.Summary.TotalSessions,
		}).Info("analytics: dashboard analytics assembled")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analytics); err != nil {
			logger.WithError(err).Error("analytics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
