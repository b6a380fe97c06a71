package handler

import (
	"net/http"

	"github.com/vfg2006/engage-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/engage-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/engage-dashboard-api/internal/usecases/executing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analytics(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboardAnalytics(service),
		},
	}
}

func Executions(service executing.ExecutionSummarizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/executions/summary",
			Method:  http.MethodGet,
			Handler: GetExecutionSummary(service),
		},
	}
}
