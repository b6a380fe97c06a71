package aggregating

import (
	"github.com/vfg2006/engage-dashboard-api/internal/domain"
	"github.com/vfg2006/engage-dashboard-api/pkg/utils"
)

// deriveVoiceSummary parte do sumário reportado pelos webhooks e preenche o que
// falta a partir do conjunto COMPLETO deduplicado (não da lista de exibição).
func deriveVoiceSummary(upstream map[string]any, records []domain.CallRecord) domain.VoiceSummary {
	summary := domain.VoiceSummary{
		TotalCalls:             int(utils.ToFloat(upstream["total_calls"])),
		AverageDurationSeconds: utils.ToFloat(upstream["average_duration_seconds"]),
	}

	if summary.TotalCalls == 0 {
		summary.TotalCalls = len(records)
	}

	// total_duration_seconds só é derivado quando o upstream não reportou o
	// campo; um zero reportado é mantido como está
	if _, reported := upstream["total_duration_seconds"]; reported {
		summary.TotalDurationSeconds = utils.ToFloat(upstream["total_duration_seconds"])
	} else {
		total := 0.0
		for _, record := range records {
			total += record.Duration
		}
		summary.TotalDurationSeconds = total
	}

	if _, reported := upstream["average_duration_seconds"]; !reported && summary.TotalCalls > 0 {
		summary.AverageDurationSeconds = utils.RoundWithTwoDecimalPlace(
			summary.TotalDurationSeconds / float64(summary.TotalCalls),
		)
	}

	// Custos sempre derivam dos registros: preço ausente vale 0
	totalCost := 0.0
	for _, record := range records {
		totalCost += record.Price
	}
	summary.TotalCost = utils.RoundWithTwoDecimalPlace(totalCost)

	if summary.TotalCalls > 0 {
		summary.AverageCost = utils.RoundWithTwoDecimalPlace(summary.TotalCost / float64(summary.TotalCalls))
	}

	return summary
}

// deriveChatSummary repassa o que o upstream reportou; só a contagem de
// sessões é completada a partir dos registros quando ausente ou zerada
func deriveChatSummary(upstream map[string]any, records []domain.SessionRecord) domain.ChatSummary {
	summary := domain.ChatSummary{
		TotalSessions:          int(utils.ToFloat(upstream["total_sessions"])),
		TotalDurationSeconds:   utils.ToFloat(upstream["total_duration_seconds"]),
		AverageDurationSeconds: utils.ToFloat(upstream["average_duration_seconds"]),
	}

	if summary.TotalSessions == 0 {
		summary.TotalSessions = len(records)
	}

	return summary
}
