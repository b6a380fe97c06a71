package aggregating

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engage-dashboard-api/internal/domain"
	"github.com/vfg2006/engage-dashboard-api/pkg/utils"
)

// maxChartDays limita a série temporal aos dias mais recentes presentes nos dados
const maxChartDays = 30

// bucketizeByDay agrupa timestamps por dia de calendário em UTC. A ordenação
// acontece sobre a data ISO; o rótulo curto de exibição é aplicado só na
// montagem final da resposta. Timestamps inválidos ficam de fora da contagem.
func bucketizeByDay(startedAts []string) []domain.ChartBucket {
	counts := map[string]int{}

	for _, value := range startedAts {
		ts, err := utils.ParseTimestamp(value)
		if err != nil {
			logrus.WithField("started_at", value).Warn("Timestamp inválido excluído do gráfico")
			continue
		}
		counts[utils.ISODate(*ts)]++
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if len(dates) > maxChartDays {
		dates = dates[len(dates)-maxChartDays:]
	}

	buckets := make([]domain.ChartBucket, 0, len(dates))
	for _, date := range dates {
		buckets = append(buckets, domain.ChartBucket{ISODate: date, Count: counts[date]})
	}

	return buckets
}
