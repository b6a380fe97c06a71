package aggregating

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/webhook"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
	"github.com/vfg2006/engage-dashboard-api/internal/domain"
	"github.com/vfg2006/engage-dashboard-api/pkg/utils"
)

// Service implementa o Aggregator sobre os dois feeds de webhook
type Service struct {
	cfg           *config.Config
	sourceFetcher webhook.SourceFetcher
}

func NewService(cfg *config.Config, sourceFetcher webhook.SourceFetcher) Aggregator {
	return &Service{
		cfg:           cfg,
		sourceFetcher: sourceFetcher,
	}
}

// GetDashboardAnalytics roda o pipeline completo: busca concorrente das duas
// fontes, depois os dois domínios processados em paralelo (nenhum estado é
// compartilhado entre eles). Um pânico inesperado degrada para o valor zerado:
// o da fase de busca é absorvido aqui, o de cada domínio dentro da própria
// goroutine.
func (s *Service) GetDashboardAnalytics(ctx context.Context) (result *domain.DashboardAnalytics, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logrus.WithField("panic", recovered).Error("Pânico inesperado no pipeline de agregação")
			result = domain.EmptyDashboardAnalytics()
			err = nil
		}
	}()

	voiceRaw, chatRaw := s.sourceFetcher.FetchAnalytics(ctx)

	var (
		voiceAnalytics domain.VoiceAnalytics
		voiceChart     []domain.VoiceChartPoint
		chatAnalytics  domain.ChatAnalytics
		chatChart      []domain.ChatChartPoint
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		defer recoverDomainPanic(domain.VoiceDomain, func() {
			voiceAnalytics = domain.VoiceAnalytics{RecentCalls: []domain.CallRecord{}}
			voiceChart = []domain.VoiceChartPoint{}
		})
		voiceAnalytics, voiceChart = s.processVoiceDomain(voiceRaw)
	}()

	go func() {
		defer wg.Done()
		defer recoverDomainPanic(domain.ChatDomain, func() {
			chatAnalytics = domain.ChatAnalytics{RecentSessions: []domain.SessionRecord{}}
			chatChart = []domain.ChatChartPoint{}
		})
		chatAnalytics, chatChart = s.processChatDomain(chatRaw)
	}()

	wg.Wait()

	return &domain.DashboardAnalytics{
		VoiceAnalytics: voiceAnalytics,
		ChatAnalytics:  chatAnalytics,
		VoiceChartData: voiceChart,
		ChatChartData:  chatChart,
	}, nil
}

// recoverDomainPanic absorve o pânico de uma etapa do pipeline de um domínio e
// aplica o valor zerado via reset. Um pânico dentro de uma goroutine nunca
// alcança o recover da função que a disparou, então a guarda precisa viver
// dentro do corpo de cada goroutine.
func recoverDomainPanic(domainName string, reset func()) {
	if recovered := recover(); recovered != nil {
		logrus.WithFields(logrus.Fields{
			"domain": domainName,
			"panic":  recovered,
		}).Error("Pânico inesperado no processamento do domínio")
		reset()
	}
}

// processVoiceDomain executa a cadeia de normalização, deduplicação, métricas
// e gráfico para o feed de voz. As métricas e o gráfico usam o conjunto
// completo; só a lista de chamadas recentes é truncada.
func (s *Service) processVoiceDomain(raw []byte) (domain.VoiceAnalytics, []domain.VoiceChartPoint) {
	summaryAccum, rawRecords := normalizeDomain(raw, domain.VoiceDomain)

	records := dedupeCallRecords(rawRecords)
	summary := deriveVoiceSummary(summaryAccum, records)

	startedAts := make([]string, 0, len(records))
	for _, record := range records {
		startedAts = append(startedAts, record.StartedAt)
	}

	chart := make([]domain.VoiceChartPoint, 0, maxChartDays)
	for _, bucket := range bucketizeByDay(startedAts) {
		chart = append(chart, domain.VoiceChartPoint{
			Date:  utils.ShortDateLabel(bucket.ISODate),
			Calls: bucket.Count,
		})
	}

	return domain.VoiceAnalytics{
		Summary:     summary,
		RecentCalls: truncateForDisplay(records),
	}, chart
}

// processChatDomain é a cadeia equivalente para o feed de chat; as sessões
// exibidas ganham o diálogo estruturado e a duração efetiva
func (s *Service) processChatDomain(raw []byte) (domain.ChatAnalytics, []domain.ChatChartPoint) {
	summaryAccum, rawRecords := normalizeDomain(raw, domain.ChatDomain)

	records := dedupeSessionRecords(rawRecords)
	summary := deriveChatSummary(summaryAccum, records)

	startedAts := make([]string, 0, len(records))
	for _, record := range records {
		startedAts = append(startedAts, record.StartedAt)
	}

	chart := make([]domain.ChatChartPoint, 0, maxChartDays)
	for _, bucket := range bucketizeByDay(startedAts) {
		chart = append(chart, domain.ChatChartPoint{
			Date:     utils.ShortDateLabel(bucket.ISODate),
			Sessions: bucket.Count,
		})
	}

	display := truncateForDisplay(records)
	sessions := make([]domain.SessionRecord, 0, len(display))
	for _, record := range display {
		record.EffectiveDurationSeconds = record.DurationOrDefault()
		record.Dialogue = parseDialogue(record.RawDialogue)
		sessions = append(sessions, record)
	}

	return domain.ChatAnalytics{
		Summary:        summary,
		RecentSessions: sessions,
	}, chart
}
