package webhook

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/webhook/webhookclient"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
)

// SourceFetcher busca os payloads brutos dos dois feeds de analytics.
// Falha de uma fonte nunca afeta a outra: a entrada correspondente volta nil.
type SourceFetcher interface {
	FetchAnalytics(ctx context.Context) (voice []byte, chat []byte)
}

type Integrator struct {
	cfg    *config.Config
	Client webhookclient.Client
}

func New(cfg *config.Config, client webhookclient.Client) SourceFetcher {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchAnalytics dispara as duas buscas em paralelo. Nunca retorna erro: uma
// fonte indisponível é registrada no log do operador e contribui com nil.
func (s *Integrator) FetchAnalytics(ctx context.Context) ([]byte, []byte) {
	var (
		voiceRaw []byte
		chatRaw  []byte
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		raw, err := s.Client.Fetch(ctx, s.cfg.Webhooks.VoiceURL)
		if err != nil {
			logrus.WithError(err).WithField("source", "voice").Error("Falha ao buscar o feed de voz")
			return
		}
		voiceRaw = raw
	}()

	go func() {
		defer wg.Done()
		raw, err := s.Client.Fetch(ctx, s.cfg.Webhooks.ChatURL)
		if err != nil {
			logrus.WithError(err).WithField("source", "chat").Error("Falha ao buscar o feed de chat")
			return
		}
		chatRaw = raw
	}()

	wg.Wait()

	return voiceRaw, chatRaw
}
