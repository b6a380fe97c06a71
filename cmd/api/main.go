package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/n8n"
	"github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/n8n/n8nclient"
	"github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/webhook"
	"github.com/vfg2006/engage-dashboard-api/infrastructure/integrator/webhook/webhookclient"
	"github.com/vfg2006/engage-dashboard-api/internal/api"
	"github.com/vfg2006/engage-dashboard-api/internal/config"
	"github.com/vfg2006/engage-dashboard-api/internal/scheduler"
	"github.com/vfg2006/engage-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/engage-dashboard-api/internal/usecases/executing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	webhookClient := webhookclient.NewClient(cfg)
	sourceFetcher := webhook.New(cfg, webhookClient)

	n8nClient := n8nclient.NewClient(cfg)
	n8nIntegrator := n8n.New(cfg, n8nClient)

	aggregatorService := aggregating.NewService(cfg, sourceFetcher)
	executionService := executing.NewService(cfg, n8nIntegrator)

	// Pré-aquecimento do snapshot do resumo de execuções em background
	executionSummarySyncService := scheduler.NewExecutionSummarySyncService(executionService, cfg)
	if err := executionSummarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo de execuções")
	} else {
		logrus.Info("Agendador do resumo de execuções iniciado com sucesso")
	}

	server, err := api.New(cfg, aggregatorService, executionService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
