package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartvend/infrastructure/loader"
	"github.com/vfg2006/smartvend/internal/api"
	"github.com/vfg2006/smartvend/internal/config"
	"github.com/vfg2006/smartvend/internal/presentation"
	"github.com/vfg2006/smartvend/internal/scheduler"
	"github.com/vfg2006/smartvend/internal/usecases/analyzing"
	"github.com/vfg2006/smartvend/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recordLoader := loader.New(cfg.Analysis.StrictValidation)
	analyzer := analyzing.NewService(recordLoader, metrics.NewPrometheusRecorder(registry))

	dashboard, err := presentation.NewDashboard(cfg.Analysis.CurrencySymbol)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar templates do dashboard")
	}

	reportSyncService := scheduler.NewReportSyncService(analyzer, cfg)
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatório")
	} else {
		logrus.Info("Agendador de relatório iniciado com sucesso")
	}

	server, err := api.New(cfg, analyzer, dashboard, reportSyncService, registry)
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
