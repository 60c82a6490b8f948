package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/btcqr/internal/config"
	"github.com/tdex-network/btcqr/internal/core/application"
	"github.com/tdex-network/btcqr/internal/core/ports"
	"github.com/tdex-network/btcqr/internal/infrastructure/exporter"
	"github.com/tdex-network/btcqr/internal/infrastructure/qrcode"
	"github.com/tdex-network/btcqr/internal/infrastructure/vocabulary"
	httpinterface "github.com/tdex-network/btcqr/internal/interfaces/http"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	vocab := vocabulary.NewEnglish()
	if path := config.GetString(config.WordlistFileKey); path != "" {
		v, err := vocabulary.NewFromFile(path)
		if err != nil {
			log.WithError(err).Fatal("failed to load word list")
		}
		vocab = v
		log.Infof("loaded custom word list from %s", path)
	}

	exp, err := exporter.NewService(config.GetExportDir())
	if err != nil {
		log.WithError(err).Fatal("failed to init exporter")
	}

	var registry *prometheus.Registry
	if config.GetBool(config.EnableMetricsKey) {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	appConfig := &application.Config{
		Renderer:      qrcode.NewService(),
		Vocabulary:    vocab,
		Exporter:      exp,
		WidthPx:       config.GetInt(config.QRWidthKey),
		MarginModules: config.GetInt(config.QRMarginKey),
		Foreground:    config.GetRGB(config.QRForegroundKey),
		Background:    config.GetRGB(config.QRBackgroundKey),
	}
	opts := httpinterface.ServiceOpts{
		Address:         config.GetString(config.ListeningAddrKey),
		RenderRateLimit: config.GetInt(config.RenderRateLimitKey),
		ShutdownTimeout: config.GetDuration(config.ShutdownTimeoutKey),
	}
	if registry != nil {
		appConfig.MetricsRegisterer = registry
		opts.MetricsGatherer = registry
	}

	if err := appConfig.Validate(); err != nil {
		log.WithError(err).Fatal("invalid app config")
	}
	opts.QRSvc = appConfig.QRService()
	logRenderOpts(opts.QRSvc.RenderOpts())

	svc, err := httpinterface.NewService(opts)
	if err != nil {
		log.WithError(err).Fatal("failed to init http interface")
	}

	log.Debug("starting daemon")
	if err := svc.Start(); err != nil {
		log.WithError(err).Fatal("failed to start http interface")
	}
	defer svc.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	log.Debug("exiting")
}

func logRenderOpts(opts ports.RenderOpts) {
	log.WithFields(log.Fields{
		"width":      opts.WidthPx,
		"margin":     opts.MarginModules,
		"foreground": opts.Foreground,
		"background": opts.Background,
	}).Info("qr render settings")
}
