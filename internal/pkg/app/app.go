package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"statushub/internal/app/adapters/hub"
	router "statushub/internal/app/adapters/http"
	"statushub/internal/app/adapters/media"
	"statushub/internal/app/adapters/metrics"
	"statushub/internal/app/domain/sweeper"
	"statushub/internal/app/infrastructure/clock"
	"statushub/internal/app/infrastructure/config"
	"statushub/internal/app/infrastructure/storage"
	"statushub/pkg/logger"
)

const configPath = "config.json"

func New() error {
	log := logger.New()

	manager, err := config.New(configPath)
	if err != nil {
		log.Fatal("Error loading config", err)
	}

	cfg := manager.Get()
	log.SetLogLevel(cfg.App.LogLevel)
	gin.SetMode(cfg.App.GinMode)

	prometheus.MustRegister(metrics.SweepDuration)

	clk := clock.New()
	store := storage.New(clk, cfg.Status.TTL)
	h := hub.New(logger.NewPrefixedLogger(log, "hub"), clk)

	resolver, err := media.New(logger.NewPrefixedLogger(log, "media"), cfg.Media.UploadsDir, cfg.Media.BaseURL)
	if err != nil {
		log.Error("Error creating media resolver", err)
		return err
	}

	sw := sweeper.New(logger.NewPrefixedLogger(log, "sweeper"), store, h, clk,
		cfg.Status.SweepInterval, cfg.Status.SweepRetry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go h.Run(ctx)
	go sw.Run(ctx)

	r := router.NewRouter(log, manager, store, h, h, resolver, resolver.Dir())
	log.Info("Statushub started", "addr", cfg.App.ListenAddr, "ttl", cfg.Status.TTL.String())
	return r.Run(ctx)
}
