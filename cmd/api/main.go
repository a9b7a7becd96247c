package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sendyourfiles/internal/adapters/eventbroker/nats"
	"sendyourfiles/internal/adapters/handlers/http/chi"
	"sendyourfiles/internal/adapters/handlers/http/chi/v1/upload"
	"sendyourfiles/internal/adapters/host"
	"sendyourfiles/internal/adapters/metrics"
	"sendyourfiles/internal/adapters/settings"
	"sendyourfiles/internal/adapters/transport/resty"
	"sendyourfiles/internal/config"
	"sendyourfiles/internal/core/port"
	uploadservice "sendyourfiles/internal/core/service/upload"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	settingsStore := settings.NewStore(cfg.Settings)
	if _, err := settingsStore.HostConfig(ctx); err != nil {
		logger.Error("invalid settings", "error", err)
		os.Exit(1)
	}

	//metrics
	registry := prometheus.NewRegistry()
	observer, err := metrics.NewPrometheusObserver(cfg.Metrics.Namespace, registry)
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}

	//events
	var publisher port.EventPublisher
	if cfg.NATS.Enabled {
		natsPublisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to init NATS publisher", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := natsPublisher.Close(); err != nil {
				logger.Error("failed to close NATS publisher", "error", err)
			}
		}()
		publisher = natsPublisher
		logger.Info("NATS publisher initialized", "subject", cfg.NATS.Subject)
	}

	transport := resty.NewClient(cfg.Transport, logger)
	uploadService, err := uploadservice.NewUploadService(host.NewAdapters(cfg.Hosts), transport, publisher, observer, cfg.Upload, logger)
	if err != nil {
		logger.Error("failed to init upload service", "error", err)
		os.Exit(1)
	}

	//http
	uploadHandler := upload.NewUploadHandlerV1(uploadService, settingsStore, logger)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	router := chi.NewRouter(logger, uploadHandler, metricsHandler, cfg.Env.Env, cfg.Server.MaxUploadBytes)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}
