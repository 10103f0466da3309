package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pcbinspect/internal/api"
	"pcbinspect/internal/api/handler/v1handler"
	"pcbinspect/internal/config"
	"pcbinspect/internal/inspector"
	"pcbinspect/internal/live"
	"pcbinspect/internal/notify"
	"pcbinspect/internal/worker"
	"pcbinspect/pkg/backend/httpbackend"
	"pcbinspect/pkg/logger"
	"pcbinspect/pkg/metrics"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupNotifier connects to the MQTT broker, or returns a no-op notifier when
// none is configured.
func setupNotifier(ctx context.Context, cfg *config.Config) (inspector.Notifier, func()) {
	if cfg.MQTT.Broker == "" {
		logger.Info(ctx, "no mqtt broker configured, result events are not published")

		return notify.Nop{}, func() {}
	}

	n, disconnect, err := notify.Connect(ctx, notify.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not connect to mqtt broker", zap.Error(err))
	}

	return n, disconnect
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server, live relay and sync workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			relayMetrics, err := metrics.NewRelay(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not register relay metrics", zap.Error(err))
			}

			client := getBackend(ctx, cfg, httpbackend.WithMeterProvider(mp))

			notifier, closeNotifier := setupNotifier(ctx, cfg)
			defer closeNotifier()

			insp := inspector.New(client, strg, notifier, inspector.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, insp, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start sync workers", zap.Error(err))
			}

			if cfg.Sync.OnStart {
				n, err := insp.SyncAll(ctx)
				if err != nil {
					logger.Warn(ctx, "could not queue initial sync", zap.Error(err))
				} else {
					logger.Info(ctx, "queued initial sync", zap.Int("pcbs", n))
				}
			}

			liveManager := live.NewManager(ctx, client, insp, nil, live.NewOptions(cfg, relayMetrics))

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Inspector:      insp,
					Live:           liveManager,
					MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
				},
				Database:      strg,
				MeterProvider: mp,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping live relay...")
			liveManager.Stop(shutdownCtx)

			logger.Info(shutdownCtx, "stopping sync workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop sync workers", zap.Error(err))
			}

			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
