package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"shortener/internal/api"
	"shortener/internal/config"
	"shortener/internal/shortener"
	"shortener/internal/worker"
	"shortener/pkg/logger"
	"shortener/pkg/storage/postgres"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
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

func setupWorkers(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	riverClient, err := worker.Start(ctx, strg.Pool, strg, cfg.Shortener.TitleResolutionTimeout)
	if err != nil {
		logger.Fatal(ctx, "could not start background workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping background workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop background workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := shortener.New(strg, nil, shortener.NewOptions(cfg))

			stopWebserver := setupServer(ctx, cfg, api.Deps{Shortener: svc})
			stopWorkers := setupWorkers(ctx, cfg, strg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
