package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spacesedan/reviewsense/config"
	"github.com/spacesedan/reviewsense/internal/analysis"
	"github.com/spacesedan/reviewsense/internal/classifier"
	appconfig "github.com/spacesedan/reviewsense/internal/config"
	"github.com/spacesedan/reviewsense/internal/logging"
	"github.com/spacesedan/reviewsense/internal/publish"
	"github.com/spacesedan/reviewsense/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg, err := appconfig.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var publisher *publish.ResultPublisher
	var sink server.ResultSink
	if cfg.KafkaEnabled {
		publisher, err = publish.NewResultPublisher(cfg.KafkaBroker, cfg.KafkaResultsTopic)
		if err != nil {
			slog.Error("[Main] Failed to initialize result publisher",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		go publisher.Start(ctx)
		sink = publisher
	}

	var ready atomic.Bool
	srv := server.NewServer(cfg, &ready, sink)

	// Serve immediately so /api/v1/health can report the loading state while
	// the model downloads.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] HTTP server stopped", slog.String("error", err.Error()))
			cancel()
		}
	}()

	clf, closeClassifier, err := buildClassifier(cfg)
	if err != nil {
		slog.Error("[Main] Failed to initialize classifier",
			slog.String("backend", cfg.ClassifierBackend),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeClassifier()

	srv.AttachService(analysis.NewService(clf, cfg.BatchWorkers))
	ready.Store(true)
	slog.Info("[Main] Classifier ready, serving requests",
		slog.String("backend", cfg.ClassifierBackend))

	<-ctx.Done()
	slog.Info("[Main] Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("[Main] HTTP shutdown failed", slog.String("error", err.Error()))
	}
	if publisher != nil {
		publisher.Close()
	}
}

func buildClassifier(cfg *appconfig.Config) (classifier.Classifier, func(), error) {
	switch cfg.ClassifierBackend {
	case appconfig.BackendVader:
		return classifier.NewVaderClassifier(), func() {}, nil
	default:
		clf, err := classifier.NewHugotClassifier(cfg.ModelDir)
		if err != nil {
			return nil, nil, err
		}
		return clf, clf.Close, nil
	}
}
