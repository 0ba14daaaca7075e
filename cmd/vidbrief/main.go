package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lehoangvu-dev/vidbrief/internal/config"
	"github.com/lehoangvu-dev/vidbrief/internal/logger"
	"github.com/lehoangvu-dev/vidbrief/internal/media"
	"github.com/lehoangvu-dev/vidbrief/internal/pipeline"
	"github.com/lehoangvu-dev/vidbrief/internal/registry"
	"github.com/lehoangvu-dev/vidbrief/internal/server"
	"github.com/lehoangvu-dev/vidbrief/internal/storage"
	"github.com/lehoangvu-dev/vidbrief/internal/summarizer"
	"github.com/lehoangvu-dev/vidbrief/internal/transcriber"
	"github.com/lehoangvu-dev/vidbrief/internal/tts"
	"github.com/lehoangvu-dev/vidbrief/internal/watcher"
	"github.com/lehoangvu-dev/vidbrief/pkg/executor"
	"github.com/lehoangvu-dev/vidbrief/pkg/retry"
)

func main() {
	ctx := context.Background()

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "vidbrief - video summarization pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Bucket: %s", cfg.GCS.Bucket)
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)

	// Initialize external collaborators
	store, err := storage.New(ctx, cfg.GCS.Bucket, log)
	if err != nil {
		log.Error(ctx, "Failed to create storage client: %v", err)
		os.Exit(1)
	}

	trans, err := transcriber.New(ctx, cfg.Speech.Language, log)
	if err != nil {
		log.Error(ctx, "Failed to create transcriber: %v", err)
		os.Exit(1)
	}
	defer trans.Close()

	sum, err := summarizer.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	if err != nil {
		log.Error(ctx, "Failed to create summarizer: %v", err)
		os.Exit(1)
	}

	synth, err := tts.New(ctx, cfg.TTS.Language, cfg.TTS.Voice, log)
	if err != nil {
		log.Error(ctx, "Failed to create speech synthesizer: %v", err)
		os.Exit(1)
	}
	defer synth.Close()

	// Initialize the pipeline core
	exec := executor.New()
	extractor := media.New(exec, store, log)
	reg := registry.New(log)

	retryCfg := retry.Config{
		MaxAttempts: cfg.Pipeline.MaxRetries,
		Backoff: retry.Backoff{
			Initial: cfg.Pipeline.RetryDelay(),
			Factor:  2.0,
			Jitter:  500 * time.Millisecond,
		},
		Logger: log,
	}

	dispatcher := pipeline.New(reg, extractor, trans, sum, store, retryCfg, log)
	srv := server.New(dispatcher, reg, synth, cfg.Pipeline.GraceWindow(), log)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Optional drop-folder intake
	if cfg.Paths.Watch != "" {
		if err := os.MkdirAll(cfg.Paths.Watch, 0755); err != nil {
			log.Error(ctx, "Failed to create watch directory: %v", err)
			os.Exit(1)
		}

		w, err := watcher.New(cfg.Paths.Watch, dispatcher, log)
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				log.Error(ctx, "Watcher error: %v", err)
			}
		}()
		log.Info(ctx, "Drop-folder intake enabled: %s", cfg.Paths.Watch)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv,
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	log.Info(ctx, "Listening on :%d", cfg.Server.Port)
	log.Info(ctx, "Press Ctrl+C to stop")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Server shutdown: %v", err)
	}

	log.Info(ctx, "vidbrief stopped")
}
