package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/internal/pipeline"
	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
	"github.com/nguyentantai21042004/caption-digest/internal/transcript"
	"github.com/nguyentantai21042004/caption-digest/pkg/executor"
)

// app holds everything built once at startup and shared by the commands.
type app struct {
	cfg          *config.Config
	log          logger.Logger
	summarizer   summarizer.Summarizer
	models       []summarizer.ModelDescriptor
	defaultModel string
	pipeline     pipeline.Pipeline
}

// newApp loads config and wires the pipeline. A missing API key stops here,
// before any pipeline activity.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	sum, err := summarizer.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create summarizer: %w", err)
	}

	models, err := sum.ListModels(ctx)
	if err != nil {
		log.Warn(ctx, "Failed to list models, using %s: %v", cfg.Gemini.Model, err)
	}
	defaultModel := summarizer.ChooseDefault(models, cfg.Gemini.Model)
	if defaultModel == "" {
		defaultModel = cfg.Gemini.Model
	}

	fetcher := transcript.New(newSource(cfg), cfg.Transcript.Languages, cfg.Transcript.StrictLanguage, log)

	p := pipeline.New(fetcher, sum, defaultModel, log, pipeline.WithObserver(busyIndicator(log)))

	return &app{
		cfg:          cfg,
		log:          log,
		summarizer:   sum,
		models:       models,
		defaultModel: defaultModel,
		pipeline:     p,
	}, nil
}

// newSource picks the transcript backend named in config.
func newSource(cfg *config.Config) transcript.Source {
	client := &http.Client{Timeout: 30 * time.Second}
	if cfg.Transcript.Backend == config.BackendYtDlp {
		return transcript.NewYtDlpSource(executor.New(), cfg.Transcript.YtDlpPath, client)
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.Transcript.RequestsPerSecond), 1)
	return transcript.NewInnertubeSource(client, transcript.WithLimiter(limiter))
}

// ensureDirectories creates the inbox folders if they don't exist
func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// busyIndicator reports the slow stages so the user knows a run is in progress.
func busyIndicator(log logger.Logger) pipeline.Observer {
	return func(ctx context.Context, s pipeline.State) {
		switch s {
		case pipeline.Fetching:
			log.Info(ctx, "Fetching transcript...")
		case pipeline.Generating:
			log.Info(ctx, "Generating summary...")
		}
	}
}
