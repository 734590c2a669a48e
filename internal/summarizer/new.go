package summarizer

import (
	"context"
	"fmt"
	"iter"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
)

// modelsAPI is the part of genai.Models used here.
type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	All(ctx context.Context) iter.Seq2[*genai.Model, error]
}

type implSummarizer struct {
	models          modelsAPI
	temperature     float32
	maxOutputTokens int32
	logger          logger.Logger
}

// New creates a Summarizer with one Gemini client for the process lifetime.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Summarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return newWithModels(client.Models, cfg, log), nil
}

func newWithModels(models modelsAPI, cfg *config.Config, log logger.Logger) *implSummarizer {
	return &implSummarizer{
		models:          models,
		temperature:     cfg.Gemini.Temperature,
		maxOutputTokens: cfg.Gemini.MaxOutputTokens,
		logger:          log,
	}
}
