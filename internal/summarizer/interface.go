package summarizer

import "context"

// Generator turns a built prompt into a study summary using the named model.
type Generator interface {
	Generate(ctx context.Context, prompt, model string) (string, error)
}

// Registry lists the models the account may use for content generation.
type Registry interface {
	ListModels(ctx context.Context) ([]ModelDescriptor, error)
}

// Summarizer is the Gemini-backed Generator and Registry.
type Summarizer interface {
	Generator
	Registry
}

// ModelDescriptor describes one model offered by the registry.
type ModelDescriptor struct {
	Name             string
	DisplayName      string
	SupportedActions []string
	OutputTokenLimit int32
}
