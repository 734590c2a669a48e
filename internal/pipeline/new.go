package pipeline

import (
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
	"github.com/nguyentantai21042004/caption-digest/internal/transcript"
)

type implPipeline struct {
	fetcher      transcript.Fetcher
	generator    summarizer.Generator
	defaultModel string
	logger       logger.Logger
	observer     Observer
	gate         *gate
}

// Option customizes a Pipeline.
type Option func(*implPipeline)

// WithObserver registers fn to receive state transitions.
func WithObserver(fn Observer) Option {
	return func(p *implPipeline) {
		p.observer = fn
	}
}

// New creates a Pipeline. Runs are serialized: a second Run waits for the first.
func New(fetcher transcript.Fetcher, generator summarizer.Generator, defaultModel string, log logger.Logger, opts ...Option) Pipeline {
	p := &implPipeline{
		fetcher:      fetcher,
		generator:    generator,
		defaultModel: defaultModel,
		logger:       log,
		gate:         newGate(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
