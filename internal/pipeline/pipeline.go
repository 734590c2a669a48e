package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/caption-digest/internal/metrics"
	"github.com/nguyentantai21042004/caption-digest/internal/prompt"
	"github.com/nguyentantai21042004/caption-digest/internal/videoid"
)

// Run extracts the video ID, fetches the transcript, builds the prompt and generates the
// summary, strictly in that order. Any failure ends the run with a *Error and no Result.
// Run sets no deadline of its own; ctx carries the caller's.
func (p *implPipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if err := p.gate.enter(ctx); err != nil {
		return nil, fmt.Errorf("wait for pipeline: %w", err)
	}
	defer p.gate.leave()

	metrics.PipelineInFlight.Inc()
	defer metrics.PipelineInFlight.Dec()

	startTime := time.Now()

	// Step 1: Extract video ID
	stage := p.enter(ctx, Extracting)
	id, ok := videoid.Extract(req.URL)
	if !ok {
		return nil, p.fail(ctx, &Error{Kind: KindInvalidURL, Err: ErrInvalidURL})
	}
	metrics.ObserveStage(Extracting.String(), stage)
	p.logger.Info(ctx, "Video ID: %s", id)

	// Step 2: Fetch transcript
	stage = p.enter(ctx, Fetching)
	text, err := p.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, p.fail(ctx, fetchError(err))
	}
	metrics.ObserveStage(Fetching.String(), stage)

	// Step 3: Build prompt
	stage = p.enter(ctx, Prompting)
	built := prompt.Build(text)
	metrics.ObserveStage(Prompting.String(), stage)

	// Step 4: Generate summary
	model := req.Model
	if model == "" {
		model = p.defaultModel
	}
	stage = p.enter(ctx, Generating)
	summary, err := p.generator.Generate(ctx, built, model)
	if err != nil {
		return nil, p.fail(ctx, &Error{Kind: KindGenerationFailed, Err: err})
	}
	metrics.ObserveStage(Generating.String(), stage)

	p.enter(ctx, Displaying)
	metrics.RecordRun("ok")
	p.logger.Info(ctx, "Summary for %s ready in %s (%d transcript bytes, model %s)", id, time.Since(startTime).Round(time.Millisecond), len(text), model)

	return &Result{
		VideoID:      id,
		ThumbnailURL: videoid.ThumbnailURL(id),
		Model:        model,
		Summary:      summary,
	}, nil
}

func (p *implPipeline) enter(ctx context.Context, s State) time.Time {
	p.logger.Debug(ctx, "Pipeline state: %s", s)
	if p.observer != nil {
		p.observer(ctx, s)
	}
	return time.Now()
}

func (p *implPipeline) fail(ctx context.Context, e *Error) error {
	p.enter(ctx, Failed)
	metrics.RecordRun(string(e.Kind))
	p.logger.Warn(ctx, "Pipeline failed (%s): %s", e.Kind, e.Message())
	return e
}
