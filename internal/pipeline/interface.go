package pipeline

import "context"

// Request is one user submission.
type Request struct {
	URL string
	// Model overrides the default model when set.
	Model string
}

// Result is what the host displays after a successful run.
type Result struct {
	VideoID      string
	ThumbnailURL string
	Model        string
	Summary      string
}

// Observer is told about every state the run enters.
type Observer func(ctx context.Context, state State)

// Pipeline turns a video link into a study summary
type Pipeline interface {
	Run(ctx context.Context, req Request) (*Result, error)
}
