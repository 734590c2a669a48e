package transcript

import (
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
)

type implFetcher struct {
	source    Source
	languages []string
	strict    bool
	logger    logger.Logger
}

// New creates a Fetcher over source preferring the given language codes in order.
// With strict set, a video lacking all preferred languages fails with ErrNoTranscriptFound.
func New(source Source, languages []string, strict bool, log logger.Logger) Fetcher {
	return &implFetcher{
		source:    source,
		languages: languages,
		strict:    strict,
		logger:    log,
	}
}
