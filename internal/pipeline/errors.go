package pipeline

import (
	"errors"

	"github.com/nguyentantai21042004/caption-digest/internal/transcript"
)

// Kind classifies a failed submission.
type Kind string

const (
	KindInvalidURL          Kind = "invalid_url"
	KindTranscriptsDisabled Kind = "transcripts_disabled"
	KindNoTranscriptFound   Kind = "no_transcript_found"
	KindRetrievalFailed     Kind = "retrieval_failed"
	KindGenerationFailed    Kind = "generation_failed"
)

// ErrInvalidURL is the cause of a KindInvalidURL failure.
var ErrInvalidURL = errors.New("no video ID found")

// Error is the single failure a submission can end with.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Message()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the text shown to the user; it never contains a stack trace.
func (e *Error) Message() string {
	switch e.Kind {
	case KindInvalidURL:
		return "Invalid YouTube URL: no video ID found."
	case KindTranscriptsDisabled:
		return "Transcripts are disabled for this video."
	case KindNoTranscriptFound:
		return "No transcript found for this video."
	case KindRetrievalFailed:
		return "Failed to fetch transcript: " + cause(e.Err)
	case KindGenerationFailed:
		return "Failed to generate summary: " + cause(e.Err)
	}
	return "Unexpected error: " + cause(e.Err)
}

// KindOf returns the failure kind of err, or "" when err is not a pipeline error.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func fetchError(err error) *Error {
	switch {
	case errors.Is(err, transcript.ErrTranscriptsDisabled):
		return &Error{Kind: KindTranscriptsDisabled, Err: err}
	case errors.Is(err, transcript.ErrNoTranscriptFound):
		return &Error{Kind: KindNoTranscriptFound, Err: err}
	}
	return &Error{Kind: KindRetrievalFailed, Err: err}
}

// cause drops the transcript package's own prefix so messages don't repeat it.
func cause(err error) string {
	if err == nil {
		return "unknown error"
	}
	var re *transcript.RetrievalError
	if errors.As(err, &re) && re.Err != nil {
		return re.Err.Error()
	}
	return err.Error()
}
