package transcript

import "errors"

var (
	// ErrTranscriptsDisabled means the provider refuses transcript access for the video.
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	// ErrNoTranscriptFound means no usable transcript track exists.
	ErrNoTranscriptFound = errors.New("no transcript found for this video")
)

// RetrievalError wraps any other transport or parse failure from the provider.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return "failed to fetch transcript: " + e.Err.Error()
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// classify keeps the two provider conditions intact and wraps everything else.
func classify(err error) error {
	if errors.Is(err, ErrTranscriptsDisabled) || errors.Is(err, ErrNoTranscriptFound) {
		return err
	}
	var re *RetrievalError
	if errors.As(err, &re) {
		return err
	}
	return &RetrievalError{Err: err}
}
