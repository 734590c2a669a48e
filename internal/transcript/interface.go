package transcript

import "context"

// Segment is one timed piece of caption text, in playback order within its track.
type Segment struct {
	Text     string
	Start    float64
	Duration float64
}

// Track is one caption track offered for a video.
type Track struct {
	LanguageCode string
	Language     string
	Generated    bool
	URL          string
}

// Source lists and downloads caption tracks from an external transcript provider
type Source interface {
	ListTracks(ctx context.Context, videoID string) ([]Track, error)
	FetchSegments(ctx context.Context, track Track) ([]Segment, error)
}

// Fetcher retrieves the flattened transcript text of a video
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}
