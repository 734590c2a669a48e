package transcript

import (
	"context"
	"strings"
)

// Fetch lists the video's tracks, picks one and returns its segments joined into one text.
// There is no retry: the first failure is returned.
func (f *implFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	tracks, err := f.source.ListTracks(ctx, videoID)
	if err != nil {
		return "", classify(err)
	}

	track, err := SelectTrack(tracks, f.languages, f.strict)
	if err != nil {
		return "", err
	}
	f.logger.Debug(ctx, "Using %s transcript track (generated: %t) for %s", track.LanguageCode, track.Generated, videoID)

	segments, err := f.source.FetchSegments(ctx, track)
	if err != nil {
		return "", classify(err)
	}
	if len(segments) == 0 {
		return "", ErrNoTranscriptFound
	}

	f.logger.Info(ctx, "Fetched %d transcript segments for %s", len(segments), videoID)
	return Join(segments), nil
}

// SelectTrack picks the most usable track: a manually created track in a preferred
// language, then a generated one, in preference order. When none matches it falls back
// to the first track unless strict is set.
func SelectTrack(tracks []Track, languages []string, strict bool) (Track, error) {
	if len(tracks) == 0 {
		return Track{}, ErrNoTranscriptFound
	}

	for _, generated := range []bool{false, true} {
		for _, lang := range languages {
			for _, t := range tracks {
				if t.Generated == generated && matchesLanguage(t.LanguageCode, lang) {
					return t, nil
				}
			}
		}
	}

	if strict {
		return Track{}, ErrNoTranscriptFound
	}
	return tracks[0], nil
}

// Join concatenates segment texts with single spaces, keeping playback order.
func Join(segments []Segment) string {
	texts := make([]string, 0, len(segments))
	for _, s := range segments {
		texts = append(texts, s.Text)
	}
	return strings.Join(texts, " ")
}

// matchesLanguage treats "en" as matching "en-US" and "en-GB" as well.
func matchesLanguage(code, want string) bool {
	code = strings.ToLower(code)
	want = strings.ToLower(want)
	return code == want || strings.HasPrefix(code, want+"-")
}
