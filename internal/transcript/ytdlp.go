package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/caption-digest/pkg/executor"
)

const (
	origSuffix = "-orig"
	json3Ext   = "json3"
)

type subtitleItem struct {
	Ext string `json:"ext"`
	URL string `json:"url"`
}

// ytdlpOutput holds the parts of `yt-dlp --dump-single-json` used here. Both maps are keyed
// by language code; automatic captions also list machine translations, only the "-orig"
// entry is the spoken language.
type ytdlpOutput struct {
	ID                string                    `json:"id"`
	Subtitles         map[string][]subtitleItem `json:"subtitles"`
	AutomaticCaptions map[string][]subtitleItem `json:"automatic_captions"`
}

type json3Doc struct {
	Events []struct {
		TStartMs    int64 `json:"tStartMs"`
		DDurationMs int64 `json:"dDurationMs"`
		Segs        []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

type ytdlpSource struct {
	executor executor.Executor
	binary   string
	client   *http.Client
}

// NewYtDlpSource lists tracks by running yt-dlp and downloads them in json3 format.
func NewYtDlpSource(exec executor.Executor, binary string, client *http.Client) Source {
	if client == nil {
		client = http.DefaultClient
	}
	if binary == "" {
		binary = "yt-dlp"
	}
	return &ytdlpSource{executor: exec, binary: binary, client: client}
}

func (s *ytdlpSource) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	out, err := s.executor.Execute(ctx, s.binary,
		"--skip-download",
		"--dump-single-json",
		"--no-warnings",
		"https://www.youtube.com/watch?v="+videoID,
	)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}

	var meta ytdlpOutput
	if err := json.Unmarshal([]byte(out), &meta); err != nil {
		return nil, fmt.Errorf("unmarshal yt-dlp output: %w", err)
	}

	tracks := append(
		collectTracks(meta.Subtitles, false),
		collectTracks(meta.AutomaticCaptions, true)...,
	)
	if len(tracks) == 0 {
		return nil, ErrNoTranscriptFound
	}
	return tracks, nil
}

func (s *ytdlpSource) FetchSegments(ctx context.Context, track Track) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download subtitle track: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read subtitle track: %w", err)
	}
	return parseJSON3(data)
}

// collectTracks keeps json3 items; for automatic captions only the original language.
// Languages are sorted so the fallback track is stable.
func collectTracks(m map[string][]subtitleItem, generated bool) []Track {
	langs := make([]string, 0, len(m))
	for lang := range m {
		if generated && !strings.HasSuffix(lang, origSuffix) {
			continue
		}
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	var out []Track
	for _, lang := range langs {
		for _, it := range m[lang] {
			if it.Ext != json3Ext {
				continue
			}
			code := strings.TrimSuffix(lang, origSuffix)
			out = append(out, Track{
				LanguageCode: code,
				Language:     code,
				Generated:    generated,
				URL:          it.URL,
			})
			break
		}
	}
	return out
}

func parseJSON3(data []byte) ([]Segment, error) {
	var doc json3Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json3 track: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Events))
	for _, ev := range doc.Events {
		var b strings.Builder
		for _, seg := range ev.Segs {
			b.WriteString(seg.UTF8)
		}
		text := cleanText(b.String())
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    float64(ev.TStartMs) / 1000,
			Duration: float64(ev.DDurationMs) / 1000,
		})
	}
	return segments, nil
}
