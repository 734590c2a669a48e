package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL         = "https://www.youtube.com"
	innertubeClientName    = "ANDROID"
	innertubeClientVersion = "20.10.38"
	browserUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

var apiKeyPattern = regexp.MustCompile(`"INNERTUBE_API_KEY":\s*"([a-zA-Z0-9_-]+)"`)

type innertubeSource struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// InnertubeOption customizes the innertube source.
type InnertubeOption func(*innertubeSource)

// WithBaseURL points the source at a different YouTube origin.
func WithBaseURL(u string) InnertubeOption {
	return func(s *innertubeSource) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

// WithLimiter makes every request to YouTube wait for l.
func WithLimiter(l *rate.Limiter) InnertubeOption {
	return func(s *innertubeSource) {
		s.limiter = l
	}
}

// NewInnertubeSource reads caption tracks the way the YouTube web player does: the watch
// page yields the innertube API key, the player endpoint lists the tracks and each track
// is downloaded as timedtext XML. A nil client means http.DefaultClient.
func NewInnertubeSource(client *http.Client, opts ...InnertubeOption) Source {
	if client == nil {
		client = http.DefaultClient
	}
	s := &innertubeSource{client: client, baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		Renderer *struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL string `json:"baseUrl"`
	Name    struct {
		SimpleText string `json:"simpleText"`
		Runs       []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"name"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

func (c captionTrack) language() string {
	if c.Name.SimpleText != "" {
		return c.Name.SimpleText
	}
	if len(c.Name.Runs) > 0 {
		return c.Name.Runs[0].Text
	}
	return c.LanguageCode
}

func (s *innertubeSource) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	page, err := s.fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	apiKey, err := extractAPIKey(page)
	if err != nil {
		return nil, err
	}

	player, err := s.fetchPlayer(ctx, videoID, apiKey)
	if err != nil {
		return nil, err
	}

	if status := player.PlayabilityStatus.Status; status != "" && status != "OK" {
		return nil, fmt.Errorf("video %s is unplayable (%s): %s", videoID, status, player.PlayabilityStatus.Reason)
	}

	if player.Captions == nil || player.Captions.Renderer == nil {
		return nil, ErrTranscriptsDisabled
	}

	raw := player.Captions.Renderer.CaptionTracks
	if len(raw) == 0 {
		return nil, ErrNoTranscriptFound
	}

	tracks := make([]Track, 0, len(raw))
	for _, c := range raw {
		tracks = append(tracks, Track{
			LanguageCode: c.LanguageCode,
			Language:     c.language(),
			Generated:    c.Kind == "asr",
			URL:          strings.Replace(c.BaseURL, "&fmt=srv3", "", 1),
		})
	}
	return tracks, nil
}

func (s *innertubeSource) FetchSegments(ctx context.Context, track Track) ([]Segment, error) {
	body, err := s.get(ctx, track.URL, "")
	if err != nil {
		return nil, err
	}
	return parseTimedText(body)
}

// fetchWatchPage loads the watch page, accepting the cookie consent wall once if shown.
func (s *innertubeSource) fetchWatchPage(ctx context.Context, videoID string) (string, error) {
	watchURL := s.baseURL + "/watch?v=" + url.QueryEscape(videoID)

	body, err := s.get(ctx, watchURL, "")
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse watch page: %w", err)
	}

	if consent := doc.Find(`form[action="https://consent.youtube.com/s"]`); consent.Length() > 0 {
		v, ok := consent.Find(`input[name="v"]`).Attr("value")
		if !ok || v == "" {
			return "", fmt.Errorf("consent page without consent token")
		}
		body, err = s.get(ctx, watchURL, "CONSENT=YES+"+v)
		if err != nil {
			return "", err
		}
		doc, err = goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("parse watch page: %w", err)
		}
		if doc.Find(`form[action="https://consent.youtube.com/s"]`).Length() > 0 {
			return "", fmt.Errorf("consent cookie was not accepted")
		}
	}

	if doc.Find(".g-recaptcha").Length() > 0 {
		return "", fmt.Errorf("request blocked by YouTube (recaptcha challenge)")
	}

	return string(body), nil
}

func (s *innertubeSource) fetchPlayer(ctx context.Context, videoID, apiKey string) (*playerResponse, error) {
	payload := map[string]interface{}{
		"context": map[string]interface{}{
			"client": map[string]string{
				"clientName":    innertubeClientName,
				"clientVersion": innertubeClientVersion,
			},
		},
		"videoId": videoID,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode player request: %w", err)
	}

	endpoint := s.baseURL + "/youtubei/v1/player?key=" + url.QueryEscape(apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	setBrowserHeaders(req)

	body, err := s.do(req)
	if err != nil {
		return nil, err
	}

	var player playerResponse
	if err := json.Unmarshal(body, &player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return &player, nil
}

func (s *innertubeSource) get(ctx context.Context, target, cookie string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	setBrowserHeaders(req)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	return s.do(req)
}

func (s *innertubeSource) do(req *http.Request) ([]byte, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.URL.Path, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%s %s: rate limited by YouTube", req.Method, req.URL.Path)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	return body, nil
}

func extractAPIKey(page string) (string, error) {
	m := apiKeyPattern.FindStringSubmatch(page)
	if m == nil {
		return "", fmt.Errorf("watch page did not contain an innertube API key")
	}
	return m[1], nil
}

func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
}
