// Package videoid turns YouTube links into video identifiers.
package videoid

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const thumbnailTemplate = "https://img.youtube.com/vi/%s/maxresdefault.jpg"

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// path markers on the canonical host whose next segment is the identifier
var pathMarkers = map[string]bool{
	"embed":  true,
	"v":      true,
	"shorts": true,
	"live":   true,
}

// Extract returns the video identifier carried by rawURL.
// It accepts youtu.be/<id>, youtube.com/watch?v=<id>, youtube.com/embed/<id>,
// youtube.com/v/<id>, /shorts/<id> and /live/<id>. Any other input yields ok == false.
func Extract(rawURL string) (id string, ok bool) {
	s := strings.TrimSpace(rawURL)
	if s == "" {
		return "", false
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	segments := splitPath(u.Path)

	switch {
	case host == "youtu.be":
		if len(segments) == 0 {
			return "", false
		}
		return validate(segments[0])

	case isCanonicalHost(host):
		if len(segments) == 1 && segments[0] == "watch" {
			return validate(u.Query().Get("v"))
		}
		if len(segments) >= 2 && pathMarkers[segments[0]] {
			return validate(segments[1])
		}
	}

	return "", false
}

// ThumbnailURL derives the display thumbnail for id. The image is not fetched or checked.
func ThumbnailURL(id string) string {
	return fmt.Sprintf(thumbnailTemplate, id)
}

func isCanonicalHost(host string) bool {
	switch host {
	case "youtube.com", "www.youtube.com", "m.youtube.com", "music.youtube.com",
		"youtube-nocookie.com", "www.youtube-nocookie.com":
		return true
	}
	return false
}

func splitPath(p string) []string {
	var out []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func validate(id string) (string, bool) {
	if !idPattern.MatchString(id) {
		return "", false
	}
	return id, true
}
