package web

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
)

type view struct {
	Models        []summarizer.ModelDescriptor
	SelectedModel string
	URL           string
	VideoID       string
	ThumbnailURL  string
	SummaryHTML   template.HTML
	Error         string
}

func (s *implServer) newView() *view {
	return &view{Models: s.models, SelectedModel: s.defaultModel}
}

func (s *implServer) render(w http.ResponseWriter, status int, v *view) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, v); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>YouTube Transcript Summarizer</title>
<script>window.MathJax = {tex: {displayMath: [['$$', '$$']], inlineMath: [['\\(', '\\)']]}};</script>
<script async src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"></script>
<style>
body { max-width: 820px; margin: 2rem auto; padding: 0 1rem; font-family: system-ui, sans-serif; line-height: 1.5; }
form { display: flex; gap: .5rem; flex-wrap: wrap; margin-bottom: 1.5rem; }
input[type=url] { flex: 1 1 420px; padding: .5rem; }
select, button { padding: .5rem; }
.error { background: #fde8e8; border: 1px solid #f5b5b5; padding: .75rem 1rem; border-radius: 4px; }
.busy { display: none; color: #555; }
form.submitting + .busy { display: block; }
img.thumb { width: 100%; border-radius: 4px; }
</style>
</head>
<body>
<h1>YouTube Transcript to Enriched Summary</h1>
<form method="post" action="/summarize" onsubmit="this.classList.add('submitting')">
  <input type="url" name="url" placeholder="Enter YouTube video link" value="{{.URL}}" required>
  <select name="model" aria-label="Choose model">
  {{- range .Models}}
    <option value="{{.Name}}"{{if eq .Name $.SelectedModel}} selected{{end}}>{{.Name}}</option>
  {{- else}}
    <option value="{{.SelectedModel}}" selected>{{.SelectedModel}}</option>
  {{- end}}
  </select>
  <button type="submit">Summarize</button>
</form>
<p class="busy">Fetching transcript and generating summary...</p>
{{- if .Error}}
<div class="error" role="alert">{{.Error}}</div>
{{- end}}
{{- if .VideoID}}
<p>Video ID: <code>{{.VideoID}}</code></p>
<img class="thumb" src="{{.ThumbnailURL}}" alt="Video thumbnail">
<h2>Enriched Summary with Examples</h2>
<article class="summary">{{.SummaryHTML}}</article>
{{- end}}
</body>
</html>
`
