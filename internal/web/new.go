package web

import (
	"html/template"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/internal/pipeline"
	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
)

type implServer struct {
	cfg          *config.Config
	pipeline     pipeline.Pipeline
	models       []summarizer.ModelDescriptor
	defaultModel string
	logger       logger.Logger
	page         *template.Template
	renderer     *markdownRenderer
	http         *http.Server
}

// New creates the web Server. models and defaultModel are resolved once at startup.
func New(cfg *config.Config, p pipeline.Pipeline, models []summarizer.ModelDescriptor, defaultModel string, log logger.Logger) Server {
	s := &implServer{
		cfg:          cfg,
		pipeline:     p,
		models:       models,
		defaultModel: defaultModel,
		logger:       log,
		page:         template.Must(template.New("page").Parse(pageTemplate)),
		renderer:     newMarkdownRenderer(cfg.Server.AllowRawHTML),
	}
	s.http = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}
