package web

import (
	"context"
	"net/http"
)

// Server is the browser front end of the pipeline
type Server interface {
	Handler() http.Handler
	Start() error
	Shutdown(ctx context.Context) error
}
