package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/internal/pipeline"
	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
)

const (
	maxFormBytes     = 64 << 10
	formPath         = "/summarize"
	rateLimitMessage = "Too many requests. Please try again later."
)

func (s *implServer) Handler() http.Handler {
	return s.http.Handler
}

// Start serves until Shutdown is called.
func (s *implServer) Start() error {
	s.logger.Info(context.Background(), "Web UI listening on %s", s.cfg.Server.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *implServer) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *implServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(s.rateLimit())
		r.Post(formPath, s.handleSummarizeForm)
		r.Post("/api/summaries", s.handleSummarizeJSON)
	})

	return r
}

func (s *implServer) rateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		s.cfg.Server.RateLimit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			// browsers submitting the form get the page back with a banner
			if r.URL.Path == formPath {
				v := s.newView()
				v.Error = rateLimitMessage
				s.render(w, http.StatusTooManyRequests, v)
				return
			}
			writeJSON(w, http.StatusTooManyRequests, errorResponse{
				Error:   "rate_limit_exceeded",
				Message: rateLimitMessage,
			})
		}),
	)
}

func (s *implServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.ContextWithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		s.logger.Debug(ctx, "%s %s -> %d in %s", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
	})
}

func (s *implServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, s.newView())
}

func (s *implServer) handleSummarizeForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	v := s.newView()
	v.URL = strings.TrimSpace(r.PostFormValue("url"))
	v.SelectedModel = s.resolveModel(r.PostFormValue("model"))

	// nothing submitted yet
	if v.URL == "" {
		s.render(w, http.StatusOK, v)
		return
	}

	res, err := s.run(r.Context(), pipeline.Request{URL: v.URL, Model: v.SelectedModel})
	if err != nil {
		v.Error = userMessage(err)
		s.render(w, statusFor(err), v)
		return
	}

	html, err := s.renderer.Render(res.Summary)
	if err != nil {
		s.logger.Error(r.Context(), "Render summary: %v", err)
		v.Error = "Failed to render summary."
		s.render(w, http.StatusInternalServerError, v)
		return
	}

	v.VideoID = res.VideoID
	v.ThumbnailURL = res.ThumbnailURL
	v.SummaryHTML = html
	s.render(w, http.StatusOK, v)
}

type summaryRequest struct {
	URL   string `json:"url"`
	Model string `json:"model,omitempty"`
}

type summaryResponse struct {
	VideoID      string `json:"video_id"`
	ThumbnailURL string `json:"thumbnail_url"`
	Model        string `json:"model"`
	Summary      string `json:"summary"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *implServer) handleSummarizeJSON(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "Request body must be JSON with a url field."})
		return
	}

	res, err := s.run(r.Context(), pipeline.Request{URL: req.URL, Model: s.resolveModel(req.Model)})
	if err != nil {
		kind := string(pipeline.KindOf(err))
		if kind == "" {
			kind = "internal"
		}
		writeJSON(w, statusFor(err), errorResponse{Error: kind, Message: userMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		VideoID:      res.VideoID,
		ThumbnailURL: res.ThumbnailURL,
		Model:        res.Model,
		Summary:      res.Summary,
	})
}

// run applies the host deadline around one pipeline run.
func (s *implServer) run(ctx context.Context, req pipeline.Request) (*pipeline.Result, error) {
	if s.cfg.Server.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Server.RequestTimeout)
		defer cancel()
	}
	return s.pipeline.Run(ctx, req)
}

// resolveModel keeps the choice within the listed models.
func (s *implServer) resolveModel(name string) string {
	if name == "" || len(s.models) == 0 {
		return s.defaultModel
	}
	if summarizer.Contains(s.models, name) {
		return summarizer.QualifiedName(name)
	}
	return s.defaultModel
}

func userMessage(err error) string {
	var pe *pipeline.Error
	if errors.As(err, &pe) {
		return pe.Message()
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "The request was cancelled before the summary was ready."
	}
	return "Unexpected error."
}

func statusFor(err error) int {
	switch pipeline.KindOf(err) {
	case pipeline.KindInvalidURL:
		return http.StatusBadRequest
	case pipeline.KindTranscriptsDisabled, pipeline.KindNoTranscriptFound:
		return http.StatusUnprocessableEntity
	case pipeline.KindRetrievalFailed, pipeline.KindGenerationFailed:
		return http.StatusBadGateway
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
