// Package web serves the research assistant UI: a query form, rendered
// research reports, and JSON artifact downloads.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/agent"
	"github.com/spetersoncode/scribe/internal/store"
	"github.com/spetersoncode/scribe/research"
	"github.com/spetersoncode/scribe/tool"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultMaxSteps bounds each research run started from the UI.
const DefaultMaxSteps = 8

// Server handles the research assistant's HTTP surface.
type Server struct {
	agent    *agent.Agent
	schema   *research.Schema
	store    store.Store
	log      *zap.Logger
	maxSteps int
	tmpl     *template.Template
}

// Option configures the server.
type Option func(*Server)

// WithMaxSteps sets the per-run step limit for UI-triggered research.
func WithMaxSteps(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxSteps = n
		}
	}
}

// New creates the server. The registry supplies the tools every
// research run can use.
func New(provider scribe.ChatProvider, registry *tool.Registry, st store.Store, log *zap.Logger, opts ...Option) *Server {
	s := &Server{
		agent:    agent.New(provider, registry),
		schema:   research.NewSchema(),
		store:    st,
		log:      log,
		maxSteps: DefaultMaxSteps,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/research", s.handleResearch)
	r.Get("/download", s.handleDownload)

	return r
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("render template", zap.String("template", name), zap.Error(err))
	}
}
