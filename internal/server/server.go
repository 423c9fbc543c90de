// Package server serves the output directory as a browsable gallery.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/botionplot/pkg/buildinfo"
	errs "github.com/matzehuels/botionplot/pkg/errors"
	"github.com/matzehuels/botionplot/pkg/observability"
	"github.com/matzehuels/botionplot/pkg/outdir"
)

//go:embed templates/*.html
var templatesFS embed.FS

// shutdownTimeout bounds how long in-flight requests may finish after
// the context is cancelled.
const shutdownTimeout = 5 * time.Second

// Config configures a Server.
type Config struct {
	Addr   string
	Dir    outdir.Dir
	Logger *log.Logger
}

// Server is the gallery HTTP server.
type Server struct {
	cfg  Config
	tmpl *template.Template
}

type indexVM struct {
	Dir       string
	Version   string
	Artifacts []outdir.Artifact
}

// New validates cfg and parses the page templates.
func New(cfg Config) (*Server, error) {
	if cfg.Addr == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "server address is empty")
	}
	if cfg.Dir.String() == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "server directory is empty")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "parse templates")
	}
	return &Server{cfg: cfg, tmpl: tmpl}, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Get("/api/artifacts", s.handleArtifacts)
	r.Get("/api/version", s.handleVersion)
	r.Get("/files/{name}", s.handleFile)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.cfg.Logger.Info("serving gallery", "addr", s.cfg.Addr, "dir", s.cfg.Dir.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.cfg.Logger.Info("shutting down gallery")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		s.cfg.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed,
		)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, elapsed)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	arts, err := s.cfg.Dir.List()
	if err != nil {
		s.writeError(w, err)
		return
	}
	vm := indexVM{Dir: s.cfg.Dir.String(), Version: buildinfo.Short(), Artifacts: arts}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", vm); err != nil {
		s.cfg.Logger.Error("render index", "error", err)
	}
}

func (s *Server) handleArtifacts(w http.ResponseWriter, r *http.Request) {
	arts, err := s.cfg.Dir.List()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if arts == nil {
		arts = []outdir.Artifact{}
	}
	writeJSON(w, http.StatusOK, arts)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	f, art, err := s.cfg.Dir.Open(name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer f.Close()
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, art.Name, art.ModTime, f)
}

type errorResponse struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errs.GetCode(err) {
	case errs.ErrCodeInvalidName, errs.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case errs.ErrCodeNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.cfg.Logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Code: errs.GetCode(err), Message: errs.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
