// Package preview serves a rendered diagram over HTTP so it can be
// inspected in a browser while iterating on a scene file.
package preview

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/odtools/oddraw/pkg/diagram"
	"github.com/odtools/oddraw/pkg/errors"
	"github.com/odtools/oddraw/pkg/render"
)

const indexPage = `<!DOCTYPE html>
<html>
<head>
<title>od-draw preview</title>
<style>
body { margin: 0; display: grid; place-items: center; min-height: 100vh; background: #f4f4f4; }
img { background: white; box-shadow: 0 1px 4px rgba(0,0,0,0.2); }
</style>
</head>
<body>
<img src="/diagram.svg" alt="diagram">
</body>
</html>
`

// Server serves a single diagram for browser preview.
type Server struct {
	Addr string

	source func() *diagram.Diagram
	http   *http.Server
}

// NewServer creates a preview server listening on addr. The source
// function is called on every request, so callers can hand back a
// freshly loaded diagram to pick up scene file edits between reloads.
func NewServer(addr string, source func() *diagram.Diagram) *Server {
	s := &Server{Addr: addr, source: source}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/diagram.svg", s.handleSVG)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(errors.ErrCodeInternal, err, "preview server on %s", s.Addr)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	d := s.source()
	if d == nil {
		http.Error(w, "no diagram loaded", http.StatusServiceUnavailable)
		return
	}

	data := (render.SVG{}).Bytes(d.Shapes(), render.Options{Width: d.Width, Height: d.Height})

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}
