// Package server exposes form definitions over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	fv "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/internal/formdef"
	"github.com/Gobd/fieldvalidation/openapi"
)

// Result is the body of a validate response.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// FormList is the body of GET /forms.
type FormList struct {
	Forms []string `json:"forms"`
}

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithShutdownTimeout bounds how long Run waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.shutdownTimeout = d }
}

// Server serves validation for a fixed set of form definitions.
type Server struct {
	forms           *formdef.File
	doc             *openapi3.T
	router          chi.Router
	log             *slog.Logger
	shutdownTimeout time.Duration
}

// New builds the router and the OpenAPI document for forms.
func New(forms *formdef.File, opts ...Option) (*Server, error) {
	s := &Server{
		forms:           forms,
		log:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	doc, err := Document(forms)
	if err != nil {
		return nil, err
	}
	s.doc = doc

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/forms", s.listForms)
	r.Post("/forms/{name}/validate", s.validate)
	r.Get("/openapi.json", s.openAPI)
	s.router = r
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.Info("listening", slog.String("addr", addr), slog.Int("forms", len(s.forms.Forms)))

	var err error
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if serr := srv.Shutdown(shutdownCtx); serr != nil {
			return fmt.Errorf("shutdown: %w", serr)
		}
		err = <-errCh
	case err = <-errCh:
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	s.log.Info("stopped")
	return nil
}

// Document describes every route, with one validate path per form whose
// request schema carries that form's rules.
func Document(forms *formdef.File) (*openapi3.T, error) {
	doc := openapi.DocBase("formcheck", "Validates form submissions against declarative field rules.", "1.0.0")

	if err := openapi.Get(doc, "/forms", "listForms", openapi.Endpoint{
		Summary:  "List form names",
		Response: FormList{},
	}); err != nil {
		return nil, err
	}

	for _, name := range forms.Names() {
		def, _ := forms.Lookup(name)
		schema, err := def.Schema()
		if err != nil {
			return nil, fmt.Errorf("form %s: %w", name, err)
		}
		err = openapi.Post(doc, "/forms/"+name+"/validate", "validate_"+name, openapi.Endpoint{
			Summary:       "Validate a " + name + " submission",
			RequestSchema: schema,
			Responses: map[string]openapi.Response{
				"200": {Desc: "Every field is valid", Bodies: []any{Result{}}},
				"400": {Desc: "Malformed request body", Bodies: []any{ErrorResponse{}}},
				"422": {Desc: "First failure of each invalid field", Bodies: []any{Result{}}},
			},
		})
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (s *Server) listForms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, FormList{Forms: s.forms.Names()})
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	def, ok := s.forms.Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("unknown form %q", name)})
		return
	}

	var values map[string]*string
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "request body must be a JSON object of strings or nulls"})
		return
	}

	if err := def.Check(values); err != nil {
		s.log.DebugContext(r.Context(), "submission rejected",
			slog.String("form", name),
			slog.Int("invalid_fields", len(fv.Messages(err))),
		)
		writeJSON(w, http.StatusUnprocessableEntity, Result{Errors: fv.Messages(err)})
		return
	}
	writeJSON(w, http.StatusOK, Result{Valid: true})
}

func (s *Server) openAPI(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.doc)
}

// RequestIDHeader carries the request ID. A client-supplied value is kept;
// otherwise a random UUID is assigned.
const RequestIDHeader = "X-Request-ID"

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.InfoContext(r.Context(), "request",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
