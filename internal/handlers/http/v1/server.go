// Package v1 serves the catalog as a JSON API plus a websocket live search
package v1

import (
	"bufio"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
)

const (
	// RequestIDHeader is set on every response
	RequestIDHeader = "X-Request-ID"

	// listCacheControl lets shared caches serve list pages for an hour and
	// stale ones for a day while they revalidate
	listCacheControl = "s-maxage=3600, stale-while-revalidate=86400"

	// DefaultDebounce is the quiet period before a live query runs
	DefaultDebounce = 200 * time.Millisecond
)

// Config holds the dependencies for the HTTP server
type Config struct {
	Service pokedex.Service

	// Optional
	Logger   *slog.Logger
	IDGen    idgen.Generator
	Debounce time.Duration
}

// Validate ensures all required dependencies are provided and fills defaults
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Debounce < 0 {
		vb.Field("Debounce", "must not be negative")
	}

	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.IDGen == nil {
		c.IDGen = idgen.NewUUID("")
	}
	if c.Debounce == 0 {
		c.Debounce = DefaultDebounce
	}

	return vb.Build()
}

// Server exposes the pokedex service over HTTP
type Server struct {
	service  pokedex.Service
	logger   *slog.Logger
	idGen    idgen.Generator
	debounce time.Duration
	upgrader websocket.Upgrader
}

// NewServer creates a new HTTP server with the provided dependencies
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Server{
		service:  cfg.Service,
		logger:   cfg.Logger,
		idGen:    cfg.IDGen,
		debounce: cfg.Debounce,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}, nil
}

// Handler returns an http.Handler with all routes registered
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealthz)

	mux.HandleFunc("GET /api/pokemon", s.handleListPokemon)
	mux.HandleFunc("GET /api/pokemon/{idOrName}", s.handleGetPokemon)
	mux.HandleFunc("GET /api/search/parse", s.handleParseQuery)
	mux.HandleFunc("GET /api/search/live", s.handleLiveSearch)
	mux.HandleFunc("GET /api/types/{types}/weaknesses", s.handleTypeWeaknesses)

	return s.withRequestID(mux)
}

// Shutdown gracefully stops srv, giving in-flight requests up to timeout
func Shutdown(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// --- middleware ---

type requestIDKey struct{}

// RequestID returns the id assigned to the request carrying ctx
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// withRequestID tags every request with an id and logs its outcome
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := s.idGen.Generate()
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))

		s.logger.Debug("request served",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the websocket upgrade reach the underlying connection
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	r.status = http.StatusSwitchingProtocols
	return http.NewResponseController(r.ResponseWriter).Hijack()
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// --- responses ---

// errorResponse is the body of every failed request
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(v); encErr != nil {
		s.logger.Error("failed to encode response", "error", encErr)
	}
}

// writeError maps a coded error onto its HTTP status
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"request_id", RequestID(r.Context()),
			"path", r.URL.Path,
			"code", code,
			"error", err)
	}

	s.writeJSON(w, status, errorResponse{
		Error: errors.GetMessage(err),
		Code:  code.String(),
	})
}
