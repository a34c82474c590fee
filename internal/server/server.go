// Package server exposes the conjugator as a JSON REST API.
//
// Endpoints:
//
//	GET /api/conjugate?verb=<verb>
//	GET /api/lookup?verb=<verb>
//	GET /api/health
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ppiankov/akkad/internal/dictionary"
	"github.com/ppiankov/akkad/internal/model"
	"github.com/ppiankov/akkad/internal/worker"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// Service is what the handlers need from the pipeline
type Service interface {
	ConjugateVerb(ctx context.Context, verb string) (*model.ConjugatedVerb, error)
	Lookup(ctx context.Context, verb string) (*model.Entry, error)
}

// Options configures a Server
type Options struct {
	Addr              string
	RequestsPerSecond float64
	Burst             int
	AllowedOrigins    []string
	TrustedClients    []string // client hosts exempt from rate limiting
	Version           string
	Logger            *zap.Logger
}

// Server is the HTTP front end
type Server struct {
	svc     Service
	opts    Options
	limiter *worker.Limiter
	logger  *zap.Logger
	handler http.Handler
}

// ---- JSON response types ------------------------------------------------

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type lookupResponse struct {
	Verb  string       `json:"verb"`
	Entry *model.Entry `json:"entry"`
}

// New builds a server and its handler chain
func New(svc Service, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	s := &Server{
		svc:     svc,
		opts:    opts,
		limiter: worker.NewLimiter(opts.RequestsPerSecond, opts.Burst),
		logger:  opts.Logger,
	}
	for _, client := range opts.TrustedClients {
		s.limiter.SetClientRate(client, 0, 0)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/conjugate", s.rateLimited(s.handleConjugate))
	mux.HandleFunc("/api/lookup", s.rateLimited(s.handleLookup))
	mux.HandleFunc("/api/health", s.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	s.handler = s.withRequestID(c.Handler(mux))
	return s
}

// Handler returns the full middleware chain
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.opts.Addr))
		errCh <- srv.ListenAndServe()
	}()

	prune := time.NewTicker(time.Minute)
	defer prune.Stop()

	for {
		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-prune.C:
			if n := s.limiter.Prune(10 * time.Minute); n > 0 {
				s.logger.Debug("pruned idle clients", zap.Int("clients", n))
			}
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.logger.Info("shutting down")
			return srv.Shutdown(shutdownCtx)
		}
	}
}

// ---- helpers ------------------------------------------------------------

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		s.logger.Warn("encode error", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg, RequestID: RequestID(r.Context())})
}

// StatusFor maps a pipeline error to an HTTP status
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, dictionary.ErrNotFound):
		return http.StatusNotFound
	case model.IsInputError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// clientKey identifies a caller for rate limiting
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// verbParam validates the method and extracts ?verb=
func (s *Server) verbParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, "GET required")
		return "", false
	}
	verb := dictionary.NormalizeVerb(r.URL.Query().Get("verb"))
	if verb == "" {
		s.writeError(w, r, http.StatusBadRequest, "missing 'verb' query parameter")
		return "", false
	}
	return verb, true
}

// ---- handlers -----------------------------------------------------------

func (s *Server) handleConjugate(w http.ResponseWriter, r *http.Request) {
	verb, ok := s.verbParam(w, r)
	if !ok {
		return
	}

	cv, err := s.svc.ConjugateVerb(r.Context(), verb)
	if err != nil {
		s.writeError(w, r, StatusFor(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, cv)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	verb, ok := s.verbParam(w, r)
	if !ok {
		return
	}

	e, err := s.svc.Lookup(r.Context(), verb)
	if err != nil {
		s.writeError(w, r, StatusFor(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, lookupResponse{Verb: verb, Entry: e})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, "GET required")
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: s.opts.Version})
}
