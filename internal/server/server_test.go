package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/akkad/internal/conjugate"
	"github.com/ppiankov/akkad/internal/dictionary"
	"github.com/ppiankov/akkad/internal/model"
)

// stubService conjugates entries held in memory
type stubService map[string]model.Entry

func (s stubService) Lookup(ctx context.Context, verb string) (*model.Entry, error) {
	e, ok := s[verb]
	if !ok {
		return nil, fmt.Errorf("%q: %w", verb, dictionary.ErrNotFound)
	}
	return &e, nil
}

func (s stubService) ConjugateVerb(ctx context.Context, verb string) (*model.ConjugatedVerb, error) {
	e, err := s.Lookup(ctx, verb)
	if err != nil {
		return nil, err
	}
	return conjugate.Entry(verb, *e)
}

var entries = stubService{
	"nadānum": {
		Transcription: "nadānum", Type: "active", Stem: "g-stem",
		ThemeVowel: "i", AdjectivalVowel: "i",
		Root: []string{"n", "d", "n"}, Meaning: model.Meanings{"to give"},
	},
	"broken": {
		Type: "active", Stem: "g-stem", ThemeVowel: "a", AdjectivalVowel: "i",
		Root: []string{"p", "r", "s", "t"},
	},
}

func newTestServer(rps float64, burst int) *Server {
	return New(entries, Options{RequestsPerSecond: rps, Burst: burst, Version: "test"})
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestConjugate_OK(t *testing.T) {
	h := newTestServer(0, 1).Handler()
	rec := do(t, h, http.MethodGet, "/api/conjugate?verb=nad%C4%81num")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got struct {
		Verb        string            `json:"verb"`
		StemVariant string            `json:"stem_variant"`
		Preterite   map[string]string `json:"preterite"`
		Adjective   map[string]string `json:"adjective"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "nadānum", got.Verb)
	assert.Equal(t, "weak-initial-n", got.StemVariant)
	assert.Equal(t, "addin", got.Preterite["1cs"])
	assert.Equal(t, "iddinū", got.Preterite["3mp"])
	assert.Equal(t, "nadittum", got.Adjective["feminine"])
}

func TestConjugate_Errors(t *testing.T) {
	h := newTestServer(0, 1).Handler()

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"not found", http.MethodGet, "/api/conjugate?verb=nak%C4%81rum", http.StatusNotFound},
		{"malformed entry", http.MethodGet, "/api/conjugate?verb=broken", http.StatusUnprocessableEntity},
		{"missing param", http.MethodGet, "/api/conjugate", http.StatusBadRequest},
		{"blank param", http.MethodGet, "/api/conjugate?verb=%20", http.StatusBadRequest},
		{"wrong method", http.MethodPost, "/api/conjugate?verb=broken", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target)
			assert.Equal(t, tt.status, rec.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, rec.Header().Get(RequestIDHeader), body.RequestID)
		})
	}
}

func TestLookup(t *testing.T) {
	h := newTestServer(0, 1).Handler()

	rec := do(t, h, http.MethodGet, "/api/lookup?verb=nad%C4%81num")
	require.Equal(t, http.StatusOK, rec.Code)
	var got lookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"n", "d", "n"}, got.Entry.Root)

	rec = do(t, h, http.MethodGet, "/api/lookup?verb=x")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(0, 1).Handler(), http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","version":"test"}`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	h := newTestServer(0, 1).Handler()

	rec := do(t, h, http.MethodGet, "/api/health")
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	// A valid incoming id is propagated
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	// Garbage is replaced
	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(0.001, 2).Handler()

	for i := 0; i < 2; i++ {
		rec := do(t, h, http.MethodGet, "/api/lookup?verb=nad%C4%81num")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
	rec := do(t, h, http.MethodGet, "/api/lookup?verb=nad%C4%81num")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// Health is never limited
	rec = do(t, h, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/api/lookup?verb=nad%C4%81num", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_TrustedClient(t *testing.T) {
	// httptest requests come from 192.0.2.1
	h := New(entries, Options{RequestsPerSecond: 0.001, Burst: 1, TrustedClients: []string{"192.0.2.1"}}).Handler()

	for i := 0; i < 20; i++ {
		rec := do(t, h, http.MethodGet, "/api/lookup?verb=nad%C4%81num")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/lookup?verb=nad%C4%81num", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, "untrusted request %d", i)
	}
}

func TestCORS(t *testing.T) {
	s := New(entries, Options{AllowedOrigins: []string{"https://example.org"}})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("x: %w", dictionary.ErrNoDictionary), http.StatusNotFound},
		{fmt.Errorf("x: %w", model.ErrUnknownPhoneme), http.StatusUnprocessableEntity},
		{fmt.Errorf("x: %w", model.ErrInvalidRootLength), http.StatusUnprocessableEntity},
		{context.Canceled, http.StatusServiceUnavailable},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), "%v", tt.err)
	}
}
