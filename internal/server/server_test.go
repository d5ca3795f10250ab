package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-styleguide/internal/brand"
	"github.com/jonathan/brand-styleguide/internal/db"
	"github.com/jonathan/brand-styleguide/internal/fetch"
	"github.com/jonathan/brand-styleguide/internal/observability"
	"github.com/jonathan/brand-styleguide/internal/pipeline"
	"github.com/jonathan/brand-styleguide/internal/server/ratelimit"
)

// memStore keeps styleguides in memory
type memStore struct {
	mu      sync.Mutex
	guides  map[uuid.UUID]*db.StyleguideInput
	pingErr error
}

func newMemStore() *memStore {
	return &memStore{guides: make(map[uuid.UUID]*db.StyleguideInput)}
}

func (m *memStore) SaveStyleguide(_ context.Context, in *db.StyleguideInput) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guides[in.ID] = in
	return in.ID, nil
}

func (m *memStore) GetStyleguide(_ context.Context, id uuid.UUID) (*db.Styleguide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	in, ok := m.guides[id]
	if !ok {
		return nil, nil
	}
	return &db.Styleguide{ID: in.ID, Domain: in.Domain, SourceURL: in.SourceURL, Artifact: *in.Artifact, Report: in.Report}, nil
}

func (m *memStore) GetStyleguideDocument(_ context.Context, id uuid.UUID) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if in, ok := m.guides[id]; ok {
		return in.Document, nil
	}
	return "", nil
}

func (m *memStore) ListStyleguides(_ context.Context, f db.StyleguideFilters) ([]db.StyleguideSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.StyleguideSummary
	for _, in := range m.guides {
		if f.Domain != "" && in.Domain != f.Domain {
			continue
		}
		out = append(out, db.StyleguideSummary{ID: in.ID, Domain: in.Domain, QualityScore: in.Report.Score})
	}
	return out, nil
}

func (m *memStore) DeleteStyleguide(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.guides[id]; !ok {
		return db.ErrStyleguideNotFound
	}
	delete(m.guides, id)
	return nil
}

func (m *memStore) Ping(context.Context) error { return m.pingErr }

const brandHTML = `<!DOCTYPE html><html><head><title>Acme Coffee | Roasters</title>
<style>
:root { --brand: #1d4ed8; }
body { font-family: "Inter", sans-serif; color: #111827; font-size: 16px; }
h1 { font-family: "Playfair Display", serif; font-size: 48px; }
.btn { background-color: #1d4ed8; color: #fff; border-radius: 6px; padding: 12px 24px; }
.accent { color: #f59e0b; }
.card { border-radius: 12px; box-shadow: 0 4px 12px rgba(0, 0, 0, 0.1); }
section { padding: 80px 0; }
</style></head>
<body><h1>Roasted fresh every morning</h1><p>Small batch coffee from farmers we know by name.</p></body></html>`

type fixture struct {
	store   *memStore
	metrics *observability.Metrics
	handler http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: newMemStore(), metrics: observability.NewMetrics()}
	s := NewWithDeps(Config{}, Deps{Store: f.store, Metrics: f.metrics})
	f.handler = s.Handler()
	return f
}

func (f *fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func (f *fixture) create(t *testing.T) StyleguideResponse {
	t.Helper()
	w := f.do(http.MethodPost, "/styleguides", map[string]any{"html": brandHTML, "domain": "acme.com"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp StyleguideResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	f.store.pingErr = errors.New("connection refused")
	w = f.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}

func TestCreateStyleguide_FromHTML(t *testing.T) {
	f := newFixture(t)
	resp := f.create(t)

	assert.Equal(t, "acme.com", resp.Domain)
	assert.Equal(t, "Acme Coffee", resp.BrandName)
	require.NotNil(t, resp.Artifact)
	assert.Equal(t, "#1D4ED8", resp.Artifact.BrandAnalysis.Colors.Primary)
	assert.Equal(t, "/styleguides/"+resp.ID+"/document.html", resp.DocumentURL)

	id := uuid.MustParse(resp.ID)
	require.Contains(t, f.store.guides, id)
	assert.True(t, strings.HasPrefix(f.store.guides[id].Document, "<!DOCTYPE html>"))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.RunsTotal.WithLabelValues("success")))
}

func TestCreateStyleguide_Validation(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		body any
	}{
		{"empty", map[string]any{}},
		{"both inputs", map[string]any{"url": "https://acme.com", "html": brandHTML}},
		{"bad domain", map[string]any{"html": brandHTML, "domain": "not a host"}},
		{"personality out of range", map[string]any{"html": brandHTML, "personality": map[string]any{"energy": 9}}},
		{"not json", "{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(http.MethodPost, "/styleguides", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
	assert.Empty(t, f.store.guides)
}

func TestCreateStyleguide_InsufficientInput(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPost, "/styleguides", map[string]any{"html": "<p>hi</p>", "domain": "tiny.io"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient input")
}

func TestCreateStyleguide_FetchFailure(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer site.Close()

	f := newFixture(t)
	w := f.do(http.MethodPost, "/styleguides", map[string]any{"url": site.URL})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreateStyleguideStream(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(f.handler)
	defer srv.Close()

	body, _ := json.Marshal(map[string]any{"html": brandHTML, "domain": "acme.com"})
	resp, err := http.Post(srv.URL+"/styleguides/stream", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var events []string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 1<<20), 4<<20)
	for scanner.Scan() {
		if name, ok := strings.CutPrefix(scanner.Text(), "event: "); ok {
			events = append(events, name)
		}
	}
	require.NotEmpty(t, events)
	assert.Equal(t, "step", events[0])
	assert.Equal(t, "complete", events[len(events)-1])
	assert.Len(t, f.store.guides, 1)
}

func TestGetStyleguide(t *testing.T) {
	f := newFixture(t)
	created := f.create(t)

	w := f.do(http.MethodGet, "/styleguides/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sg db.Styleguide
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sg))
	assert.Equal(t, created.ID, sg.ID.String())
	assert.Equal(t, db.HTMLStorageKey(sg.ID), sg.Artifact.HTMLStorageKey)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/styleguides/"+uuid.NewString(), nil).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/styleguides/nope", nil).Code)
}

func TestGetDocumentAndTokens(t *testing.T) {
	f := newFixture(t)
	created := f.create(t)

	w := f.do(http.MethodGet, created.DocumentURL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Acme Coffee")

	w = f.do(http.MethodGet, created.TokensURL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), ":root")
	assert.Contains(t, w.Body.String(), "--"+created.Artifact.DesignTokens.Prefix+"-primary-400")

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/styleguides/"+uuid.NewString()+"/document.html", nil).Code)
}

func TestListStyleguides(t *testing.T) {
	f := newFixture(t)
	f.create(t)

	w := f.do(http.MethodGet, "/styleguides?domain=acme.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Styleguides []db.StyleguideSummary `json:"styleguides"`
		Count       int                    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)

	w = f.do(http.MethodGet, "/styleguides?domain=other.com", nil)
	assert.Contains(t, w.Body.String(), `"styleguides":[]`)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/styleguides?limit=-1", nil).Code)
}

func TestDeleteStyleguide(t *testing.T) {
	f := newFixture(t)
	created := f.create(t)

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/styleguides/"+created.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/styleguides/"+created.ID, nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodGet, "/health", nil)

	w := f.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `styleguide_http_requests_total{method="GET",path="GET /health",status="200"} 1`)
}

func TestRateLimitedCreate(t *testing.T) {
	store := newMemStore()
	limiter := ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		EndpointConfigs: []ratelimit.EndpointConfig{{Path: "/styleguides", Method: "POST", Limit: 1, Window: time.Hour}},
	})
	defer limiter.Stop()
	h := NewWithDeps(Config{}, Deps{Store: store, Limiter: limiter}).Handler()

	send := func() int {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/styleguides", strings.NewReader(`{}`)))
		return w.Code
	}
	assert.Equal(t, http.StatusBadRequest, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&ErrValidation{Field: "url"}, http.StatusBadRequest},
		{&ErrNotFound{ID: "x"}, http.StatusNotFound},
		{db.ErrStyleguideNotFound, http.StatusNotFound},
		{&brand.InsufficientInputError{Domain: "a.io"}, http.StatusUnprocessableEntity},
		{&fetch.Error{URL: "https://a.io", Message: "HTTP status 500"}, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestCreateStyleguideRequest_NormalizesURL(t *testing.T) {
	req := &CreateStyleguideRequest{URL: "acme.com"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "https://acme.com", req.URL)
}

func TestSSEWriter_SequencesEvents(t *testing.T) {
	w := httptest.NewRecorder()
	sse, err := NewSSEWriter(w)
	require.NoError(t, err)

	require.NoError(t, sse.Progress(pipeline.ProgressEvent{Stage: pipeline.StageCollect, Step: 1, Message: "Collecting"}))
	sse.WriteError(http.StatusBadGateway, "upstream down")

	body := w.Body.String()
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Contains(t, body, "id: 1\nevent: step\n")
	assert.Contains(t, body, "id: 2\nevent: error\ndata: {\"error\":\"upstream down\",\"status\":502}\n\n")
}
