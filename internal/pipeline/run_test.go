package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-styleguide/internal/brand"
	"github.com/jonathan/brand-styleguide/internal/db"
	"github.com/jonathan/brand-styleguide/internal/llm"
	"github.com/jonathan/brand-styleguide/internal/observability"
	"github.com/jonathan/brand-styleguide/internal/types"
)

const brandCSS = `
:root { --brand: #1d4ed8; }
body { font-family: "Inter", sans-serif; color: #111827; background: #ffffff; font-size: 16px; }
h1 { font-family: "Playfair Display", serif; font-size: 48px; font-weight: 700; letter-spacing: -0.02em; }
h2 { font-family: "Playfair Display", serif; font-size: 36px; }
.btn { background-color: #1d4ed8; color: #ffffff; border-radius: 6px; padding: 12px 24px; }
.btn:hover { background-color: #1e40af; }
.accent { color: #f59e0b; border-color: #f59e0b; }
.card { border-radius: 12px; box-shadow: 0 4px 12px rgba(0, 0, 0, 0.1); padding: 24px; }
section { padding: 80px 0; }
.container { max-width: 1200px; margin: 0 auto; }
`

func brandPage(cssLink string) string {
	head := "<style>" + brandCSS + "</style>"
	if cssLink != "" {
		head = `<link rel="stylesheet" href="` + cssLink + `">`
	}
	return `<!DOCTYPE html><html><head><title>Acme Coffee | Roasters</title>
<meta name="description" content="Small batch coffee roasted every morning.">` + head + `</head>
<body><header><a class="btn" href="/shop">Shop</a></header>
<main><h1>Roasted fresh every morning</h1>
<p>` + strings.Repeat("We source beans directly from farmers and roast them in small batches. ", 10) + `</p>
<h2>Visit the roastery</h2><p>Open daily from seven until late.</p></main></body></html>`
}

type fakeStore struct {
	mu    sync.Mutex
	saved []*db.StyleguideInput
	err   error
}

func (s *fakeStore) SaveStyleguide(_ context.Context, in *db.StyleguideInput) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return uuid.Nil, s.err
	}
	s.saved = append(s.saved, in)
	return in.ID, nil
}

// fakeLLM answers personality prompts and fails every section batch
type fakeLLM struct {
	mu      sync.Mutex
	prompts int
}

func (f *fakeLLM) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateJSON(ctx, prompt, tier)
}

func (f *fakeLLM) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.mu.Lock()
	f.prompts++
	f.mu.Unlock()
	if strings.HasPrefix(prompt, "You are a brand analyst.") {
		return `{"formality": 2, "energy": 4, "warmth": 5, "tone": "friendly"}`, nil
	}
	return "", errors.New("quota exceeded")
}

func (f *fakeLLM) Close() error { return nil }

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestGenerate_EndToEnd(t *testing.T) {
	store := &fakeStore{}
	var events []ProgressEvent

	out, err := Generate(context.Background(), brandPage(""), Options{
		URL:        "https://acme.com/",
		Store:      store,
		Metrics:    observability.NewMetrics(),
		Quiet:      true,
		Now:        fixedNow,
		OnProgress: func(e ProgressEvent) { events = append(events, e) },
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Coffee", out.Analysis.BrandName)
	assert.Equal(t, "acme.com", out.Analysis.Domain)
	assert.Equal(t, types.ExtractionMethodRegex, out.Analysis.ExtractionMethod)
	assert.NotEmpty(t, out.Tokens.Prefix)
	assert.NotEmpty(t, out.Sections)
	assert.True(t, strings.HasPrefix(out.Document, "<!DOCTYPE html>"))
	assert.Contains(t, out.Document, "Acme Coffee")
	require.NotNil(t, out.Report)
	assert.Equal(t, out.Repair.Report, out.Report)

	require.NotNil(t, out.Artifact)
	assert.Equal(t, db.HTMLStorageKey(out.RunID), out.Artifact.HTMLStorageKey)
	assert.Equal(t, types.ArtifactVersion, out.Artifact.Version)
	assert.Equal(t, fixedNow(), out.Artifact.GeneratedAt)

	require.Len(t, store.saved, 1)
	saved := store.saved[0]
	assert.Equal(t, out.RunID, saved.ID)
	assert.Equal(t, out.RunID, out.StoredID)
	assert.Equal(t, "acme.com", saved.Domain)
	assert.Equal(t, "https://acme.com/", saved.SourceURL)
	assert.Equal(t, out.Document, saved.Document)

	require.Len(t, events, totalSteps)
	for i, e := range events {
		assert.Equal(t, i+1, e.Step)
		assert.Equal(t, out.RunID.String(), e.RunID)
	}
	assert.Equal(t, StageStore, events[totalSteps-1].Stage)
}

func TestGenerate_InsufficientInput(t *testing.T) {
	store := &fakeStore{}
	out, err := Generate(context.Background(), "<p>hi</p>", Options{Domain: "tiny.io", Store: store, Quiet: true})

	require.Error(t, err)
	assert.Nil(t, out)
	var insufficient *brand.InsufficientInputError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "tiny.io", insufficient.Domain)
	assert.Empty(t, store.saved)
}

func TestGenerate_InfersPersonality(t *testing.T) {
	client := &fakeLLM{}
	out, err := Generate(context.Background(), brandPage(""), Options{
		Domain:           "acme.com",
		LLM:              client,
		InferPersonality: true,
		Quiet:            true,
	})
	require.NoError(t, err)

	assert.Equal(t, types.Personality{Formality: 2, Energy: 4, Warmth: 5, Tone: "friendly"}, out.Analysis.Personality)
	assert.Greater(t, client.prompts, 1, "section batches should also be requested")
	assert.Equal(t, uuid.Nil, out.StoredID)
}

func TestGenerate_ExplicitPersonalityWins(t *testing.T) {
	formality := 5
	client := &fakeLLM{}
	out, err := Generate(context.Background(), brandPage(""), Options{
		Domain:           "acme.com",
		LLM:              client,
		InferPersonality: true,
		Personality:      &types.PersonalityOverride{Formality: &formality},
		Quiet:            true,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Analysis.Personality.Formality)
	assert.NotEqual(t, "friendly", out.Analysis.Personality.Tone)
}

func TestGenerate_StoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	out, err := Generate(context.Background(), brandPage(""), Options{Domain: "acme.com", Store: store, Quiet: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store styleguide")
	require.NotNil(t, out, "the generated document is still returned")
	assert.NotEmpty(t, out.Document)
}

func TestRun_CollectsSite(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, brandPage("/css/site.css"))
	})
	mux.HandleFunc("/css/site.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		fmt.Fprint(w, brandCSS)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	metrics := observability.NewMetrics()
	out, err := Run(context.Background(), Options{URL: srv.URL + "/", Metrics: metrics, Quiet: true})
	require.NoError(t, err)

	require.NotNil(t, out.Site)
	require.Len(t, out.Site.Stylesheets, 1)
	assert.Empty(t, out.Site.Stylesheets[0].Err)
	assert.Equal(t, "Acme Coffee", out.Analysis.BrandName)
	assert.Equal(t, "#1D4ED8", out.Analysis.Colors.Primary)
	assert.Contains(t, out.Extraction.PagesAnalyzed, srv.URL+"/")
}

func TestRun_RequiresURL(t *testing.T) {
	_, err := Run(context.Background(), Options{Quiet: true})
	assert.Error(t, err)
}

func TestRun_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	_, err := Run(context.Background(), Options{URL: srv.URL, Quiet: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to collect site")
}

func TestWriteDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, WriteDocument(path, &Output{Document: "<html></html>"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))

	assert.Error(t, WriteDocument(path, nil))
}
