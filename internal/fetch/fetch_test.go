package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Acme</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Acme</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "text/html", result.ContentType)
}

func TestURL_InvalidURL(t *testing.T) {
	for _, u := range []string{"not-a-valid-url", "ftp://example.com/a.css", ""} {
		t.Run(u, func(t *testing.T) {
			_, err := URL(context.Background(), u, nil)
			require.Error(t, err)
			var fetchErr *Error
			assert.ErrorAs(t, err, &fetchErr)
			assert.Contains(t, err.Error(), "invalid URL")
		})
	}
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestURL_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/css", r.Header.Get("Accept"))
		_, _ = w.Write([]byte("body{}"))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.Headers = map[string]string{"Accept": "text/css"}
	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://acme.com", NormalizeURL(" acme.com "))
	assert.Equal(t, "http://acme.com/x", NormalizeURL("http://acme.com/x"))
	assert.Equal(t, "", NormalizeURL("  "))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		base, href, want string
	}{
		{"https://acme.com/about/", "/css/site.css", "https://acme.com/css/site.css"},
		{"https://acme.com/about/", "theme.css", "https://acme.com/about/theme.css"},
		{"https://acme.com/", "//cdn.acme.com/a.css#x", "https://cdn.acme.com/a.css"},
		{"https://acme.com/", "data:text/css,body{}", ""},
		{"https://acme.com/", "javascript:void(0)", ""},
		{"https://acme.com/", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.base, tt.href))
		})
	}
}

func TestVisibleText(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head>
	<body>
		<script>var x = "hidden";</script>
		<h1>  Acme   Coffee </h1>
		<p>Roasted daily.</p>
	</body></html>`

	text, err := VisibleText(html)
	require.NoError(t, err)
	assert.Equal(t, "Acme Coffee\nRoasted daily.", text)
	assert.NotContains(t, text, "hidden")
	assert.NotContains(t, text, "color")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("   short   "))
	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}

func TestError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &Error{URL: "https://acme.com", Message: "HTTP request failed", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fetch error for https://acme.com: HTTP request failed: "+cause.Error(), err.Error())
}
