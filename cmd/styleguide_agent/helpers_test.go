package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// getBinaryPath returns the built CLI, skipping when it is absent
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}
	binaryPath := filepath.Join("..", "..", "bin", "styleguide_agent")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/styleguide_agent ./cmd/styleguide_agent'", binaryPath)
	}
	return binaryPath
}

var brandPage = `<!DOCTYPE html><html><head><title>Acme Coffee | Roasters</title>
<style>
:root { --brand: #1d4ed8; }
body { font-family: "Inter", sans-serif; color: #111827; font-size: 16px; }
h1 { font-family: "Playfair Display", serif; font-size: 48px; }
.btn { background-color: #1d4ed8; color: #fff; border-radius: 6px; padding: 12px 24px; }
.accent { color: #f59e0b; }
.card { border-radius: 12px; box-shadow: 0 4px 12px rgba(0, 0, 0, 0.1); }
section { padding: 80px 0; }
</style></head>
<body><h1>Roasted fresh every morning</h1><p>` + strings.Repeat("Small batch coffee from farmers we know by name, roasted in our shop. ", 8) + `</p></body></html>`

// writeBrandPage saves the sample page to a temp dir and returns its path
func writeBrandPage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acme.html")
	if err := os.WriteFile(path, []byte(brandPage), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
