package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/brand-styleguide/internal/fetch"
	"github.com/jonathan/brand-styleguide/internal/schemas"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// source is page text to extract from, either fetched or read from disk
type source struct {
	Raw    string
	URL    string
	Domain string
	Title  string
	Method string
	Pages  []string
}

// loadSource reads htmlFile when set, otherwise collects pageURL and its stylesheets
func loadSource(ctx context.Context, pageURL, htmlFile string, siteOpts *fetch.SiteOptions) (*source, error) {
	switch {
	case pageURL == "" && htmlFile == "":
		return nil, fmt.Errorf("either --url or --html-file must be provided")
	case pageURL != "" && htmlFile != "":
		return nil, fmt.Errorf("--url and --html-file are mutually exclusive; provide only one")
	}

	if htmlFile != "" {
		content, err := os.ReadFile(htmlFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read html file: %w", err)
		}
		return &source{Raw: string(content), Method: types.ExtractionMethodRegex}, nil
	}

	site, err := fetch.CollectSite(ctx, pageURL, siteOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to collect site: %w", err)
	}
	return &source{
		Raw:    site.Raw,
		URL:    site.URL,
		Domain: site.Domain,
		Title:  site.Title,
		Method: site.Method,
		Pages:  site.Pages,
	}, nil
}

// readJSON unmarshals a JSON file into v
func readJSON(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeFile creates parent directories and writes data
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON and, when schemaName is set, checks it
// against the embedded schema. Schema failures are warnings.
func writeJSON(path string, v any, schemaName string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	if schemaName == "" {
		return nil
	}
	if err := schemas.ValidateBytes(schemaName, data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: %s does not validate against %s: %v\n", path, schemaName, err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate %s: %v\n", path, err)
		}
	}
	return nil
}

// loadPersonality reads a PersonalityOverride JSON file
func loadPersonality(path string) (*types.PersonalityOverride, error) {
	if path == "" {
		return nil, nil
	}
	var p types.PersonalityOverride
	if err := readJSON(path, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid personality: %w", err)
	}
	return &p, nil
}
