// Package schemas validates design-token and brand-analysis JSON against
// embedded JSON Schemas.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Embedded schema names
const (
	DesignTokensSchema  = "design_tokens.schema.json"
	BrandAnalysisSchema = "brand_analysis.schema.json"
)

//go:embed json/*.schema.json
var schemaFS embed.FS

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s validation failed:\n", ve.Schema)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Schema returns the text of an embedded schema
func Schema(name string) (string, error) {
	b, err := schemaFS.ReadFile("json/" + name)
	if err != nil {
		return "", &SchemaLoadError{Path: name, Message: "unknown schema", Cause: err}
	}
	return string(b), nil
}

// ValidateTokens checks a DesignTokenSet (or anything that marshals like one)
func ValidateTokens(v any) error {
	return validateValue(DesignTokensSchema, v)
}

// ValidateAnalysis checks a BrandAnalysis (or anything that marshals like one)
func ValidateAnalysis(v any) error {
	return validateValue(BrandAnalysisSchema, v)
}

// ValidateFile validates a JSON file on disk against an embedded schema
func ValidateFile(schemaName, jsonPath string) error {
	abs, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", abs, err)
	}
	return ValidateBytes(schemaName, data)
}

// ValidateBytes validates raw JSON against an embedded schema
func ValidateBytes(schemaName string, data []byte) error {
	schema, err := Schema(schemaName)
	if err != nil {
		return err
	}
	return validate(schemaName, gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(data))
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate("(string schema)", gojsonschema.NewStringLoader(schemaContent), gojsonschema.NewStringLoader(jsonContent))
}

func validateValue(schemaName string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return ValidateBytes(schemaName, data)
}

func validate(name string, schema, document gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return &SchemaLoadError{Path: name, Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{
		Schema: name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}
