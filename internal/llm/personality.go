package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/prompts"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// MaxPersonalityInput bounds the page text sent for personality inference
const MaxPersonalityInput = 6000

// SchemaField is one key of a JSON reply the model is asked to produce
type SchemaField struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// ExtractionSchema describes a JSON reply: a task preamble plus its fields
type ExtractionSchema struct {
	Name        string
	Description string
	Fields      []SchemaField
}

// BuildExtractionPrompt renders schema as instructions followed by the input text
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\nReturn ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = `"string"`
		}
		fmt.Fprintf(&sb, "  %q: %s", field.Name, typeHint)
		if field.Required {
			sb.WriteString(" (required)")
		}
		if field.Description != "" {
			fmt.Fprintf(&sb, " // %s", field.Description)
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\nReturn ONLY the JSON object, no markdown, no explanation.\n\n")
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// PersonalitySchema asks for the closed personality field set
func PersonalitySchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "BrandPersonality",
		Description: prompts.MustGet(prompts.Styleguide, prompts.KeyPersonality),
		Fields: []SchemaField{
			{Name: "formality", Type: "1-5", Description: "1 casual and chatty, 5 formal and institutional", Required: true},
			{Name: "energy", Type: "1-5", Description: "1 calm and measured, 5 bold and excited", Required: true},
			{Name: "warmth", Type: "1-5", Description: "1 detached and technical, 5 personal and caring", Required: true},
			{Name: "tone", Type: `"string"`, Description: "two to five words, e.g. 'confident, plain-spoken'", Required: true},
			{Name: "industry", Type: `"string"`, Description: "short industry label, e.g. 'specialty coffee'"},
			{Name: "tagline", Type: `"string"`, Description: "the site's own tagline copied verbatim, or empty"},
		},
	}
}

// InferPersonality asks the model for a personality record from page copy.
// The reply is validated like any externally supplied override.
func InferPersonality(ctx context.Context, client Client, brandName, visibleText string) (*types.PersonalityOverride, error) {
	text := strings.TrimSpace(visibleText)
	if text == "" {
		return nil, fmt.Errorf("no page text to infer personality from")
	}
	if len(text) > MaxPersonalityInput {
		text = text[:MaxPersonalityInput]
	}
	if brandName != "" {
		text = "Brand: " + brandName + "\n\n" + text
	}

	raw, err := client.GenerateJSON(ctx, BuildExtractionPrompt(PersonalitySchema(), text), TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to infer personality: %w", err)
	}

	var p types.PersonalityOverride
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &p); err != nil {
		return nil, fmt.Errorf("failed to parse personality: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("model returned an invalid personality: %w", err)
	}
	return &p, nil
}
