package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	reply  string
	err    error
	prompt string
	tier   ModelTier
}

func (s *stubClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return s.GenerateJSON(ctx, prompt, tier)
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, tier ModelTier) (string, error) {
	s.prompt = prompt
	s.tier = tier
	return s.reply, s.err
}

func (s *stubClient) Close() error { return nil }

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt(PersonalitySchema(), "We roast coffee.")

	assert.Contains(t, prompt, `"formality": 1-5 (required)`)
	assert.Contains(t, prompt, `"industry": "string" // short industry label`)
	assert.Contains(t, prompt, "We roast coffee.")
	assert.True(t, strings.HasPrefix(prompt, "You are a brand analyst."))
}

func TestInferPersonality(t *testing.T) {
	client := &stubClient{reply: "```json\n{\"formality\": 2, \"energy\": 4, \"warmth\": 5, \"tone\": \"friendly, upbeat\", \"industry\": \"specialty coffee\"}\n```"}

	p, err := InferPersonality(context.Background(), client, "Acme Coffee", "Small batch roasting every morning.")
	require.NoError(t, err)

	require.NotNil(t, p.Formality)
	assert.Equal(t, 2, *p.Formality)
	assert.Equal(t, 4, *p.Energy)
	assert.Equal(t, 5, *p.Warmth)
	assert.Equal(t, "friendly, upbeat", *p.Tone)
	assert.Equal(t, "specialty coffee", *p.Industry)
	assert.Nil(t, p.Tagline)
	assert.Equal(t, TierLite, client.tier)
	assert.Contains(t, client.prompt, "Brand: Acme Coffee")
}

func TestInferPersonality_TruncatesInput(t *testing.T) {
	client := &stubClient{reply: `{"formality": 3, "energy": 3, "warmth": 3, "tone": "plain"}`}
	long := strings.Repeat("x", MaxPersonalityInput+500)

	_, err := InferPersonality(context.Background(), client, "", long)
	require.NoError(t, err)
	assert.NotContains(t, client.prompt, strings.Repeat("x", MaxPersonalityInput+1))
}

func TestInferPersonality_Errors(t *testing.T) {
	tests := []struct {
		name   string
		client *stubClient
		text   string
	}{
		{"empty text", &stubClient{}, "   "},
		{"client error", &stubClient{err: errors.New("quota")}, "copy"},
		{"not json", &stubClient{reply: "I cannot rate this."}, "copy"},
		{"out of range", &stubClient{reply: `{"formality": 9, "energy": 3, "warmth": 3}`}, "copy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InferPersonality(context.Background(), tt.client, "Acme", tt.text)
			assert.Error(t, err)
		})
	}
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "openai"}, "key")
	assert.Error(t, err)
}
