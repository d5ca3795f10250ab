// Package llm wraps the text-generation service that writes the decorative
// styleguide sections and, optionally, infers a brand personality.
package llm

import (
	"os"
	"strings"
	"time"
)

// ModelTier selects how capable (and how slow) a model should be
type ModelTier string

const (
	// TierLite is for short classification calls such as personality inference
	TierLite ModelTier = "lite"
	// TierStandard writes section batches
	TierStandard ModelTier = "standard"
	// TierAdvanced is reserved for callers that want the strongest model
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// Call defaults
const (
	// DefaultTemperature leaves room for varied copy in generated sections
	DefaultTemperature = 0.4
	// DefaultCallTimeout bounds one model call
	DefaultCallTimeout = 60 * time.Second
	// DefaultMaxOutputTokens fits a batch of section fragments
	DefaultMaxOutputTokens = 8192
)

// Config holds the model configuration for the application
type Config struct {
	Provider        Provider
	Models          map[ModelTier]string
	Temperature     float32
	CallTimeout     time.Duration
	MaxOutputTokens int32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature:     DefaultTemperature,
		CallTimeout:     DefaultCallTimeout,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies GEMINI_MODEL_LITE,
// GEMINI_MODEL_STANDARD and GEMINI_MODEL_ADVANCED when set.
func ConfigFromEnv() *Config {
	c := DefaultConfig()
	for tier, key := range map[ModelTier]string{
		TierLite:     "GEMINI_MODEL_LITE",
		TierStandard: "GEMINI_MODEL_STANDARD",
		TierAdvanced: "GEMINI_MODEL_ADVANCED",
	} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			c.Models[tier] = v
		}
	}
	return c
}

// GetModel returns the model name for a tier, falling back to standard then lite
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of c using model for tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{
		Provider:        c.Provider,
		Models:          make(map[ModelTier]string, len(c.Models)+1),
		Temperature:     c.Temperature,
		CallTimeout:     c.CallTimeout,
		MaxOutputTokens: c.MaxOutputTokens,
	}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
