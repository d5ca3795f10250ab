package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrMissingAPIKey is returned when no Gemini key is configured. Callers
// treat it as "run without AI sections".
var ErrMissingAPIKey = errors.New("API key is required")

// Client writes styleguide copy. Implementations must be safe for
// concurrent use; section batches call it from several goroutines.
type Client interface {
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON returns the reply with any markdown fence or chatter removed
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	Close() error
}

// BlockedError reports a reply the provider withheld, usually on safety grounds.
type BlockedError struct {
	Model  string
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("model %s withheld its reply: %s", e.Model, e.Reason)
}

// NewClient creates a client for the configured provider. Gemini is the only one.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Provider != "" && config.Provider != ProviderGemini {
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
	return NewGeminiClient(ctx, config, apiKey)
}

// GeminiClient implements Client on the Gemini API
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient dials Gemini with apiKey
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if config == nil {
		config = DefaultConfig()
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, config: config}, nil
}

// GenerateContent returns the model's plain-text reply
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, false)
}

// GenerateJSON asks for an application/json reply
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.generate(ctx, prompt, tier, true)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, tier ModelTier, asJSON bool) (string, error) {
	name := c.config.GetModel(tier)
	if name == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(name)
	model.SetTemperature(orDefault(c.config.Temperature, DefaultTemperature))
	model.SetMaxOutputTokens(orDefault(c.config.MaxOutputTokens, DefaultMaxOutputTokens))
	if asJSON {
		model.ResponseMIMEType = "application/json"
	}

	timeout := orDefault(c.config.CallTimeout, DefaultCallTimeout)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%s call failed: %w", name, err)
	}
	return replyText(name, resp)
}

// Close releases the underlying connection
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// replyText joins the text parts of the first candidate
func replyText(model string, resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%s returned no response", model)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", &BlockedError{Model: model, Reason: resp.PromptFeedback.BlockReason.String()}
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%s returned no candidates", model)
	}

	cand := resp.Candidates[0]
	if cand.FinishReason == genai.FinishReasonSafety || cand.FinishReason == genai.FinishReasonRecitation {
		return "", &BlockedError{Model: model, Reason: cand.FinishReason.String()}
	}
	if cand.Content == nil {
		return "", fmt.Errorf("%s returned an empty candidate", model)
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%s returned no text", model)
	}
	return sb.String(), nil
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
