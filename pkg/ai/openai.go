package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/johnquangdev/review-analyzer/pkg/config"
)

// OpenAIClient extracts key points with OpenAI chat completions.
type OpenAIClient struct {
	client  *openai.Client
	model   openai.ChatModel
	enabled bool
}

// NewOpenAIClient creates an OpenAI client. The SDK's own retries are
// switched off; the resolver moves to the next provider instead.
func NewOpenAIClient(cfg config.OpenAIConfig, timeout time.Duration) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)

	model := openai.ChatModel(cfg.Model)
	if cfg.Model == "" {
		model = openai.ChatModelGPT4oMini
	}

	return &OpenAIClient{
		client:  &client,
		model:   model,
		enabled: cfg.Active(),
	}
}

func (c *OpenAIClient) Name() string  { return "openai" }
func (c *OpenAIClient) Enabled() bool { return c.enabled }

// ExtractKeyPoints returns the raw assistant content for the review.
func (c *OpenAIClient) ExtractKeyPoints(ctx context.Context, text string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(keyPointsSystemPrompt),
			openai.UserMessage(KeyPointsPrompt(text)),
		},
		MaxTokens:   openai.Int(200),
		Temperature: openai.Float(0.1),
	})
	if err != nil {
		return "", sdkError(c.Name(), err)
	}

	if len(resp.Choices) == 0 {
		return "", invalidResponse(c.Name(), "no response from openai")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Ping lists models to check the key.
func (c *OpenAIClient) Ping(ctx context.Context) error {
	if _, err := c.client.Models.List(ctx); err != nil {
		return sdkError(c.Name(), err)
	}
	return nil
}

// sdkError maps an SDK error carrying an HTTP status to a ProviderError.
func sdkError(provider string, err error) error {
	var oe *openai.Error
	if errors.As(err, &oe) {
		pe := statusError(provider, oe.StatusCode).(*ProviderError)
		pe.Err = err
		return pe
	}
	return transportError(provider, err)
}
