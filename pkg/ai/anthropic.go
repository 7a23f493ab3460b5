package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/johnquangdev/review-analyzer/pkg/config"
)

// AnthropicClient extracts key points with the Anthropic messages API.
type AnthropicClient struct {
	client  *anthropic.Client
	model   anthropic.Model
	enabled bool
}

// NewAnthropicClient creates an Anthropic client with SDK retries disabled.
func NewAnthropicClient(cfg config.AnthropicConfig, timeout time.Duration) *AnthropicClient {
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
	client := anthropic.NewClient(opts...)

	model := anthropic.Model(cfg.Model)
	if cfg.Model == "" {
		model = anthropic.ModelClaudeHaiku4_5
	}

	return &AnthropicClient{
		client:  &client,
		model:   model,
		enabled: cfg.Active(),
	}
}

func (c *AnthropicClient) Name() string  { return "anthropic" }
func (c *AnthropicClient) Enabled() bool { return c.enabled }

// ExtractKeyPoints returns the concatenated text blocks of the reply.
func (c *AnthropicClient) ExtractKeyPoints(ctx context.Context, text string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 200,
		System: []anthropic.TextBlockParam{
			{Text: keyPointsSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(KeyPointsPrompt(text))),
		},
		Temperature: anthropic.Float(0.1),
	})
	if err != nil {
		return "", c.wrap(err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		sb.WriteString(block.Text)
	}
	if sb.Len() == 0 {
		return "", invalidResponse(c.Name(), "no response from anthropic")
	}
	return strings.TrimSpace(sb.String()), nil
}

// Ping lists models to check the key.
func (c *AnthropicClient) Ping(ctx context.Context) error {
	if _, err := c.client.Models.List(ctx, anthropic.ModelListParams{}); err != nil {
		return c.wrap(err)
	}
	return nil
}

func (c *AnthropicClient) wrap(err error) error {
	var ae *anthropic.Error
	if errors.As(err, &ae) {
		pe := statusError(c.Name(), ae.StatusCode).(*ProviderError)
		pe.Err = err
		return pe
	}
	return transportError(c.Name(), err)
}
