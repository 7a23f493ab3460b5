package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/johnquangdev/review-analyzer/pkg/config"
)

// GroqClient is a minimal client for Groq chat completions used for key-point extraction
type GroqClient struct {
	apiKey  string
	baseURL string
	model   string
	enabled bool
	client  *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
func NewGroqClient(cfg config.GroqConfig, timeout time.Duration) *GroqClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.groq.com"
	}
	model := cfg.Model
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GroqClient{
		apiKey:  cfg.APIKey,
		baseURL: base,
		model:   model,
		enabled: cfg.Active(),
		client:  &http.Client{Timeout: timeout},
	}
}

// ChatMessage is one turn of a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []ChatMessage `json:"messages,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *GroqClient) Name() string  { return "groq" }
func (g *GroqClient) Enabled() bool { return g.enabled }

// ExtractKeyPoints sends the review to Groq and returns the raw assistant content
func (g *GroqClient) ExtractKeyPoints(ctx context.Context, text string) (string, error) {
	reqBody := ChatRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: "system", Content: keyPointsSystemPrompt},
			{Role: "user", Content: KeyPointsPrompt(text)},
		},
		Temperature: 0.1,
		MaxTokens:   200,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", invalidResponse(g.Name(), "encode request: %v", err)
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", transportError(g.Name(), err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", transportError(g.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", statusError(g.Name(), resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", invalidResponse(g.Name(), "decode response: %v", err)
	}
	if len(cr.Choices) == 0 {
		return "", invalidResponse(g.Name(), "empty response from groq")
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}

// Ping checks that the key is accepted by listing models.
func (g *GroqClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/openai/v1/models", nil)
	if err != nil {
		return transportError(g.Name(), err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return transportError(g.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(g.Name(), resp.StatusCode)
	}
	return nil
}
