package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/review-analyzer/pkg/config"
)

// PreferredGeminiModels are tried first, in order, when they are available.
var PreferredGeminiModels = []string{
	"gemini-pro-latest",
	"gemini-2.5-flash-lite",
	"gemini-flash-lite-latest",
	"gemini-2.0-flash-lite",
	"gemini-2.5-flash",
}

// fallbackGeminiModel is tried alone when the model list cannot be fetched.
const fallbackGeminiModel = "gemini-pro"

// maxOtherGeminiModels bounds how many listed models beyond the preferred
// ones are considered.
const maxOtherGeminiModels = 10

// GeminiClient calls the Generative Language REST API.
type GeminiClient struct {
	apiKey  string
	baseURL string
	enabled bool
	client  *http.Client
	logger  *zap.Logger
}

// NewGeminiClient creates a Gemini client using values from the provided config.
func NewGeminiClient(cfg config.GeminiConfig, timeout time.Duration, logger *zap.Logger) *GeminiClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://generativelanguage.googleapis.com"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		baseURL: base,
		enabled: cfg.Active(),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type geminiModel struct {
	Name                       string   `json:"name"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

type geminiModelList struct {
	Models        []geminiModel `json:"models"`
	NextPageToken string        `json:"nextPageToken"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerateRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) Name() string  { return "gemini" }
func (g *GeminiClient) Enabled() bool { return g.enabled }

// ExtractKeyPoints picks a usable model and generates key points with it.
// Quota or not-found answers move on to the next candidate model; an auth
// failure stops immediately.
func (g *GeminiClient) ExtractKeyPoints(ctx context.Context, text string) (string, error) {
	candidates := g.candidateModels(ctx)
	prompt := SingleTurnPrompt(text)

	var lastErr error
	for _, model := range candidates {
		out, err := g.GenerateContent(ctx, model, prompt)
		if err == nil {
			g.logger.Debug("gemini model used", zap.String("model", model))
			return strings.TrimSpace(out), nil
		}
		lastErr = err

		switch ReasonOf(err) {
		case ReasonAuthError, ReasonInvalidResponse:
			return "", err
		}
		if IsTimeout(err) && ctx.Err() != nil {
			return "", err
		}
		g.logger.Warn("⚠️ gemini model unavailable, trying next",
			zap.String("model", model),
			zap.String("reason", string(ReasonOf(err))),
		)
	}

	if lastErr == nil {
		lastErr = invalidResponse(g.Name(), "no gemini model supports generateContent")
	}
	return "", lastErr
}

// candidateModels returns the ordered list of models to try.
func (g *GeminiClient) candidateModels(ctx context.Context) []string {
	available, err := g.ListModels(ctx)
	if err != nil {
		g.logger.Warn("⚠️ cannot list gemini models, trying default",
			zap.String("model", fallbackGeminiModel),
			zap.Error(err),
		)
		return []string{fallbackGeminiModel}
	}
	return SelectGeminiModels(available)
}

// SelectGeminiModels orders available model names (short form, without the
// "models/" prefix): preferred models first, then up to ten of the others.
func SelectGeminiModels(available []string) []string {
	have := make(map[string]bool, len(available))
	for _, m := range available {
		have[m] = true
	}

	preferred := make(map[string]bool, len(PreferredGeminiModels))
	var out []string
	for _, m := range PreferredGeminiModels {
		preferred[m] = true
		if have[m] {
			out = append(out, m)
		}
	}

	others := available
	if len(others) > maxOtherGeminiModels {
		others = others[:maxOtherGeminiModels]
	}
	for _, m := range others {
		if !preferred[m] {
			out = append(out, m)
		}
	}
	return out
}

// ListModels returns the short names of models supporting generateContent.
func (g *GeminiClient) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	pageToken := ""
	for {
		endpoint := g.baseURL + "/v1beta/models?pageSize=100"
		if pageToken != "" {
			endpoint += "&pageToken=" + url.QueryEscape(pageToken)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, transportError(g.Name(), err)
		}
		req.Header.Set("x-goog-api-key", g.apiKey)

		resp, err := g.client.Do(req)
		if err != nil {
			return nil, transportError(g.Name(), err)
		}

		var list geminiModelList
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, statusError(g.Name(), resp.StatusCode)
		}
		err = json.NewDecoder(resp.Body).Decode(&list)
		resp.Body.Close()
		if err != nil {
			return nil, invalidResponse(g.Name(), "decode model list: %v", err)
		}

		for _, m := range list.Models {
			if supports(m.SupportedGenerationMethods, "generateContent") {
				names = append(names, strings.TrimPrefix(m.Name, "models/"))
			}
		}

		if list.NextPageToken == "" {
			return names, nil
		}
		pageToken = list.NextPageToken
	}
}

// GenerateContent runs a single-turn prompt against model.
func (g *GeminiClient) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	body := geminiGenerateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", invalidResponse(g.Name(), "encode request: %v", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", transportError(g.Name(), err)
	}
	req.Header.Set("x-goog-api-key", g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", transportError(g.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", statusError(g.Name(), resp.StatusCode)
	}

	var gr geminiGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", invalidResponse(g.Name(), "decode response: %v", err)
	}

	var sb strings.Builder
	for _, c := range gr.Candidates {
		for _, p := range c.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	if sb.Len() == 0 {
		return "", invalidResponse(g.Name(), "empty response from gemini")
	}
	return sb.String(), nil
}

// Ping lists models to check the key.
func (g *GeminiClient) Ping(ctx context.Context) error {
	_, err := g.ListModels(ctx)
	return err
}

func supports(methods []string, want string) bool {
	for _, m := range methods {
		if m == want {
			return true
		}
	}
	return false
}
