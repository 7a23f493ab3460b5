package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/johnquangdev/review-analyzer/pkg/config"
)

// LabelScore is one class of a classifier result, with the model's raw label.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// HuggingFaceClient calls the HF Inference API for summarization and
// sentiment classification.
type HuggingFaceClient struct {
	apiKey           string
	baseURL          string
	summaryModel     string
	sentimentModel   string
	keyPointsEnabled bool
	client           *http.Client
}

// NewHuggingFaceClient creates a client using values from the provided config.
func NewHuggingFaceClient(cfg config.HuggingFaceConfig, timeout time.Duration) *HuggingFaceClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api-inference.huggingface.co"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HuggingFaceClient{
		apiKey:           cfg.APIKey,
		baseURL:          base,
		summaryModel:     cfg.SummaryModel,
		sentimentModel:   cfg.SentimentModel,
		keyPointsEnabled: cfg.KeyPointsActive(),
		client:           &http.Client{Timeout: timeout},
	}
}

type summarizeRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		MaxLength int  `json:"max_length"`
		MinLength int  `json:"min_length"`
		DoSample  bool `json:"do_sample"`
	} `json:"parameters"`
}

type summary struct {
	SummaryText string `json:"summary_text"`
}

type classifyRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		TopK int `json:"top_k"`
	} `json:"parameters"`
}

func (h *HuggingFaceClient) Name() string  { return "huggingface" }
func (h *HuggingFaceClient) Enabled() bool { return h.keyPointsEnabled }

// ExtractKeyPoints summarizes the review with the configured summarization model.
func (h *HuggingFaceClient) ExtractKeyPoints(ctx context.Context, text string) (string, error) {
	var reqBody summarizeRequest
	reqBody.Inputs = summarizationPrefix + text
	reqBody.Parameters.MaxLength = 150
	reqBody.Parameters.MinLength = 50
	reqBody.Parameters.DoSample = false

	raw, err := h.post(ctx, h.summaryModel, reqBody)
	if err != nil {
		return "", err
	}

	// The API answers with either a list of summaries or a single object.
	var list []summary
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return "", invalidResponse(h.Name(), "empty summary list")
		}
		return strings.TrimSpace(list[0].SummaryText), nil
	}
	var one summary
	if err := json.Unmarshal(raw, &one); err != nil || one.SummaryText == "" {
		return "", invalidResponse(h.Name(), "unexpected summary payload")
	}
	return strings.TrimSpace(one.SummaryText), nil
}

// Classify returns every class score of the sentiment model for text.
func (h *HuggingFaceClient) Classify(ctx context.Context, text string) ([]LabelScore, error) {
	var reqBody classifyRequest
	reqBody.Inputs = text
	reqBody.Parameters.TopK = 3

	raw, err := h.post(ctx, h.sentimentModel, reqBody)
	if err != nil {
		return nil, err
	}

	// Single inputs come back either nested one level or flat.
	var nested [][]LabelScore
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}
	var flat []LabelScore
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}
	return nil, invalidResponse(h.Name(), "unexpected classification payload")
}

// SentimentModel returns the configured classification model ID.
func (h *HuggingFaceClient) SentimentModel() string { return h.sentimentModel }

// Ping checks that the sentiment model endpoint is reachable with the key.
func (h *HuggingFaceClient) Ping(ctx context.Context) error {
	_, err := h.Classify(ctx, "ok")
	return err
}

func (h *HuggingFaceClient) post(ctx context.Context, model string, body interface{}) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, invalidResponse(h.Name(), "encode request: %v", err)
	}

	endpoint := h.baseURL + "/models/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, transportError(h.Name(), err)
	}
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, transportError(h.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, statusError(h.Name(), resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(h.Name(), err)
	}
	return raw, nil
}
