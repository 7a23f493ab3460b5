package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/johnquangdev/review-analyzer/pkg/config"
)

func newGroqTestClient(url string) *GroqClient {
	return NewGroqClient(config.GroqConfig{APIKey: "gsk_test", BaseURL: url, Enabled: true}, time.Second)
}

func TestGroqExtractKeyPoints_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer gsk_test" {
			t.Fatalf("unexpected auth header %q", got)
		}

		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Model != "llama-3.1-8b-instant" || payload.MaxTokens != 200 || payload.Temperature != 0.1 {
			t.Fatalf("unexpected request params: %+v", payload)
		}
		if len(payload.Messages) != 2 || payload.Messages[0].Role != "system" {
			t.Fatalf("unexpected messages: %+v", payload.Messages)
		}
		// short reviews get the short prompt with the "jelek oi" example
		if !strings.Contains(payload.Messages[1].Content, `"jelek oi"`) {
			t.Fatalf("expected short prompt, got %q", payload.Messages[1].Content)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  • [Kualitas]: Produk dinilai buruk  "}}]}`))
	}))
	defer ts.Close()

	out, err := newGroqTestClient(ts.URL).ExtractKeyPoints(context.Background(), "jelek")
	assert.Equal(t, err, nil)
	assert.Equal(t, out, "• [Kualitas]: Produk dinilai buruk")
}

func TestGroqExtractKeyPoints_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   Reason
	}{
		{"rate limited", http.StatusTooManyRequests, `{}`, ReasonQuotaExhausted},
		{"bad key", http.StatusUnauthorized, `{}`, ReasonAuthError},
		{"server error", http.StatusBadGateway, `{}`, ReasonTransportError},
		{"no choices", http.StatusOK, `{"choices":[]}`, ReasonInvalidResponse},
		{"garbage", http.StatusOK, `not json`, ReasonInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := newGroqTestClient(ts.URL).ExtractKeyPoints(context.Background(), "kualitas bagus sekali dan awet")
			assert.NotEqual(t, err, nil)
			assert.Equal(t, ReasonOf(err), tt.want)
		})
	}
}

func TestGroqExtractKeyPoints_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := newGroqTestClient(url).ExtractKeyPoints(context.Background(), "bagus")
	assert.Equal(t, ReasonOf(err), ReasonTransportError)
}

func TestGroqEnabled(t *testing.T) {
	assert.Equal(t, NewGroqClient(config.GroqConfig{Enabled: true}, 0).Enabled(), false)
	assert.Equal(t, NewGroqClient(config.GroqConfig{APIKey: "k", Enabled: false}, 0).Enabled(), false)
	assert.Equal(t, NewGroqClient(config.GroqConfig{APIKey: "k", Enabled: true}, 0).Enabled(), true)
}

func TestKeyPointsPrompt_Variants(t *testing.T) {
	assert.Equal(t, strings.Contains(KeyPointsPrompt("  enak  "), `"jelek oi"`), true)
	long := KeyPointsPrompt("baunya aneh, tidak enak dimulut ketika dimakan")
	assert.Equal(t, strings.Contains(long, "maksimal 3-5 poin"), true)
}
