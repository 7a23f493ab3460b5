package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/johnquangdev/review-analyzer/pkg/config"
)

func newHFTestClient(url string) *HuggingFaceClient {
	return NewHuggingFaceClient(config.HuggingFaceConfig{
		APIKey:           "hf_test",
		BaseURL:          url,
		SummaryModel:     "facebook/bart-large-cnn",
		SentimentModel:   "cardiffnlp/twitter-roberta-base-sentiment-latest",
		KeyPointsEnabled: true,
	}, time.Second)
}

func TestHuggingFaceSummarize(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"list", `[{"summary_text":" Produk bagus dan awet. "}]`, "Produk bagus dan awet."},
		{"object", `{"summary_text":"Pengiriman cepat."}`, "Pengiriman cepat."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/models/facebook/bart-large-cnn" {
					t.Fatalf("unexpected path %s", r.URL.Path)
				}
				var payload summarizeRequest
				if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if payload.Inputs != "Ekstrak poin penting dari review ini: kualitas oke" {
					t.Fatalf("unexpected inputs %q", payload.Inputs)
				}
				if payload.Parameters.MaxLength != 150 || payload.Parameters.MinLength != 50 || payload.Parameters.DoSample {
					t.Fatalf("unexpected parameters %+v", payload.Parameters)
				}
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			out, err := newHFTestClient(ts.URL).ExtractKeyPoints(context.Background(), "kualitas oke")
			assert.Equal(t, err, nil)
			assert.Equal(t, out, tt.want)
		})
	}
}

func TestHuggingFaceSummarize_ModelLoading(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"Model is currently loading"}`))
	}))
	defer ts.Close()

	_, err := newHFTestClient(ts.URL).ExtractKeyPoints(context.Background(), "x")
	assert.Equal(t, ReasonOf(err), ReasonQuotaExhausted)
}

func TestHuggingFaceClassify(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"nested", `[[{"label":"positive","score":0.8},{"label":"neutral","score":0.15},{"label":"negative","score":0.05}]]`},
		{"flat", `[{"label":"positive","score":0.8},{"label":"neutral","score":0.15},{"label":"negative","score":0.05}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/models/cardiffnlp/twitter-roberta-base-sentiment-latest" {
					t.Fatalf("unexpected path %s", r.URL.Path)
				}
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			scores, err := newHFTestClient(ts.URL).Classify(context.Background(), "mantap")
			assert.Equal(t, err, nil)
			assert.Equal(t, len(scores), 3)
			assert.Equal(t, scores[0], LabelScore{Label: "positive", Score: 0.8})
		})
	}
}

func TestHuggingFaceClassify_Empty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	_, err := newHFTestClient(ts.URL).Classify(context.Background(), "x")
	assert.Equal(t, ReasonOf(err), ReasonInvalidResponse)
}
