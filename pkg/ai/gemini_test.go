package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/johnquangdev/review-analyzer/pkg/config"
)

func TestSelectGeminiModels(t *testing.T) {
	available := []string{
		"gemini-2.5-flash", "embedding-001", "gemini-pro-latest", "m1", "m2",
		"m3", "m4", "m5", "m6", "m7", "m8", "m9",
	}

	got := SelectGeminiModels(available)

	// preferred models first, in preference order, then the first ten listed
	// names that are not preferred
	want := []string{
		"gemini-pro-latest", "gemini-2.5-flash",
		"embedding-001", "m1", "m2", "m3", "m4", "m5", "m6", "m7",
	}
	assert.Equal(t, got, want)
}

type geminiStub struct {
	mu        sync.Mutex
	calls     []string
	listCode  int
	listBody  string
	genStatus map[string]int
	genBody   string
}

func (s *geminiStub) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "gm_test" {
			t.Fatalf("missing api key header")
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1beta/models":
			if s.listCode != 0 {
				w.WriteHeader(s.listCode)
				return
			}
			w.Write([]byte(s.listBody))
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":generateContent"):
			model := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v1beta/models/"), ":generateContent")
			s.mu.Lock()
			s.calls = append(s.calls, model)
			s.mu.Unlock()
			if code, ok := s.genStatus[model]; ok {
				w.WriteHeader(code)
				return
			}
			w.Write([]byte(s.genBody))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})
}

func newGeminiTestClient(url string) *GeminiClient {
	return NewGeminiClient(config.GeminiConfig{APIKey: "gm_test", BaseURL: url, Enabled: true}, time.Second, nil)
}

const geminiListBody = `{"models":[
	{"name":"models/gemini-2.5-flash-lite","supportedGenerationMethods":["generateContent"]},
	{"name":"models/text-embedding-004","supportedGenerationMethods":["embedContent"]},
	{"name":"models/gemini-pro-latest","supportedGenerationMethods":["generateContent","countTokens"]}
]}`

const geminiGenBody = `{"candidates":[{"content":{"parts":[{"text":"• [KUALITAS]: "},{"text":"Produk awet"}]}}]}`

func TestGeminiExtractKeyPoints_QuotaMovesToNextModel(t *testing.T) {
	stub := &geminiStub{
		listBody:  geminiListBody,
		genStatus: map[string]int{"gemini-pro-latest": http.StatusTooManyRequests},
		genBody:   geminiGenBody,
	}
	ts := httptest.NewServer(stub.handler(t))
	defer ts.Close()

	out, err := newGeminiTestClient(ts.URL).ExtractKeyPoints(context.Background(), "awet sekali")
	assert.Equal(t, err, nil)
	assert.Equal(t, out, "• [KUALITAS]: Produk awet")
	assert.Equal(t, stub.calls, []string{"gemini-pro-latest", "gemini-2.5-flash-lite"})
}

func TestGeminiExtractKeyPoints_AuthAborts(t *testing.T) {
	stub := &geminiStub{
		listBody:  geminiListBody,
		genStatus: map[string]int{"gemini-pro-latest": http.StatusForbidden},
		genBody:   geminiGenBody,
	}
	ts := httptest.NewServer(stub.handler(t))
	defer ts.Close()

	_, err := newGeminiTestClient(ts.URL).ExtractKeyPoints(context.Background(), "awet")
	assert.Equal(t, ReasonOf(err), ReasonAuthError)
	assert.Equal(t, stub.calls, []string{"gemini-pro-latest"})
}

func TestGeminiExtractKeyPoints_ListFailureUsesDefault(t *testing.T) {
	stub := &geminiStub{listCode: http.StatusInternalServerError, genBody: geminiGenBody}
	ts := httptest.NewServer(stub.handler(t))
	defer ts.Close()

	out, err := newGeminiTestClient(ts.URL).ExtractKeyPoints(context.Background(), "awet")
	assert.Equal(t, err, nil)
	assert.Equal(t, out, "• [KUALITAS]: Produk awet")
	assert.Equal(t, stub.calls, []string{"gemini-pro"})
}

func TestGeminiExtractKeyPoints_AllQuotaExhausted(t *testing.T) {
	stub := &geminiStub{
		listBody: geminiListBody,
		genStatus: map[string]int{
			"gemini-pro-latest":     http.StatusTooManyRequests,
			"gemini-2.5-flash-lite": http.StatusTooManyRequests,
		},
	}
	ts := httptest.NewServer(stub.handler(t))
	defer ts.Close()

	_, err := newGeminiTestClient(ts.URL).ExtractKeyPoints(context.Background(), "awet")
	assert.Equal(t, ReasonOf(err), ReasonQuotaExhausted)
}
