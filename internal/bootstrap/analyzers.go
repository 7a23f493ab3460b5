package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnquangdev/review-analyzer/internal/usecase/keypoints"
	"github.com/johnquangdev/review-analyzer/internal/usecase/sentiment"
	"github.com/johnquangdev/review-analyzer/pkg/ai"
	"github.com/johnquangdev/review-analyzer/pkg/config"
)

// Prober is implemented by provider clients that can check their credentials
type Prober interface {
	Name() string
	Ping(ctx context.Context) error
}

// Analyzers groups the resolvers and the raw provider clients they were built from
type Analyzers struct {
	Sentiment   *sentiment.Resolver
	KeyPoints   *keypoints.Resolver
	Providers   []keypoints.Provider
	Classifier  sentiment.Classifier
	HuggingFace *ai.HuggingFaceClient
}

// NewAnalyzers builds both resolvers from configuration. Provider order is the
// key points fallback order.
func NewAnalyzers(cfg *config.Config, logger *zap.Logger) *Analyzers {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Providers.Timeout

	hf := ai.NewHuggingFaceClient(cfg.HuggingFace, timeout)
	providers := []keypoints.Provider{
		ai.NewGroqClient(cfg.Groq, timeout),
		hf,
		ai.NewGeminiClient(cfg.Gemini, timeout, logger),
		ai.NewOpenAIClient(cfg.OpenAI, timeout),
		ai.NewAnthropicClient(cfg.Anthropic, timeout),
	}

	var classifier sentiment.Classifier = sentiment.NewLexiconClassifier()
	if cfg.HuggingFace.SentimentActive() {
		classifier = sentiment.NewLazyClassifier("huggingface:"+hf.SentimentModel(), func(ctx context.Context) (sentiment.Classifier, error) {
			return hf, nil
		})
	}

	for _, p := range providers {
		logger.Info("🤖 key points provider", zap.String("provider", p.Name()), zap.Bool("enabled", p.Enabled()))
	}
	logger.Info("🧠 sentiment classifier", zap.String("classifier", classifier.Name()))

	return &Analyzers{
		Sentiment:   sentiment.NewResolver(classifier, logger),
		KeyPoints:   keypoints.NewResolver(logger, providers...),
		Providers:   providers,
		Classifier:  classifier,
		HuggingFace: hf,
	}
}

// Probers returns the enabled providers that support a credential check
func (a *Analyzers) Probers() []Prober {
	var out []Prober
	for _, p := range a.Providers {
		if !p.Enabled() {
			continue
		}
		if pr, ok := p.(Prober); ok {
			out = append(out, pr)
		}
	}
	return out
}
