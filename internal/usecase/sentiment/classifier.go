package sentiment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/johnquangdev/review-analyzer/internal/domain/lexicon"
	"github.com/johnquangdev/review-analyzer/pkg/ai"
)

// LexiconClassifier is an offline classifier that scores text by counting
// lexicon hits. It is used when no remote model is configured.
type LexiconClassifier struct{}

func NewLexiconClassifier() *LexiconClassifier { return &LexiconClassifier{} }

func (LexiconClassifier) Name() string { return "lexicon:" + lexicon.Version }

// Classify returns a normalized three-class distribution. Text with no hits
// leans neutral.
func (LexiconClassifier) Classify(_ context.Context, text string) ([]ai.LabelScore, error) {
	lower := strings.ToLower(text)
	pos := float64(len(lexicon.Matches(lower, lexicon.StrongPositive)))
	neg := float64(len(lexicon.Matches(lower, lexicon.StrongNegative)) + len(lexicon.Matches(lower, lexicon.NegativeSlang)))

	neu := 1.0
	if pos == 0 && neg == 0 {
		neu = 8.0
		pos, neg = 1.0, 1.0
	}
	total := pos + neg + neu
	return []ai.LabelScore{
		{Label: "negative", Score: neg / total},
		{Label: "neutral", Score: neu / total},
		{Label: "positive", Score: pos / total},
	}, nil
}

// ClassifierFactory builds a classifier on first use.
type ClassifierFactory func(ctx context.Context) (Classifier, error)

// LazyClassifier defers building the underlying classifier until the first
// Classify call. Concurrent first calls build it once; a failed build is not
// remembered and the next call tries again.
type LazyClassifier struct {
	name    string
	factory ClassifierFactory

	mu    sync.Mutex
	ready atomic.Bool
	inner Classifier
}

func NewLazyClassifier(name string, factory ClassifierFactory) *LazyClassifier {
	return &LazyClassifier{name: name, factory: factory}
}

func (l *LazyClassifier) Name() string { return l.name }

func (l *LazyClassifier) Classify(ctx context.Context, text string) ([]ai.LabelScore, error) {
	c, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return c.Classify(ctx, text)
}

func (l *LazyClassifier) get(ctx context.Context) (Classifier, error) {
	if l.ready.Load() {
		return l.inner, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ready.Load() {
		return l.inner, nil
	}
	if l.factory == nil {
		return nil, errors.New("lazy classifier: no factory")
	}

	c, err := l.factory(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("lazy classifier: factory returned nil")
	}
	l.inner = c
	l.ready.Store(true)
	return c, nil
}
