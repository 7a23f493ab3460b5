// Package sentiment resolves a review's sentiment from a base classifier
// corrected by an ordered cascade of keyword rules.
package sentiment

import (
	"context"
	"strings"

	"github.com/johnquangdev/review-analyzer/pkg/ai"
)

// Label is one of the three canonical sentiment classes.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Valid reports whether l is a canonical label.
func (l Label) Valid() bool {
	return l == Positive || l == Negative || l == Neutral
}

// Classifier produces a raw label distribution for text.
type Classifier interface {
	Name() string
	Classify(ctx context.Context, text string) ([]ai.LabelScore, error)
}

// Result is the resolved sentiment of a review.
type Result struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// fallback is returned for empty text and on any classifier failure.
var fallback = Result{Label: Neutral, Score: 0.5}

// NormalizeLabel maps a model-specific class name to a canonical label.
// Unknown names are neutral.
func NormalizeLabel(raw string) Label {
	l := strings.ToLower(raw)
	switch {
	case strings.Contains(l, "positive") || strings.Contains(l, "pos") || strings.Contains(l, "label_2"):
		return Positive
	case strings.Contains(l, "negative") || strings.Contains(l, "neg") || strings.Contains(l, "label_0"):
		return Negative
	case strings.Contains(l, "neutral") || strings.Contains(l, "label_1"):
		return Neutral
	default:
		return Neutral
	}
}

// classScores holds the score of the first raw class that normalizes to each
// canonical label, zero when the classifier did not report it.
type classScores struct {
	positive float64
	negative float64
	neutral  float64
}

func scoresOf(results []ai.LabelScore) classScores {
	var s classScores
	var seenPos, seenNeg, seenNeu bool
	for _, r := range results {
		l := strings.ToLower(r.Label)
		switch {
		case !seenNeg && (strings.Contains(l, "neg") || strings.Contains(l, "label_0")):
			s.negative, seenNeg = r.Score, true
		case !seenPos && (strings.Contains(l, "pos") || strings.Contains(l, "label_2")):
			s.positive, seenPos = r.Score, true
		case !seenNeu && (strings.Contains(l, "neutral") || strings.Contains(l, "label_1")):
			s.neutral, seenNeu = r.Score, true
		}
	}
	return s
}

// best returns the highest-scoring entry. results must not be empty.
func best(results []ai.LabelScore) ai.LabelScore {
	top := results[0]
	for _, r := range results[1:] {
		if r.Score > top.Score {
			top = r
		}
	}
	return top
}
