package sentiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/review-analyzer/pkg/reqcontext"
)

// Detail is a resolution together with how it was reached.
type Detail struct {
	Result
	Classifier string  `json:"classifier"`
	BaseLabel  Label   `json:"base_label,omitempty"`
	BaseScore  float64 `json:"base_score,omitempty"`
	Rule       string  `json:"rule,omitempty"`
	Overridden bool    `json:"overridden"`
	Error      string  `json:"error,omitempty"`
}

// Resolver combines a base classifier with the override cascade.
type Resolver struct {
	classifier Classifier
	logger     *zap.Logger
}

func NewResolver(classifier Classifier, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{classifier: classifier, logger: logger}
}

// Resolve returns the sentiment of text. It never fails; any classifier
// problem yields neutral with score 0.5.
func (r *Resolver) Resolve(ctx context.Context, text string) Result {
	return r.ResolveDetailed(ctx, text).Result
}

// ResolveDetailed is Resolve plus the base classification and the rule that
// fired.
func (r *Resolver) ResolveDetailed(ctx context.Context, text string) (d Detail) {
	log := reqcontext.Logger(ctx, r.logger)

	d = Detail{Result: fallback}
	if r.classifier != nil {
		d.Classifier = r.classifier.Name()
	}
	if strings.TrimSpace(text) == "" {
		return d
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("❌ sentiment resolution panicked", zap.Any("panic", rec))
			d = Detail{Result: fallback, Classifier: d.Classifier, Error: fmt.Sprintf("panic: %v", rec)}
		}
	}()

	if r.classifier == nil {
		d.Error = "no classifier configured"
		return d
	}

	results, err := r.classifier.Classify(ctx, text)
	if err == nil && len(results) == 0 {
		err = errors.New("classifier returned no classes")
	}
	if err == nil {
		for _, res := range results {
			if math.IsNaN(res.Score) || math.IsInf(res.Score, 0) {
				err = fmt.Errorf("classifier returned non-finite score for %q", res.Label)
				break
			}
		}
	}
	if err != nil {
		log.Warn("⚠️ sentiment classifier failed, using neutral",
			zap.String("classifier", d.Classifier),
			zap.Error(err),
		)
		d.Error = err.Error()
		return d
	}

	top := best(results)
	s := newSnapshot(text, NormalizeLabel(top.Label), top.Score, scoresOf(results))
	out, ruleName, overridden := applyCascade(s)
	out.Score = clamp(out.Score)

	if overridden {
		log.Info("sentiment override applied",
			zap.String("rule", ruleName),
			zap.String("from", string(s.label)),
			zap.String("to", string(out.Label)),
			zap.Float64("score", out.Score),
		)
	}

	d.Result = out
	d.BaseLabel = s.label
	d.BaseScore = s.score
	d.Rule = ruleName
	d.Overridden = overridden
	return d
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
