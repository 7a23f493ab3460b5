package keypoints

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/review-analyzer/pkg/ai"
	"github.com/johnquangdev/review-analyzer/pkg/reqcontext"
)

// SourceHeuristic names the local extractor in Outcome.Source.
const SourceHeuristic = "heuristic"

// Provider is one remote key-point strategy.
type Provider interface {
	Name() string
	Enabled() bool
	ExtractKeyPoints(ctx context.Context, text string) (string, error)
}

// Attempt records one provider try. Reason is empty on success.
type Attempt struct {
	Provider   string    `json:"provider"`
	Reason     ai.Reason `json:"reason,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
}

// Outcome is the full result of a resolution.
type Outcome struct {
	Text     string    `json:"text"`
	Source   string    `json:"source"`
	Attempts []Attempt `json:"attempts,omitempty"`
}

// Resolver tries providers in order and falls back to Extract.
type Resolver struct {
	providers []Provider
	logger    *zap.Logger
}

// NewResolver creates a resolver over providers, tried in the given order.
func NewResolver(logger *zap.Logger, providers ...Provider) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{providers: providers, logger: logger}
}

// Resolve returns key points for text. It never fails and never returns an
// empty string.
func (r *Resolver) Resolve(ctx context.Context, text string) string {
	return r.ResolveDetailed(ctx, text).Text
}

// ResolveDetailed is Resolve plus the source and every provider attempt.
func (r *Resolver) ResolveDetailed(ctx context.Context, text string) Outcome {
	log := reqcontext.Logger(ctx, r.logger)

	if strings.TrimSpace(text) == "" {
		return Outcome{Text: MsgNoText, Source: SourceHeuristic}
	}

	var attempts []Attempt
	for _, p := range r.providers {
		if !p.Enabled() {
			attempts = append(attempts, Attempt{Provider: p.Name(), Reason: ai.ReasonDisabled})
			continue
		}

		start := time.Now()
		raw, err := r.call(ctx, p, text)
		attempt := Attempt{Provider: p.Name(), DurationMS: time.Since(start).Milliseconds()}

		if err != nil {
			attempt.Reason = ai.ReasonOf(err)
			attempt.Error = err.Error()
			attempts = append(attempts, attempt)
			log.Warn("⚠️ key-point provider failed",
				zap.String("provider", p.Name()),
				zap.String("reason", string(attempt.Reason)),
				zap.Error(err),
			)
			continue
		}

		cleaned, ok := CleanResponse(raw)
		if !ok {
			attempt.Reason = ai.ReasonInvalidResponse
			attempt.Error = "response rejected by validation"
			attempts = append(attempts, attempt)
			log.Warn("⚠️ key-point provider response rejected",
				zap.String("provider", p.Name()),
				zap.Int("length", len(raw)),
			)
			continue
		}

		attempts = append(attempts, attempt)
		log.Info("✅ key points extracted",
			zap.String("provider", p.Name()),
			zap.Int64("duration_ms", attempt.DurationMS),
		)
		return Outcome{Text: cleaned, Source: p.Name(), Attempts: attempts}
	}

	log.Info("key points from local extractor", zap.Int("providers_tried", len(attempts)))
	return Outcome{Text: Extract(text), Source: SourceHeuristic, Attempts: attempts}
}

// call shields the chain from a panicking provider.
func (r *Resolver) call(ctx context.Context, p Provider, text string) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &ai.ProviderError{
				Provider: p.Name(),
				Reason:   ai.ReasonTransportError,
				Err:      fmt.Errorf("panic recovered: %v", rec),
			}
		}
	}()
	return p.ExtractKeyPoints(ctx, text)
}
