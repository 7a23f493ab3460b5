package sentiment

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/johnquangdev/review-analyzer/internal/domain/lexicon"
)

const (
	shortFrustrationLen = 50
	shortToneLen        = 30

	veryPositiveFloor = 0.7
	positiveFloor     = 0.65
	positiveMinScore  = 0.2
	slangFloor        = 0.7
	veryNegativeFloor = 0.65
	negativeFloor     = 0.6
	shortToneFloor    = 0.65
	shortToneMinScore = 0.15
)

// Rule names recorded in the analysis trace.
const (
	RuleStrongPositive    = "strong_positive"
	RuleNegativeSlang     = "negative_slang"
	RuleStrongNegative    = "strong_negative"
	RuleShortNegativeTone = "short_negative_tone"
)

// snapshot is the immutable input every rule sees.
type snapshot struct {
	text       string // lower-cased
	trimmedLen int
	label      Label
	score      float64
	scores     classScores
}

func newSnapshot(text string, label Label, score float64, scores classScores) snapshot {
	return snapshot{
		text:       strings.ToLower(text),
		trimmedLen: utf8.RuneCountInString(strings.TrimSpace(text)),
		label:      label,
		score:      score,
		scores:     scores,
	}
}

// rule is one step of the override cascade. The first rule whose guard
// matches ends the cascade, whether or not decide changes anything.
type rule struct {
	name   string
	guard  func(s snapshot) bool
	decide func(s snapshot) (Result, bool)
}

var cascade = []rule{
	{
		name: RuleStrongPositive,
		guard: func(s snapshot) bool {
			return lexicon.ContainsAny(s.text, lexicon.StrongPositive)
		},
		decide: func(s snapshot) (Result, bool) {
			if lexicon.ContainsAny(s.text, lexicon.VeryPositive) && (s.label == Neutral || s.label == Negative) {
				return Result{Label: Positive, Score: math.Max(s.scores.positive, veryPositiveFloor)}, true
			}
			if s.label == Neutral && s.scores.positive > positiveMinScore {
				return Result{Label: Positive, Score: math.Max(s.scores.positive, positiveFloor)}, true
			}
			return Result{}, false
		},
	},
	{
		name: RuleNegativeSlang,
		guard: func(s snapshot) bool {
			if lexicon.ContainsAny(s.text, lexicon.NegativeSlang) {
				return true
			}
			return s.trimmedLen < shortFrustrationLen && lexicon.ContainsAny(s.text, lexicon.FrustrationInterjections)
		},
		decide: func(s snapshot) (Result, bool) {
			if s.label != Negative {
				return Result{Label: Negative, Score: math.Max(s.scores.negative, slangFloor)}, true
			}
			return Result{}, false
		},
	},
	{
		name: RuleStrongNegative,
		guard: func(s snapshot) bool {
			return lexicon.ContainsAny(s.text, lexicon.StrongNegative)
		},
		decide: func(s snapshot) (Result, bool) {
			if lexicon.ContainsAny(s.text, lexicon.VeryNegative) && (s.label == Neutral || s.label == Positive) {
				return Result{Label: Negative, Score: math.Max(s.scores.negative, veryNegativeFloor)}, true
			}
			if s.label == Neutral {
				return Result{Label: Negative, Score: math.Max(s.scores.negative, negativeFloor)}, true
			}
			return Result{}, false
		},
	},
	{
		name: RuleShortNegativeTone,
		guard: func(s snapshot) bool {
			return s.trimmedLen < shortToneLen
		},
		decide: func(s snapshot) (Result, bool) {
			if lexicon.ContainsAny(s.text, lexicon.NegativeTone) && s.label == Neutral && s.scores.negative > shortToneMinScore {
				return Result{Label: Negative, Score: math.Max(s.scores.negative, shortToneFloor)}, true
			}
			return Result{}, false
		},
	},
}

// applyCascade runs the rules against s. It returns the final result, the
// name of the rule whose guard matched (empty if none) and whether that rule
// overrode the base result.
func applyCascade(s snapshot) (Result, string, bool) {
	base := Result{Label: s.label, Score: s.score}
	for _, r := range cascade {
		if !r.guard(s) {
			continue
		}
		if out, changed := r.decide(s); changed {
			return out, r.name, true
		}
		return base, r.name, false
	}
	return base, "", false
}
