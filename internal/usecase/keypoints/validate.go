package keypoints

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/johnquangdev/review-analyzer/internal/domain/lexicon"
)

const minResponseLen = 10

var (
	innerParens     = regexp.MustCompile(`\([^()]*\)`)
	leftoverParens  = regexp.MustCompile(`\s*\([^)]*\)`)
	horizontalSpace = regexp.MustCompile(`[ \t]+`)
)

// CleanResponse normalizes a provider answer and reports whether it is usable.
// Refusals, answers that shrink to nothing and answers shorter than ten
// characters after cleaning are rejected.
func CleanResponse(raw string) (string, bool) {
	if lexicon.ContainsAny(strings.ToLower(raw), lexicon.RefusalPhrases) {
		return "", false
	}

	content := raw
	for {
		next := innerParens.ReplaceAllString(content, "")
		if next == content {
			break
		}
		content = next
	}
	content = leftoverParens.ReplaceAllString(content, "")

	var kept []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(horizontalSpace.ReplaceAllString(line, " "))
		if line == "" {
			continue
		}
		if lexicon.ContainsAny(strings.ToLower(line), lexicon.NotMentionedPhrases) {
			continue
		}
		kept = append(kept, line)
	}
	if len(kept) == 0 {
		return "", false
	}

	out := strings.Join(kept, "\n")
	if utf8.RuneCountInString(out) < minResponseLen {
		return "", false
	}
	return out, true
}
