package keypoints

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/johnquangdev/review-analyzer/internal/domain/lexicon"
)

// Category tags. Every tagged line produced by Extract starts with one of these.
const (
	TagQuality     = "[KUALITAS]"
	TagSmellTaste  = "[KUALITAS BAU & RASA]"
	TagTaste       = "[KUALITAS RASA]"
	TagService     = "[LAYANAN]"
	TagPrice       = "[HARGA]"
	TagFeature     = "[FITUR]"
	TagInformation = "[INFORMASI]"
)

const (
	MsgNoText      = "Tidak ada teks untuk dianalisis"
	MsgNoKeyPoints = "Tidak ada poin penting yang dapat diekstrak dari review ini"
)

const (
	bullet          = "• "
	maxPoints       = 5
	minPoints       = 3
	minSentenceLen  = 15
	backfillMinLen  = 30
	backfillLongLen = 50
	shortTextLen    = 50
	lastResortLen   = 20
)

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)
	keyPointTerms    = lexicon.KeyPointTerms()
)

// Extract produces key-point lines from text using keyword matching only.
// It is deterministic and always returns a non-empty string.
func Extract(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return MsgNoText
	}

	sentences := splitSentences(text)

	var points []string
	seen := make(map[string]bool)

	for _, s := range sentences {
		if runeLen(s) < minSentenceLen {
			continue
		}
		lower := strings.ToLower(s)
		if !lexicon.ContainsAny(lower, keyPointTerms) {
			continue
		}
		if seen[s] {
			continue
		}
		points = append(points, categorize(s, lower))
		seen[s] = true
	}

	if len(points) < minPoints {
		for _, s := range sentences {
			if runeLen(s) <= backfillMinLen || seen[s] {
				continue
			}
			if hasDigit(s) || runeLen(s) > backfillLongLen {
				points = append(points, bullet+s)
				seen[s] = true
				if len(points) >= maxPoints {
					break
				}
			}
		}
	}

	if len(points) > 0 {
		if len(points) > maxPoints {
			points = points[:maxPoints]
		}
		return strings.Join(points, "\n")
	}

	if runeLen(text) < shortTextLen {
		return extractShort(text)
	}

	return lastResort(sentences)
}

func splitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// categorize tags one keyword-bearing sentence. Branch order is the
// precedence order.
func categorize(s, lower string) string {
	var tag, analysis string

	switch {
	case lexicon.ContainsAny(lower, lexicon.Quality):
		tag = TagQuality
		switch {
		case lexicon.ContainsAny(lower, lexicon.Negative):
			analysis = "Masalah kualitas produk: " + s
		case lexicon.ContainsAny(lower, lexicon.Positive):
			analysis = "Kualitas produk dinilai baik: " + s
		default:
			analysis = "Aspek kualitas: " + s
		}
	case lexicon.ContainsAny(lower, lexicon.Smell):
		tag = TagSmellTaste
		if lexicon.ContainsAny(lower, lexicon.SmellNegative) {
			analysis = "Masalah bau dan rasa: Produk memiliki bau yang tidak normal dan/atau rasa yang tidak enak, mengindikasikan masalah kualitas atau kesegaran produk"
		} else {
			analysis = "Aspek bau dan rasa: " + s
		}
	case lexicon.ContainsAny(lower, lexicon.Taste):
		tag = TagTaste
		if lexicon.ContainsAny(lower, lexicon.Negative) {
			analysis = "Masalah rasa: Produk memiliki rasa yang tidak memuaskan, mempengaruhi pengalaman konsumsi"
		} else {
			analysis = "Aspek rasa: " + s
		}
	case lexicon.ContainsAny(lower, lexicon.Service):
		tag = TagService
		analysis = "Aspek layanan: " + s
	case lexicon.ContainsAny(lower, lexicon.Price):
		tag = TagPrice
		analysis = "Aspek harga: " + s
	case lexicon.ContainsAny(lower, lexicon.Feature):
		tag = TagFeature
		analysis = "Aspek fitur: " + s
	case lexicon.ContainsAny(lower, lexicon.Negative):
		tag = TagQuality
		switch {
		case lexicon.ContainsAny(lower, []string{"jelek", "buruk", "bad"}):
			analysis = "Kualitas produk dinilai buruk oleh pengguna, menunjukkan ketidakpuasan terhadap produk"
		case lexicon.ContainsAny(lower, []string{"aneh", "weird"}):
			analysis = "Produk memiliki karakteristik yang tidak normal atau mencurigakan"
		default:
			analysis = "Umpan balik negatif: " + s
		}
	case lexicon.ContainsAny(lower, lexicon.Positive):
		tag = TagQuality
		analysis = "Umpan balik positif: " + s
	default:
		tag = TagInformation
		analysis = s
	}

	return tag + ": " + analysis
}

// extractShort runs condensed keyword checks against a whole short text.
func extractShort(text string) string {
	lower := strings.ToLower(text)
	var points []string

	switch {
	case lexicon.ContainsAny(lower, []string{"bau", "smell", "aroma"}) &&
		lexicon.ContainsAny(lower, []string{"aneh", "tidak enak", "busuk", "weird"}):
		points = append(points, TagSmellTaste+": Produk memiliki bau yang tidak normal, mengindikasikan masalah kualitas atau kesegaran produk")
	case lexicon.ContainsAny(lower, []string{"jelek", "buruk", "bad", "terrible"}):
		points = append(points, TagQuality+": Produk dinilai buruk oleh pengguna, menunjukkan ketidakpuasan terhadap kualitas produk")
	case lexicon.ContainsAny(lower, []string{"bagus", "baik", "good", "great", "excellent", "mantap"}):
		points = append(points, TagQuality+": Produk dinilai baik oleh pengguna")
	}

	if lexicon.ContainsAny(lower, []string{"harga", "price", "murah", "mahal", "cheap", "expensive"}) {
		switch {
		case lexicon.ContainsAny(lower, []string{"mahal", "expensive", "overpriced"}):
			points = append(points, TagPrice+": Harga produk dinilai terlalu mahal atau tidak sebanding dengan kualitas")
		case lexicon.ContainsAny(lower, []string{"murah", "cheap", "affordable"}):
			points = append(points, TagPrice+": Harga produk dinilai terjangkau atau sesuai")
		default:
			points = append(points, TagPrice+": Menyebutkan aspek harga produk")
		}
	}

	if lexicon.ContainsAny(lower, []string{"kualitas", "quality", "bahan", "material"}) {
		points = append(points, TagQuality+": Menyebutkan aspek kualitas atau bahan produk")
	}

	if lexicon.ContainsAny(lower, []string{"pengiriman", "delivery", "shipping"}) {
		switch {
		case lexicon.ContainsAny(lower, []string{"cepat", "fast"}):
			points = append(points, TagService+": Pengiriman cepat dan memuaskan")
		case lexicon.ContainsAny(lower, []string{"lambat", "slow"}):
			points = append(points, TagService+": Pengiriman lambat, mempengaruhi kepuasan pelanggan")
		default:
			points = append(points, TagService+": Menyebutkan aspek pengiriman")
		}
	}

	if len(points) > 0 {
		return strings.Join(points, "\n")
	}

	if runeLen(text) > 5 {
		if lexicon.ContainsAny(lower, []string{"aneh", "weird", "tidak enak"}) {
			return TagQuality + ": Produk memiliki karakteristik yang tidak normal atau tidak memuaskan"
		}
		return TagInformation + ": " + text
	}
	return bullet + text
}

// lastResort tags up to three of the first sentences longer than twenty characters.
func lastResort(sentences []string) string {
	var points []string
	for _, s := range sentences {
		if runeLen(s) <= lastResortLen {
			continue
		}
		lower := strings.ToLower(s)
		switch {
		case lexicon.ContainsAny(lower, []string{"bau", "smell", "aroma", "rasa", "taste"}):
			points = append(points, TagSmellTaste+": "+s)
		case lexicon.ContainsAny(lower, lexicon.Negative), lexicon.ContainsAny(lower, lexicon.Positive):
			points = append(points, TagQuality+": "+s)
		default:
			points = append(points, TagInformation+": "+s)
		}
		if len(points) == 3 {
			break
		}
	}
	if len(points) == 0 {
		return MsgNoKeyPoints
	}
	return strings.Join(points, "\n")
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
