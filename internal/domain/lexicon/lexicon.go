// Package lexicon holds every keyword list used by the sentiment override
// rules, the local key-point extractor, the offline classifier and the
// provider response validator. All lists are lower-case and matched as
// substrings of lower-cased text.
package lexicon

import "strings"

// Version identifies the revision of the lists below. Bump it whenever a
// list changes so cached analyses keyed on it are not reused.
const Version = "2024.11-id-en.1"

// Sentiment override lists.
var (
	StrongPositive = []string{
		"menarik", "ketagihan", "suka", "sangat suka", "love", "loved",
		"bagus", "baik", "excellent", "sempurna", "perfect", "menakjubkan", "amazing",
		"recommended", "rekomendasi", "puas", "satisfied", "senang", "happy",
		"worth", "layak", "value", "nilai", "mantap", "top", "terbaik", "best",
		"cepat", "fast", "efisien", "efficient", "mudah", "easy", "simple",
		"enak", "lezat", "tasty", "delicious", "wow", "keren", "cool", "great",
	}

	VeryPositive = []string{
		"menarik", "ketagihan", "suka", "love", "bagus", "baik",
		"excellent", "sempurna", "mantap", "terbaik",
	}

	StrongNegative = []string{
		"tidak sesuai", "tidak memuaskan", "tidak layak", "tidak recommended",
		"tidak bagus", "tidak baik", "tidak puas", "tidak worth",
		"tidak sesuai ekspektasi", "tidak sesuai harapan", "tidak sesuai dengan",
		"kecewa", "buruk", "jelek", "rusak", "masalah", "cacat", "menyesal",
		"mahal", "overpriced", "waste", "disappointed", "terrible", "awful",
		"not worth", "poor quality", "bad quality", "does not meet", "doesn't meet",
		"kurang", "lemah", "gagal", "gajelas", "gaje", "gak jelas", "tidak jelas",
		"aneh", "weird", "strange", "tidak enak", "tidak nyaman",
		"bau", "busuk", "tidak fresh", "tidak segar", "tidak layak konsumsi",
	}

	VeryNegative = []string{
		"tidak sesuai", "tidak memuaskan", "tidak layak", "kecewa",
		"buruk", "jelek", "rusak", "masalah", "cacat", "gajelas", "gaje",
		"tidak enak", "bau", "busuk", "aneh", "weird",
	}

	NegativeSlang = []string{
		"gajelas", "gaje", "gak jelas",
		"apalah", "apaan", "apa ini", "apa sih", "gimana sih",
		"woi", "weh", "waduh", "astaga", "ya ampun",
		"sampah", "rubbish", "trash", "junk", "garbage",
		"ngaco", "ngawur", "sembarangan", "asal-asalan",
	}

	FrustrationInterjections = []string{
		"woi", "weh", "apalah", "apaan", "gajelas", "gaje", "gimana", "kenapa",
	}

	NegativeTone = []string{
		"woi", "apalah", "gajelas", "gaje", "jelek", "buruk", "aneh",
	}
)

// Key-point categories.
var (
	Positive = []string{
		"bagus", "baik", "excellent", "sempurna", "perfect", "menakjubkan", "amazing",
		"recommended", "rekomendasi", "puas", "satisfied", "senang", "happy",
		"worth", "layak", "value", "nilai", "mantap", "top", "terbaik", "best",
		"cepat", "fast", "efisien", "efficient", "mudah", "easy", "simple",
	}

	Negative = []string{
		"buruk", "jelek", "bad", "disappointed", "kecewa", "tidak puas", "unsatisfied",
		"lambat", "slow", "rusak", "broken", "cacat", "defect", "masalah", "problem",
		"mahal", "expensive", "overpriced", "tidak layak", "not worth", "waste",
		"menyesal", "regret", "tidak recommended", "tidak rekomendasi", "weird", "strange", "aneh",
	}

	Quality = []string{
		"kualitas", "quality", "bahan", "material", "build", "konstruksi",
		"awet", "durable", "tahan lama", "long lasting", "sturdy", "kokoh",
	}

	Feature = []string{
		"fitur", "feature", "fungsi", "function", "spesifikasi", "spec",
		"desain", "design", "tampilan", "appearance", "warna", "color",
	}

	Service = []string{
		"pengiriman", "shipping", "delivery", "pelayanan", "service", "customer service",
		"packaging", "kemasan", "garansi", "warranty", "support", "dukungan",
	}

	Price = []string{
		"harga", "price", "biaya", "cost", "murah", "cheap", "affordable", "terjangkau",
		"mahal", "expensive", "worth", "layak", "value", "nilai", "budget",
	}

	Smell         = []string{"bau", "smell", "aroma", "wangi", "busuk"}
	SmellNegative = []string{"aneh", "tidak enak", "busuk", "weird", "bad", "tidak normal"}
	Taste         = []string{"rasa", "taste", "enak", "dimakan", "diminum"}
)

// Provider response validation.
var (
	RefusalPhrases = []string{
		"maaf", "saya tidak dapat", "tidak dapat melihat",
		"silakan", "berikan review", "tuliskan review", "saya tidak bisa",
		"sorry", "i cannot", "i can't", "cannot see", "please provide",
		"please give", "i don't see", "i do not see", "unable to see",
	}

	NotMentionedPhrases = []string{
		"tidak ada komentar", "tidak disebutkan", "tidak ada", "no comment",
		"not mentioned", "not discussed", "nothing about", "no mention",
		"tidak ada informasi", "no information",
	}
)

// ContainsAny reports whether text contains any of the words.
func ContainsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Matches returns the words found in text, in list order.
func Matches(text string, words []string) []string {
	var found []string
	for _, w := range words {
		if strings.Contains(text, w) {
			found = append(found, w)
		}
	}
	return found
}

// KeyPointTerms returns the union of the six key-point categories in a
// stable order, duplicates included.
func KeyPointTerms() []string {
	all := make([]string, 0, len(Positive)+len(Negative)+len(Quality)+len(Feature)+len(Service)+len(Price))
	all = append(all, Positive...)
	all = append(all, Negative...)
	all = append(all, Quality...)
	all = append(all, Feature...)
	all = append(all, Service...)
	return append(all, Price...)
}
