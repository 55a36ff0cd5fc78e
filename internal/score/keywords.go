package score

import (
	"sort"
	"strings"
)

var stopwords = map[string]struct{}{
	"is": {}, "are": {}, "was": {}, "were": {}, "the": {}, "a": {}, "an": {},
	"and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {},
	"for": {}, "of": {}, "with": {}, "by": {}, "from": {}, "be": {},
	"been": {}, "being": {}, "that": {}, "this": {}, "it": {}, "its": {},
}

const maxKeywords = 15

// keywords extracts up to maxKeywords content words from a claim for
// referent matching: lowercased, punctuation-stripped, stopwords and short
// tokens removed, deduplicated, sorted for determinism.
func keywords(text string) []string {
	seen := make(map[string]struct{})
	for _, f := range strings.Fields(strings.ToLower(text)) {
		tok := strings.Trim(f, ".,!?;:()[]{}\"'")
		if len(tok) <= 3 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		seen[tok] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	if len(out) > maxKeywords {
		out = out[:maxKeywords]
	}
	return out
}

// keywordOverlap is the Jaccard overlap of the two claims' keyword sets.
func keywordOverlap(a, b string) float64 {
	ka, kb := keywords(a), keywords(b)
	if len(ka) == 0 || len(kb) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(ka))
	for _, k := range ka {
		set[k] = struct{}{}
	}

	overlap := 0
	for _, k := range kb {
		if _, ok := set[k]; ok {
			overlap++
		}
	}

	union := len(ka) + len(kb) - overlap
	if union == 0 {
		return 0
	}
	return float64(overlap) / float64(union)
}

// normalizeToken strips punctuation and crude inflection suffixes so
// "increasing"/"increased"/"increases" all compare as "increas".
func normalizeToken(word string) string {
	word = strings.Trim(strings.ToLower(word), ".,!?;:()[]{}\"'")
	for _, suffix := range []string{"ing", "ed", "es", "s"} {
		if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+2 {
			return word[:len(word)-len(suffix)]
		}
	}
	return word
}

// similarity is a character-bigram Dice coefficient in [0,1], a cheap
// order-insensitive text similarity for near-restatement detection.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1
	}
	ba, bb := bigrams(a), bigrams(b)
	if len(ba) == 0 || len(bb) == 0 {
		return 0
	}

	matches := 0
	for g, n := range ba {
		if m, ok := bb[g]; ok {
			if m < n {
				matches += m
			} else {
				matches += n
			}
		}
	}

	totalA, totalB := 0, 0
	for _, n := range ba {
		totalA += n
	}
	for _, n := range bb {
		totalB += n
	}
	return 2 * float64(matches) / float64(totalA+totalB)
}

func bigrams(s string) map[string]int {
	grams := make(map[string]int)
	runes := []rune(s)
	for i := 0; i+1 < len(runes); i++ {
		grams[string(runes[i:i+2])]++
	}
	return grams
}
