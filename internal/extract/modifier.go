package extract

import "strings"

// Negation and qualifier lexicons. Loaded once at init and read-only after,
// so detection needs no cross-request coordination.
var negationMarkers = []string{
	"not", "no", "never", "neither", "nobody", "nothing", "nowhere", "cannot",
	"don't", "doesn't", "didn't", "won't", "can't", "couldn't", "isn't",
	"aren't", "wasn't", "weren't",
}

var negationPhrases = []string{
	"fails to", "failed to", "no evidence that", "no evidence of",
}

var qualifierMarkers = []string{
	"may", "might", "could", "possibly", "probably", "perhaps", "allegedly",
	"reportedly", "seems", "appears", "suggests", "supposedly",
}

var qualifierPhrases = []string{
	"according to some", "some scientists", "some researchers", "some experts",
	"it is believed that", "it is thought that", "sources say", "tend to",
}

// Modifiers is the detected (is_negated, has_qualifier) pair for one claim.
// The flags are independent; a claim may be both negated and qualified.
type Modifiers struct {
	IsNegated    bool
	HasQualifier bool
}

// DetectModifiers runs lexical negation and qualifier detection over a
// claim's text. Detection is pattern-based by design so results are
// reproducible against the fixed marker lists above.
func DetectModifiers(text string) Modifiers {
	lower := strings.ToLower(text)
	tokens := tokenize(lower)

	m := Modifiers{}

	for _, tok := range tokens {
		if !m.IsNegated && containsWord(negationMarkers, tok) {
			m.IsNegated = true
		}
		if !m.HasQualifier && containsWord(qualifierMarkers, tok) {
			m.HasQualifier = true
		}
		if m.IsNegated && m.HasQualifier {
			return m
		}
	}

	if !m.IsNegated {
		for _, phrase := range negationPhrases {
			if strings.Contains(lower, phrase) {
				m.IsNegated = true
				break
			}
		}
	}
	if !m.HasQualifier {
		for _, phrase := range qualifierPhrases {
			if strings.Contains(lower, phrase) {
				m.HasQualifier = true
				break
			}
		}
	}

	return m
}

// tokenize splits lowercased text into words, stripping edge punctuation but
// keeping inner apostrophes so contractions like "doesn't" survive.
func tokenize(lower string) []string {
	fields := strings.Fields(lower)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.Trim(f, ".,!?;:()[]{}\"")
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func containsWord(list []string, word string) bool {
	for _, w := range list {
		if w == word {
			return true
		}
	}
	return false
}
