package score

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/factyne/factyne/internal/extract"
	"github.com/jonreiter/govader"
)

// Confidence scoring function. The score starts from a base plausibility
// estimate and is adjusted by content signals:
//
//	base                       0.75
//	> 20 words                 +0.10 (detail)
//	< 10 words                 -0.10
//	contains digits            +0.05 (verifiable statistics)
//	capitalized entity token   +0.05 (verifiable referent)
//	vague wording              -0.05
//	strong VADER polarity      +0.05 (polarized assertions are still claims)
//	has_qualifier              -0.10 (hedged claims are less certain)
//	is_negated                 -0.15 (polarity shift, never an inversion)
//
// The result is clamped to [0.35, 1.0]. Adding a qualifier to an otherwise
// identical claim can only lower the score, so the function is monotonic in
// the qualifier flag.
const (
	baseConfidence    = 0.75
	detailBonus       = 0.10
	brevityPenalty    = 0.10
	statisticBonus    = 0.05
	entityBonus       = 0.05
	vaguenessPenalty  = 0.05
	polarityBonus     = 0.05
	qualifierPenalty  = 0.10
	negationPenalty   = 0.15
	confidenceFloor   = 0.35
	confidenceCeiling = 1.0
)

var (
	digitPattern = regexp.MustCompile(`\d`)
	vagueWords   = []string{"some", "many", "few", "several", "things", "stuff", "often", "sometimes"}
)

// ConfidenceScorer assigns a confidence in [0,1] to each claim. The VADER
// analyzer is built once and read-only afterwards, so a single scorer is safe
// for concurrent use.
type ConfidenceScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewConfidenceScorer creates a scorer with a fresh VADER analyzer.
func NewConfidenceScorer() *ConfidenceScorer {
	return &ConfidenceScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score computes the claim's confidence from its text and modifier flags.
func (s *ConfidenceScorer) Score(text string, mods extract.Modifiers) float64 {
	conf := baseConfidence

	words := strings.Fields(text)
	if len(words) > 20 {
		conf += detailBonus
	} else if len(words) < 10 {
		conf -= brevityPenalty
	}

	if digitPattern.MatchString(text) {
		conf += statisticBonus
	}

	if hasEntityToken(words) {
		conf += entityBonus
	}

	if hasVagueWord(text) {
		conf -= vaguenessPenalty
	}

	if math.Abs(s.analyzer.PolarityScores(text).Compound) > 0.5 {
		conf += polarityBonus
	}

	if mods.HasQualifier {
		conf -= qualifierPenalty
	}
	if mods.IsNegated {
		conf -= negationPenalty
	}

	return clamp(conf, confidenceFloor, confidenceCeiling)
}

// hasEntityToken reports whether any non-leading word is capitalized, a cheap
// proxy for a named, verifiable referent.
func hasEntityToken(words []string) bool {
	for i, w := range words {
		if i == 0 {
			continue
		}
		r := []rune(strings.TrimLeft(w, "\"'("))
		if len(r) > 1 && unicode.IsUpper(r[0]) && unicode.IsLower(r[1]) {
			return true
		}
	}
	return false
}

func hasVagueWord(text string) bool {
	lower := strings.ToLower(text)
	for _, f := range strings.Fields(lower) {
		tok := strings.Trim(f, ".,!?;:")
		for _, v := range vagueWords {
			if tok == v {
				return true
			}
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
