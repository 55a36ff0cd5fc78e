package score

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/factyne/factyne/internal/model"
)

// Contradiction thresholds and importance weights. Importance grows with
// keyword overlap so contradictions about the same referent rank higher.
const (
	directSimilarityMin   = 0.5
	semanticOverlapMin    = 0.3
	statisticalOverlapMin = 0.2
)

// antonymPairs are concept opposites checked after token normalization.
var antonymPairs = [][2]string{
	{"increase", "decrease"},
	{"rise", "fall"},
	{"up", "down"},
	{"safe", "dangerous"},
	{"effective", "ineffective"},
	{"true", "false"},
	{"yes", "no"},
	{"support", "oppose"},
	{"help", "harm"},
	{"benefit", "harm"},
	{"flat", "spherical"},
}

var numberPattern = regexp.MustCompile(`\d+`)

// ContradictionDetector compares claim pairs within one request and flags
// logically opposing pairs. Stateless and safe for concurrent use.
type ContradictionDetector struct{}

// NewContradictionDetector creates a detector.
func NewContradictionDetector() *ContradictionDetector {
	return &ContradictionDetector{}
}

// Detect runs the pairwise comparison over the request's claims. Pairs are
// unordered and canonical (i < j), a claim is never compared with itself,
// and same-polarity restatements are not contradictions. Complexity is
// O(n²) in claim count; the pipeline bounds n via its claim cap.
func (d *ContradictionDetector) Detect(claims []model.Claim) []model.ContradictionPair {
	var pairs []model.ContradictionPair

	for i := 0; i < len(claims); i++ {
		for j := i + 1; j < len(claims); j++ {
			if pair, ok := d.compare(claims[i], claims[j]); ok {
				pairs = append(pairs, pair)
			}
		}
	}

	return pairs
}

// compare checks one unordered pair against the three contradiction rules,
// most specific first.
func (d *ContradictionDetector) compare(a, b model.Claim) (model.ContradictionPair, bool) {
	sim := similarity(a.Text, b.Text)
	overlap := keywordOverlap(a.Text, b.Text)

	// Rule 1: near-restatement with opposite polarity is a direct
	// contradiction. Same polarity at high similarity is a self-consistent
	// restatement, never flagged.
	if sim > directSimilarityMin && a.IsNegated != b.IsNegated {
		return d.pair(a, b,
			model.ContradictionDirectNegation,
			clamp(0.8+overlap*0.2, 0, 1),
			fmt.Sprintf("one claim asserts what the other denies (similarity %.2f)", sim),
		), true
	}

	// Rule 2: shared referent with opposing concepts.
	if overlap > semanticOverlapMin && d.hasAntonymPair(a.Text, b.Text) {
		return d.pair(a, b,
			model.ContradictionSemantic,
			clamp(0.7+overlap*0.25, 0, 1),
			fmt.Sprintf("claims use opposing concepts about the same referent (%.0f%% keyword overlap)", overlap*100),
		), true
	}

	// Rule 3: same referent, different leading statistics.
	numsA := numberPattern.FindAllString(a.Text, 1)
	numsB := numberPattern.FindAllString(b.Text, 1)
	if len(numsA) > 0 && len(numsB) > 0 && overlap > statisticalOverlapMin && numsA[0] != numsB[0] {
		return d.pair(a, b,
			model.ContradictionStatistical,
			clamp(0.65+overlap*0.3, 0, 1),
			fmt.Sprintf("different figures reported (%s vs %s)", numsA[0], numsB[0]),
		), true
	}

	return model.ContradictionPair{}, false
}

// hasAntonymPair reports whether the two texts contain opposite concepts,
// in either direction.
func (d *ContradictionDetector) hasAntonymPair(textA, textB string) bool {
	tokensA := normalizedSet(textA)
	tokensB := normalizedSet(textB)

	for _, p := range antonymPairs {
		w1, w2 := normalizeToken(p[0]), normalizeToken(p[1])
		if _, ok := tokensA[w1]; ok {
			if _, ok := tokensB[w2]; ok {
				return true
			}
		}
		if _, ok := tokensA[w2]; ok {
			if _, ok := tokensB[w1]; ok {
				return true
			}
		}
	}
	return false
}

func normalizedSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range strings.Fields(text) {
		set[normalizeToken(f)] = struct{}{}
	}
	return set
}

func (d *ContradictionDetector) pair(a, b model.Claim, typ model.ContradictionType, importance float64, desc string) model.ContradictionPair {
	return model.ContradictionPair{
		ClaimA:      a.ID,
		ClaimB:      b.ID,
		ClaimAText:  a.Text,
		ClaimBText:  b.Text,
		Type:        typ,
		Importance:  round2(importance),
		Description: desc,
	}
}
