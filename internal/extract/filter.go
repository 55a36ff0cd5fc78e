package extract

import (
	"regexp"
	"strings"

	"github.com/factyne/factyne/internal/model"
)

// Decision is the filter's verdict on one candidate span. Every candidate
// gets exactly one decision.
type Decision struct {
	Accept bool
	Reason model.RejectReason // set when Accept is false
}

// Classifier decides whether a candidate span is a checkable factual
// assertion. The policy is pluggable; the pipeline shape does not change
// when the classifier is swapped.
type Classifier interface {
	Classify(text string) Decision
}

// RuleClassifier is the default lexical claim filter. Spans are rejected as
// questions, opinions, non-declaratives, or too-short fragments; everything
// that matches a claim cue (copulas, reporting verbs, statistics, causal
// language) is accepted.
type RuleClassifier struct {
	minLen   int
	cues     []*regexp.Regexp
	opinions []string
}

var claimCuePatterns = []string{
	`\b(is|are|was|were)\b`,
	`\b(has|have|had)\b`,
	`\b(says|claims|states|reports|shows|proves|demonstrates|indicates|suggests)\b`,
	`\b\d+(\.\d+)?\s*(%|percent|billion|million|thousand|years|months|days|hours)?\b`,
	`\b(according to|studies show|research indicates|data shows|evidence suggests|findings show)\b`,
	`\b(cause|caused|causes|leads to|leading to|results in|contribute[sd]?)\b`,
	`\b(increase[sd]?|decrease[sd]?|rise|rose|drop(ped)?|fell|fall)\b`,
	`\b(discovered|found|showed|established|founded|created|invented|developed|introduced)\b`,
	`\b(safe|unsafe|dangerous|effective|ineffective|harmful|beneficial)\b`,
}

var opinionMarkers = []string{
	"i think", "i believe", "i feel", "in my opinion", "we believe",
	"personally", "i love", "i hate", "my favorite",
}

// NewRuleClassifier builds the default classifier. minLen is the shortest
// span (in characters) that can become a claim.
func NewRuleClassifier(minLen int) *RuleClassifier {
	if minLen <= 0 {
		minLen = 10
	}
	cues := make([]*regexp.Regexp, 0, len(claimCuePatterns))
	for _, p := range claimCuePatterns {
		cues = append(cues, regexp.MustCompile(p))
	}
	return &RuleClassifier{
		minLen:   minLen,
		cues:     cues,
		opinions: opinionMarkers,
	}
}

// Classify applies the rejection rules in a fixed order so decisions are
// deterministic: length, question, opinion, then declarative cues.
func (c *RuleClassifier) Classify(text string) Decision {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < c.minLen {
		return Decision{Reason: model.RejectTooShort}
	}

	if strings.HasSuffix(trimmed, "?") {
		return Decision{Reason: model.RejectQuestion}
	}

	lower := strings.ToLower(trimmed)
	for _, marker := range c.opinions {
		if strings.Contains(lower, marker) {
			return Decision{Reason: model.RejectOpinion}
		}
	}

	for _, cue := range c.cues {
		if cue.MatchString(lower) {
			return Decision{Accept: true}
		}
	}

	return Decision{Reason: model.RejectNonDeclarative}
}
