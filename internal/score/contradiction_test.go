package score

import (
	"testing"

	"github.com/factyne/factyne/internal/model"
)

func claim(id, text string, negated bool) model.Claim {
	return model.Claim{ID: id, Text: text, IsNegated: negated}
}

func TestContradictionDetector_DirectNegation(t *testing.T) {
	detector := NewContradictionDetector()

	claims := []model.Claim{
		claim("a", "The Earth is flat.", false),
		claim("b", "The Earth is not flat.", true),
	}

	pairs := detector.Detect(claims)
	if len(pairs) != 1 {
		t.Fatalf("Expected 1 contradiction, got %d", len(pairs))
	}

	p := pairs[0]
	if p.Type != model.ContradictionDirectNegation {
		t.Errorf("Expected type %s, got %s", model.ContradictionDirectNegation, p.Type)
	}
	if p.ClaimA != "a" || p.ClaimB != "b" {
		t.Errorf("Expected canonical pair (a, b), got (%s, %s)", p.ClaimA, p.ClaimB)
	}
	if p.Importance < 0.8 || p.Importance > 1.0 {
		t.Errorf("Expected direct negation importance in [0.8, 1.0], got %.2f", p.Importance)
	}
}

func TestContradictionDetector_SamePolarityRestatement(t *testing.T) {
	detector := NewContradictionDetector()

	claims := []model.Claim{
		claim("a", "The Earth is flat.", false),
		claim("b", "The Earth is flat today.", false),
	}

	if pairs := detector.Detect(claims); len(pairs) != 0 {
		t.Errorf("Restatements with the same polarity are not contradictions, got %d pairs", len(pairs))
	}
}

func TestContradictionDetector_Semantic(t *testing.T) {
	detector := NewContradictionDetector()

	claims := []model.Claim{
		claim("a", "The additive is safe for human consumption in processed food.", false),
		claim("b", "The additive is dangerous for human consumption in processed food.", false),
	}

	pairs := detector.Detect(claims)
	if len(pairs) != 1 {
		t.Fatalf("Expected 1 contradiction, got %d", len(pairs))
	}
	if pairs[0].Type != model.ContradictionSemantic {
		t.Errorf("Expected type %s, got %s", model.ContradictionSemantic, pairs[0].Type)
	}
}

func TestContradictionDetector_Statistical(t *testing.T) {
	detector := NewContradictionDetector()

	claims := []model.Claim{
		claim("a", "The suspension bridge spans 1990 meters across the strait.", false),
		claim("b", "The suspension bridge spans 2080 meters across the strait.", false),
	}

	pairs := detector.Detect(claims)
	if len(pairs) != 1 {
		t.Fatalf("Expected 1 contradiction, got %d", len(pairs))
	}
	if pairs[0].Type != model.ContradictionStatistical {
		t.Errorf("Expected type %s, got %s", model.ContradictionStatistical, pairs[0].Type)
	}
}

func TestContradictionDetector_UnrelatedClaims(t *testing.T) {
	detector := NewContradictionDetector()

	claims := []model.Claim{
		claim("a", "The museum opened a dinosaur exhibit last month.", false),
		claim("b", "Coffee consumption rose sharply in Finland.", false),
	}

	if pairs := detector.Detect(claims); len(pairs) != 0 {
		t.Errorf("Expected no contradictions between unrelated claims, got %d", len(pairs))
	}
}

func TestContradictionDetector_OrderIndependent(t *testing.T) {
	detector := NewContradictionDetector()

	a := claim("a", "The Earth is flat.", false)
	b := claim("b", "The Earth is not flat.", true)

	forward := detector.Detect([]model.Claim{a, b})
	reversed := detector.Detect([]model.Claim{b, a})

	if len(forward) != 1 || len(reversed) != 1 {
		t.Fatalf("Expected 1 pair each way, got %d and %d", len(forward), len(reversed))
	}
	if forward[0].Type != reversed[0].Type {
		t.Errorf("Pair type depends on claim order: %s vs %s", forward[0].Type, reversed[0].Type)
	}
	if forward[0].Importance != reversed[0].Importance {
		t.Errorf("Pair importance depends on claim order: %.2f vs %.2f", forward[0].Importance, reversed[0].Importance)
	}
}

func TestContradictionDetector_NoSelfComparison(t *testing.T) {
	detector := NewContradictionDetector()

	claims := []model.Claim{claim("a", "The Earth is not flat.", true)}
	if pairs := detector.Detect(claims); len(pairs) != 0 {
		t.Errorf("A single claim cannot contradict itself, got %d pairs", len(pairs))
	}
}

func TestKeywordOverlap(t *testing.T) {
	full := keywordOverlap(
		"The vaccine prevents severe illness in adults.",
		"The vaccine prevents severe illness in adults.",
	)
	if full != 1.0 {
		t.Errorf("Expected identical texts to overlap fully, got %.2f", full)
	}

	none := keywordOverlap(
		"The museum opened a dinosaur exhibit.",
		"Coffee consumption rose in Finland.",
	)
	if none != 0 {
		t.Errorf("Expected disjoint texts to have zero overlap, got %.2f", none)
	}
}

func TestSimilarity(t *testing.T) {
	if s := similarity("The Earth is flat.", "The Earth is flat."); s != 1 {
		t.Errorf("Expected identical strings to score 1, got %.2f", s)
	}
	if s := similarity("The Earth is flat.", "The Earth is not flat."); s <= 0.5 {
		t.Errorf("Expected near-restatements to score above 0.5, got %.2f", s)
	}
	if s := similarity("abcdef", "uvwxyz"); s != 0 {
		t.Errorf("Expected disjoint strings to score 0, got %.2f", s)
	}
}
