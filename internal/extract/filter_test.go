package extract

import (
	"testing"

	"github.com/factyne/factyne/internal/model"
)

func TestRuleClassifier_AcceptsFactualClaims(t *testing.T) {
	classifier := NewRuleClassifier(15)

	accepted := []string{
		"The Earth is approximately 4.5 billion years old.",
		"Water boils at 100 degrees Celsius at sea level.",
		"The study shows that exercise reduces stress.",
		"According to the report, unemployment fell last quarter.",
		"Smoking causes lung cancer in many patients.",
		"The company was founded in 1998.",
	}

	for _, text := range accepted {
		d := classifier.Classify(text)
		if !d.Accept {
			t.Errorf("Expected '%s' to be accepted, rejected as %s", text, d.Reason)
		}
	}
}

func TestRuleClassifier_RejectsQuestions(t *testing.T) {
	classifier := NewRuleClassifier(15)

	d := classifier.Classify("Is the Earth really that old?")
	if d.Accept {
		t.Fatal("Expected question to be rejected")
	}
	if d.Reason != model.RejectQuestion {
		t.Errorf("Expected reason %s, got %s", model.RejectQuestion, d.Reason)
	}
}

func TestRuleClassifier_RejectsOpinions(t *testing.T) {
	classifier := NewRuleClassifier(15)

	opinions := []string{
		"I think the weather is going to improve.",
		"In my opinion, this is the best restaurant in town.",
		"Personally, the results are disappointing to me.",
	}

	for _, text := range opinions {
		d := classifier.Classify(text)
		if d.Accept {
			t.Errorf("Expected opinion '%s' to be rejected", text)
			continue
		}
		if d.Reason != model.RejectOpinion {
			t.Errorf("Expected reason %s for '%s', got %s", model.RejectOpinion, text, d.Reason)
		}
	}
}

func TestRuleClassifier_RejectsTooShort(t *testing.T) {
	classifier := NewRuleClassifier(15)

	d := classifier.Classify("It is.")
	if d.Accept {
		t.Fatal("Expected short fragment to be rejected")
	}
	if d.Reason != model.RejectTooShort {
		t.Errorf("Expected reason %s, got %s", model.RejectTooShort, d.Reason)
	}
}

func TestRuleClassifier_DefaultMinimumKeepsShortClaims(t *testing.T) {
	// The default minimum must admit terse factual statements like
	// "X is true." while still dropping bare fragments.
	classifier := NewRuleClassifier(0)

	d := classifier.Classify("X is true.")
	if !d.Accept {
		t.Fatalf("Expected 'X is true.' to be accepted, rejected as %s", d.Reason)
	}

	d = classifier.Classify("It is.")
	if d.Accept {
		t.Fatal("Expected bare fragment to be rejected")
	}
	if d.Reason != model.RejectTooShort {
		t.Errorf("Expected reason %s, got %s", model.RejectTooShort, d.Reason)
	}
}

func TestRuleClassifier_RejectsNonDeclarative(t *testing.T) {
	classifier := NewRuleClassifier(15)

	d := classifier.Classify("Onward through the misty mountain pass together")
	if d.Accept {
		t.Fatal("Expected non-declarative span to be rejected")
	}
	if d.Reason != model.RejectNonDeclarative {
		t.Errorf("Expected reason %s, got %s", model.RejectNonDeclarative, d.Reason)
	}
}

func TestRuleClassifier_QuestionBeatsOpinion(t *testing.T) {
	classifier := NewRuleClassifier(15)

	// Rejection rules apply in a fixed order; the question rule fires first
	// even when an opinion marker is present.
	d := classifier.Classify("Do you think I believe the report?")
	if d.Accept {
		t.Fatal("Expected rejection")
	}
	if d.Reason != model.RejectQuestion {
		t.Errorf("Expected reason %s, got %s", model.RejectQuestion, d.Reason)
	}
}

func TestRuleClassifier_EveryCandidateGetsDecision(t *testing.T) {
	classifier := NewRuleClassifier(15)

	inputs := []string{
		"The sky is blue today over the city.",
		"What time is it?",
		"I love this song.",
		"Hm.",
	}

	for _, text := range inputs {
		d := classifier.Classify(text)
		if !d.Accept && d.Reason == "" {
			t.Errorf("Rejected '%s' without a reason", text)
		}
		if d.Accept && d.Reason != "" {
			t.Errorf("Accepted '%s' but carries reject reason %s", text, d.Reason)
		}
	}
}
