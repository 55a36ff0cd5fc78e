package model

import "time"

// Claim is a single factual assertion extracted from submitted text.
// Claims are immutable once scored: adjustments (e.g. external verification)
// produce a new Claim rather than mutating the existing one.
type Claim struct {
	ID           string    `json:"id"`
	Text         string    `json:"claim_text"`
	Confidence   float64   `json:"confidence"`    // [0,1]
	IsNegated    bool      `json:"is_negated"`    // polarity inverted by a negation marker
	HasQualifier bool      `json:"has_qualifier"` // hedged by an attribution/hedge marker
	Span         Span      `json:"source_span"`
	CreatedAt    time.Time `json:"created_at"`
}

// Span locates a claim in the whitespace-normalized form of the input, the
// text the segmenter actually works on. Normalization collapses whitespace
// runs, so Start and End do not index the raw submitted bytes; slicing the
// normalized text with them recovers the claim verbatim.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// WithConfidence returns a copy of the claim with an adjusted confidence,
// clamped to [0,1]. The receiver is left untouched.
func (c Claim) WithConfidence(conf float64) Claim {
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	c.Confidence = conf
	return c
}

// RejectReason explains why a candidate span did not become a Claim.
type RejectReason string

const (
	RejectOpinion        RejectReason = "opinion"
	RejectQuestion       RejectReason = "question"
	RejectNonDeclarative RejectReason = "non-declarative"
	RejectTooShort       RejectReason = "too-short"
)

// ContradictionType classifies how two claims conflict.
type ContradictionType string

const (
	ContradictionDirectNegation ContradictionType = "direct_negation"
	ContradictionSemantic       ContradictionType = "semantic"
	ContradictionStatistical    ContradictionType = "statistical"
)

// ContradictionPair is an unordered relation between two claims of the same
// request that assert opposite things about the same referent. The pair is
// stored in canonical order (claim A precedes claim B in the request) and
// counted once.
type ContradictionPair struct {
	ClaimA      string            `json:"claim_a"` // claim ID
	ClaimB      string            `json:"claim_b"` // claim ID
	ClaimAText  string            `json:"claim_a_text"`
	ClaimBText  string            `json:"claim_b_text"`
	Type        ContradictionType `json:"contradiction_type"`
	Importance  float64           `json:"importance_score"` // [0,1]
	Description string            `json:"description"`
}
