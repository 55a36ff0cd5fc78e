package model

import "time"

// Status is the lifecycle state of a fact-check request.
//
// pending -> processing -> completed
// pending -> processing -> failed
//
// completed and failed are terminal; a terminal request is immutable.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the status is an end state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// FactCheckRequest is one invocation of the pipeline. The request exclusively
// owns its claims and contradiction pairs; nothing outside the pipeline
// mutates them after creation.
type FactCheckRequest struct {
	ID             string              `json:"id"`
	InputText      string              `json:"-"`
	SourceURL      string              `json:"source_url,omitempty"`
	Status         Status              `json:"status"`
	Claims         []Claim             `json:"claims,omitempty"`
	Contradictions []ContradictionPair `json:"-"`
	TrustScore     float64             `json:"overall_trust_score"`
	// ErrorCode is a short reason code on failed requests. Never carries
	// internal detail such as stack traces.
	ErrorCode        string    `json:"error,omitempty"`
	ProcessingTimeMS int64     `json:"processing_time_ms"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// CandidateCount is the pre-filter segment count, kept as an internal
	// diagnostic only.
	CandidateCount int `json:"-"`
}

// Result is the stable caller-facing serialization of a request. Field names
// round-trip and must not change.
type Result struct {
	ID               string  `json:"id"`
	Status           Status  `json:"status"`
	Claims           []Claim `json:"claims"`
	Contradictions   int     `json:"contradictions"`
	TrustScore       float64 `json:"overall_trust_score"`
	Error            string  `json:"error,omitempty"`
	ProcessingTimeMS int64   `json:"processing_time_ms"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// ToResult builds the caller-facing view of the request. While the request is
// not terminal, only identity and status fields are populated.
func (r *FactCheckRequest) ToResult() Result {
	res := Result{
		ID:        r.ID,
		Status:    r.Status,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339),
	}

	switch r.Status {
	case StatusCompleted:
		res.Claims = r.Claims
		if res.Claims == nil {
			res.Claims = []Claim{}
		}
		res.Contradictions = len(r.Contradictions)
		res.TrustScore = r.TrustScore
		res.ProcessingTimeMS = r.ProcessingTimeMS
	case StatusFailed:
		res.Error = r.ErrorCode
		res.ProcessingTimeMS = r.ProcessingTimeMS
	}

	return res
}
