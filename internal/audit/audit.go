// Package audit emits structured events for the major lifecycle points of a
// fact-check: submission, extraction, contradiction detection, scoring,
// external verification, and failure. Events go through slog so operators
// can route them like any other log line.
package audit

import "log/slog"

const (
	EventContentSubmitted      = "content_submitted"
	EventClaimsExtracted       = "claims_extracted"
	EventContradictionDetected = "contradiction_detected"
	EventScoreCalculated       = "score_calculated"
	EventExternalVerification  = "external_verification"
	EventProcessingFailed      = "processing_failed"
)

func ContentSubmitted(requestID, sourceURL string, words int) {
	slog.Info(EventContentSubmitted,
		"request_id", requestID,
		"source_url", sourceURL,
		"words", words,
	)
}

func ClaimsExtracted(requestID string, candidates, accepted int, avgConfidence float64) {
	slog.Info(EventClaimsExtracted,
		"request_id", requestID,
		"candidates", candidates,
		"accepted", accepted,
		"avg_confidence", avgConfidence,
	)
}

func ContradictionDetected(requestID, claimA, claimB string, importance float64, kind string) {
	slog.Info(EventContradictionDetected,
		"request_id", requestID,
		"claim_a", claimA,
		"claim_b", claimB,
		"importance", importance,
		"type", kind,
	)
}

func ScoreCalculated(requestID string, trustScore float64, contradictions int) {
	slog.Info(EventScoreCalculated,
		"request_id", requestID,
		"trust_score", trustScore,
		"contradictions", contradictions,
	)
}

func ExternalVerification(requestID, claimID string, verified, refuted bool) {
	slog.Info(EventExternalVerification,
		"request_id", requestID,
		"claim_id", claimID,
		"verified", verified,
		"refuted", refuted,
	)
}

func ProcessingFailed(requestID, reason string) {
	slog.Warn(EventProcessingFailed,
		"request_id", requestID,
		"reason", reason,
	)
}
