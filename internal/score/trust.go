package score

import (
	"math"

	"github.com/factyne/factyne/internal/model"
)

// Trust aggregation policy: the document score starts at the mean of the
// per-claim confidences and loses contradictionPenalty per detected pair,
// bounded to [0,1]. With zero accepted claims the score is
// defaultTrustScore, an explicit neutral verdict rather than an error.
const (
	contradictionPenalty = 0.1
	defaultTrustScore    = 0.5
)

// TrustAggregator combines claim confidences and contradiction counts into
// one overall trust score. It is a pure function of its inputs.
type TrustAggregator struct{}

// NewTrustAggregator creates an aggregator.
func NewTrustAggregator() *TrustAggregator {
	return &TrustAggregator{}
}

// Aggregate computes the overall trust score in [0,1], rounded to two
// decimals.
func (t *TrustAggregator) Aggregate(claims []model.Claim, contradictions []model.ContradictionPair) float64 {
	if len(claims) == 0 {
		return defaultTrustScore
	}

	sum := 0.0
	for _, c := range claims {
		sum += c.Confidence
	}
	mean := sum / float64(len(claims))

	score := mean - float64(len(contradictions))*contradictionPenalty
	return round2(clamp(score, 0, 1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
