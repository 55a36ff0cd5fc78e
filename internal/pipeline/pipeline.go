package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/factyne/factyne/internal/audit"
	"github.com/factyne/factyne/internal/cache"
	"github.com/factyne/factyne/internal/extract"
	"github.com/factyne/factyne/internal/model"
	"github.com/factyne/factyne/internal/score"
	"github.com/factyne/factyne/internal/verify"
	"github.com/google/uuid"
)

// Pipeline runs the claim extraction and scoring sequence for one request:
// segment, filter, detect modifiers, score confidence, detect
// contradictions, aggregate trust. All components are pure functions of
// their inputs plus static marker data, so one Pipeline is safe for
// concurrent callers.
type Pipeline struct {
	segmenter  *extract.Segmenter
	classifier extract.Classifier
	scorer     *score.ConfidenceScorer
	detector   *score.ContradictionDetector
	aggregator *score.TrustAggregator
	verifier   *verify.Verifier // nil when external verification is disabled
	cfg        *model.Config
}

// New builds a pipeline from configuration.
func New(cfg *model.Config) *Pipeline {
	p := &Pipeline{
		segmenter:  extract.NewSegmenter(cfg.Pipeline.MaxTextLen),
		classifier: extract.NewRuleClassifier(cfg.Pipeline.MinClaimLen),
		scorer:     score.NewConfidenceScorer(),
		detector:   score.NewContradictionDetector(),
		aggregator: score.NewTrustAggregator(),
		cfg:        cfg,
	}

	if cfg.Verify.Enabled {
		p.verifier = verify.New(cfg.Verify, cfg.HTTP, lookupCache(cfg.Cache))
	}

	return p
}

// SetClassifier swaps the claim filter policy. The pipeline shape is
// unchanged; only the accept/reject decisions move.
func (p *Pipeline) SetClassifier(c extract.Classifier) {
	if c != nil {
		p.classifier = c
	}
}

// lookupCache builds the cache for external lookups, or nil when disabled.
func lookupCache(cfg model.CacheConfig) cache.Cache {
	if !cfg.Enabled {
		return nil
	}

	dir := cfg.Dir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return cache.NewMemoryCache(cfg.MemoryTTL, 10*time.Minute)
		}
		dir = filepath.Join(base, "factyne")
	}

	return cache.NewLayeredCache(cfg.MemoryTTL, dir, cfg.DiskTTL)
}

// NewRequest validates the input and creates a pending request. A
// validation failure returns the error synchronously and no request is
// created.
func (p *Pipeline) NewRequest(text, sourceURL string) (*model.FactCheckRequest, error) {
	norm, err := p.segmenter.Normalize(text)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &model.FactCheckRequest{
		ID:        uuid.NewString(),
		InputText: norm,
		SourceURL: sourceURL,
		Status:    model.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Process validates text and drives a new request to a terminal state.
// Only input validation is returned as an error; processing failures are
// reported through the request's failed status and reason code.
func (p *Pipeline) Process(ctx context.Context, text, sourceURL string) (*model.FactCheckRequest, error) {
	req, err := p.NewRequest(text, sourceURL)
	if err != nil {
		return nil, err
	}
	p.Run(ctx, req)
	return req, nil
}

// Run executes the component sequence for a pending request under the
// per-request time budget. The request ends completed or failed; no
// retries happen here.
func (p *Pipeline) Run(ctx context.Context, req *model.FactCheckRequest) {
	if req.Status.Terminal() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Pipeline.Budget)
	defer cancel()

	start := time.Now()
	req.Status = model.StatusProcessing
	req.UpdatedAt = time.Now().UTC()

	defer func() {
		if r := recover(); r != nil {
			p.fail(req, start, ReasonComponentFailure)
		}
	}()

	audit.ContentSubmitted(req.ID, req.SourceURL, len(strings.Fields(req.InputText)))

	// Segment and filter.
	candidates := p.segmenter.Segment(req.InputText)
	req.CandidateCount = len(candidates)

	claims := make([]model.Claim, 0, len(candidates))
	for _, cand := range candidates {
		decision := p.classifier.Classify(cand.Text)
		if !decision.Accept {
			continue
		}

		mods := extract.DetectModifiers(cand.Text)
		claims = append(claims, model.Claim{
			ID:           uuid.NewString(),
			Text:         cand.Text,
			Confidence:   p.scorer.Score(cand.Text, mods),
			IsNegated:    mods.IsNegated,
			HasQualifier: mods.HasQualifier,
			Span:         cand.Span,
			CreatedAt:    time.Now().UTC(),
		})
		if len(claims) >= p.cfg.Pipeline.MaxClaims {
			break
		}
	}

	avg := 0.0
	for _, c := range claims {
		avg += c.Confidence
	}
	if len(claims) > 0 {
		avg /= float64(len(claims))
	}
	audit.ClaimsExtracted(req.ID, len(candidates), len(claims), avg)

	if ctx.Err() != nil {
		p.fail(req, start, ReasonTimeout)
		return
	}

	// Optional external verification, before the pairwise pass so the
	// completed request is fully settled in one shot.
	if p.verifier != nil {
		claims = p.verifier.VerifyClaims(ctx, req.ID, claims)
	}

	if ctx.Err() != nil {
		p.fail(req, start, ReasonTimeout)
		return
	}

	pairs := p.detector.Detect(claims)
	for _, pair := range pairs {
		audit.ContradictionDetected(req.ID, pair.ClaimA, pair.ClaimB, pair.Importance, string(pair.Type))
	}

	if ctx.Err() != nil {
		p.fail(req, start, ReasonTimeout)
		return
	}

	trust := p.aggregator.Aggregate(claims, pairs)
	audit.ScoreCalculated(req.ID, trust, len(pairs))

	req.Claims = claims
	req.Contradictions = pairs
	req.TrustScore = trust
	req.Status = model.StatusCompleted
	req.ProcessingTimeMS = time.Since(start).Milliseconds()
	req.UpdatedAt = time.Now().UTC()
}

func (p *Pipeline) fail(req *model.FactCheckRequest, start time.Time, reason string) {
	req.Status = model.StatusFailed
	req.ErrorCode = reason
	req.ProcessingTimeMS = time.Since(start).Milliseconds()
	req.UpdatedAt = time.Now().UTC()
	audit.ProcessingFailed(req.ID, reason)
}
