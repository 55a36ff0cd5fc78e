// Package verify checks scored claims against an external reference source
// (Wikipedia's search API). Verification runs after scoring and before a
// request is marked completed; it adjusts confidence by producing new
// claims, never by mutating scored ones.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/factyne/factyne/internal/audit"
	"github.com/factyne/factyne/internal/cache"
	"github.com/factyne/factyne/internal/model"
	"github.com/factyne/factyne/internal/worker"
)

// Confidence adjustments mirror the scoring contract: corroborated claims
// gain a bounded boost, refuted ones lose more than they could have gained.
const (
	verifiedBoost  = 0.15
	refutedPenalty = 0.25
	queryWordCount = 5
	cacheTTL       = 24 * time.Hour
)

// Verdict is the outcome of one external lookup.
type Verdict struct {
	Verified bool     `json:"verified"`
	Refuted  bool     `json:"refuted"`
	Sources  []string `json:"sources,omitempty"`
}

// Verifier looks up claims concurrently with a bounded worker count, a
// per-host rate limit, and a lookup cache.
type Verifier struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	workers    int
	limiter    *worker.Limiter
	cache      cache.Cache
}

// New creates a verifier. cacheLayer may be nil to disable caching.
func New(cfg model.VerifyConfig, httpCfg model.HTTPConfig, cacheLayer cache.Cache) *Verifier {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}

	return &Verifier{
		httpClient: &http.Client{Timeout: httpCfg.Timeout},
		endpoint:   cfg.Endpoint,
		userAgent:  httpCfg.UserAgent,
		workers:    workers,
		limiter:    worker.NewLimiter(cfg.RateRPS, cfg.Burst),
		cache:      cacheLayer,
	}
}

// VerifyClaims looks up every claim and returns adjusted copies in the same
// order. Lookup failures leave the claim unchanged; verification is best
// effort and never fails the request.
func (v *Verifier) VerifyClaims(ctx context.Context, requestID string, claims []model.Claim) []model.Claim {
	if len(claims) == 0 {
		return claims
	}

	out := make([]model.Claim, len(claims))
	copy(out, claims)

	var wg sync.WaitGroup
	sem := make(chan struct{}, v.workers)

	for i := range claims {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()

			verdict, err := v.lookup(ctx, claims[idx].Text)
			if err != nil {
				return
			}

			switch {
			case verdict.Verified:
				out[idx] = claims[idx].WithConfidence(claims[idx].Confidence + verifiedBoost)
			case verdict.Refuted:
				out[idx] = claims[idx].WithConfidence(claims[idx].Confidence - refutedPenalty)
			}
			audit.ExternalVerification(requestID, claims[idx].ID, verdict.Verified, verdict.Refuted)
		}(i)
	}

	wg.Wait()
	return out
}

// lookup queries the reference source for the claim's leading keywords,
// consulting the cache first.
func (v *Verifier) lookup(ctx context.Context, claimText string) (Verdict, error) {
	query := searchQuery(claimText)
	key := cache.Key("verify:" + query)

	if v.cache != nil {
		if data, found := v.cache.Get(key); found {
			var verdict Verdict
			if err := json.Unmarshal(data, &verdict); err == nil {
				return verdict, nil
			}
		}
	}

	if err := v.limiter.Wait(ctx, v.endpoint); err != nil {
		return Verdict{}, err
	}

	verdict, err := v.search(ctx, query)
	if err != nil {
		return Verdict{}, err
	}

	if v.cache != nil {
		if data, err := json.Marshal(verdict); err == nil {
			_ = v.cache.Set(key, data, cacheTTL)
		}
	}

	return verdict, nil
}

// searchResponse is the subset of the MediaWiki search response we read.
type searchResponse struct {
	Query struct {
		SearchInfo struct {
			TotalHits int `json:"totalhits"`
		} `json:"searchinfo"`
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

func (v *Verifier) search(ctx context.Context, query string) (Verdict, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", "3")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Verdict{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", v.userAgent)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return Verdict{}, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Verdict{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Verdict{}, fmt.Errorf("read body: %w", err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Verdict{}, fmt.Errorf("decode response: %w", err)
	}

	verdict := Verdict{}
	if parsed.Query.SearchInfo.TotalHits > 0 {
		verdict.Verified = true
		for _, hit := range parsed.Query.Search {
			verdict.Sources = append(verdict.Sources, hit.Title)
		}
	}
	return verdict, nil
}

// searchQuery takes the claim's first few words as the lookup query.
func searchQuery(claimText string) string {
	words := strings.Fields(claimText)
	if len(words) > queryWordCount {
		words = words[:queryWordCount]
	}
	return strings.Join(words, " ")
}
