package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/factyne/factyne/internal/cache"
	"github.com/factyne/factyne/internal/model"
)

const hitsResponse = `{"query":{"searchinfo":{"totalhits":42},"search":[{"title":"Earth"},{"title":"Figure of the Earth"}]}}`
const noHitsResponse = `{"query":{"searchinfo":{"totalhits":0},"search":[]}}`

func testVerifier(endpoint string, c cache.Cache) *Verifier {
	return New(
		model.VerifyConfig{Endpoint: endpoint, Workers: 4, RateRPS: 1000, Burst: 1000},
		model.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "factyne-test"},
		c,
	)
}

func TestVerifier_BoostsVerifiedClaims(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") != "query" {
			t.Errorf("Expected action=query, got %s", r.URL.Query().Get("action"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(hitsResponse))
	}))
	defer server.Close()

	v := testVerifier(server.URL, nil)
	claims := []model.Claim{{ID: "c1", Text: "The Earth orbits the Sun once a year.", Confidence: 0.7}}

	out := v.VerifyClaims(context.Background(), "req-1", claims)
	if len(out) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(out))
	}
	if diff := out[0].Confidence - 0.85; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected boosted confidence 0.85, got %.4f", out[0].Confidence)
	}

	// The input slice is untouched.
	if claims[0].Confidence != 0.7 {
		t.Errorf("Input claim mutated: %.2f", claims[0].Confidence)
	}
}

func TestVerifier_BoostClampedToOne(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(hitsResponse))
	}))
	defer server.Close()

	v := testVerifier(server.URL, nil)
	claims := []model.Claim{{ID: "c1", Text: "The Earth orbits the Sun once a year.", Confidence: 0.95}}

	out := v.VerifyClaims(context.Background(), "req-1", claims)
	if out[0].Confidence != 1.0 {
		t.Errorf("Expected confidence clamped to 1.0, got %.2f", out[0].Confidence)
	}
}

func TestVerifier_NoHitsLeavesClaimUnchanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(noHitsResponse))
	}))
	defer server.Close()

	v := testVerifier(server.URL, nil)
	claims := []model.Claim{{ID: "c1", Text: "Zxqv blorp fictional nonsense words here.", Confidence: 0.6}}

	out := v.VerifyClaims(context.Background(), "req-1", claims)
	if out[0].Confidence != 0.6 {
		t.Errorf("Expected unchanged confidence 0.6, got %.2f", out[0].Confidence)
	}
}

func TestVerifier_LookupFailureIsBestEffort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	v := testVerifier(server.URL, nil)
	claims := []model.Claim{{ID: "c1", Text: "The Earth orbits the Sun once a year.", Confidence: 0.7}}

	out := v.VerifyClaims(context.Background(), "req-1", claims)
	if len(out) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(out))
	}
	if out[0].Confidence != 0.7 {
		t.Errorf("Expected the claim unchanged after a failed lookup, got %.2f", out[0].Confidence)
	}
}

func TestVerifier_CachesLookups(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(hitsResponse))
	}))
	defer server.Close()

	v := testVerifier(server.URL, cache.NewMemoryCache(time.Minute, time.Minute))
	claims := []model.Claim{{ID: "c1", Text: "The Earth orbits the Sun once a year.", Confidence: 0.7}}

	v.VerifyClaims(context.Background(), "req-1", claims)
	v.VerifyClaims(context.Background(), "req-2", claims)

	if calls.Load() != 1 {
		t.Errorf("Expected 1 upstream call with a warm cache, got %d", calls.Load())
	}
}

func TestVerifier_EmptyClaims(t *testing.T) {
	v := testVerifier("http://127.0.0.1:0", nil)

	out := v.VerifyClaims(context.Background(), "req-1", nil)
	if len(out) != 0 {
		t.Errorf("Expected no claims, got %d", len(out))
	}
}

func TestSearchQuery_FirstWords(t *testing.T) {
	got := searchQuery("The Earth orbits the Sun once a year.")
	if got != "The Earth orbits the Sun" {
		t.Errorf("Expected the first five words, got '%s'", got)
	}

	short := searchQuery("Two words")
	if short != "Two words" {
		t.Errorf("Expected short queries left whole, got '%s'", short)
	}
}
