// Package llm generates optional natural-language summaries of fact-check
// results. The summary is produced after scoring and never feeds back into
// claims, contradictions, or the trust score.
package llm

import (
	"context"
	"fmt"

	"github.com/factyne/factyne/internal/model"
)

// Provider is one LLM backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize generates a summary of a completed fact-check request.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest is the input for summarization.
type SummarizeRequest struct {
	Request   *model.FactCheckRequest
	Prompt    string // optional custom prompt
	Model     string // provider-specific override
	MaxTokens int
}

// SummarizeResponse is the generated summary.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	Provider  string // "openai", "ollama", ""
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel converts the app config to provider config.
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		MaxTokens: c.MaxTokens,
	}
}

// BuildPrompt constructs the default summarization prompt. The model is told
// to describe confidence and contradictions, never to rule on truth.
func BuildPrompt(req *model.FactCheckRequest) string {
	prompt := fmt.Sprintf(`You are summarizing a Factyne fact-check result. Factyne estimates how confidently claims are asserted and whether they contradict each other - it NEVER decides what is true.

RULES:
1. Describe confidence and internal consistency only.
2. Never say "this is true" or "this is false".
3. If there are contradictions, describe what conflicts.

Result:
- Overall trust score: %.2f
- Claims extracted: %d
- Contradictions: %d

Claims:
`, req.TrustScore, len(req.Claims), len(req.Contradictions))

	for i, c := range req.Claims {
		if i >= 10 {
			prompt += fmt.Sprintf("... and %d more claims\n", len(req.Claims)-10)
			break
		}
		flags := ""
		if c.IsNegated {
			flags += " [negated]"
		}
		if c.HasQualifier {
			flags += " [hedged]"
		}
		prompt += fmt.Sprintf("- (%.2f)%s %s\n", c.Confidence, flags, c.Text)
	}

	for _, p := range req.Contradictions {
		prompt += fmt.Sprintf("\nContradiction (%s): %q vs %q", p.Type, p.ClaimAText, p.ClaimBText)
	}

	prompt += "\n\nProvide a 3-4 sentence summary of assertion confidence and consistency, not truth."
	return prompt
}
