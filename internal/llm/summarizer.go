package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/factyne/factyne/internal/model"
)

// NewProvider builds a provider from configuration. An empty provider name
// means summaries are disabled and returns (nil, nil).
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "ollama":
		return NewOllamaProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// Summarizer wraps a provider with the summary-never-affects-scoring rule:
// it only reads completed requests and returns text.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer, or (nil, nil) when disabled.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// Summarize generates a summary for a completed request.
func (s *Summarizer) Summarize(ctx context.Context, req *model.FactCheckRequest) (*SummarizeResponse, error) {
	if req == nil || req.Status != model.StatusCompleted {
		return nil, fmt.Errorf("can only summarize completed requests")
	}

	return s.provider.Summarize(ctx, SummarizeRequest{
		Request:   req,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
}
