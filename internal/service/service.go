// Package service is the caller-facing boundary of the pipeline: submit
// text (or a URL) and look results up by id. Authentication, rate limiting,
// and transport belong to the caller; the service only enforces its own
// input-size and time budgets.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/factyne/factyne/internal/model"
	"github.com/factyne/factyne/internal/pipeline"
	"github.com/factyne/factyne/internal/store"
)

// ErrNotFound is returned by GetResult for unknown or expired request ids.
var ErrNotFound = store.ErrNotFound

// Service wires the pipeline to the request store and exposes the
// submit/get_result contract in sync and async modes.
type Service struct {
	pipe    *pipeline.Pipeline
	fetcher *pipeline.Fetcher
	store   *store.RequestStore
	cfg     *model.Config
}

// New creates a service from configuration.
func New(cfg *model.Config) *Service {
	return &Service{
		pipe:    pipeline.New(cfg),
		fetcher: pipeline.NewFetcher(cfg.HTTP),
		store:   store.New(cfg.Store.TTL),
		cfg:     cfg,
	}
}

// Pipeline exposes the underlying pipeline (for classifier swaps).
func (s *Service) Pipeline() *pipeline.Pipeline { return s.pipe }

// Submit validates and fact-checks text. Validation errors surface here,
// synchronously, and no request is created for them.
//
// In sync mode the call blocks until the request is terminal. In async mode
// it returns a pending result immediately and processing continues in the
// background; poll GetResult with the returned id.
func (s *Service) Submit(ctx context.Context, text, sourceURL string, async bool) (*model.Result, error) {
	req, err := s.pipe.NewRequest(text, sourceURL)
	if err != nil {
		return nil, err
	}

	if !async {
		s.pipe.Run(ctx, req)
		s.store.Put(req)
		res := req.ToResult()
		return &res, nil
	}

	s.store.Put(req)
	// Snapshot the pending view before handing the request to the worker
	// goroutine; after the goroutine starts, req belongs to it.
	res := req.ToResult()
	go func() {
		// Detached from the caller's context: an abandoned submit still
		// finishes or times out under the pipeline's own budget.
		s.pipe.Run(context.Background(), req)
		s.store.Put(req)
	}()

	return &res, nil
}

// GetResult returns the current view of a request: full claims and scores
// once completed, status only while pending or processing, the reason code
// if failed.
func (s *Service) GetResult(ctx context.Context, id string) (*model.Result, error) {
	req, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	res := req.ToResult()
	return &res, nil
}

// CheckSource fact-checks one batch source: a URL is fetched first,
// anything else is treated as inline text. Implements worker.Checker.
func (s *Service) CheckSource(ctx context.Context, source string) (*model.FactCheckRequest, error) {
	text := source
	sourceURL := ""

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		fetched, err := s.fetcher.FetchText(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("fetch source: %w", err)
		}
		text = fetched
		sourceURL = source
	}

	req, err := s.pipe.Process(ctx, text, sourceURL)
	if err != nil {
		return nil, err
	}
	s.store.Put(req)
	return req, nil
}
