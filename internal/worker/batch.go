package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/factyne/factyne/internal/model"
)

// Checker processes one document source (inline text, a local file, or a
// URL) through the fact-check pipeline.
type Checker interface {
	CheckSource(ctx context.Context, source string) (*model.FactCheckRequest, error)
}

// CheckJob fact-checks one source.
type CheckJob struct {
	Source  string
	Checker Checker
}

// CheckResult is the outcome of one batch entry.
type CheckResult struct {
	Source  string
	Request *model.FactCheckRequest
	Error   error
}

func (r *CheckResult) Err() error { return r.Error }

// Execute runs the job.
func (j *CheckJob) Execute(ctx context.Context) Result {
	req, err := j.Checker.CheckSource(ctx, j.Source)
	return &CheckResult{Source: j.Source, Request: req, Error: err}
}

// BatchProcessor fact-checks many documents concurrently.
type BatchProcessor struct {
	checker     Checker
	concurrency int
}

// NewBatchProcessor creates a processor that runs at most concurrency
// documents in parallel.
func NewBatchProcessor(checker Checker, concurrency int) *BatchProcessor {
	return &BatchProcessor{checker: checker, concurrency: concurrency}
}

// ProcessSources fact-checks each source concurrently and returns all
// results once the pool drains.
func (b *BatchProcessor) ProcessSources(ctx context.Context, sources []string) []*CheckResult {
	if len(sources) == 0 {
		return []*CheckResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Submit from a separate goroutine and drain results here, so batches
	// larger than the pool's channel buffers cannot wedge on a full queue.
	go func() {
		for _, src := range sources {
			pool.Submit(&CheckJob{Source: src, Checker: b.checker})
		}
		pool.CloseQueue()
	}()

	out := make([]*CheckResult, 0, len(sources))
	for r := range pool.Results() {
		out = append(out, r.(*CheckResult))
	}
	return out
}

// ProcessFile reads sources from a manifest file (one per line, # comments
// and blanks skipped) and processes them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*CheckResult, error) {
	sources, err := ReadSourcesFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	return b.ProcessSources(ctx, sources), nil
}

// ReadSourcesFromFile reads one source per line, skipping duplicates.
func ReadSourcesFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sources []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			sources = append(sources, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return sources, nil
}
