package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nkurtev/attestor/internal/model"
)

// Assessor assesses one submission source against the shared reference
// corpus. The pipeline satisfies this through a thin adapter in the CLI.
type Assessor interface {
	AssessSource(ctx context.Context, source string) (*model.Report, error)
}

// AssessJob assesses a single submission
type AssessJob struct {
	Source   string
	Assessor Assessor
	Limiter  *Limiter // Optional per-host throttle for URL sources
}

// Execute runs the assessment
func (j *AssessJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil && strings.HasPrefix(j.Source, "http") {
		if err := j.Limiter.Wait(ctx, j.Source); err != nil {
			return &AssessResult{Source: j.Source, Error: err}
		}
	}

	report, err := j.Assessor.AssessSource(ctx, j.Source)
	if err != nil {
		return &AssessResult{Source: j.Source, Error: err}
	}
	return &AssessResult{Source: j.Source, Report: report}
}

// AssessResult is the outcome of one batch entry
type AssessResult struct {
	Source string
	Report *model.Report
	Error  error
}

// GetError returns the job error, if any
func (r *AssessResult) GetError() error {
	return r.Error
}

// BatchProcessor assesses multiple submissions concurrently. Each
// submission gets its own assessment run; the reference corpus and its
// index are shared through the Assessor.
type BatchProcessor struct {
	assessor    Assessor
	limiter     *Limiter
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(assessor Assessor, limiter *Limiter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		assessor:    assessor,
		limiter:     limiter,
		concurrency: concurrency,
	}
}

// Process assesses the given submission sources concurrently
func (b *BatchProcessor) Process(ctx context.Context, sources []string) []*AssessResult {
	if len(sources) == 0 {
		return []*AssessResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start(ctx)

	// Submit from a separate goroutine while this one drains results.
	// The pool's channels are bounded, so submitting every source first
	// would block once the buffers fill.
	go func() {
		for _, src := range sources {
			pool.Submit(&AssessJob{Source: src, Assessor: b.assessor, Limiter: b.limiter})
		}
		pool.Close()
	}()

	results := pool.Wait()

	out := make([]*AssessResult, len(results))
	for i, result := range results {
		out[i] = result.(*AssessResult)
	}
	return out
}

// ProcessFile reads submission sources from a manifest file and
// assesses them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*AssessResult, error) {
	sources, err := ReadSourcesFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	return b.Process(ctx, sources), nil
}

// ReadSourcesFromFile reads one source per line, skipping blanks and
// comments, deduplicating in order
func ReadSourcesFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sources []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
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
