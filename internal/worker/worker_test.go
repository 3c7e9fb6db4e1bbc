package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nkurtev/attestor/internal/model"
)

type countJob struct {
	n       *atomic.Int64
	fail    bool
	delay   time.Duration
	payload string
}

type countResult struct {
	payload string
	err     error
}

func (r *countResult) GetError() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	if j.delay > 0 {
		select {
		case <-ctx.Done():
			return &countResult{err: ctx.Err()}
		case <-time.After(j.delay):
		}
	}
	j.n.Add(1)
	if j.fail {
		return &countResult{payload: j.payload, err: errors.New("job failed")}
	}
	return &countResult{payload: j.payload, err: nil}
}

func TestPool(t *testing.T) {
	var n atomic.Int64
	pool := NewPool(3)
	pool.Start(context.Background())

	for i := 0; i < 10; i++ {
		pool.Submit(&countJob{n: &n, payload: "x"})
	}
	pool.Close()
	results := pool.Wait()

	if got := n.Load(); got != 10 {
		t.Errorf("executed = %d, want 10", got)
	}
	if len(results) != 10 {
		t.Errorf("results = %d, want 10", len(results))
	}
}

func TestPool_ZeroWorkers(t *testing.T) {
	var n atomic.Int64
	pool := NewPool(0)
	pool.Start(context.Background())
	pool.Submit(&countJob{n: &n})
	pool.Close()
	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("results = %d, want 1", len(results))
	}
}

func TestPool_ManyJobsBeyondBuffers(t *testing.T) {
	var n atomic.Int64
	pool := NewPool(2)
	pool.Start(context.Background())

	// Far more jobs than the channel buffers hold, so this only
	// completes when submission and collection run concurrently.
	const jobs = 50
	go func() {
		for i := 0; i < jobs; i++ {
			pool.Submit(&countJob{n: &n})
		}
		pool.Close()
	}()

	done := make(chan []Result, 1)
	go func() { done <- pool.Wait() }()

	select {
	case results := <-done:
		if len(results) != jobs {
			t.Errorf("results = %d, want %d", len(results), jobs)
		}
		if got := n.Load(); got != jobs {
			t.Errorf("executed = %d, want %d", got, jobs)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("pool stalled before finishing all jobs")
	}
}

func TestPool_ErrorsSurface(t *testing.T) {
	var n atomic.Int64
	pool := NewPool(2)
	pool.Start(context.Background())
	pool.Submit(&countJob{n: &n, fail: true})
	pool.Submit(&countJob{n: &n})
	pool.Close()
	results := pool.Wait()

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("failures = %d, want 1", failures)
	}
}

func TestLimiter_Allow(t *testing.T) {
	l := NewLimiter(1, 2)

	// Burst of 2 is allowed, the third is throttled
	if !l.Allow("https://example.org/a") {
		t.Error("first request should be allowed")
	}
	if !l.Allow("https://example.org/b") {
		t.Error("second request should be allowed")
	}
	if l.Allow("https://example.org/c") {
		t.Error("third request should be throttled")
	}

	// Other hosts have their own budget
	if !l.Allow("https://other.test/a") {
		t.Error("separate host should have its own limiter")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetHostRate("slow.test", 0.001, 1)

	if !l.Allow("https://slow.test/a") {
		t.Error("burst of 1 should pass")
	}
	if l.Allow("https://slow.test/b") {
		t.Error("host override should throttle immediately")
	}
}

func TestLimiter_Wait_Cancelled(t *testing.T) {
	l := NewLimiter(0.001, 1)
	_ = l.Wait(context.Background(), "https://example.org/a") // Consume the burst

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx, "https://example.org/b"); err == nil {
		t.Error("expected context error while throttled")
	}
}

type fakeAssessor struct {
	calls atomic.Int64
	fail  map[string]bool
}

func (f *fakeAssessor) AssessSource(_ context.Context, source string) (*model.Report, error) {
	f.calls.Add(1)
	if f.fail[source] {
		return nil, errors.New("load failed")
	}
	return &model.Report{Submission: source}, nil
}

func TestBatchProcessor(t *testing.T) {
	assessor := &fakeAssessor{fail: map[string]bool{"bad.txt": true}}
	b := NewBatchProcessor(assessor, NewLimiter(100, 100), 2)

	results := b.Process(context.Background(), []string{"a.txt", "b.txt", "bad.txt"})
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}

	var ok, failed int
	for _, r := range results {
		if r.GetError() != nil {
			failed++
			if r.Source != "bad.txt" {
				t.Errorf("unexpected failure for %s", r.Source)
			}
		} else {
			ok++
			if r.Report == nil {
				t.Errorf("missing report for %s", r.Source)
			}
		}
	}
	if ok != 2 || failed != 1 {
		t.Errorf("ok = %d, failed = %d", ok, failed)
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	b := NewBatchProcessor(&fakeAssessor{}, nil, 2)
	if results := b.Process(context.Background(), nil); len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}

func TestReadSourcesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.txt")
	content := "a.txt\n\n# comment\nb.txt\na.txt\nhttps://example.org/doc\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	sources, err := ReadSourcesFromFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []string{"a.txt", "b.txt", "https://example.org/doc"}
	if len(sources) != len(want) {
		t.Fatalf("sources = %v", sources)
	}
	for i := range want {
		if sources[i] != want[i] {
			t.Errorf("sources[%d] = %q, want %q", i, sources[i], want[i])
		}
	}
}

func TestBatchProcessor_AllSourcesAssessed(t *testing.T) {
	assessor := &fakeAssessor{}
	b := NewBatchProcessor(assessor, nil, 4)

	sources := []string{"s1", "s2", "s3", "s4", "s5"}
	results := b.Process(context.Background(), sources)

	var got []string
	for _, r := range results {
		got = append(got, r.Source)
	}
	sort.Strings(got)
	for i, want := range sources {
		if got[i] != want {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want)
		}
	}
	if assessor.calls.Load() != int64(len(sources)) {
		t.Errorf("calls = %d, want %d", assessor.calls.Load(), len(sources))
	}
}

func TestBatchProcessor_LargeManifest(t *testing.T) {
	assessor := &fakeAssessor{}
	b := NewBatchProcessor(assessor, nil, 2)

	sources := make([]string, 50)
	for i := range sources {
		sources[i] = fmt.Sprintf("src-%d.txt", i)
	}

	done := make(chan []*AssessResult, 1)
	go func() { done <- b.Process(context.Background(), sources) }()

	select {
	case results := <-done:
		if len(results) != len(sources) {
			t.Errorf("results = %d, want %d", len(results), len(sources))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("batch stalled on a manifest larger than the worker buffers")
	}
}

type blockingAssessor struct{}

func (blockingAssessor) AssessSource(ctx context.Context, source string) (*model.Report, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestBatchProcessor_CancelReachesJobs(t *testing.T) {
	b := NewBatchProcessor(blockingAssessor{}, nil, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Process(ctx, []string{"s1", "s2", "s3", "s4", "s5", "s6"})
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cancellation did not unblock the batch")
	}
}
