package regexmark

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit value wins", 3, 3},
		{"large explicit value is kept", 32, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestResolvePoolSize_Auto(t *testing.T) {
	t.Parallel()

	want := runtime.GOMAXPROCS(0) / cpuDivisor
	want = max(MinPoolSize, min(MaxPoolSize, want))

	for _, workers := range []int{0, -1} {
		if got := ResolvePoolSize(workers); got != want {
			t.Errorf("ResolvePoolSize(%d) = %d, want %d", workers, got, want)
		}
	}
}

func TestRendererPool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(2, WithoutStyle())
	defer pool.Close()
	ctx := context.Background()

	r1, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	r2, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if r1 == r2 {
		t.Error("expected different renderer instances")
	}

	pool.Release(r1)
	r3, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if r3 != r1 {
		t.Error("expected to get back released renderer")
	}

	pool.Release(r2)
	pool.Release(r3)
}

func TestRendererPool_SharesRuleSet(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(2, WithoutStyle(), WithRules([]Rule{{Regex: "TODO", Class: "todo"}}))
	defer pool.Close()
	ctx := context.Background()

	r1, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	r2, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if r1.set != r2.set {
		t.Error("expected pool members to share the compiled rule set")
	}
}

func TestRendererPool_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
		want int
	}{
		{"size 1", 1, 1},
		{"size 4", 4, 4},
		{"size 0 becomes 1", 0, 1},
		{"negative becomes 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool := NewRendererPool(tt.size)
			defer pool.Close()

			if got := pool.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRendererPool_LazyCreation(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(4, WithoutStyle())
	defer pool.Close()

	if pool.created != 0 {
		t.Errorf("expected no renderer before Acquire, got %d", pool.created)
	}

	r, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	pool.Release(r)

	if pool.created != 1 {
		t.Errorf("expected 1 renderer, got %d", pool.created)
	}
}

func TestRendererPool_CreationErrorFreesSlot(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(1, WithStyle("does-not-exist"))
	defer pool.Close()

	_, err := pool.Acquire(context.Background())
	if !errors.Is(err, ErrStyleNotFound) {
		t.Fatalf("expected ErrStyleNotFound, got %v", err)
	}
	if pool.created != 0 {
		t.Errorf("failed creation should free the slot, created = %d", pool.created)
	}
}

func TestRendererPool_AcquireHonorsContext(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(1, WithoutStyle())
	defer pool.Close()

	r, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	defer pool.Release(r)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := pool.Acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestRendererPool_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(4, WithoutStyle())
	defer pool.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := pool.Acquire(context.Background())
			if err != nil {
				t.Errorf("Acquire() error: %v", err)
				return
			}
			time.Sleep(5 * time.Millisecond) // Simulate work
			pool.Release(r)
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(5 * time.Second)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		t.Fatal("concurrent access test timed out - possible deadlock")
	}

	if pool.created > 4 {
		t.Errorf("created %d renderers, capacity is 4", pool.created)
	}
}

func TestRendererPool_Close(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(2, WithoutStyle())
	r, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}

	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}

	// Release after close is a no-op
	pool.Release(r)
	pool.Release(nil)

	if _, err := pool.Acquire(context.Background()); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("expected ErrPoolClosed, got %v", err)
	}
}
