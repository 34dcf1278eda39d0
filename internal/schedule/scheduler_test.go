package schedule

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunsTasksImmediatelyInRegistrationOrder(t *testing.T) {
	s := New(discardLogger())
	var mu sync.Mutex
	var order []string
	record := func(name string) func() {
		return func() {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
		}
	}
	s.Every("tick", time.Hour, record("tick"))
	s.Every("tracks", time.Hour, record("tracks"))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = s.Run(ctx)

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != "tick" || order[1] != "tracks" {
		t.Errorf("order = %v, want [tick tracks]", order)
	}
}

func TestFixedDelay(t *testing.T) {
	s := New(discardLogger())
	var runs []time.Time
	s.Every("slow", 20*time.Millisecond, func() {
		runs = append(runs, time.Now())
		time.Sleep(30 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = s.Run(ctx)

	if len(runs) < 2 {
		t.Fatalf("runs = %d, want at least 2", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		gap := runs[i].Sub(runs[i-1])
		if gap < 50*time.Millisecond {
			t.Errorf("gap between run %d and %d = %v, want >= 50ms (run time + delay)", i-1, i, gap)
		}
	}
}

func TestTasksDoNotOverlap(t *testing.T) {
	s := New(discardLogger())
	var mu sync.Mutex
	running := 0
	overlapped := false
	work := func() {
		mu.Lock()
		running++
		if running > 1 {
			overlapped = true
		}
		mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		mu.Lock()
		running--
		mu.Unlock()
	}
	s.Every("a", 10*time.Millisecond, work)
	s.Every("b", 10*time.Millisecond, work)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	_ = s.Run(ctx)

	if overlapped {
		t.Error("tasks ran concurrently")
	}
}

func TestRunReturnsContextError(t *testing.T) {
	s := New(discardLogger())
	s.Every("noop", time.Hour, func() {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestStop(t *testing.T) {
	s := New(discardLogger())
	s.Every("noop", time.Hour, func() {})

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run(context.Background())
	}()
	s.Stop()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after Stop()")
	}
}

func TestPanickingTaskIsRescheduled(t *testing.T) {
	s := New(discardLogger())
	var mu sync.Mutex
	calls := 0
	s.Every("panics", 5*time.Millisecond, func() {
		mu.Lock()
		calls++
		mu.Unlock()
		panic("boom")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	_ = s.Run(ctx)

	mu.Lock()
	defer mu.Unlock()
	if calls < 2 {
		t.Errorf("calls = %d, want at least 2", calls)
	}
}
