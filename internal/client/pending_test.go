package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestPending_ResolveOnce(t *testing.T) {
	p := NewPending[int]()

	v1 := 1
	v2 := 2
	p.Resolve(&v1, nil)
	p.Resolve(&v2, errors.New("late")) // игнорируется

	got, err := p.Await(context.Background())
	if err != nil || got == nil || *got != 1 {
		t.Fatalf("want first resolution (1, nil), got (%v, %v)", got, err)
	}
}

func TestPending_ReplaysForLateSubscribers(t *testing.T) {
	p := NewPending[string]()
	v := "done"
	p.Resolve(&v, nil)

	// Поздний подписчик получает уже зафиксированный исход.
	got, err := p.Await(context.Background())
	if err != nil || got == nil || *got != "done" {
		t.Fatalf("late subscriber must see the settled value, got (%v, %v)", got, err)
	}
}

func TestPending_ConcurrentAwaitersShareOutcome(t *testing.T) {
	p := NewPending[int]()

	const n = 5
	results := make([]*int, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(idx int) {
			defer wg.Done()
			got, _ := p.Await(context.Background())
			results[idx] = got
		}(i)
	}

	v := 7
	p.Resolve(&v, nil)
	wg.Wait()

	for i, got := range results {
		if got == nil || *got != 7 {
			t.Fatalf("awaiter %d: want 7, got %v", i, got)
		}
	}
}

func TestPending_AwaitCancelledByContext(t *testing.T) {
	p := NewPending[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := p.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want context deadline error, got %v", err)
	}
	if p.Settled() {
		t.Fatalf("cancelled await must not settle the handle itself")
	}
}

func TestPending_ResolveWithError(t *testing.T) {
	p := NewPending[int]()
	wantErr := errors.New("remote failed")
	p.Resolve(nil, wantErr)

	got, err := p.Await(context.Background())
	if got != nil || !errors.Is(err, wantErr) {
		t.Fatalf("want (nil, remote failed), got (%v, %v)", got, err)
	}
}
