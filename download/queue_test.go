package download_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yunusuzun/SwiftCoral/download"
)

func TestQueue_RunsAllWork(t *testing.T) {
	q := download.NewQueue(2)

	var ran atomic.Int32
	for i := 0; i < 8; i++ {
		q.Start(context.Background(), func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}

	if err := q.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if got := ran.Load(); got != 8 {
		t.Errorf("ran %d of 8", got)
	}
}

func TestQueue_RespectsConcurrencyLimit(t *testing.T) {
	const limit = 3
	q := download.NewQueue(limit)

	var current, peak atomic.Int32
	for i := 0; i < 12; i++ {
		q.Start(context.Background(), func(ctx context.Context) error {
			n := current.Add(1)
			defer current.Add(-1)

			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}

			time.Sleep(10 * time.Millisecond)
			return nil
		})
	}

	if err := q.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if p := peak.Load(); p > limit {
		t.Errorf("peak concurrency %d exceeds limit %d", p, limit)
	}
}

func TestQueue_JoinsErrors(t *testing.T) {
	q := download.NewQueue(0)

	first := errors.New("first failure")
	second := errors.New("second failure")

	q.Start(context.Background(), func(ctx context.Context) error { return first })
	q.Start(context.Background(), func(ctx context.Context) error { return nil })
	q.Start(context.Background(), func(ctx context.Context) error { return second })

	err := q.Wait()
	if !errors.Is(err, first) || !errors.Is(err, second) {
		t.Fatalf("expected both failures joined, got: %v", err)
	}
}

func TestQueue_Shutdown(t *testing.T) {
	q := download.NewQueue(1)
	q.Shutdown()

	var ran atomic.Int32
	q.Start(context.Background(), func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	err := q.Wait()
	if !errors.Is(err, download.ErrQueueShutdown) {
		t.Fatalf("expected ErrQueueShutdown, got: %v", err)
	}
	if ran.Load() != 0 {
		t.Error("work executed after shutdown")
	}
}

func TestQueue_CancelledContextWhileWaitingForSlot(t *testing.T) {
	q := download.NewQueue(1)

	started := make(chan struct{})
	release := make(chan struct{})
	q.Start(context.Background(), func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q.Start(ctx, func(ctx context.Context) error {
		t.Error("work ran despite cancelled context")
		return nil
	})

	close(release)

	if err := q.Wait(); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}
