package download

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// WorkFunc is the signature for one queued download.
type WorkFunc func(ctx context.Context) error

// Queue runs a batch of downloads concurrently under one concurrency
// cap, collecting their errors.
type Queue struct {
	wg       sync.WaitGroup
	mu       sync.Mutex
	sem      chan struct{}
	shutdown atomic.Bool
	errs     []error
}

// NewQueue creates a Queue with the given concurrency limit.
// If maxConcurrent <= 0, concurrency is unlimited.
func NewQueue(maxConcurrent int) *Queue {
	q := &Queue{}
	if maxConcurrent > 0 {
		q.sem = make(chan struct{}, maxConcurrent)
	}
	return q
}

// Start launches fn on a new goroutine managed by the queue. fn runs
// once a concurrency slot is free, unless the queue was shut down or
// ctx ended first.
func (q *Queue) Start(ctx context.Context, fn WorkFunc) {
	q.wg.Add(1)

	go func() {
		defer q.wg.Done()

		if q.sem != nil {
			select {
			case q.sem <- struct{}{}:
				defer func() {
					<-q.sem
				}()
			case <-ctx.Done():
				q.recordErr(ctx.Err())
				return
			}
		}

		if q.shutdown.Load() {
			q.recordErr(ErrQueueShutdown)
			return
		}

		if err := fn(ctx); err != nil {
			q.recordErr(err)
		}
	}()
}

// Wait blocks until every started download completes.
// Returns all errors joined via errors.Join.
func (q *Queue) Wait() error {
	q.wg.Wait()

	q.mu.Lock()
	defer q.mu.Unlock()

	return errors.Join(q.errs...)
}

// Shutdown prevents queued work that has not begun from executing.
func (q *Queue) Shutdown() {
	q.shutdown.Store(true)
}

func (q *Queue) recordErr(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.errs = append(q.errs, err)
}
