package semaphore

import (
	"context"
	"fmt"
)

type Semaphore struct {
	semaCh chan struct{}
}

func New(maxRequestCount uint64) *Semaphore {
	if maxRequestCount == 0 {
		maxRequestCount = 1
	}
	return &Semaphore{
		semaCh: make(chan struct{}, maxRequestCount),
	}
}

// Acquire blocks until a slot is free or ctx is done.
func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("semaphore acquire aborted: %w", ctx.Err())
	case s.semaCh <- struct{}{}:
		return nil
	}
}

func (s *Semaphore) Release() {
	<-s.semaCh
}
