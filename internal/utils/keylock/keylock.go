// Package keylock serializes work per key: one holder per user at a time,
// unrelated keys never wait for each other.
package keylock

import (
	"context"
	"fmt"
	"sync"
)

type entry struct {
	ch   chan struct{}
	refs int
}

type Locker struct {
	locks map[string]*entry
	mu    sync.Mutex
}

func New() *Locker {
	return &Locker{
		locks: make(map[string]*entry),
	}
}

// Lock blocks until key is free or ctx is done. The returned func releases
// the key and must be called exactly once.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
		return func() { l.release(key, e) }, nil
	case <-ctx.Done():
		l.forget(key, e)
		return nil, fmt.Errorf("failed to lock %s: %w", key, ctx.Err())
	}
}

func (l *Locker) release(key string, e *entry) {
	<-e.ch
	l.forget(key, e)
}

func (l *Locker) forget(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}

// Len returns the number of keys currently held or awaited.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
