package lock

import (
	"context"
	"sync"
	"time"
)

// Locker serializes operations on a per-key basis. Keys are session
// identifiers, so concurrent requests of one browsing session never
// interleave while different sessions stay independent.
type Locker interface {
	Lock(key string) Unlocker
	ContextLock(ctx context.Context, key string) (Unlocker, error)
}

type Unlocker interface {
	Unlock()
}

const pollInterval = 100 * time.Millisecond

type lock struct {
	mu     sync.Mutex
	ref    uint64
	locker *locker
	key    string
}

// Unlock implements Unlocker.
func (lck *lock) Unlock() {
	lck.locker.release(lck)
	lck.mu.Unlock()
}

type locker struct {
	mu sync.Mutex
	l  map[string]*lock
}

func (l *locker) getOrCreate(key string) *lock {
	l.mu.Lock()
	defer l.mu.Unlock()

	result, ok := l.l[key]
	if !ok {
		result = &lock{locker: l, key: key}
		l.l[key] = result
	}
	result.ref++
	return result
}

// ContextLock implements Locker.
func (l *locker) ContextLock(ctx context.Context, key string) (Unlocker, error) {
	keyLock := l.getOrCreate(key)
	if keyLock.mu.TryLock() {
		return keyLock, nil
	}

	for {
		select {
		case <-ctx.Done():
			l.release(keyLock)
			return nil, ctx.Err()
		case <-time.After(pollInterval):
			if keyLock.mu.TryLock() {
				return keyLock, nil
			}
		}
	}
}

// Lock implements Locker.
func (l *locker) Lock(key string) Unlocker {
	keyLock := l.getOrCreate(key)
	keyLock.mu.Lock()
	return keyLock
}

func (l *locker) release(lck *lock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lck.ref--
	if lck.ref == 0 {
		delete(l.l, lck.key)
	}
}

func NewLocker() Locker {
	return &locker{
		l: map[string]*lock{},
	}
}
