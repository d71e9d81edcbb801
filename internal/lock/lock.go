package lock

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrLocked = errors.New("lock is held by another run")

// Locker grants exclusive, expiring ownership of a key. The returned unlock
// releases the key only if it is still owned by the caller.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (unlock func(), err error)
}

// Memory is a process-local Locker for single-instance deployments.
type Memory struct {
	mu    sync.Mutex
	held  map[string]memoryEntry
	now   func() time.Time
	nonce uint64
}

type memoryEntry struct {
	nonce   uint64
	expires time.Time
}

func NewMemory() *Memory {
	return &Memory{
		held: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (m *Memory) Acquire(_ context.Context, key string, ttl time.Duration) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if entry, ok := m.held[key]; ok && now.Before(entry.expires) {
		return nil, ErrLocked
	}
	m.nonce++
	nonce := m.nonce
	m.held[key] = memoryEntry{nonce: nonce, expires: now.Add(ttl)}

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if entry, ok := m.held[key]; ok && entry.nonce == nonce {
			delete(m.held, key)
		}
	}, nil
}
