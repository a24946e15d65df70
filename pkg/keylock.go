package pkg

import "sync"

// KeyLock serializes operations per string key (order id, entity id).
//
// It keeps mutating operations and conclusion mutually exclusive for the same
// work order, and makes the referential-integrity check-then-delete sequence
// atomic within this process. Locks are never evicted; key cardinality here is
// bounded by the entity population of a single workshop.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyLock() *KeyLock {
	return &KeyLock{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyLock) Lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()
	l.Lock()
}

func (k *KeyLock) Unlock(key string) {
	k.mu.Lock()
	l := k.locks[key]
	k.mu.Unlock()
	if l != nil {
		l.Unlock()
	}
}
