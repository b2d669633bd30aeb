package locking

import "sync"

// KeyedMutex serializes turns per conversation id inside one process. The
// persistent store has no compare-and-swap, so without this two concurrent
// turns on the same id interleave read-modify-write and one side's merge is
// silently lost. Instances behind a load balancer still race; this only
// closes the single-instance window.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*entry),
	}
}

func (k *KeyedMutex) Lock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Len reports how many keys currently hold live entries.
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

func (k *KeyedMutex) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if ok {
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
	}
	k.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}
