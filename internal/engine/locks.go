package engine

import "sync"

// keyedMutex serializes work per entity key so two writes for the same
// learner (or card) never interleave, while writes for different learners
// proceed in parallel. Mutexes are created on first use and kept for the
// process lifetime; the key space is bounded by the entity population.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
