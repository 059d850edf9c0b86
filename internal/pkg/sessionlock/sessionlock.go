// Package sessionlock serializes cart mutations per session.
//
// The session store has no transactional semantics: every cart command is a
// load-mutate-save cycle over the whole serialized cart, so two concurrent
// requests for the same session would otherwise race and the last save would
// silently drop the other request's update. Commands take the session's lock
// for the duration of the cycle instead.
package sessionlock

import "sync"

type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*entry),
	}
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
