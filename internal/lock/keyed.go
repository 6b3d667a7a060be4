// Package lock provides per-entity mutual exclusion for the mutation
// layer.
//
// The UI can re-trigger an action while a prior deferred operation is
// still in flight; serializing each read-modify-write on the ids it
// touches prevents the lost-update race without one global lock.
package lock

import (
	"sort"
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// Keyed hands out one mutex per key, created on demand and dropped when
// no longer held.
type Keyed struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewKeyed returns an empty keyed lock set.
func NewKeyed() *Keyed {
	return &Keyed{entries: make(map[string]*entry)}
}

// Lock acquires the mutexes for every given key and returns the
// matching unlock function. Keys are deduplicated and acquired in
// sorted order, so two callers locking overlapping key sets cannot
// deadlock.
func (k *Keyed) Lock(keys ...string) (unlock func()) {
	uniq := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, key)
	}
	sort.Strings(uniq)

	held := make([]*entry, 0, len(uniq))
	for _, key := range uniq {
		k.mu.Lock()
		e, ok := k.entries[key]
		if !ok {
			e = &entry{}
			k.entries[key] = e
		}
		e.refs++
		k.mu.Unlock()

		e.mu.Lock()
		held = append(held, e)
	}

	names := uniq
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].mu.Unlock()

			k.mu.Lock()
			held[i].refs--
			if held[i].refs == 0 {
				delete(k.entries, names[i])
			}
			k.mu.Unlock()
		}
	}
}
