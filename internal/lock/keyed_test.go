package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesSameKey(t *testing.T) {
	k := NewKeyed()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("post-1")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestLockOverlappingKeySetsDoNotDeadlock(t *testing.T) {
	k := NewKeyed()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := k.Lock("a", "b")
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := k.Lock("b", "a")
			unlock()
		}()
	}
	wg.Wait()
}

func TestLockDeduplicatesAndSkipsEmptyKeys(t *testing.T) {
	k := NewKeyed()

	unlock := k.Lock("x", "x", "")
	unlock()

	// Entries are dropped once released.
	k.mu.Lock()
	assert.Empty(t, k.entries)
	k.mu.Unlock()
}
