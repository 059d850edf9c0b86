//go:build unit

package sessionlock_test

import (
	"sync"
	"testing"

	"hotelcart/internal/pkg/sessionlock"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := sessionlock.New()

	const iterations = 200
	counter := 0

	var wg sync.WaitGroup
	for range [8]struct{}{} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				unlock := km.Lock("session-a")
				counter++
				unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 8*iterations, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := sessionlock.New()

	unlockA := km.Lock("session-a")

	// A held lock on one session must not block another session.
	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("session-b")
		unlockB()
		close(done)
	}()

	<-done
	unlockA()
}

func TestKeyedMutex_Reacquire(t *testing.T) {
	km := sessionlock.New()

	unlock := km.Lock("session-a")
	unlock()

	unlock = km.Lock("session-a")
	unlock()
}
