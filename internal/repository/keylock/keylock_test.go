package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyLockSerializesSameKey(t *testing.T) {
	locks := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock("k1")
			defer locks.Unlock("k1")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyLockDifferentKeysDoNotBlock(t *testing.T) {
	locks := New()

	locks.Lock("k1")
	defer locks.Unlock("k1")

	done := make(chan struct{})
	go func() {
		locks.Lock("k2")
		locks.Unlock("k2")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a different key blocked")
	}
}
