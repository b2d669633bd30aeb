package locking

import (
	"sync"
	"testing"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("conv-1")
			counter++
			km.Unlock("conv-1")
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := NewKeyedMutex()

	km.Lock("conv-a")
	done := make(chan struct{})
	go func() {
		// Must not block on the other key's lock.
		km.Lock("conv-b")
		km.Unlock("conv-b")
		close(done)
	}()
	<-done
	km.Unlock("conv-a")
}

func TestKeyedMutexReleasesEntries(t *testing.T) {
	km := NewKeyedMutex()

	km.Lock("conv-1")
	km.Unlock("conv-1")
	km.Lock("conv-2")
	km.Unlock("conv-2")

	if n := km.Len(); n != 0 {
		t.Errorf("idle mutex holds %d entries, want 0", n)
	}
}
