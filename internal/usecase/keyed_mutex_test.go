package usecase

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := newKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("1:2025-03-10")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyedMutexPrunesReleasedKeys(t *testing.T) {
	km := newKeyedMutex()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			unlock := km.Lock(fmt.Sprintf("%d:2025-03-10", n))
			unlock()
		}(i)
	}
	wg.Wait()

	// Entri yang tidak lagi ditunggu dibuang, map tidak tumbuh seumur proses.
	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := newKeyedMutex()

	unlockA := km.Lock("1:2025-03-10")
	// Key lain tidak boleh ikut terkunci.
	unlockB := km.Lock("2:2025-03-10")
	unlockB()
	unlockA()

	// Setelah dilepas, key yang sama bisa dikunci lagi.
	unlock := km.Lock("1:2025-03-10")
	unlock()
}
