package middleware

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweptEntryIsNotCounted(t *testing.T) {
	store := &MemoryStore{}
	now := time.Now()

	store.Hit("k", time.Second, now)
	v, ok := store.entries.Load("k")
	require.True(t, ok)
	stale := v.(*rateLimitEntry)

	// A Hit that loaded the entry just before Sweep removed it must retry
	later := now.Add(time.Minute)
	store.Sweep(later)
	_, _, counted := stale.hit(time.Second, later)
	assert.False(t, counted)

	count, _ := store.Hit("k", time.Second, later)
	assert.Equal(t, 1, count)

	v, ok = store.entries.Load("k")
	require.True(t, ok)
	assert.NotSame(t, stale, v.(*rateLimitEntry))
}

func TestMemoryStoreConcurrentHitsWithSweep(t *testing.T) {
	store := &MemoryStore{}
	now := time.Now()
	const hits = 200

	var wg sync.WaitGroup
	for i := 0; i < hits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Hit("k", time.Hour, now)
		}()
	}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Sweep(now)
		}()
	}
	wg.Wait()

	// Nothing expired, so every hit landed on the same window
	count, _ := store.Hit("k", time.Hour, now)
	assert.Equal(t, hits+1, count)
}
