package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func cloneSlice(v []string) []string { return append([]string(nil), v...) }

func TestCacheGetSet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)}
	c := New(cloneSlice)
	c.now = clock.Now

	c.Set("istanbul|tr", []string{"Istanbul"}, time.Minute)

	got, ok := c.Get("istanbul|tr")
	require.True(t, ok)
	assert.Equal(t, []string{"Istanbul"}, got)

	clock.Advance(2 * time.Minute)
	_, ok = c.Get("istanbul|tr")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCacheClonesValues(t *testing.T) {
	c := New(cloneSlice)
	in := []string{"a"}
	c.Set("k", in, time.Minute)
	in[0] = "mutated"

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "a", got[0])

	got[0] = "mutated again"
	again, _ := c.Get("k")
	assert.Equal(t, "a", again[0])
}

func TestCacheSetPurgesExpired(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := New[int](nil)
	c.now = clock.Now

	c.Set("old", 1, time.Second)
	clock.Advance(time.Minute)
	c.Set("new", 2, time.Second)

	assert.Equal(t, 1, c.Len())
	v, ok := c.Get("new")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int](nil)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set("k", i, time.Minute)
			_, _ = c.Get("k")
		}(i)
	}
	wg.Wait()

	_, ok := c.Get("k")
	assert.True(t, ok)
}
