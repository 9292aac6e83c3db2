package provider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRandDeterministic(t *testing.T) {
	a := NewSeededRand("IST-AYT-2026-02-10")
	b := NewSeededRand("IST-AYT-2026-02-10")

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSeededRandBounds(t *testing.T) {
	r := NewSeededRand("IST-LHR-2026-03-15")
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestSeededRandNearbyKeysDiverge(t *testing.T) {
	a := NewSeededRand("IST-ESB-2026-05-20")
	b := NewSeededRand("IST-ESB-2026-05-21")

	same := 0
	for i := 0; i < 20; i++ {
		if a.Intn(1000) == b.Intn(1000) {
			same++
		}
	}
	assert.Less(t, same, 5)
}

func TestSeededRandIntn(t *testing.T) {
	r := NewSeededRand("key")
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[r.Intn(3)]++
	}
	for _, c := range counts {
		assert.Greater(t, c, 700)
	}

	before := *r
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, before, *r)
}

func TestHashKey(t *testing.T) {
	assert.Equal(t, int64(0), hashKey(""))
	assert.Equal(t, int64('a'), hashKey("a"))
	assert.Equal(t, int64('a'*31+'b'), hashKey("ab"))

	// Overflow wraps to signed 32 bits before the absolute value is taken.
	for _, key := range []string{"IST-AYT-2026-02-10", "a very long key that overflows many times over"} {
		h := hashKey(key)
		assert.GreaterOrEqual(t, h, int64(0))
		assert.LessOrEqual(t, h, int64(math.MaxInt32)+1)
	}
}
