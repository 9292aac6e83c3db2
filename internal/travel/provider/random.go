package provider

import "math"

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// SeededRand is a linear congruential generator seeded from a string. The
// same key always produces the same sequence. It is not safe for
// concurrent use; each search owns its own instance.
type SeededRand struct {
	state uint64
}

func NewSeededRand(key string) *SeededRand {
	return &SeededRand{state: uint64(hashKey(key))}
}

// hashKey folds the key into a signed 32-bit rolling hash (h*31 + c) and
// returns its absolute value.
func hashKey(key string) int64 {
	var h int32
	for _, c := range key {
		h = h*31 + int32(c)
	}
	return int64(math.Abs(float64(h)))
}

// Float64 returns the next value in [0, 1).
func (s *SeededRand) Float64() float64 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.state) / lcgModulus
}

// Intn returns the next value in [0, n). It returns 0 for n <= 0 without
// consuming the sequence.
func (s *SeededRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Float64() * float64(n))
}
