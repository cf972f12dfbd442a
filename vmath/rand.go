package vmath

import "math"

// FastRand is a xorshift64 generator, not safe for concurrent use
// Game systems own one instance each so seeded runs replay identically
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Chance runs a Bernoulli trial with success probability p
func (r *FastRand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// HazardProbability converts a per-second event rate into the probability
// of at least one event within dt seconds
func HazardProbability(ratePerSec, dt float64) float64 {
	if ratePerSec <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-ratePerSec*dt)
}
