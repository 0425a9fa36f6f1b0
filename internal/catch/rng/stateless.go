// Package rng provides a stateless pseudo-random generator for visual variation.
//
// Every value is a pure function of (seed, series). There is no generator state to
// advance, so the same object renders the same way in live play, in replays and for
// spectators, regardless of how many other objects were drawn before it.
package rng

// salt keeps (0, 0) from mixing to 0.
const salt = 0x12345678

// mix is the 64-bit finalizer from MurmurHash3.
func mix(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// NextULong returns a 64-bit pseudo-random value for the given seed and series.
// Different series drawn from the same seed are uncorrelated.
func NextULong(seed, series int) uint64 {
	combined := uint64(uint32(series))<<32 | uint64(uint32(seed))
	return mix(combined ^ salt)
}

// NextInt returns a value in [0, max). Returns 0 when max <= 0.
func NextInt(max, seed, series int) int {
	if max <= 0 {
		return 0
	}
	return int(NextULong(seed, series) % uint64(max))
}

// NextSingle returns a value in [0, 1) with 24 bits of precision.
func NextSingle(seed, series int) float32 {
	return float32(NextULong(seed, series)&(1<<24-1)) / (1 << 24)
}

// NextSingleRange returns a value in [min, max).
func NextSingleRange(min, max float32, seed, series int) float32 {
	return min + NextSingle(seed, series)*(max-min)
}
