// Package randutil centralises how seeds become *rand.Rand instances so
// that simulations are reproducible from a single int64.
package randutil

import rand "math/rand/v2"

// New returns a *rand.Rand seeded deterministically from seed. rand/v2's
// PCG wants two 64-bit seeds; both are derived from the input via a
// splitmix64 finalizer so nearby seeds produce unrelated streams.
func New(seed int64) *rand.Rand {
	lo := splitmix(uint64(seed))
	hi := splitmix(lo)
	return rand.New(rand.NewPCG(lo, hi))
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
