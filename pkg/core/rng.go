package core

import (
	"math"
	"math/bits"
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext/prng"
)

// RNG wraps an MT19937 generator so seeded sequences are reproducible across
// platforms and match other MT19937 implementations that key the generator
// the same way.
type RNG struct {
	mt *prng.MT19937
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	mt := prng.NewMT19937()
	mt.SeedFromKeys(SeedKeys(seed))
	return &RNG{mt: mt}
}

// SeedKeys converts a seed into the key array used to initialise MT19937:
// the absolute value split into little-endian 32-bit words, or a single zero
// word when the seed is zero.
func SeedKeys(seed int64) []uint32 {
	mag := uint64(seed)
	if seed < 0 {
		mag = uint64(-seed) // -MinInt64 wraps to 1<<63 after conversion
	}
	if mag == 0 {
		return []uint32{0}
	}
	var keys []uint32
	for mag != 0 {
		keys = append(keys, uint32(mag))
		mag >>= 32
	}
	return keys
}

// Uint32 returns the next raw 32-bit output.
func (r *RNG) Uint32() uint32 { return r.mt.Uint32() }

// Bits returns the top k bits (0 < k <= 32) of the next output.
func (r *RNG) Bits(k int) uint32 {
	if k <= 0 {
		return 0
	}
	if k > 32 {
		k = 32
	}
	return r.mt.Uint32() >> (32 - k)
}

// IntN returns a uniform integer in [0, n) by drawing bit-length-sized
// values and rejecting those >= n. It returns 0 when n <= 0 and panics when
// n does not fit in 32 bits.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	if uint64(n) > math.MaxUint32 {
		panic("core: IntN bound exceeds 32 bits")
	}
	k := bits.Len32(uint32(n))
	v := r.Bits(k)
	for v >= uint32(n) {
		v = r.Bits(k)
	}
	return int(v)
}

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.IntN(int(n)))
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.Bits(1) == 1
}

// FillBands fills buf with values in [0, n) drawn in slice order.
func (r *RNG) FillBands(buf []uint8, n uint8) {
	for i := range buf {
		buf[i] = r.Uint8n(n)
	}
}

// Source exposes a math/rand/v2 view over the same generator. Draws made
// through it advance the shared MT19937 state.
func (r *RNG) Source() *rand.Rand { return rand.New(r.mt) }
