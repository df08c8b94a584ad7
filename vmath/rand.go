package vmath

// FastRand is a xorshift64 generator for placement jitter and hashing seeds
// Not cryptographic, deterministic for a given seed
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

// Float returns a float64 in [0, 1)
func (r *FastRand) Float() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// --- Stable hashing ---

// Hash32 mixes 32-bit input into a well-distributed 32-bit output
// Murmur-finalizer style avalanching; stable across versions, no rand
func Hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// Hash3 returns a stable hash for 3D integer coordinates + seed
// Large odd constants decorrelate the axes
func Hash3(seed uint32, x, y, z int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	h ^= uint32(z) * 0xc2b2ae35
	return Hash32(h)
}

// ValueNoise3 samples hash-based value noise at integer lattice point (x,y,z),
// trilinearly interpolated from the fractional parts. Output in [0, 1).
func ValueNoise3(seed uint32, fx, fy, fz float64) float64 {
	x0, y0, z0 := floorI32(fx), floorI32(fy), floorI32(fz)
	tx, ty, tz := fx-float64(x0), fy-float64(y0), fz-float64(z0)

	// Smoothstep fade
	tx = tx * tx * (3 - 2*tx)
	ty = ty * ty * (3 - 2*ty)
	tz = tz * tz * (3 - 2*tz)

	lattice := func(x, y, z int32) float64 {
		return float64(Hash3(seed, x, y, z)) / float64(1<<32)
	}

	c000 := lattice(x0, y0, z0)
	c100 := lattice(x0+1, y0, z0)
	c010 := lattice(x0, y0+1, z0)
	c110 := lattice(x0+1, y0+1, z0)
	c001 := lattice(x0, y0, z0+1)
	c101 := lattice(x0+1, y0, z0+1)
	c011 := lattice(x0, y0+1, z0+1)
	c111 := lattice(x0+1, y0+1, z0+1)

	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }

	x00 := lerp(c000, c100, tx)
	x10 := lerp(c010, c110, tx)
	x01 := lerp(c001, c101, tx)
	x11 := lerp(c011, c111, tx)

	y0v := lerp(x00, x10, ty)
	y1v := lerp(x01, x11, ty)

	return lerp(y0v, y1v, tz)
}

func floorI32(f float64) int32 {
	i := int32(f)
	if f < float64(i) {
		i--
	}
	return i
}
