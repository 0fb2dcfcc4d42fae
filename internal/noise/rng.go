package noise

// rng is a 32-bit xorshift generator. It only exists to shuffle permutation
// tables deterministically; simulation code never draws from it at sample time.
type rng struct {
	state uint32
}

func newRNG(seed uint32) *rng {
	if seed == 0 {
		seed = 1
	}
	return &rng{state: seed}
}

// next advances the generator by one step.
func (r *rng) next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1).
func (r *rng) Float64() float64 {
	return float64(r.next()) / 4294967296.0
}

// permutation builds a shuffled 256-entry index table, duplicated into 512
// entries so lattice lookups can wrap without a branch.
func permutation(seed uint32) [512]uint8 {
	var p [512]uint8
	for i := 0; i < 256; i++ {
		p[i] = uint8(i)
	}
	r := newRNG(seed)
	for i := 255; i > 0; i-- {
		j := int(r.Float64() * float64(i+1))
		p[i], p[j] = p[j], p[i]
	}
	for i := 0; i < 256; i++ {
		p[256+i] = p[i]
	}
	return p
}
