package noise

// Fixed odd constants XORed into the world seed so the base and warp fields
// stay decorrelated while remaining reproducible from a single seed.
const (
	seedSaltBase  = 0x9e3779b9
	seedSaltWarpX = 0x85ebca77
	seedSaltWarpY = 0xc2b2ae3d
)

// FBMParams holds the octave stack shape for fractal Brownian motion.
type FBMParams struct {
	Octaves    int
	Lacunarity float64
	Gain       float64
}

// FBM sums octaves of value noise. Amplitudes follow 0.5*gain^k and
// frequencies baseFreq*lacunarity^k; dividing by the amplitude sum keeps the
// result in [0, 1] for any octave count, including octaves=1.
func FBM(s *Sampler, x, y float64, p FBMParams, baseFreq float64) float64 {
	octaves := p.Octaves
	if octaves < 1 {
		octaves = 1
	}
	sum := 0.0
	total := 0.0
	amp := 0.5
	freq := baseFreq
	for k := 0; k < octaves; k++ {
		sum += s.Sample(x, y, freq) * amp
		total += amp
		amp *= p.Gain
		freq *= p.Lacunarity
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// Warped evaluates fBM through a domain warp: two auxiliary fBM fields
// displace the sample coordinates before the base field is read.
type Warped struct {
	base  *Sampler
	warpX *Sampler
	warpY *Sampler
}

// NewWarped derives three independently seeded samplers from one world seed.
func NewWarped(seed uint32) *Warped {
	return &Warped{
		base:  NewSampler(seed ^ seedSaltBase),
		warpX: NewSampler(seed ^ seedSaltWarpX),
		warpY: NewSampler(seed ^ seedSaltWarpY),
	}
}

// Sample returns warped fBM in [0, 1]. The displacement field runs at half
// the base frequency so the swirl operates on larger structures than the
// detail it displaces.
func (w *Warped) Sample(x, y float64, p FBMParams, baseFreq, warp float64) float64 {
	if warp != 0 {
		wf := baseFreq * 0.5
		dx := (FBM(w.warpX, x, y, p, wf) - 0.5) * warp
		dy := (FBM(w.warpY, x, y, p, wf) - 0.5) * warp
		x += dx
		y += dy
	}
	return FBM(w.base, x, y, p, baseFreq)
}
