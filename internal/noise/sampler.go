// Package noise provides seeded 2D value noise and fractal synthesis for the
// terrain pipeline. Everything here is deterministic: the same seed always
// reproduces the same field, bit for bit.
package noise

import "math"

// Sampler evaluates continuous 2D value noise over an integer lattice hashed
// through a seeded permutation table.
type Sampler struct {
	perm [512]uint8
}

// NewSampler constructs a sampler whose lattice hash is derived from seed.
func NewSampler(seed uint32) *Sampler {
	return &Sampler{perm: permutation(seed)}
}

// Sample returns noise in [0, 1] at (x, y) scaled by frequency. Values vary
// smoothly; the quintic fade keeps second derivatives continuous across cell
// boundaries so no lattice seams show up in the output.
func (s *Sampler) Sample(x, y, frequency float64) float64 {
	fx := x * frequency
	fy := y * frequency
	x0 := math.Floor(fx)
	y0 := math.Floor(fy)
	xi := int(x0)
	yi := int(y0)

	tx := fade(fx - x0)
	ty := fade(fy - y0)

	v00 := s.lattice(xi, yi)
	v10 := s.lattice(xi+1, yi)
	v01 := s.lattice(xi, yi+1)
	v11 := s.lattice(xi+1, yi+1)

	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}

// lattice hashes an integer lattice point into [0, 1).
func (s *Sampler) lattice(x, y int) float64 {
	h := s.perm[int(s.perm[x&255])+(y&255)]
	return float64(h) / 256.0
}

// fade is the quintic curve t^3(t(6t-15)+10).
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}
