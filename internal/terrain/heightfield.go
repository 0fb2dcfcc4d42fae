package terrain

import (
	"math"

	"terrasim/internal/noise"
)

// GenerateHeight fills the height layer with warped fBM and normalizes it to
// [0, 1]. With Island set, a radial mask biases elevation toward zero near
// the corners after normalization so the range stays intact.
func GenerateHeight(f *Fields, cfg Config) {
	size := f.Size
	if size <= 0 {
		return
	}

	w := noise.NewWarped(uint32(cfg.Seed))
	p := noise.FBMParams{
		Octaves:    cfg.Noise.Octaves,
		Lacunarity: cfg.Noise.Lacunarity,
		Gain:       cfg.Noise.Gain,
	}

	min := float32(math.Inf(1))
	max := float32(math.Inf(-1))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h := float32(w.Sample(float64(x), float64(y), p, cfg.Noise.BaseFreq, cfg.Noise.Warp))
			f.Height[f.Index(x, y)] = h
			if h < min {
				min = h
			}
			if h > max {
				max = h
			}
		}
	}

	// Identity scale when all samples are equal, avoiding a divide by zero.
	// Dividing by the span directly maps the extremes to exactly 0 and 1.
	if max > min {
		span := max - min
		for i, v := range f.Height {
			f.Height[i] = (v - min) / span
		}
	}

	if cfg.Island {
		applyIslandMask(f)
	}
}

// applyIslandMask multiplies elevation by 1-smoothstep(0.7, 1, r) where r is
// the distance from the grid center normalized by the half-diagonal.
func applyIslandMask(f *Fields) {
	size := f.Size
	cx := float64(size-1) / 2
	cy := float64(size-1) / 2
	halfDiag := math.Sqrt(2) * float64(size) / 2
	if halfDiag == 0 {
		return
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r := math.Hypot(float64(x)-cx, float64(y)-cy) / halfDiag
			idx := f.Index(x, y)
			f.Height[idx] *= float32(1 - smoothstep(0.7, 1.0, r))
		}
	}
}

func smoothstep(edge0, edge1, v float64) float64 {
	t := (v - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
