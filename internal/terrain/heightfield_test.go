package terrain

import (
	"math"
	"slices"
	"testing"
)

func TestGenerateHeightNormalizesEndpoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 4
	cfg.Seed = 1
	cfg.Noise.Octaves = 1
	cfg.Island = false

	f := NewFields(cfg.Size)
	GenerateHeight(f, cfg)

	min, max := f.Height[0], f.Height[0]
	for _, h := range f.Height {
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	if min == max {
		t.Skip("all raw samples equal; identity scale applies")
	}
	if min != 0 {
		t.Fatalf("minimum cell must map to exactly 0, got %v", min)
	}
	if max != 1 {
		t.Fatalf("maximum cell must map to exactly 1, got %v", max)
	}
}

func TestGenerateHeightRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 48
	cfg.Seed = 991
	cfg.Noise.Octaves = 6
	cfg.Noise.Lacunarity = 2.3
	cfg.Noise.Gain = 0.6
	cfg.Noise.Warp = 30

	f := NewFields(cfg.Size)
	GenerateHeight(f, cfg)

	for i, h := range f.Height {
		if math.IsNaN(float64(h)) {
			t.Fatalf("NaN at %d", i)
		}
		if h < 0 || h > 1 {
			t.Fatalf("height out of range at %d: %v", i, h)
		}
	}
}

func TestGenerateHeightDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 32
	cfg.Seed = 555

	a := NewFields(cfg.Size)
	b := NewFields(cfg.Size)
	GenerateHeight(a, cfg)
	GenerateHeight(b, cfg)

	if !slices.Equal(a.Height, b.Height) {
		t.Fatal("same seed and params must reproduce the height field exactly")
	}

	cfg.Seed = 556
	GenerateHeight(b, cfg)
	if slices.Equal(a.Height, b.Height) {
		t.Fatal("different seeds should produce different height fields")
	}
}

func TestIslandMaskLowersCorners(t *testing.T) {
	f := NewFields(33)
	for i := range f.Height {
		f.Height[i] = 1
	}

	applyIslandMask(f)

	center := f.Height[f.Index(16, 16)]
	if center != 1 {
		t.Fatalf("center lies well inside the mask knee and must stay at 1, got %v", center)
	}
	corner := f.Height[f.Index(0, 0)]
	if corner >= center {
		t.Fatalf("corner elevation should be suppressed, corner %v center %v", corner, center)
	}
	if corner < 0 {
		t.Fatalf("mask must not push elevation negative, got %v", corner)
	}
}

func TestGenerateHeightZeroSizeNoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 0

	f := NewFields(0)
	GenerateHeight(f, cfg) // must not panic or allocate
	if len(f.Height) != 0 {
		t.Fatalf("zero-size generation should leave the field empty, len=%d", len(f.Height))
	}
}
