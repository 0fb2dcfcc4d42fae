package terrain

import (
	"fmt"
	"math"

	"github.com/agnivade/levenshtein"
)

// BrushKind selects the stamp operator.
type BrushKind uint8

const (
	BrushRaise BrushKind = iota
	BrushLower
	BrushSmooth
	BrushRain
)

var brushKindNames = [...]string{"raise", "lower", "smooth", "rain"}

// String returns the lowercase brush name.
func (k BrushKind) String() string {
	if int(k) < len(brushKindNames) {
		return brushKindNames[k]
	}
	return "unknown"
}

// ParseBrushKind resolves a brush name. Near misses get a suggestion so CLI
// typos fail with something actionable.
func ParseBrushKind(s string) (BrushKind, error) {
	for i, name := range brushKindNames {
		if s == name {
			return BrushKind(i), nil
		}
	}
	best := -1
	bestDist := 3 // suggest only within distance 2
	for i, name := range brushKindNames {
		if d := levenshtein.ComputeDistance(s, name); d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best >= 0 {
		return 0, fmt.Errorf("terrain: unknown brush kind %q (did you mean %q?)", s, brushKindNames[best])
	}
	return 0, fmt.Errorf("terrain: unknown brush kind %q", s)
}

// Brush describes one local stamp. It is supplied per edit and not persisted.
type Brush struct {
	Kind     BrushKind
	Radius   float64
	Strength float64
}

// Brush padding: one pixel for point stamps, two for smooth so the rectangle
// covers the blur kernel support.
const (
	brushPad  = 1
	smoothPad = 2
	// smoothKernelRadius is the box blur half-width; the sliding window is
	// 2*smoothKernelRadius+1 wide.
	smoothKernelRadius = 1
)

// ApplyBrush mutates height (raise/lower/smooth) or moisture (rain) in place
// around (cx, cy) and returns the affected rectangle, which is the
// authoritative scope for any downstream partial recompute. Coordinates
// outside the grid are clamped; a non-positive radius is a caller error.
func ApplyBrush(f *Fields, cx, cy int, b Brush) (Rect, error) {
	if f.Size <= 0 {
		return Rect{X1: -1, Y1: -1}, nil
	}
	if b.Radius <= 0 {
		return Rect{}, fmt.Errorf("terrain: brush radius must be positive, got %g", b.Radius)
	}
	cx = f.ClampCoord(cx)
	cy = f.ClampCoord(cy)

	pad := brushPad
	if b.Kind == BrushSmooth {
		pad = smoothPad
	}
	r := int(math.Ceil(b.Radius))
	dirty := Rect{
		X0: cx - r - pad,
		Y0: cy - r - pad,
		X1: cx + r + pad,
		Y1: cy + r + pad,
	}.Clamp(f.Size)

	switch b.Kind {
	case BrushRaise:
		stamp(f.Height, f, cx, cy, b.Radius, b.Strength)
	case BrushLower:
		stamp(f.Height, f, cx, cy, b.Radius, -b.Strength)
	case BrushSmooth:
		smooth(f, cx, cy, b.Radius, b.Strength)
	case BrushRain:
		stamp(f.Moisture, f, cx, cy, b.Radius, b.Strength)
	default:
		return Rect{}, fmt.Errorf("terrain: unknown brush kind %d", b.Kind)
	}
	return dirty, nil
}

// falloff is 1 at the stroke center and 0 at the radius edge.
func falloff(d, radius float64) float64 {
	return 0.5 * (1 + math.Cos(math.Pi*d/radius))
}

// stamp adds strength*falloff(d) to the layer inside the stroke disk, then
// clamps the touched cells to [0, 1].
func stamp(layer []float32, f *Fields, cx, cy int, radius, strength float64) {
	r := int(math.Ceil(radius))
	for y := cy - r; y <= cy+r; y++ {
		if y < 0 || y >= f.Size {
			continue
		}
		for x := cx - r; x <= cx+r; x++ {
			if x < 0 || x >= f.Size {
				continue
			}
			d := math.Hypot(float64(x-cx), float64(y-cy))
			if d > radius {
				continue
			}
			idx := f.Index(x, y)
			layer[idx] = clamp01(layer[idx] + float32(strength*falloff(d, radius)))
		}
	}
}

// smooth box-blurs the stroke neighborhood (horizontal then vertical pass,
// edge-clamped) and blends the result into the original height by strength.
func smooth(f *Fields, cx, cy int, radius, strength float64) {
	alpha := strength
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	if alpha == 0 {
		return
	}

	size := f.Size
	r := int(math.Ceil(radius))
	region := Rect{
		X0: cx - r - smoothKernelRadius,
		Y0: cy - r - smoothKernelRadius,
		X1: cx + r + smoothKernelRadius,
		Y1: cy + r + smoothKernelRadius,
	}.Clamp(size)

	w := region.X1 - region.X0 + 1
	h := region.Y1 - region.Y0 + 1
	horiz := make([]float32, w*h)
	blurred := make([]float32, w*h)
	window := float32(2*smoothKernelRadius + 1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for k := -smoothKernelRadius; k <= smoothKernelRadius; k++ {
				sx := f.ClampCoord(region.X0 + x + k)
				sum += f.Height[f.Index(sx, region.Y0+y)]
			}
			horiz[y*w+x] = sum / window
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for k := -smoothKernelRadius; k <= smoothKernelRadius; k++ {
				sy := y + k
				if sy < 0 {
					sy = 0
				}
				if sy > h-1 {
					sy = h - 1
				}
				sum += horiz[sy*w+x]
			}
			blurred[y*w+x] = sum / window
		}
	}

	a := float32(alpha)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx, gy := region.X0+x, region.Y0+y
			if math.Hypot(float64(gx-cx), float64(gy-cy)) > radius {
				continue
			}
			idx := f.Index(gx, gy)
			f.Height[idx] = clamp01(f.Height[idx]*(1-a) + blurred[y*w+x]*a)
		}
	}
}
