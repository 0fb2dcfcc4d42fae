package terrain

// Biome enumerates the categorical cell classifications.
type Biome uint8

const (
	BiomeOcean Biome = iota
	BiomeBeach
	BiomeDesert
	BiomeSavanna
	BiomeGrassland
	BiomeShrubland
	BiomeTemperateForest
	BiomeBorealForest
	BiomeRainforest
	BiomeTundra
	BiomeMountain
	BiomeSnow
)

var biomeNames = [...]string{
	"ocean", "beach", "desert", "savanna", "grassland", "shrubland",
	"temperate-forest", "boreal-forest", "rainforest", "tundra",
	"mountain", "snow",
}

// String returns the lowercase biome name.
func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return "unknown"
}

// BiomeCount is the number of distinct biome indices.
const BiomeCount = len(biomeNames)

// DeriveClimate recomputes temperature, moisture, and biomes for the whole
// grid.
func DeriveClimate(f *Fields, cfg Config) {
	DeriveClimateRect(f, cfg, FullRect(f.Size), false)
}

// DeriveClimateRect recomputes the climate layers inside the given rectangle
// only, reading heights from the full grid so slopes at the rectangle edge
// stay correct. With keepMoisture set the moisture layer is left as-is and
// only temperature and biomes rederive; the orchestrator uses this so rain
// brush edits are not immediately overwritten.
func DeriveClimateRect(f *Fields, cfg Config, r Rect, keepMoisture bool) {
	size := f.Size
	if size <= 0 {
		return
	}
	r = r.Clamp(size)
	if r.Empty() {
		return
	}

	lapse := float32(cfg.Climate.TempLapse)
	shift := float32(cfg.Climate.MoistureShift)

	for y := r.Y0; y <= r.Y1; y++ {
		pole := poleFactor(y, size)
		for x := r.X0; x <= r.X1; x++ {
			idx := f.Index(x, y)
			h := f.Height[idx]

			f.Temp[idx] = clamp01(1 - lapse*h - 0.6*pole)

			if !keepMoisture {
				slope := eastwardSlope(f, x, y)
				m := 1 - h + shift
				if slope > 0 {
					m += 0.15 * slope
				} else {
					m -= 0.10 * -slope
				}
				f.Moisture[idx] = clamp01(m)
			}

			f.Biomes[idx] = uint8(classify(h, f.Temp[idx], f.Moisture[idx], cfg))
		}
	}
}

// poleFactor is 0 at the equator row and 1 at both poles.
func poleFactor(y, size int) float32 {
	if size <= 1 {
		return 0
	}
	v := float32(y)/float32(size-1) - 0.5
	if v < 0 {
		v = -v
	}
	return v * 2
}

// eastwardSlope is the centered height difference between the east and west
// neighbors. Edge cells substitute their own height for the missing side,
// which approximates a one-sided difference.
func eastwardSlope(f *Fields, x, y int) float32 {
	idx := f.Index(x, y)
	east := f.Height[idx]
	if x+1 < f.Size {
		east = f.Height[idx+1]
	}
	west := f.Height[idx]
	if x-1 >= 0 {
		west = f.Height[idx-1]
	}
	return (east - west) / 2
}

// classify walks an ordered decision list; the bands overlap, so order is
// what makes the result well defined (first match wins).
func classify(h, t, m float32, cfg Config) Biome {
	sea := float32(cfg.Climate.SeaLevel)
	switch {
	case h < sea:
		return BiomeOcean
	case h < sea+0.02:
		return BiomeBeach
	case h > 0.88 && t < 0.45:
		return BiomeSnow
	case h > 0.84:
		return BiomeMountain
	}

	switch {
	case t < 0.33: // cold
		if m < 0.4 {
			return BiomeTundra
		}
		return BiomeBorealForest
	case t < 0.66: // temperate
		switch {
		case m < 0.33:
			return BiomeShrubland
		case m < 0.66:
			return BiomeGrassland
		default:
			return BiomeTemperateForest
		}
	default: // warm
		switch {
		case m < 0.33:
			return BiomeDesert
		case m < 0.66:
			return BiomeSavanna
		default:
			return BiomeRainforest
		}
	}
}
