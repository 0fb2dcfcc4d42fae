package terrain

import "image/color"

const (
	displayBiomeMask = 0x0f
	displayRiverBit  = 0x10
)

var terrainPalette = buildTerrainPalette()

// Palette exposes the color table used by the viewer; index it with display
// values produced by BuildDisplay.
func Palette() []color.RGBA {
	return terrainPalette
}

// EncodeDisplayValue packs a biome index and the river flag into one byte.
func EncodeDisplayValue(b Biome, river bool) uint8 {
	v := uint8(b) & displayBiomeMask
	if river {
		v |= displayRiverBit
	}
	return v
}

// BuildDisplay fills buf with palette indices for the snapshot. buf must be
// size*size long.
func BuildDisplay(fs FieldSet, buf []uint8) {
	if len(buf) != len(fs.Biomes) {
		return
	}
	for i, b := range fs.Biomes {
		buf[i] = EncodeDisplayValue(Biome(b), fs.Rivers[i] != 0)
	}
}

func buildTerrainPalette() []color.RGBA {
	palette := make([]color.RGBA, 32)
	for i := range palette {
		biome := Biome(i & displayBiomeMask)
		river := (i & displayRiverBit) != 0
		palette[i] = toRGBA(paletteColorFor(biome, river))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func paletteColorFor(b Biome, river bool) color.NRGBA {
	if river && b != BiomeOcean {
		return color.NRGBA{R: 60, G: 120, B: 220, A: 255}
	}
	switch b {
	case BiomeOcean:
		return color.NRGBA{R: 25, G: 60, B: 120, A: 255}
	case BiomeBeach:
		return color.NRGBA{R: 215, G: 200, B: 150, A: 255}
	case BiomeDesert:
		return color.NRGBA{R: 210, G: 185, B: 110, A: 255}
	case BiomeSavanna:
		return color.NRGBA{R: 170, G: 170, B: 80, A: 255}
	case BiomeGrassland:
		return color.NRGBA{R: 110, G: 160, B: 70, A: 255}
	case BiomeShrubland:
		return color.NRGBA{R: 140, G: 150, B: 90, A: 255}
	case BiomeTemperateForest:
		return color.NRGBA{R: 55, G: 120, B: 60, A: 255}
	case BiomeBorealForest:
		return color.NRGBA{R: 45, G: 95, B: 75, A: 255}
	case BiomeRainforest:
		return color.NRGBA{R: 30, G: 105, B: 45, A: 255}
	case BiomeTundra:
		return color.NRGBA{R: 160, G: 160, B: 140, A: 255}
	case BiomeMountain:
		return color.NRGBA{R: 130, G: 125, B: 120, A: 255}
	case BiomeSnow:
		return color.NRGBA{R: 235, G: 240, B: 245, A: 255}
	default:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	}
}

// HeatColor maps a [0,1] scalar onto a cold-to-warm ramp; the overlay uses it
// for the temperature and moisture views.
func HeatColor(v float32, a uint8) color.RGBA {
	v = clamp01(v)
	r := uint8(255 * v)
	b := uint8(255 * (1 - v))
	g := uint8(80 * (1 - absDiff(v, 0.5)*2))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func absDiff(v, w float32) float32 {
	if v > w {
		return v - w
	}
	return w - v
}
