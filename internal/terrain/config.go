package terrain

import (
	"fmt"
	"strconv"
)

// NoiseParams shapes the fractal synthesizer.
type NoiseParams struct {
	Octaves    int     `yaml:"octaves"`
	Lacunarity float64 `yaml:"lacunarity"`
	Gain       float64 `yaml:"gain"`
	Warp       float64 `yaml:"warp"`
	BaseFreq   float64 `yaml:"base_freq"`
}

// ClimateParams tunes the derived temperature and moisture layers.
type ClimateParams struct {
	SeaLevel      float64 `yaml:"sea_level"`
	TempLapse     float64 `yaml:"temp_lapse"`
	MoistureShift float64 `yaml:"moisture_shift"`
}

// Config holds the full parameter set for one terrain generation. A request
// supplies a complete replacement; nothing is merged.
type Config struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`

	Noise   NoiseParams   `yaml:"noise"`
	Climate ClimateParams `yaml:"climate"`

	RiverThreshold float64 `yaml:"river_threshold"`
	Island         bool    `yaml:"island"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size: 256,
		Seed: 1337,
		Noise: NoiseParams{
			Octaves:    5,
			Lacunarity: 2.0,
			Gain:       0.5,
			Warp:       18.0,
			BaseFreq:   1.0 / 64.0,
		},
		Climate: ClimateParams{
			SeaLevel:      0.42,
			TempLapse:     0.9,
			MoistureShift: 0.1,
		},
		RiverThreshold: 0.015,
		Island:         true,
	}
}

// Validate reports the first malformed parameter. Soft ranges (gain outside
// (0,1), huge warp) are the caller's business; only values that would break
// the numeric pipeline are rejected.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("terrain: size must be positive, got %d", c.Size)
	}
	if c.Noise.Octaves < 1 {
		return fmt.Errorf("terrain: octaves must be >= 1, got %d", c.Noise.Octaves)
	}
	if c.Noise.Lacunarity <= 0 {
		return fmt.Errorf("terrain: lacunarity must be positive, got %g", c.Noise.Lacunarity)
	}
	if c.Noise.BaseFreq <= 0 {
		return fmt.Errorf("terrain: base frequency must be positive, got %g", c.Noise.BaseFreq)
	}
	if c.RiverThreshold < 0 {
		return fmt.Errorf("terrain: river threshold must be >= 0, got %g", c.RiverThreshold)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Noise.Octaves = parsed
		}
	}
	if v, ok := cfg["lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Lacunarity = parsed
		}
	}
	if v, ok := cfg["gain"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Gain = parsed
		}
	}
	if v, ok := cfg["warp"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Noise.Warp = parsed
		}
	}
	if v, ok := cfg["base_freq"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.BaseFreq = parsed
		}
	}
	if v, ok := cfg["sea_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Climate.SeaLevel = parsed
		}
	}
	if v, ok := cfg["temp_lapse"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Climate.TempLapse = parsed
		}
	}
	if v, ok := cfg["moisture_shift"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Climate.MoistureShift = parsed
		}
	}
	if v, ok := cfg["river_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.RiverThreshold = parsed
		}
	}
	if v, ok := cfg["island"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Island = parsed
		}
	}
	return c
}
