package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("a missing default config file is not an error: %v", err)
	}
	def := Default()
	if cfg.Viewer.Scale != def.Viewer.Scale || cfg.Terrain.Size != def.Terrain.Size {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("an explicitly named missing file must fail")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrasim.yaml")

	cfg := Default()
	cfg.Viewer.Scale = 5
	cfg.Terrain.Size = 128
	cfg.Terrain.Seed = 999
	cfg.Terrain.Noise.Octaves = 7
	cfg.Terrain.RiverThreshold = 0.05
	cfg.Logging.Level = "debug"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Viewer.Scale != 5 || loaded.Terrain.Size != 128 || loaded.Terrain.Seed != 999 {
		t.Fatalf("round trip lost values: %+v", loaded)
	}
	if loaded.Terrain.Noise.Octaves != 7 {
		t.Fatalf("nested noise params lost: %+v", loaded.Terrain.Noise)
	}
	if loaded.Logging.Level != "debug" {
		t.Fatalf("logging section lost: %+v", loaded.Logging)
	}
}

func TestFileValuesOverrideDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("terrain:\n  size: 64\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terrain.Size != 64 {
		t.Fatalf("file value must win, got %d", cfg.Terrain.Size)
	}
	if cfg.Viewer.Scale != Default().Viewer.Scale {
		t.Fatalf("untouched sections keep defaults, got %d", cfg.Viewer.Scale)
	}
}
