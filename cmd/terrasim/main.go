//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"terrasim/internal/app"
	"terrasim/internal/config"
	"terrasim/internal/engine"
	"terrasim/internal/logger"
	"terrasim/internal/terrain"
)

func main() {
	configPath := flag.String("config", "", "path to terrasim.yaml")
	size := flag.Int("size", 0, "override grid side length")
	seed := flag.Int64("seed", 0, "override world seed (0 keeps the configured one)")
	scale := flag.Int("scale", 0, "override pixel scale multiplier")
	brushName := flag.String("brush", "raise", "initial brush kind")
	logLevel := flag.String("log-level", "", "override log level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *size > 0 {
		cfg.Terrain.Size = *size
	}
	if *seed != 0 {
		cfg.Terrain.Seed = *seed
	}
	if *scale > 0 {
		cfg.Viewer.Scale = *scale
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	kind, err := terrain.ParseBrushKind(*brushName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer log.Sync()

	eng := engine.New(engine.WithLogger(log))
	fields, err := eng.Initialize(cfg.Terrain.Seed, cfg.Terrain)
	if err != nil {
		log.Fatal("initialize failed", zap.Error(err))
	}

	game := app.New(eng, fields, cfg.Viewer.Scale)
	b := game.Brush()
	b.Kind = kind
	game.SetBrush(b)

	ebiten.SetWindowTitle("terrasim")
	ebiten.SetTPS(cfg.Viewer.TPS)
	ebiten.SetWindowSize(fields.Size*cfg.Viewer.Scale, fields.Size*cfg.Viewer.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("viewer exited", zap.Error(err))
	}
}
