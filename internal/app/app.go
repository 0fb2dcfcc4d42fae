//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"terrasim/internal/engine"
	"terrasim/internal/render"
	"terrasim/internal/terrain"
	"terrasim/internal/ui"
)

// Game adapts the terrain engine to the ebiten.Game interface. It is the
// single-threaded host: every engine call is synchronous, so a full
// recompute blocks the frame it runs in.
type Game struct {
	eng     *engine.Engine
	painter *render.GridPainter
	overlay *ui.Overlay

	fs      terrain.FieldSet
	display []uint8

	brush terrain.Brush
	scale int
	seed  int64
}

// New constructs a Game around an initialized engine.
func New(eng *engine.Engine, fs terrain.FieldSet, scale int) *Game {
	g := &Game{
		eng:     eng,
		painter: render.NewGridPainter(fs.Size, fs.Size),
		overlay: ui.NewOverlay(),
		display: make([]uint8, fs.Size*fs.Size),
		brush:   terrain.Brush{Kind: terrain.BrushRaise, Radius: 6, Strength: 0.08},
		scale:   scale,
		seed:    eng.Seed(),
	}
	g.setFields(fs)
	return g
}

// Brush returns the currently selected brush.
func (g *Game) Brush() terrain.Brush { return g.brush }

// SetBrush replaces the current brush.
func (g *Game) SetBrush(b terrain.Brush) { g.brush = b }

func (g *Game) setFields(fs terrain.FieldSet) {
	g.fs = fs
	if len(g.display) != len(fs.Biomes) {
		g.display = make([]uint8, len(fs.Biomes))
	}
	terrain.BuildDisplay(fs, g.display)
	g.overlay.SetFields(fs)
}

// Update handles input and submits edit requests to the engine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.brush.Kind = terrain.BrushRaise
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.brush.Kind = terrain.BrushLower
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		g.brush.Kind = terrain.BrushSmooth
	}
	if inpututil.IsKeyJustPressed(ebiten.Key4) {
		g.brush.Kind = terrain.BrushRain
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.brush.Radius > 2 {
		g.brush.Radius -= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.brush.Radius += 2
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed = time.Now().UnixNano()
		if fs, err := g.eng.Initialize(g.seed, g.eng.Config()); err == nil {
			g.setFields(fs)
		}
	}

	g.overlay.Update()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := mx/g.scale, my/g.scale
		b := g.brush
		if b.Kind == terrain.BrushRaise &&
			(ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)) {
			b.Kind = terrain.BrushLower
		}
		if fs, err := g.eng.EditAt(x, y, b); err == nil {
			g.setFields(fs)
		}
	}

	return nil
}

// Draw renders the current field set.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.display, terrain.Palette(), g.scale)
	g.overlay.Draw(screen, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fs.Size * g.scale, g.fs.Size * g.scale
}
