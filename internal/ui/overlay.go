//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"terrasim/internal/render"
	"terrasim/internal/terrain"
)

type overlayMode int

const (
	overlayNone overlayMode = iota
	overlayTemperature
	overlayMoisture
)

// Overlay draws a translucent heat view of a climate layer on top of the
// base terrain.
type Overlay struct {
	mode overlayMode
	fs   terrain.FieldSet

	img *ebiten.Image
	buf []byte
}

// NewOverlay returns an overlay with no active view.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// SetFields swaps in the snapshot to visualize.
func (o *Overlay) SetFields(fs terrain.FieldSet) {
	o.fs = fs
	if fs.Size > 0 && (o.img == nil || len(o.buf) != 4*fs.Size*fs.Size) {
		o.img = ebiten.NewImage(fs.Size, fs.Size)
		o.buf = make([]byte, 4*fs.Size*fs.Size)
	}
}

// Update toggles the overlay views: T temperature, M moisture.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		o.toggle(overlayTemperature)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.toggle(overlayMoisture)
	}
}

func (o *Overlay) toggle(mode overlayMode) {
	if o.mode == mode {
		o.mode = overlayNone
		return
	}
	o.mode = mode
}

// Draw renders the active view scaled onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, scale int) {
	if o.mode == overlayNone || o.img == nil || o.fs.Size == 0 {
		return
	}
	layer := o.fs.Temp
	if o.mode == overlayMoisture {
		layer = o.fs.Moisture
	}
	render.FillScalarRGBA(o.buf, layer, func(v float32) color.RGBA {
		return terrain.HeatColor(v, 140)
	})
	o.img.ReplacePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
