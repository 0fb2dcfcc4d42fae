//go:build !ebiten

package ui

import "terrasim/internal/terrain"

// Overlay is a placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns an inert overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// SetFields is a no-op placeholder.
func (o *Overlay) SetFields(terrain.FieldSet) {}

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any, int) {}
