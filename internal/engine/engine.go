// Package engine owns the terrain field buffers and runs the generation
// pipeline. One engine processes one request at a time; every operation is
// synchronous and runs to completion before the next is accepted.
package engine

import (
	"time"

	"go.uber.org/zap"

	"terrasim/internal/terrain"
)

// ProgressFunc receives phase boundary notifications during full recomputes.
type ProgressFunc func(phase Phase, fraction float64)

// Engine is the compute orchestrator. It holds the current seed, params, and
// the exclusively-owned field buffers; external code only ever sees deep
// copied snapshots.
type Engine struct {
	cfg    terrain.Config
	seed   int64
	fields *terrain.Fields

	progress ProgressFunc
	log      *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithProgress installs the progress notification sink.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) { e.progress = fn }
}

// New returns an engine with no fields allocated yet; the first Initialize
// call sizes the buffers.
func New(opts ...Option) *Engine {
	e := &Engine{
		fields: terrain.NewFields(0),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the params of the last accepted request.
func (e *Engine) Config() terrain.Config { return e.cfg }

// Seed returns the current world seed.
func (e *Engine) Seed() int64 { return e.seed }

// Initialize reallocates the buffers if the size changed and runs the full
// pipeline under the given seed.
func (e *Engine) Initialize(seed int64, cfg terrain.Config) (terrain.FieldSet, error) {
	if err := cfg.Validate(); err != nil {
		return terrain.FieldSet{}, err
	}
	e.seed = seed
	return e.recompute(cfg), nil
}

// Recompute reruns the full pipeline with new params, keeping the seed.
func (e *Engine) Recompute(cfg terrain.Config) (terrain.FieldSet, error) {
	if err := cfg.Validate(); err != nil {
		return terrain.FieldSet{}, err
	}
	return e.recompute(cfg), nil
}

func (e *Engine) recompute(cfg terrain.Config) terrain.FieldSet {
	cfg.Seed = e.seed
	e.cfg = cfg
	e.fields.Resize(cfg.Size)

	start := time.Now()
	e.runPhase(PhaseHeight, func() { terrain.GenerateHeight(e.fields, cfg) })
	e.runPhase(PhaseClimate, func() { terrain.DeriveClimate(e.fields, cfg) })
	e.runPhase(PhaseRivers, func() { terrain.RouteRivers(e.fields, cfg) })
	e.log.Info("pipeline complete",
		zap.Int("size", cfg.Size),
		zap.Int64("seed", e.seed),
		zap.Duration("elapsed", time.Since(start)))

	return e.fields.Snapshot()
}

func (e *Engine) runPhase(phase Phase, fn func()) {
	e.notify(phase, 0)
	start := time.Now()
	fn()
	e.log.Debug("phase done",
		zap.String("phase", string(phase)),
		zap.Duration("elapsed", time.Since(start)))
	e.notify(phase, 1)
}

func (e *Engine) notify(phase Phase, fraction float64) {
	if e.progress != nil {
		e.progress(phase, fraction)
	}
}

// EditAt applies a brush stamp, rederives climate inside the dirty rectangle,
// and reroutes rivers over the whole grid (flow is global). No progress
// notifications on this path; it is expected to be fast.
func (e *Engine) EditAt(x, y int, b terrain.Brush) (terrain.FieldSet, error) {
	dirty, err := terrain.ApplyBrush(e.fields, x, y, b)
	if err != nil {
		return terrain.FieldSet{}, err
	}
	// A rain stamp edited moisture directly; rederiving it from height would
	// wipe the stroke, so climate keeps the layer and only reclassifies.
	keepMoisture := b.Kind == terrain.BrushRain
	terrain.DeriveClimateRect(e.fields, e.cfg, dirty, keepMoisture)
	terrain.RouteRivers(e.fields, e.cfg)

	e.log.Debug("brush edit",
		zap.String("kind", b.Kind.String()),
		zap.Int("x", x), zap.Int("y", y),
		zap.Float64("radius", b.Radius))

	return e.fields.Snapshot(), nil
}
