package engine

import "terrasim/internal/terrain"

// Phase identifies a pipeline stage in progress notifications.
type Phase string

const (
	PhaseHeight  Phase = "height"
	PhaseClimate Phase = "climate"
	PhaseRivers  Phase = "rivers"
)

// Request is the consumer-to-core message. Exactly one Result is produced
// per request, preceded by zero or more Progress notifications.
type Request interface {
	isRequest()
}

// InitializeRequest builds the field set from scratch with a new seed.
type InitializeRequest struct {
	Seed   int64
	Params terrain.Config
}

// RecomputeRequest reruns the full pipeline with new params, keeping the
// current seed.
type RecomputeRequest struct {
	Params terrain.Config
}

// EditRequest applies a brush stamp at (X, Y) and rederives what it touched.
type EditRequest struct {
	X, Y  int
	Brush terrain.Brush
}

func (InitializeRequest) isRequest() {}
func (RecomputeRequest) isRequest()  {}
func (EditRequest) isRequest()       {}

// Response is the core-to-consumer message.
type Response interface {
	isResponse()
}

// Progress reports a pipeline stage boundary. Best-effort and informational;
// edit requests emit none.
type Progress struct {
	Phase    Phase
	Fraction float64
}

// Result carries the full field-set snapshot terminating a request. Err is
// set instead of Fields when the request was malformed.
type Result struct {
	Fields terrain.FieldSet
	Err    error
}

func (Progress) isResponse() {}
func (Result) isResponse()   {}
