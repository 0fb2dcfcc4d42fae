package engine

// Serve drains the request channel with a single synchronous handler loop:
// one in-flight request, strict FIFO result order, no cancellation. Each
// request produces zero or more Progress responses followed by exactly one
// Result. Serve returns when reqs is closed; it closes out on the way back.
//
// During Serve the engine's progress sink is routed into out; any sink set
// via WithProgress is restored afterwards.
func (e *Engine) Serve(reqs <-chan Request, out chan<- Response) {
	prev := e.progress
	e.progress = func(phase Phase, fraction float64) {
		out <- Progress{Phase: phase, Fraction: fraction}
	}
	defer func() {
		e.progress = prev
		close(out)
	}()

	for req := range reqs {
		var res Result
		switch r := req.(type) {
		case InitializeRequest:
			fields, err := e.Initialize(r.Seed, r.Params)
			res = Result{Fields: fields, Err: err}
		case RecomputeRequest:
			fields, err := e.Recompute(r.Params)
			res = Result{Fields: fields, Err: err}
		case EditRequest:
			fields, err := e.EditAt(r.X, r.Y, r.Brush)
			res = Result{Fields: fields, Err: err}
		default:
			continue
		}
		out <- res
	}
}
