package engine

import (
	"slices"
	"testing"

	"terrasim/internal/terrain"
)

type progressEvent struct {
	phase    Phase
	fraction float64
}

func smallConfig(size int) terrain.Config {
	cfg := terrain.DefaultConfig()
	cfg.Size = size
	cfg.Island = false
	return cfg
}

func TestInitializeEmitsPhaseProgress(t *testing.T) {
	var events []progressEvent
	eng := New(WithProgress(func(phase Phase, fraction float64) {
		events = append(events, progressEvent{phase, fraction})
	}))

	if _, err := eng.Initialize(9, smallConfig(16)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	want := []progressEvent{
		{PhaseHeight, 0}, {PhaseHeight, 1},
		{PhaseClimate, 0}, {PhaseClimate, 1},
		{PhaseRivers, 0}, {PhaseRivers, 1},
	}
	if !slices.Equal(events, want) {
		t.Fatalf("progress sequence wrong:\n got %v\nwant %v", events, want)
	}
}

func TestEditAtEmitsNoProgress(t *testing.T) {
	var events []progressEvent
	eng := New(WithProgress(func(phase Phase, fraction float64) {
		events = append(events, progressEvent{phase, fraction})
	}))

	if _, err := eng.Initialize(9, smallConfig(16)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	events = events[:0]

	if _, err := eng.EditAt(8, 8, terrain.Brush{Kind: terrain.BrushRaise, Radius: 3, Strength: 0.2}); err != nil {
		t.Fatalf("EditAt: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("edits are a fast path and emit no progress, got %v", events)
	}
}

func TestInitializeRejectsMalformedParams(t *testing.T) {
	eng := New()

	cfg := smallConfig(16)
	cfg.Noise.Octaves = 0
	if _, err := eng.Initialize(1, cfg); err == nil {
		t.Fatal("octaves=0 must fail validation")
	}

	cfg = smallConfig(0)
	if _, err := eng.Initialize(1, cfg); err == nil {
		t.Fatal("size=0 must fail validation")
	}
}

func TestRecomputeKeepsSeed(t *testing.T) {
	eng := New()
	first, err := eng.Initialize(404, smallConfig(16))
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	again, err := eng.Recompute(smallConfig(16))
	if err != nil {
		t.Fatalf("Recompute: %v", err)
	}

	if !slices.Equal(first.Height, again.Height) {
		t.Fatal("recompute with unchanged params must reproduce the field under the kept seed")
	}
	if eng.Seed() != 404 {
		t.Fatalf("recompute must not change the seed, got %d", eng.Seed())
	}
}

func TestBufferReuseAcrossRequests(t *testing.T) {
	eng := New()
	if _, err := eng.Initialize(5, smallConfig(16)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	before := &eng.fields.Height[0]

	if _, err := eng.Recompute(smallConfig(16)); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if before != &eng.fields.Height[0] {
		t.Fatal("same-size recompute must reuse the field buffers")
	}

	if _, err := eng.Recompute(smallConfig(24)); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if len(eng.fields.Height) != 24*24 {
		t.Fatalf("size change must reallocate, len=%d", len(eng.fields.Height))
	}
}

func TestEditAtRainSurvivesClimatePass(t *testing.T) {
	eng := New()
	cfg := smallConfig(16)
	before, err := eng.Initialize(77, cfg)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	idx := 8*16 + 8
	after, err := eng.EditAt(8, 8, terrain.Brush{Kind: terrain.BrushRain, Radius: 4, Strength: 0.3})
	if err != nil {
		t.Fatalf("EditAt: %v", err)
	}
	if after.Moisture[idx] <= before.Moisture[idx] && before.Moisture[idx] < 1 {
		t.Fatalf("rain stroke must persist through the climate pass, before %v after %v",
			before.Moisture[idx], after.Moisture[idx])
	}
	if !slices.Equal(before.Height, after.Height) {
		t.Fatal("rain must not alter the height layer")
	}
}

func TestEditAtRejectsBadBrush(t *testing.T) {
	eng := New()
	if _, err := eng.Initialize(1, smallConfig(8)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if _, err := eng.EditAt(4, 4, terrain.Brush{Kind: terrain.BrushRaise, Radius: -1, Strength: 0.1}); err == nil {
		t.Fatal("negative radius is a caller error")
	}
}

func TestServeFIFOAndResponseShape(t *testing.T) {
	reqs := make(chan Request)
	out := make(chan Response)
	eng := New()
	go eng.Serve(reqs, out)

	go func() {
		defer close(reqs)
		reqs <- InitializeRequest{Seed: 3, Params: smallConfig(8)}
		reqs <- EditRequest{X: 4, Y: 4, Brush: terrain.Brush{Kind: terrain.BrushRaise, Radius: 2, Strength: 0.2}}
		reqs <- RecomputeRequest{Params: smallConfig(12)}
	}()

	var resultSizes []int
	progressSinceResult := 0
	for resp := range out {
		switch r := resp.(type) {
		case Progress:
			if r.Fraction < 0 || r.Fraction > 1 {
				t.Fatalf("progress fraction out of range: %v", r.Fraction)
			}
			progressSinceResult++
		case Result:
			if r.Err != nil {
				t.Fatalf("unexpected result error: %v", r.Err)
			}
			// The edit request (second result) is the fast path.
			if len(resultSizes) == 1 && progressSinceResult != 0 {
				t.Fatalf("edit result preceded by %d progress notifications", progressSinceResult)
			}
			progressSinceResult = 0
			resultSizes = append(resultSizes, r.Fields.Size)
		}
	}

	want := []int{8, 8, 12}
	if !slices.Equal(resultSizes, want) {
		t.Fatalf("results must come back in request order: got %v want %v", resultSizes, want)
	}
}

func TestServeReportsValidationErrors(t *testing.T) {
	reqs := make(chan Request)
	out := make(chan Response)
	eng := New()
	go eng.Serve(reqs, out)

	go func() {
		defer close(reqs)
		bad := smallConfig(16)
		bad.RiverThreshold = -1
		reqs <- InitializeRequest{Seed: 1, Params: bad}
		reqs <- InitializeRequest{Seed: 1, Params: smallConfig(8)}
	}()

	var results []Result
	for resp := range out {
		if r, ok := resp.(Result); ok {
			results = append(results, r)
		}
	}
	if len(results) != 2 {
		t.Fatalf("every request gets exactly one result, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Fatal("malformed params must surface as a result error")
	}
	if results[1].Err != nil || results[1].Fields.Size != 8 {
		t.Fatalf("engine must keep serving after a failed request: %+v", results[1])
	}
}
