package terrain

import "sort"

// Neighbor offsets scanned in fixed order so ties between equal drops always
// resolve the same way.
var d8Offsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// RouteRivers recomputes the river mask for the whole grid. Flow is a global,
// order-dependent aggregate: a local height edit can change accumulation
// arbitrarily far downstream, so there is no incremental variant.
//
// Each cell drains to its steepest strictly-lower 8-neighbor (D8). Cells are
// processed in height order (descending, index ascending on ties) and pass
// 1 + received inflow to their downhill target; cells at or below sea level
// contribute nothing. The sorted order is only pseudo-topological when
// heights tie or targets are shared symmetrically; that approximation is
// intentional and kept. Cells on a perfectly flat plateau have no strictly
// lower neighbor and therefore never drain, even when the plateau borders a
// lower cell; known limitation, preserved.
func RouteRivers(f *Fields, cfg Config) {
	size := f.Size
	if size <= 0 {
		return
	}
	total := size * size
	sea := float32(cfg.Climate.SeaLevel)

	flow := f.flow
	order := f.order
	downhill := f.downhill

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := f.Index(x, y)
			flow[idx] = 0
			order[idx] = int32(idx)
			downhill[idx] = -1

			h := f.Height[idx]
			bestDrop := float32(0)
			for _, off := range d8Offsets {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= size || ny < 0 || ny >= size {
					continue
				}
				drop := h - f.Height[f.Index(nx, ny)]
				if drop > bestDrop {
					bestDrop = drop
					downhill[idx] = int32(f.Index(nx, ny))
				}
			}
		}
	}

	// Height descending, index ascending: the tie-break is pinned so results
	// reproduce across sort implementations.
	sort.Slice(order, func(a, b int) bool {
		ha, hb := f.Height[order[a]], f.Height[order[b]]
		if ha != hb {
			return ha > hb
		}
		return order[a] < order[b]
	})

	maxFlow := float32(0)
	for _, idx := range order {
		if f.Height[idx] <= sea {
			flow[idx] = 0
			continue
		}
		flow[idx]++
		if d := downhill[idx]; d >= 0 {
			flow[d] += flow[idx]
		}
		if flow[idx] > maxFlow {
			maxFlow = flow[idx]
		}
	}

	// Identity scale when nothing accumulated.
	scale := float32(1)
	if maxFlow > 0 {
		scale = 1 / maxFlow
	}
	threshold := float32(cfg.RiverThreshold)
	for i := 0; i < total; i++ {
		if f.Height[i] > sea && flow[i]*scale >= threshold {
			f.Rivers[i] = 1
		} else {
			f.Rivers[i] = 0
		}
	}
}
