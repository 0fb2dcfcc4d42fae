package terrain

// Rect is an inclusive pixel bounding box, always clamped to grid bounds.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Clamp restricts the rectangle to a size*size grid.
func (r Rect) Clamp(size int) Rect {
	if r.X0 < 0 {
		r.X0 = 0
	}
	if r.Y0 < 0 {
		r.Y0 = 0
	}
	if r.X1 > size-1 {
		r.X1 = size - 1
	}
	if r.Y1 > size-1 {
		r.Y1 = size - 1
	}
	return r
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.X1 < r.X0 || r.Y1 < r.Y0
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// FullRect covers an entire size*size grid.
func FullRect(size int) Rect {
	return Rect{X0: 0, Y0: 0, X1: size - 1, Y1: size - 1}
}

// Fields stores the five terrain layers as parallel flat arrays of length
// size*size in row-major order (index = y*size + x), plus the scratch buffers
// the river router reuses between runs. Buffers are reallocated only when the
// grid size changes; otherwise they are mutated in place.
type Fields struct {
	Size     int
	Height   []float32
	Temp     []float32
	Moisture []float32
	Rivers   []uint8
	Biomes   []uint8

	flow     []float32
	order    []int32
	downhill []int32
}

// NewFields allocates a field set for a size*size grid. Non-positive sizes
// yield an empty set every pipeline stage treats as a no-op.
func NewFields(size int) *Fields {
	f := &Fields{}
	f.Resize(size)
	return f
}

// Resize reallocates the layers when the grid size changes and is a no-op
// otherwise, preserving buffer reuse across same-size requests.
func (f *Fields) Resize(size int) {
	if size < 0 {
		size = 0
	}
	if f.Size == size && f.Height != nil {
		return
	}
	total := size * size
	f.Size = size
	f.Height = make([]float32, total)
	f.Temp = make([]float32, total)
	f.Moisture = make([]float32, total)
	f.Rivers = make([]uint8, total)
	f.Biomes = make([]uint8, total)
	f.flow = make([]float32, total)
	f.order = make([]int32, total)
	f.downhill = make([]int32, total)
}

// Index returns the linear slice index for coordinates (x, y).
func (f *Fields) Index(x, y int) int { return y*f.Size + x }

// ClampCoord forces a coordinate into [0, size).
func (f *Fields) ClampCoord(v int) int {
	if v < 0 {
		return 0
	}
	if v > f.Size-1 {
		return f.Size - 1
	}
	return v
}

// FieldSet is an immutable snapshot of the five layers handed back to
// consumers. Mutating a FieldSet never affects the live buffers.
type FieldSet struct {
	Size     int
	Height   []float32
	Temp     []float32
	Moisture []float32
	Rivers   []uint8
	Biomes   []uint8
}

// Snapshot deep-copies the layers into a FieldSet.
func (f *Fields) Snapshot() FieldSet {
	return FieldSet{
		Size:     f.Size,
		Height:   append([]float32(nil), f.Height...),
		Temp:     append([]float32(nil), f.Temp...),
		Moisture: append([]float32(nil), f.Moisture...),
		Rivers:   append([]uint8(nil), f.Rivers...),
		Biomes:   append([]uint8(nil), f.Biomes...),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
