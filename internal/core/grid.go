package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) lies on the grid.
func (g *ByteGrid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value stored at (x, y). Off-grid reads return 0.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.Contains(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Set stores v at (x, y). Off-grid writes are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.Contains(x, y) {
		return
	}
	g.data[g.Index(x, y)] = v
}

// Wrap brings a coordinate that stepped off the grid back onto the opposite
// edge. Each axis is checked on its own: a value at or past the upper bound
// becomes 0 and a negative value becomes bound-1. Wrap is meant for single
// cell steps; it does not reduce arbitrary offsets modulo the size.
func (g *ByteGrid) Wrap(x, y int) (int, int, bool) {
	wrapped := false
	if x >= g.W {
		x, wrapped = 0, true
	}
	if y >= g.H {
		y, wrapped = 0, true
	}
	if x < 0 {
		x, wrapped = g.W-1, true
	}
	if y < 0 {
		y, wrapped = g.H-1, true
	}
	return x, y, wrapped
}

// Count returns the number of cells holding v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
