// Package canvas provides the character grid that shapes are composited
// onto, and its serialization to an ANSI-styled text stream.
package canvas

import "github.com/taigrr/cellrender/pkg/math3d"

// Canvas is a fixed-size grid of glyphs stored in row-major order.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width      int
	height     int
	background Glyph
	cells      []Glyph

	// CoordNumbers adds a ruler of column and row last digits to the
	// serialized output, for debugging layouts.
	CoordNumbers bool
}

// New creates a canvas of the given size with every cell set to background.
func New(width, height int, background Glyph) *Canvas {
	c := &Canvas{
		width:      max(width, 0),
		height:     max(height, 0),
		background: background,
	}
	c.cells = make([]Glyph, c.width*c.height)
	c.Clear()
	return c
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Size returns (width, height).
func (c *Canvas) Size() math3d.Vec2 {
	return math3d.V2(c.width, c.height)
}

// Center returns the middle cell, rounded towards the origin.
func (c *Canvas) Center() math3d.Vec2 {
	return c.Size().Div(2)
}

// Background returns the glyph used by Clear.
func (c *Canvas) Background() Glyph {
	return c.background
}

// SetBackground changes the glyph used by Clear. The grid itself is left
// untouched until the next Clear.
func (c *Canvas) SetBackground(g Glyph) {
	c.background = g
}

// Resize changes the canvas dimensions. The buffer is re-created and
// cleared to the background.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	if n := width * height; cap(c.cells) >= n {
		c.cells = c.cells[:n]
	} else {
		c.cells = make([]Glyph, n)
	}
	c.Clear()
}

// Clear resets every cell to the background glyph.
func (c *Canvas) Clear() {
	n := len(c.cells)
	if n == 0 {
		return
	}
	c.cells[0] = c.background
	for i := 1; i < n; i *= 2 {
		copy(c.cells[i:], c.cells[:i])
	}
}

// Plot writes g at pos, resolving out-of-bounds positions according to mode.
// Under WrapPanic an out-of-bounds position panics.
func (c *Canvas) Plot(pos math3d.Vec2, g Glyph, mode WrapMode) {
	p, ok := mode.resolve(pos, c.Size())
	if !ok {
		return
	}
	c.cells[p.Y*c.width+p.X] = g
}

// At returns the glyph at pos, or the background when pos is out of bounds.
func (c *Canvas) At(pos math3d.Vec2) Glyph {
	if pos.X < 0 || pos.X >= c.width || pos.Y < 0 || pos.Y >= c.height {
		return c.background
	}
	return c.cells[pos.Y*c.width+pos.X]
}

// Blit plots every pixel of s in order, so later pixels overwrite earlier
// ones at the same position.
func (c *Canvas) Blit(s Shape, mode WrapMode) {
	if ps, ok := s.(PointShape); ok {
		fill := ps.Fill()
		for _, p := range ps.Points() {
			c.Plot(p, fill, mode)
		}
		return
	}
	for _, px := range s.Pixels() {
		c.Plot(px.Pos, px.Glyph, mode)
	}
}

// BlitDoubleWidth is like Blit but stretches every pixel across two
// columns, (2x, y) and (2x+1, y), which makes square sprites look square on
// terminals whose cells are about twice as tall as they are wide.
func (c *Canvas) BlitDoubleWidth(s Shape, mode WrapMode) {
	for _, px := range s.Pixels() {
		p := math3d.V2(px.Pos.X*2, px.Pos.Y)
		c.Plot(p, px.Glyph, mode)
		c.Plot(p.Add(math3d.V2(1, 0)), px.Glyph, mode)
	}
}
