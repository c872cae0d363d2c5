package canvas

import "github.com/taigrr/cellrender/pkg/math3d"

// Pixel is a glyph at a canvas position.
type Pixel struct {
	Pos   math3d.Vec2
	Glyph Glyph
}

// Shape is anything that can be blitted onto a Canvas.
type Shape interface {
	Pixels() []Pixel
}

// PointShape is a Shape drawn with a single glyph. Blit uses Points and
// Fill directly instead of materialising Pixels.
type PointShape interface {
	Shape
	Points() []math3d.Vec2
	Fill() Glyph
}

// pixelsOf pairs every point with the same glyph.
func pixelsOf(points []math3d.Vec2, g Glyph) []Pixel {
	out := make([]Pixel, len(points))
	for i, p := range points {
		out[i] = Pixel{Pos: p, Glyph: g}
	}
	return out
}
