package canvas

import (
	"slices"

	"github.com/taigrr/cellrender/pkg/math3d"
)

// Container is a composite shape: an ordered list of pixels collected from
// other shapes. Blitting a Container replays its pixels in insertion order.
type Container struct {
	pixels []Pixel
}

// NewContainer creates an empty Container.
func NewContainer() *Container {
	return &Container{}
}

// Len returns the number of stored pixels.
func (c *Container) Len() int {
	return len(c.pixels)
}

// Reset empties the container, keeping its storage.
func (c *Container) Reset() {
	c.pixels = c.pixels[:0]
}

// Push adds a single pixel.
func (c *Container) Push(px Pixel) {
	c.pixels = append(c.pixels, px)
}

// Append adds several pixels.
func (c *Container) Append(pixels []Pixel) {
	c.pixels = append(c.pixels, pixels...)
}

// AppendPoints adds every point with the same glyph.
func (c *Container) AppendPoints(points []math3d.Vec2, g Glyph) {
	c.pixels = slices.Grow(c.pixels, len(points))
	for _, p := range points {
		c.pixels = append(c.pixels, Pixel{Pos: p, Glyph: g})
	}
}

// Plot adds a glyph at pos. Containers have no bounds, so there is no wrap
// mode.
func (c *Container) Plot(pos math3d.Vec2, g Glyph) {
	c.Push(Pixel{Pos: pos, Glyph: g})
}

// Blit adds every pixel of s.
func (c *Container) Blit(s Shape) {
	if ps, ok := s.(PointShape); ok {
		c.AppendPoints(ps.Points(), ps.Fill())
		return
	}
	c.Append(s.Pixels())
}

// Pixels implements Shape.
func (c *Container) Pixels() []Pixel {
	return c.pixels
}
