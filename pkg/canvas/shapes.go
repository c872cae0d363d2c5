package canvas

import (
	"github.com/taigrr/cellrender/pkg/math3d"
	"github.com/taigrr/cellrender/pkg/raster"
)

// Point is a single glyph at a position.
type Point struct {
	Pos   math3d.Vec2
	Glyph Glyph
}

// NewPoint creates a Point.
func NewPoint(pos math3d.Vec2, g Glyph) Point {
	return Point{Pos: pos, Glyph: g}
}

// Points implements PointShape.
func (p Point) Points() []math3d.Vec2 { return []math3d.Vec2{p.Pos} }

// Fill implements PointShape.
func (p Point) Fill() Glyph { return p.Glyph }

// Pixels implements Shape.
func (p Point) Pixels() []Pixel { return []Pixel{{Pos: p.Pos, Glyph: p.Glyph}} }

// Line is a straight segment between two cells. Its cells are cached until
// an endpoint changes.
type Line struct {
	Glyph Glyph

	from, to math3d.Vec2
	cache    PointCache
}

// NewLine creates a Line from one cell to another.
func NewLine(from, to math3d.Vec2, g Glyph) *Line {
	return &Line{Glyph: g, from: from, to: to}
}

// Ends returns the endpoints.
func (l *Line) Ends() (from, to math3d.Vec2) {
	return l.from, l.to
}

// SetEnds moves the endpoints.
func (l *Line) SetEnds(from, to math3d.Vec2) {
	if from == l.from && to == l.to {
		return
	}
	l.from, l.to = from, to
	l.cache.Invalidate()
}

// Points implements PointShape.
func (l *Line) Points() []math3d.Vec2 {
	return l.cache.Get(func(dst []math3d.Vec2) []math3d.Vec2 {
		return raster.AppendLine(dst, l.from, l.to)
	})
}

// Fill implements PointShape.
func (l *Line) Fill() Glyph { return l.Glyph }

// Pixels implements Shape.
func (l *Line) Pixels() []Pixel { return pixelsOf(l.Points(), l.Glyph) }

// Triangle is a filled triangle. Its cells are cached until a corner
// changes.
type Triangle struct {
	Glyph Glyph

	corners [3]math3d.Vec2
	cache   PointCache
}

// NewTriangle creates a filled Triangle.
func NewTriangle(c0, c1, c2 math3d.Vec2, g Glyph) *Triangle {
	return &Triangle{Glyph: g, corners: [3]math3d.Vec2{c0, c1, c2}}
}

// Corners returns the three corners.
func (t *Triangle) Corners() [3]math3d.Vec2 {
	return t.corners
}

// SetCorners moves the corners.
func (t *Triangle) SetCorners(c0, c1, c2 math3d.Vec2) {
	corners := [3]math3d.Vec2{c0, c1, c2}
	if corners == t.corners {
		return
	}
	t.corners = corners
	t.cache.Invalidate()
}

// Points implements PointShape.
func (t *Triangle) Points() []math3d.Vec2 {
	return t.cache.Get(func(dst []math3d.Vec2) []math3d.Vec2 {
		return raster.AppendTriangle(dst, t.corners[0], t.corners[1], t.corners[2])
	})
}

// Fill implements PointShape.
func (t *Triangle) Fill() Glyph { return t.Glyph }

// Pixels implements Shape.
func (t *Triangle) Pixels() []Pixel { return pixelsOf(t.Points(), t.Glyph) }

// Polygon is a filled simple polygon. Its cells are cached until the
// vertices change; callers mutating the slice returned by Vertices must call
// Invalidate.
type Polygon struct {
	Glyph Glyph

	vertices []math3d.Vec2
	cache    PointCache
}

// NewPolygon creates a filled Polygon. The vertex slice is copied.
func NewPolygon(vertices []math3d.Vec2, g Glyph) *Polygon {
	return &Polygon{Glyph: g, vertices: append([]math3d.Vec2(nil), vertices...)}
}

// Vertices returns the polygon's vertices.
func (p *Polygon) Vertices() []math3d.Vec2 {
	return p.vertices
}

// SetVertices replaces the vertices. The slice is copied.
func (p *Polygon) SetVertices(vertices []math3d.Vec2) {
	p.vertices = append(p.vertices[:0], vertices...)
	p.cache.Invalidate()
}

// Invalidate forces the next Points call to re-rasterize.
func (p *Polygon) Invalidate() {
	p.cache.Invalidate()
}

// Points implements PointShape.
func (p *Polygon) Points() []math3d.Vec2 {
	return p.cache.Get(func(dst []math3d.Vec2) []math3d.Vec2 {
		return raster.AppendPolygon(dst, p.vertices)
	})
}

// Fill implements PointShape.
func (p *Polygon) Fill() Glyph { return p.Glyph }

// Pixels implements Shape.
func (p *Polygon) Pixels() []Pixel { return pixelsOf(p.Points(), p.Glyph) }

// Rect is a filled axis-aligned rectangle with its top-left corner at Pos.
type Rect struct {
	Pos   math3d.Vec2
	Size  math3d.Vec2
	Glyph Glyph
}

// NewRect creates a Rect from a top-left corner and a size.
func NewRect(pos, size math3d.Vec2, g Glyph) Rect {
	return Rect{Pos: pos, Size: size, Glyph: g}
}

// RectBetween creates a Rect spanning from one corner to the other,
// excluding the far corner's row and column.
func RectBetween(from, to math3d.Vec2, g Glyph) Rect {
	lo := math3d.V2(min(from.X, to.X), min(from.Y, to.Y))
	hi := math3d.V2(max(from.X, to.X), max(from.Y, to.Y))
	return Rect{Pos: lo, Size: hi.Sub(lo), Glyph: g}
}

// Points implements PointShape.
func (r Rect) Points() []math3d.Vec2 {
	if r.Size.X <= 0 || r.Size.Y <= 0 {
		return nil
	}
	out := make([]math3d.Vec2, 0, r.Size.X*r.Size.Y)
	for y := range r.Size.Y {
		for x := range r.Size.X {
			out = append(out, r.Pos.Add(math3d.V2(x, y)))
		}
	}
	return out
}

// Fill implements PointShape.
func (r Rect) Fill() Glyph { return r.Glyph }

// Pixels implements Shape.
func (r Rect) Pixels() []Pixel { return pixelsOf(r.Points(), r.Glyph) }
