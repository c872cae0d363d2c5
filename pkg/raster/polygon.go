package raster

import "github.com/taigrr/cellrender/pkg/math3d"

// IsClockwise reports whether the closed polygon through points winds
// clockwise on a Y-down grid, using the signed-area sum
// Σ (x_i - x_{i+1}) * (y_i + y_{i+1}) <= 0. Degenerate (zero-area) input
// counts as clockwise.
func IsClockwise(points []math3d.Vec2) bool {
	sum := 0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += (p.X - q.X) * (p.Y + q.Y)
	}
	return sum <= 0
}

// Triangulate splits a simple polygon into triangles by ear clipping and
// returns them as index triples into vertices. A polygon of n >= 3 vertices
// always yields n-2 triangles; fewer than 3 vertices yield none.
//
// The search for an ear starts at the second remaining vertex, so a convex
// polygon produces exactly the fan around vertex 0. When no ear exists
// (self-intersecting or fully collinear input) the first remaining vertex is
// clipped instead, which guarantees termination.
func Triangulate(vertices []math3d.Vec2) [][3]int {
	n := len(vertices)
	if n < 3 {
		return nil
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	orientation := sign(doubleArea(vertices))
	tris := make([][3]int, 0, n-2)

	for len(remaining) > 3 {
		m := len(remaining)
		clip := 0
		for k := range m {
			i := (k + 1) % m
			prev, cur, next := remaining[(i+m-1)%m], remaining[i], remaining[(i+1)%m]
			if isEar(vertices, remaining, prev, cur, next, orientation) {
				clip = i
				break
			}
		}
		prev, cur, next := remaining[(clip+m-1)%m], remaining[clip], remaining[(clip+1)%m]
		tris = append(tris, [3]int{prev, cur, next})
		remaining = append(remaining[:clip], remaining[clip+1:]...)
	}
	return append(tris, [3]int{remaining[0], remaining[1], remaining[2]})
}

// isEar reports whether the corner prev-cur-next turns the same way as the
// whole polygon, has nonzero area and contains no other remaining vertex.
func isEar(vertices []math3d.Vec2, remaining []int, prev, cur, next, orientation int) bool {
	a, b, c := vertices[prev], vertices[cur], vertices[next]
	turn := cross(a, b, c)
	if turn == 0 || orientation == 0 || sign(turn) != orientation {
		return false
	}
	for _, idx := range remaining {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		p := vertices[idx]
		if p == a || p == b || p == c {
			continue
		}
		if inTriangle(p, a, b, c, orientation) {
			return false
		}
	}
	return true
}

// Polygon returns the cells covered by the polygon through vertices, as the
// union of the triangles from Triangulate. Cells shared by two triangles
// appear once per triangle.
func Polygon(vertices []math3d.Vec2) []math3d.Vec2 {
	return AppendPolygon(nil, vertices)
}

// AppendPolygon appends the cells of the polygon through vertices to dst.
func AppendPolygon(dst []math3d.Vec2, vertices []math3d.Vec2) []math3d.Vec2 {
	for _, t := range Triangulate(vertices) {
		dst = AppendTriangle(dst, vertices[t[0]], vertices[t[1]], vertices[t[2]])
	}
	return dst
}

// cross returns the z component of (b - a) × (c - b).
func cross(a, b, c math3d.Vec2) int {
	return (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
}

// doubleArea returns twice the signed shoelace area.
func doubleArea(vertices []math3d.Vec2) int {
	sum := 0
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// inTriangle reports whether p lies inside or on the edge of a-b-c, a
// triangle wound with the given orientation.
func inTriangle(p, a, b, c math3d.Vec2, orientation int) bool {
	d1 := sign(edge(a, b, p)) * orientation
	d2 := sign(edge(b, c, p)) * orientation
	d3 := sign(edge(c, a, p)) * orientation
	return d1 >= 0 && d2 >= 0 && d3 >= 0
}

func edge(a, b, p math3d.Vec2) int {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
