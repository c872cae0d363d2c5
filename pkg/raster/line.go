// Package raster turns lines, triangles and polygons into the integer grid
// cells they cover. Every function is pure and works in canvas space, where Y
// grows downwards.
package raster

import "github.com/taigrr/cellrender/pkg/math3d"

// Line returns the cells on the segment from p0 to p1 using Bresenham's
// algorithm. Both endpoints are included and consecutive cells are
// 8-connected. Swapping the endpoints yields the same set of cells.
func Line(p0, p1 math3d.Vec2) []math3d.Vec2 {
	return AppendLine(nil, p0, p1)
}

// AppendLine appends the cells of the segment p0..p1 to dst, in order from
// p0 to p1, and returns the extended slice.
func AppendLine(dst []math3d.Vec2, p0, p1 math3d.Vec2) []math3d.Vec2 {
	// Always walk from the lexicographically smaller endpoint so both
	// directions pick the same cells on error ties.
	reversed := p1.X < p0.X || (p1.X == p0.X && p1.Y < p0.Y)
	if reversed {
		p0, p1 = p1, p0
	}

	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	start := len(dst)
	dst = grow(dst, max(dx, -dy)+1)
	err := dx + dy
	for {
		dst = append(dst, math3d.Vec2{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}

	if reversed {
		seg := dst[start:]
		for i, j := 0, len(seg)-1; i < j; i, j = i+1, j-1 {
			seg[i], seg[j] = seg[j], seg[i]
		}
	}
	return dst
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// grow makes room for n more elements without changing len(s).
func grow(s []math3d.Vec2, n int) []math3d.Vec2 {
	if cap(s)-len(s) >= n {
		return s
	}
	out := make([]math3d.Vec2, len(s), len(s)+n)
	copy(out, s)
	return out
}
