package raster

import (
	"math"

	"github.com/taigrr/cellrender/pkg/math3d"
)

// Interpolate returns the dependent values along the independent range
// i0..i1 (inclusive), linearly interpolated between d0 and d1 and rounded to
// the nearest integer. When i0 == i1 the result is just [d0].
func Interpolate(i0 int, d0 float64, i1 int, d1 float64) []int {
	if i0 == i1 {
		return []int{int(math.Round(d0))}
	}
	n := abs(i1-i0) + 1
	step := (d1 - d0) / float64(i1-i0)
	out := make([]int, n)
	for k := range n {
		out[k] = int(math.Round(d0 + step*float64(k)))
	}
	return out
}

// Triangle returns the cells covered by the triangle c0, c1, c2 using a
// scanline fill. Each row from the top corner up to, but not including, the
// bottom corner's row is filled over [left, right).
func Triangle(c0, c1, c2 math3d.Vec2) []math3d.Vec2 {
	return AppendTriangle(nil, c0, c1, c2)
}

// AppendTriangle appends the cells of the triangle c0, c1, c2 to dst.
func AppendTriangle(dst []math3d.Vec2, c0, c1, c2 math3d.Vec2) []math3d.Vec2 {
	// Sort corners by ascending Y, keeping argument order for equal Y.
	if c1.Y < c0.Y {
		c0, c1 = c1, c0
	}
	if c2.Y < c1.Y {
		c1, c2 = c2, c1
	}
	if c1.Y < c0.Y {
		c0, c1 = c1, c0
	}

	x01 := Interpolate(c0.Y, float64(c0.X), c1.Y, float64(c1.X))
	x12 := Interpolate(c1.Y, float64(c1.X), c2.Y, float64(c2.X))
	x02 := Interpolate(c0.Y, float64(c0.X), c2.Y, float64(c2.X))

	// The middle row belongs to both short edges; keep it once.
	x012 := append(x01[:len(x01)-1], x12...)

	left, right := x012, x02
	m := len(x012) / 2
	if x02[m] < x012[m] {
		left, right = x02, x012
	}

	for i := range c2.Y - c0.Y {
		y := c0.Y + i
		for x := left[i]; x < right[i]; x++ {
			dst = append(dst, math3d.Vec2{X: x, Y: y})
		}
	}
	return dst
}
