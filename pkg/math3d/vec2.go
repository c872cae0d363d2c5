package math3d

import "fmt"

// Vec2 is an integer coordinate on a character grid. X grows to the right
// and Y grows downwards.
type Vec2 struct {
	X, Y int
}

// V2 creates a new Vec2.
func V2(x, y int) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s int) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Div returns the truncated scalar division a / s.
func (a Vec2) Div(s int) Vec2 {
	return Vec2{a.X / s, a.Y / s}
}

// Rem returns the Euclidean remainder of a by b, component-wise. The result
// is never negative, so (-1, -1).Rem(10, 10) is (9, 9).
func (a Vec2) Rem(b Vec2) Vec2 {
	return Vec2{remEuclid(a.X, b.X), remEuclid(a.Y, b.Y)}
}

// String formats the coordinate as "(x, y)".
func (a Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", a.X, a.Y)
}

func remEuclid(x, m int) int {
	r := x % m
	if r < 0 {
		if m < 0 {
			r -= m
		} else {
			r += m
		}
	}
	return r
}
