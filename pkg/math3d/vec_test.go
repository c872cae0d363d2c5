package math3d

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestVec2Rem(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		bounds Vec2
		want   Vec2
	}{
		{"in bounds", V2(3, 4), V2(10, 10), V2(3, 4)},
		{"negative one", V2(-1, -1), V2(10, 10), V2(9, 9)},
		{"exact multiple", V2(10, 20), V2(10, 10), V2(0, 0)},
		{"far negative", V2(-21, -3), V2(10, 4), V2(9, 1)},
		{"large positive", V2(57, 13), V2(10, 4), V2(7, 1)},
		{"negative divisor", V2(-7, 7), V2(-5, -5), V2(3, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rem(tt.bounds)
			if got != tt.want {
				t.Errorf("%v.Rem(%v) = %v, want %v", tt.v, tt.bounds, got, tt.want)
			}
		})
	}
}

func TestVec2RemNeverNegative(t *testing.T) {
	bounds := V2(7, 3)
	for x := -50; x <= 50; x++ {
		for y := -50; y <= 50; y++ {
			got := V2(x, y).Rem(bounds)
			if got.X < 0 || got.X >= bounds.X || got.Y < 0 || got.Y >= bounds.Y {
				t.Fatalf("V2(%d, %d).Rem(%v) = %v, out of range", x, y, bounds, got)
			}
			if (x-got.X)%bounds.X != 0 || (y-got.Y)%bounds.Y != 0 {
				t.Fatalf("V2(%d, %d).Rem(%v) = %v, not congruent", x, y, bounds, got)
			}
		}
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a, b := V2(3, -2), V2(1, 5)
	if got := a.Add(b); got != V2(4, 3) {
		t.Errorf("Add = %v, want (4, 3)", got)
	}
	if got := a.Sub(b); got != V2(2, -7) {
		t.Errorf("Sub = %v, want (2, -7)", got)
	}
	if got := a.Mul(b); got != V2(3, -10) {
		t.Errorf("Mul = %v, want (3, -10)", got)
	}
	if got := a.Scale(2); got != V2(6, -4) {
		t.Errorf("Scale = %v, want (6, -4)", got)
	}
	if got := V2(9, 7).Div(2); got != V2(4, 3) {
		t.Errorf("Div = %v, want (4, 3)", got)
	}
	if got := a.String(); got != "(3, -2)" {
		t.Errorf("String = %q, want %q", got, "(3, -2)")
	}
}

func TestRotateAxis(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		axis  Axis
		angle float64
		want  Vec3
	}{
		{"zero angle", V3(1, 2, 3), AxisY, 0, V3(1, 2, 3)},
		{"x quarter turn", V3(0, 1, 0), AxisX, math.Pi / 2, V3(0, 0, 1)},
		{"y quarter turn", V3(1, 0, 0), AxisY, math.Pi / 2, V3(0, 0, 1)},
		{"z quarter turn", V3(1, 0, 0), AxisZ, math.Pi / 2, V3(0, 1, 0)},
		{"axis unchanged", V3(0, 5, 0), AxisY, 1.3, V3(0, 5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.RotateAxis(tt.axis, tt.angle)
			if !vecNear(got, tt.want, 1e-9) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateAxisMatchesMatrices(t *testing.T) {
	v := V3(0.3, -1.2, 2.5)
	angle := 0.7

	if got, want := v.RotateAxis(AxisX, angle), RotateX(angle).MulVec3(v); !vecNear(got, want, 1e-9) {
		t.Errorf("X: got %v, want %v", got, want)
	}
	if got, want := v.RotateAxis(AxisY, angle), RotateY(-angle).MulVec3(v); !vecNear(got, want, 1e-9) {
		t.Errorf("Y: got %v, want %v", got, want)
	}
	if got, want := v.RotateAxis(AxisZ, angle), RotateZ(angle).MulVec3(v); !vecNear(got, want, 1e-9) {
		t.Errorf("Z: got %v, want %v", got, want)
	}
}

func TestVec3Basics(t *testing.T) {
	a, b := V3(1, 0, 0), V3(0, 1, 0)
	if got := a.Cross(b); got != V3(0, 0, 1) {
		t.Errorf("Cross = %v, want (0, 0, 1)", got)
	}
	if got := V3(3, 4, 0).Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := Zero3().Normalize(); got != Zero3() {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
	if got := V3(1, 5, -2).Min(V3(2, 3, -1)); got != V3(1, 3, -2) {
		t.Errorf("Min = %v", got)
	}
	if got := V3(1, 5, -2).Max(V3(2, 3, -1)); got != V3(2, 5, -1) {
		t.Errorf("Max = %v", got)
	}
}

func TestMat4TranslateScale(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(ScaleUniform(2))
	got := m.MulVec3(V3(1, 1, 1))
	if !vecNear(got, V3(3, 4, 5), 1e-12) {
		t.Errorf("got %v, want (3, 4, 5)", got)
	}
	if got := Translate(V3(-1, -2, -3)).Mul(m).MulVec3(V3(1, 1, 1)); !vecNear(got, V3(2, 2, 2), 1e-12) {
		t.Errorf("translation did not cancel: got %v, want (2, 2, 2)", got)
	}
}
