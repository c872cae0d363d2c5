package raster

import (
	"math"
	"slices"
	"testing"

	"github.com/taigrr/cellrender/pkg/math3d"
)

func TestIsClockwise(t *testing.T) {
	tests := []struct {
		name   string
		points []math3d.Vec2
		want   bool
	}{
		{"down then right", []math3d.Vec2{{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0}}, true},
		{"right then down", []math3d.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, false},
		{"collinear", []math3d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, true},
		{"two points", []math3d.Vec2{{X: 0, Y: 0}, {X: 5, Y: 3}}, true},
		{"empty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClockwise(tt.points); got != tt.want {
				t.Errorf("IsClockwise(%v) = %v, want %v", tt.points, got, tt.want)
			}
		})
	}
}

func TestTriangulateSquare(t *testing.T) {
	got := Triangulate([]math3d.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}})
	want := [][3]int{{0, 1, 2}, {0, 2, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTriangulateConvexMatchesFan(t *testing.T) {
	for n := 3; n <= 12; n++ {
		verts := regularPolygon(n, math3d.V2(20, 20), 15)
		tris := Triangulate(verts)
		if len(tris) != n-2 {
			t.Fatalf("n=%d: got %d triangles, want %d", n, len(tris), n-2)
		}

		var fan []math3d.Vec2
		for i := 1; i < n-1; i++ {
			fan = AppendTriangle(fan, verts[0], verts[i], verts[i+1])
		}
		if got, want := cellSet(Polygon(verts)), cellSet(fan); !sameSet(got, want) {
			t.Errorf("n=%d: polygon covers %d cells, fan covers %d", n, len(got), len(want))
		}
	}
}

func TestTriangulateConcave(t *testing.T) {
	// L shape: a reflex corner at (2, 2).
	verts := []math3d.Vec2{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 6}, {X: 0, Y: 6}}
	tris := Triangulate(verts)
	if len(tris) != len(verts)-2 {
		t.Fatalf("got %d triangles, want %d", len(tris), len(verts)-2)
	}

	whole := doubleArea(verts)
	sum := 0
	for _, tri := range tris {
		a := doubleArea([]math3d.Vec2{verts[tri[0]], verts[tri[1]], verts[tri[2]]})
		if sign(a) != sign(whole) {
			t.Errorf("triangle %v winds against the polygon", tri)
		}
		sum += a
	}
	if sum != whole {
		t.Errorf("triangle areas sum to %d, want %d", sum, whole)
	}
}

func TestTriangulateTerminatesWithoutEars(t *testing.T) {
	tests := []struct {
		name  string
		verts []math3d.Vec2
	}{
		{"collinear", []math3d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
		{"bowtie", []math3d.Vec2{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 4}}},
		{"repeated point", []math3d.Vec2{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tris := Triangulate(tt.verts)
			if len(tris) != len(tt.verts)-2 {
				t.Errorf("got %d triangles, want %d", len(tris), len(tt.verts)-2)
			}
		})
	}
}

func TestTriangulateFallbackClipsFirstVertex(t *testing.T) {
	got := Triangulate([]math3d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}})
	want := [][3]int{{3, 0, 1}, {1, 2, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPolygonTooFewVertices(t *testing.T) {
	if got := Polygon([]math3d.Vec2{{X: 0, Y: 0}, {X: 3, Y: 3}}); len(got) != 0 {
		t.Errorf("two-vertex polygon produced %v", got)
	}
	if got := Triangulate(nil); got != nil {
		t.Errorf("Triangulate(nil) = %v, want nil", got)
	}
}

func regularPolygon(n int, center math3d.Vec2, radius float64) []math3d.Vec2 {
	verts := make([]math3d.Vec2, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = math3d.V2(
			center.X+int(math.Round(radius*math.Cos(a))),
			center.Y+int(math.Round(radius*math.Sin(a))),
		)
	}
	return verts
}
