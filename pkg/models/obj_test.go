package models

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/cellrender/pkg/math3d"
)

const cubeOBJ = `# unit cube
o cube
v -1 -1  1
v  1 -1  1
v  1  1  1
v -1  1  1
v -1 -1 -1
v  1 -1 -1
v  1  1 -1
v -1  1 -1
vn 0 0 1
vt 0 0
f 1/1/1 2/1/1 3/1/1 4/1/1
f 6 5 8 7
f 2//1 6//1 7//1 3//1
f 5/1 1/1 4/1 8/1
f 4 3 7 8
f -4 -3 -7 -8 # bottom, relative
`

func TestParseOBJ(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Vertices) != 8 || len(mesh.Faces) != 6 {
		t.Fatalf("got %d vertices and %d faces, want 8 and 6", len(mesh.Vertices), len(mesh.Faces))
	}
	if err := mesh.Validate(); err != nil {
		t.Fatal(err)
	}

	wantFront := []int{0, 1, 2, 3}
	for i, idx := range mesh.Faces[0].V {
		if idx != wantFront[i] {
			t.Fatalf("face 0 = %v, want %v", mesh.Faces[0].V, wantFront)
		}
	}
	wantBottom := []int{4, 5, 1, 0}
	for i, idx := range mesh.Faces[5].V {
		if idx != wantBottom[i] {
			t.Fatalf("face 5 = %v, want %v", mesh.Faces[5].V, wantBottom)
		}
	}

	for i, f := range mesh.Faces {
		v0, v1, v2 := mesh.Vertices[f.V[0]], mesh.Vertices[f.V[1]], mesh.Vertices[f.V[2]]
		if n := v0.Sub(v2).Cross(v1.Sub(v2)); n.Dot(v0) <= 0 {
			t.Errorf("face %d normal %v points inwards", i, n)
		}
	}
}

func TestParseOBJLines(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 1 1 0\nl 1 2 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Faces) != 2 {
		t.Fatalf("got %d faces, want 2 segments", len(mesh.Faces))
	}
	if f := mesh.Faces[1]; len(f.V) != 2 || f.V[0] != 1 || f.V[1] != 2 {
		t.Errorf("segment 1 = %v, want [1 2]", f.V)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine string
	}{
		{"bad coordinate", "v 0 0 0\nv 1 x 0\n", "line 2"},
		{"short vertex", "v 0 0\n", "line 1"},
		{"index past end", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", "line 4"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "line 4"},
		{"relative past start", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -1 -2 -4\n", "line 4"},
		{"two vertex face", "v 0 0 0\nv 1 0 0\n\nf 1 2\n", "line 4"},
		{"garbage reference", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf a/b 2 3\n", "line 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("error %q does not mention %q", err, tt.wantLine)
			}
		})
	}

	_, err := ParseOBJ(strings.NewReader("v 0 0 0\n"))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("faceless obj error = %v, want ErrUnsupported", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "cube.OBJ")
	if err := os.WriteFile(objPath, []byte(cubeOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, err := Load(objPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Faces) != 6 {
		t.Errorf("got %d faces, want 6", len(mesh.Faces))
	}

	if _, err := Load(filepath.Join(dir, "model.stl")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Load(.stl) error = %v, want ErrUnsupported", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.obj")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestNormalize(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader("v 2 2 2\nv 6 4 3\nv 2 4 2\nf 1 2 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	Normalize(mesh, 2)

	lo, hi := mesh.Bounds()
	if !vecNear(lo, math3d.V3(-1, -0.5, -0.25)) || !vecNear(hi, math3d.V3(1, 0.5, 0.25)) {
		t.Errorf("Bounds() after Normalize = %v, %v", lo, hi)
	}

	flat, err := ParseOBJ(strings.NewReader("v 3 3 3\nv 3 3 3\nv 3 3 3\nf 1 2 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	Normalize(flat, 2)
	if flat.Vertices[0] != (math3d.Vec3{}) {
		t.Errorf("degenerate mesh moved to %v, want origin", flat.Vertices[0])
	}
}

func vecNear(a, b math3d.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

func BenchmarkParseOBJ(b *testing.B) {
	for b.Loop() {
		if _, err := ParseOBJ(strings.NewReader(cubeOBJ)); err != nil {
			b.Fatal(err)
		}
	}
}
