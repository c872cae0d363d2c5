package models

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/cellrender/pkg/canvas"
	"github.com/taigrr/cellrender/pkg/math3d"
)

// writeQuadGLTF writes a unit square made of two triangles, with its buffer
// embedded as a data URI, and returns the file path.
func writeQuadGLTF(t *testing.T, indices []uint16, material string) string {
	t.Helper()

	positions := []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}
	var buf []byte
	for _, f := range positions {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for _, i := range indices {
		buf = binary.LittleEndian.AppendUint16(buf, i)
	}

	materials, primMaterial := "", ""
	if material != "" {
		materials = fmt.Sprintf(`"materials": [{"pbrMetallicRoughness": {"baseColorFactor": %s}}],`, material)
		primMaterial = `, "material": 0`
	}

	doc := fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "buffers": [{"byteLength": %d, "uri": "data:application/octet-stream;base64,%s"}],
  "bufferViews": [
    {"buffer": 0, "byteOffset": 0, "byteLength": 48},
    {"buffer": 0, "byteOffset": 48, "byteLength": %d}
  ],
  "accessors": [
    {"bufferView": 0, "componentType": 5126, "count": 4, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]},
    {"bufferView": 1, "componentType": 5123, "count": %d, "type": "SCALAR"}
  ],
  %s
  "meshes": [{"name": "quad", "primitives": [{"attributes": {"POSITION": 0}, "indices": 1%s}]}]
}`, len(buf), base64.StdEncoding.EncodeToString(buf), 2*len(indices), len(indices), materials, primMaterial)

	path := filepath.Join(t.TempDir(), "quad.gltf")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGLTF(t *testing.T) {
	path := writeQuadGLTF(t, []uint16{0, 1, 2, 0, 2, 3}, "[1, 0, 0, 1]")

	mesh, err := NewGLTFLoader().LoadGLTF(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Vertices) != 4 || len(mesh.Faces) != 2 {
		t.Fatalf("got %d vertices and %d faces, want 4 and 2", len(mesh.Vertices), len(mesh.Faces))
	}
	if err := mesh.Validate(); err != nil {
		t.Fatal(err)
	}
	if mesh.Vertices[2] != math3d.V3(1, 1, 0) {
		t.Errorf("vertex 2 = %v, want (1, 1, 0)", mesh.Vertices[2])
	}

	// File order is kept: counter-clockwise seen from +Z gives a +Z normal.
	f := mesh.Faces[0]
	if f.V[0] != 0 || f.V[1] != 1 || f.V[2] != 2 {
		t.Errorf("face 0 = %v, want [0 1 2]", f.V)
	}
	v0, v1, v2 := mesh.Vertices[f.V[0]], mesh.Vertices[f.V[1]], mesh.Vertices[f.V[2]]
	if n := v0.Sub(v2).Cross(v1.Sub(v2)); n.Z <= 0 {
		t.Errorf("face normal %v does not face +Z", n)
	}

	if want := canvas.RGB(255, 0, 0); f.Glyph.Mod != want {
		t.Errorf("face modifier = %v, want %v", f.Glyph.Mod, want)
	}
}

func TestLoadGLTFOptions(t *testing.T) {
	path := writeQuadGLTF(t, []uint16{0, 1, 2}, "[0, 0, 1, 1]")

	loader := NewGLTFLoader()
	loader.MaterialColors = false
	loader.Glyph = canvas.NewGlyph('#', canvas.None)

	mesh, err := loader.LoadGLTF(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := mesh.Faces[0].Glyph; got != loader.Glyph {
		t.Errorf("face glyph = %v, want %v", got, loader.Glyph)
	}
}

func TestLoadGLTFErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(*testing.T) string { return "/nonexistent/path.glb" }},
		{"index out of range", func(t *testing.T) string { return writeQuadGLTF(t, []uint16{0, 1, 7}, "") }},
		{"no triangles", func(t *testing.T) string { return writeQuadGLTF(t, []uint16{0, 1}, "") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGLTFLoader().LoadGLB(tt.path(t)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	_, err := NewGLTFLoader().LoadGLTF(writeQuadGLTF(t, []uint16{0, 1}, ""))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("error %v does not wrap ErrUnsupported", err)
	}
}
