// Package models loads meshes from glTF and Wavefront OBJ files into
// scene.Mesh values ready for a Viewport.
package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/taigrr/cellrender/pkg/math3d"
	"github.com/taigrr/cellrender/pkg/scene"
)

// ErrUnsupported is returned for file formats and model features the
// loaders cannot handle.
var ErrUnsupported = errors.New("unsupported model")

// Load reads the model at path, picking a loader from the file extension.
func Load(path string) (*scene.Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb":
		return NewGLTFLoader().LoadGLB(path)
	case ".gltf":
		return NewGLTFLoader().LoadGLTF(path)
	case ".obj":
		return LoadOBJ(path)
	default:
		return nil, fmt.Errorf("%w: %q files", ErrUnsupported, ext)
	}
}

// Normalize centres m on its local origin and scales it uniformly so that
// its largest bounding-box extent is size. A mesh with no extent is only
// centred.
func Normalize(m *scene.Mesh, size float64) {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi := m.Bounds()
	extent := hi.Sub(lo)
	largest := max(extent.X, extent.Y, extent.Z)

	xf := math3d.Translate(lo.Add(hi).Scale(-0.5))
	if largest > 0 {
		xf = math3d.ScaleUniform(size / largest).Mul(xf)
	}
	for i, v := range m.Vertices {
		m.Vertices[i] = xf.MulVec3(v)
	}
}
