package scene

import (
	"fmt"

	"github.com/taigrr/cellrender/pkg/canvas"
	"github.com/taigrr/cellrender/pkg/math3d"
)

// Face is one planar surface of a mesh: indices into the mesh's vertex list
// plus the glyph it is drawn with. Front faces list their vertices
// counter-clockwise when seen from outside the mesh. Faces with two vertices
// are drawn as lines.
type Face struct {
	V     []int
	Glyph canvas.Glyph
}

// NewFace creates a Face.
func NewFace(g canvas.Glyph, indices ...int) Face {
	return Face{V: indices, Glyph: g}
}

// MeshRenderer is anything the Viewport can project.
type MeshRenderer interface {
	GetTransform() Transform
	VertexCount() int
	GetVertex(i int) math3d.Vec3
	FaceCount() int
	GetFace(i int) Face
}

// Mesh is a polygon mesh in local space placed by its Transform.
type Mesh struct {
	Transform Transform
	Vertices  []math3d.Vec3
	Faces     []Face
}

// NewMesh creates a mesh with the identity transform.
func NewMesh(vertices []math3d.Vec3, faces []Face) *Mesh {
	return &Mesh{
		Transform: DefaultTransform(),
		Vertices:  vertices,
		Faces:     faces,
	}
}

// GetTransform implements MeshRenderer.
func (m *Mesh) GetTransform() Transform { return m.Transform }

// VertexCount implements MeshRenderer.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// GetVertex implements MeshRenderer.
func (m *Mesh) GetVertex(i int) math3d.Vec3 { return m.Vertices[i] }

// FaceCount implements MeshRenderer.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// GetFace implements MeshRenderer.
func (m *Mesh) GetFace(i int) Face { return m.Faces[i] }

// Validate checks that every face has at least two vertices and that every
// index is in range. Rendering an invalid mesh panics, so loaders should call
// Validate on untrusted input.
func (m *Mesh) Validate() error {
	for fi, f := range m.Faces {
		if len(f.V) < 2 {
			return fmt.Errorf("face %d has %d vertices, need at least 2", fi, len(f.V))
		}
		for _, idx := range f.V {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("face %d references vertex %d, mesh has %d", fi, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// Bounds returns the local-space bounding box. An empty mesh returns zero
// vectors.
func (m *Mesh) Bounds() (lo, hi math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	faces := make([]Face, len(m.Faces))
	for i, f := range m.Faces {
		faces[i] = Face{V: append([]int(nil), f.V...), Glyph: f.Glyph}
	}
	return &Mesh{
		Transform: m.Transform,
		Vertices:  append([]math3d.Vec3(nil), m.Vertices...),
		Faces:     faces,
	}
}

// SetGlyph draws every face with g.
func (m *Mesh) SetGlyph(g canvas.Glyph) {
	for i := range m.Faces {
		m.Faces[i].Glyph = g
	}
}
