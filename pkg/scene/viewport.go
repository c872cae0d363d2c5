package scene

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/taigrr/cellrender/pkg/canvas"
	"github.com/taigrr/cellrender/pkg/math3d"
	"github.com/taigrr/cellrender/pkg/raster"
)

const (
	// DefaultWidthStretch compensates for terminal cells being roughly
	// twice as tall as they are wide.
	DefaultWidthStretch = 2.2
	// DefaultNearClip is the default distance in front of the camera below
	// which faces are dropped.
	DefaultNearClip = 0.1
)

// Viewport is the camera. It looks down -Z from its Transform's position;
// its Transform is applied in reverse (translation removed, then rotation
// undone) and its scale is ignored.
type Viewport struct {
	Transform    Transform
	FOV          float64
	Origin       math3d.Vec2
	WidthStretch float64
	NearClip     float64

	// scratch buffers reused between frames
	view   []math3d.Vec3
	screen []math3d.Vec2
	points []math3d.Vec2
}

// NewViewport creates a camera placed by camera, projecting with fov onto a
// canvas whose centre of projection is origin.
func NewViewport(camera Transform, fov float64, origin math3d.Vec2) *Viewport {
	return &Viewport{
		Transform:    camera,
		FOV:          fov,
		Origin:       origin,
		WidthStretch: DefaultWidthStretch,
		NearClip:     DefaultNearClip,
	}
}

// ToView moves a world-space point into camera space.
func (v *Viewport) ToView(p math3d.Vec3) math3d.Vec3 {
	return newRotor(v.Transform.Rotation.Negate()).apply(p.Sub(v.Transform.Translation))
}

// Perspective projects a camera-space point onto the canvas. The point must
// be in front of the camera (z < 0); see Visible.
func (v *Viewport) Perspective(p math3d.Vec3) math3d.Vec2 {
	f := v.FOV / -p.Z
	sx := math.Round(-p.X * f * v.WidthStretch)
	sy := math.Round(p.Y * f)
	return math3d.V2(int(sx), int(sy)).Add(v.Origin)
}

// Visible reports whether a camera-space point is beyond the near clip
// distance.
func (v *Viewport) Visible(p math3d.Vec3) bool {
	return p.Z < -v.NearClip
}

// ProjectedVertex is a vertex after projection.
type ProjectedVertex struct {
	Index   int
	View    math3d.Vec3 // camera space
	Screen  math3d.Vec2
	Visible bool // false when behind the near clip; Screen is then unset
}

// ProjectVertices transforms every vertex of m into camera space and
// projects the visible ones.
func (v *Viewport) ProjectVertices(m MeshRenderer) []ProjectedVertex {
	v.transformMesh(m)
	out := make([]ProjectedVertex, len(v.view))
	for i, p := range v.view {
		out[i] = ProjectedVertex{Index: i, View: p, Screen: v.screen[i], Visible: v.Visible(p)}
	}
	return out
}

// transformMesh fills v.view and v.screen for m.
func (v *Viewport) transformMesh(m MeshRenderer) {
	t := m.GetTransform()
	obj := newRotor(t.Rotation)
	cam := newRotor(v.Transform.Rotation.Negate())

	n := m.VertexCount()
	v.view = slices.Grow(v.view[:0], n)
	v.screen = slices.Grow(v.screen[:0], n)
	for i := range n {
		p := obj.apply(m.GetVertex(i).Mul(t.Scale)).Add(t.Translation)
		p = cam.apply(p.Sub(v.Transform.Translation))
		v.view = append(v.view, p)

		var s math3d.Vec2
		if v.Visible(p) {
			s = v.Perspective(p)
		}
		v.screen = append(v.screen, s)
	}
}

// ProjectedFace is a face that survived clipping (and culling, if enabled).
type ProjectedFace struct {
	Screen []math3d.Vec2
	View   []math3d.Vec3 // camera-space vertices
	Depth  float64       // mean distance of the vertices from the camera
	Glyph  canvas.Glyph
}

// Normal returns the unit normal (v0 - v2) × (v1 - v2) of the face's first
// three vertices. Faces with fewer than three vertices have no normal.
func (f ProjectedFace) Normal() (math3d.Vec3, bool) {
	if len(f.View) < 3 {
		return math3d.Vec3{}, false
	}
	v0, v1, v2 := f.View[0], f.View[1], f.View[2]
	return v0.Sub(v2).Cross(v1.Sub(v2)).Normalize(), true
}

// Center returns the mean of the face's camera-space vertices.
func (f ProjectedFace) Center() math3d.Vec3 {
	var sum math3d.Vec3
	for _, p := range f.View {
		sum = sum.Add(p)
	}
	if len(f.View) == 0 {
		return sum
	}
	return sum.Div(float64(len(f.View)))
}

// FaceOptions controls ProjectFaces.
type FaceOptions struct {
	// Cull drops faces whose projection is not clockwise, i.e. faces
	// turned away from the camera.
	Cull bool
	// Sort orders faces farthest first. Faces at equal depth keep their
	// submission order.
	Sort bool
}

// ProjectFaces projects every face of every mesh. Faces with a vertex behind
// the near clip are always dropped. A face index outside its mesh's vertex
// list panics.
func (v *Viewport) ProjectFaces(meshes []MeshRenderer, opts FaceOptions) []ProjectedFace {
	var faces []ProjectedFace
	for _, m := range meshes {
		v.transformMesh(m)
		for fi := range m.FaceCount() {
			face := m.GetFace(fi)
			pf, ok := v.projectFace(face, fi)
			if !ok {
				continue
			}
			if opts.Cull && !raster.IsClockwise(pf.Screen) {
				continue
			}
			faces = append(faces, pf)
		}
	}

	if opts.Sort {
		slices.SortStableFunc(faces, func(a, b ProjectedFace) int {
			return cmp.Compare(b.Depth, a.Depth)
		})
	}
	return faces
}

// projectFace gathers a face's vertices from the current mesh buffers.
func (v *Viewport) projectFace(face Face, fi int) (ProjectedFace, bool) {
	pf := ProjectedFace{
		Screen: make([]math3d.Vec2, 0, len(face.V)),
		View:   make([]math3d.Vec3, 0, len(face.V)),
		Glyph:  face.Glyph,
	}
	var depth float64
	clipped := false
	for _, idx := range face.V {
		if idx < 0 || idx >= len(v.view) {
			panic(fmt.Sprintf("scene: face %d references vertex %d, mesh has %d", fi, idx, len(v.view)))
		}
		p := v.view[idx]
		if !v.Visible(p) {
			clipped = true
			continue
		}
		pf.View = append(pf.View, p)
		pf.Screen = append(pf.Screen, v.screen[idx])
		depth += p.Len()
	}
	if clipped {
		return ProjectedFace{}, false
	}
	if len(face.V) > 0 {
		pf.Depth = depth / float64(len(face.V))
	}
	return pf, true
}
