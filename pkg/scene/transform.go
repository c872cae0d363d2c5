// Package scene projects 3D meshes onto a character canvas: object and
// camera transforms, perspective projection, backface culling, near
// clipping, painter's-algorithm ordering and flat lighting.
package scene

import (
	"math"

	"github.com/taigrr/cellrender/pkg/math3d"
)

// Transform places an object: scale, then rotate, then translate. Rotation
// holds per-axis angles in radians and is applied around Y, then X, then Z.
//
// The zero Transform has zero scale and collapses everything to a point;
// start from DefaultTransform.
type Transform struct {
	Translation math3d.Vec3
	Rotation    math3d.Vec3
	Scale       math3d.Vec3
}

// DefaultTransform returns the identity transform.
func DefaultTransform() Transform {
	return Transform{Scale: math3d.One3()}
}

// NewTransform creates a Transform from translation, rotation and scale.
func NewTransform(translation, rotation, scale math3d.Vec3) Transform {
	return Transform{Translation: translation, Rotation: rotation, Scale: scale}
}

// Translated returns an identity-scale transform with only a translation.
func Translated(translation math3d.Vec3) Transform {
	return Transform{Translation: translation, Scale: math3d.One3()}
}

// Rotated returns an identity-scale transform with a translation and a
// rotation.
func Rotated(translation, rotation math3d.Vec3) Transform {
	return Transform{Translation: translation, Rotation: rotation, Scale: math3d.One3()}
}

// Compose combines two transforms by summing translations and rotations and
// multiplying scales component-wise. This is not a matrix product: it is
// exact only when at most one side rotates or scales. Use Matrix for exact
// nesting.
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		Translation: t.Translation.Add(o.Translation),
		Rotation:    t.Rotation.Add(o.Rotation),
		Scale:       t.Scale.Mul(o.Scale),
	}
}

// Rotate applies only the rotation part to v.
func (t Transform) Rotate(v math3d.Vec3) math3d.Vec3 {
	return newRotor(t.Rotation).apply(v)
}

// Apply transforms a single point.
func (t Transform) Apply(v math3d.Vec3) math3d.Vec3 {
	return newRotor(t.Rotation).apply(v.Mul(t.Scale)).Add(t.Translation)
}

// ApplyAll transforms every vertex into a new slice.
func (t Transform) ApplyAll(vertices []math3d.Vec3) []math3d.Vec3 {
	return t.AppendApplied(make([]math3d.Vec3, 0, len(vertices)), vertices)
}

// AppendApplied transforms every vertex and appends the results to dst.
func (t Transform) AppendApplied(dst, vertices []math3d.Vec3) []math3d.Vec3 {
	r := newRotor(t.Rotation)
	for _, v := range vertices {
		dst = append(dst, r.apply(v.Mul(t.Scale)).Add(t.Translation))
	}
	return dst
}

// Matrix returns the affine matrix equivalent to Apply.
func (t Transform) Matrix() math3d.Mat4 {
	return math3d.Translate(t.Translation).
		Mul(math3d.RotateZ(t.Rotation.Z)).
		Mul(math3d.RotateX(t.Rotation.X)).
		Mul(math3d.RotateY(-t.Rotation.Y)).
		Mul(math3d.Scale(t.Scale))
}

// rotor caches the sines and cosines of a rotation so a whole vertex list is
// rotated with one set of trig calls.
type rotor struct {
	sy, cy float64
	sx, cx float64
	sz, cz float64
	active [3]bool
}

func newRotor(r math3d.Vec3) rotor {
	var ro rotor
	ro.sy, ro.cy = math.Sincos(r.Y)
	ro.sx, ro.cx = math.Sincos(r.X)
	ro.sz, ro.cz = math.Sincos(r.Z)
	ro.active = [3]bool{r.Y != 0, r.X != 0, r.Z != 0}
	return ro
}

func (r rotor) apply(v math3d.Vec3) math3d.Vec3 {
	if r.active[0] {
		v = v.RotateAxisSinCos(math3d.AxisY, r.sy, r.cy)
	}
	if r.active[1] {
		v = v.RotateAxisSinCos(math3d.AxisX, r.sx, r.cx)
	}
	if r.active[2] {
		v = v.RotateAxisSinCos(math3d.AxisZ, r.sz, r.cz)
	}
	return v
}
