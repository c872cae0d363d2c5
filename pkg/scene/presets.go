package scene

import (
	"math"

	"github.com/taigrr/cellrender/pkg/canvas"
	"github.com/taigrr/cellrender/pkg/math3d"
)

// Cube returns a 2x2x2 cube centred on the origin. The faces on the X axis
// are blue, those on the Y axis red and those on the Z axis unstyled.
func Cube() *Mesh {
	vertices := []math3d.Vec3{
		{X: 1, Y: 1, Z: -1},
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: 1},
		{X: -1, Y: -1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	blue := canvas.Solid.WithMod(canvas.Blue)
	red := canvas.Solid.WithMod(canvas.Red)
	faces := []Face{
		NewFace(blue, 0, 1, 3, 2),         // +X
		NewFace(blue, 6, 7, 5, 4),         // -X
		NewFace(canvas.Solid, 5, 7, 3, 1), // +Z
		NewFace(canvas.Solid, 0, 2, 6, 4), // -Z
		NewFace(red, 2, 3, 7, 6),          // -Y
		NewFace(red, 4, 5, 1, 0),          // +Y
	}
	return NewMesh(vertices, faces)
}

// Torus returns a torus around the Y axis with the given ring radius, tube
// radius and segment counts. The mesh has outerSegments*innerSegments
// vertices and as many quad faces.
func Torus(outerRadius, innerRadius float64, outerSegments, innerSegments int) *Mesh {
	outerSegments = max(outerSegments, 3)
	innerSegments = max(innerSegments, 3)

	vertices := make([]math3d.Vec3, 0, outerSegments*innerSegments)
	for o := range outerSegments {
		angle := 2 * math.Pi * float64(o) / float64(outerSegments)
		s, c := math.Sincos(angle)
		ring := math3d.V3(c*outerRadius, 0, s*outerRadius)
		for i := range innerSegments {
			inner := 2 * math.Pi * float64(i) / float64(innerSegments)
			tube := math3d.V3(math.Cos(inner)*innerRadius, math.Sin(inner)*innerRadius, 0)
			vertices = append(vertices, ring.Add(tube.RotateAxisSinCos(math3d.AxisY, s, c)))
		}
	}

	faces := make([]Face, 0, outerSegments*innerSegments)
	for o := range outerSegments {
		nextO := (o + 1) % outerSegments
		for i := range innerSegments {
			nextI := (i + 1) % innerSegments
			faces = append(faces, NewFace(canvas.Solid,
				o*innerSegments+i,
				o*innerSegments+nextI,
				nextO*innerSegments+nextI,
				nextO*innerSegments+i,
			))
		}
	}
	return NewMesh(vertices, faces)
}

// Gimbal returns three unit axis lines from the origin: X red, Y green and
// Z blue. Its faces are lines, so it shows in points, debug and wireframe
// modes only.
func Gimbal() *Mesh {
	vertices := []math3d.Vec3{
		{},
		{X: 1},
		{Y: 1},
		{Z: 1},
	}
	faces := []Face{
		NewFace(canvas.Solid.WithMod(canvas.Red), 0, 1),
		NewFace(canvas.Solid.WithMod(canvas.Green), 0, 2),
		NewFace(canvas.Solid.WithMod(canvas.Blue), 0, 3),
	}
	return NewMesh(vertices, faces)
}
