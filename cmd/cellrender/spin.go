package main

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/cellrender/pkg/math3d"
)

// spinAxis tracks the angle and angular velocity around one axis. The
// velocity decays to zero through a critically damped spring.
type spinAxis struct {
	Angle     float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // spring velocity of Velocity itself
}

func newSpinAxis(fps int) spinAxis {
	return spinAxis{
		// Frequency 4.0 slows a spin down over about a second; damping 1.0
		// never reverses it.
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances the angle by one frame and decays the velocity.
func (a *spinAxis) Update() {
	a.Angle += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// spin is the mesh's rotation around X, Y and Z.
type spin struct {
	X, Y, Z spinAxis
	fps     int
}

func newSpin(fps int) *spin {
	s := &spin{fps: fps}
	s.Reset()
	return s
}

func (s *spin) Update() {
	s.X.Update()
	s.Y.Update()
	s.Z.Update()
}

// Impulse adds angular velocity, in radians per frame.
func (s *spin) Impulse(x, y, z float64) {
	s.X.Velocity += x
	s.Y.Velocity += y
	s.Z.Velocity += z
}

func (s *spin) Reset() {
	s.X = newSpinAxis(s.fps)
	s.Y = newSpinAxis(s.fps)
	s.Z = newSpinAxis(s.fps)
}

// Rotation returns the angles as a scene.Transform rotation.
func (s *spin) Rotation() math3d.Vec3 {
	return math3d.V3(s.X.Angle, s.Y.Angle, s.Z.Angle)
}
