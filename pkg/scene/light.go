package scene

import (
	"math"

	"github.com/taigrr/cellrender/pkg/math3d"
)

// LightKind identifies a Light's type.
type LightKind uint8

const (
	LightAmbient     LightKind = iota // Uniform, ignores orientation
	LightDirectional                  // Parallel rays along Direction
	LightPoint                        // Rays radiating from Position
)

// BrightnessRamp lists the shading characters from darkest to brightest.
const BrightnessRamp = ".,-~:;=!*(%#$@"

// Light illuminates faces in Illuminated mode. Direction and Position are in
// camera space, so lights stay fixed relative to the viewer.
type Light struct {
	Kind      LightKind
	Intensity float64
	Direction math3d.Vec3 // Directional: the way the light travels
	Position  math3d.Vec3 // Point: where the light sits
}

// AmbientLight returns a light that adds intensity to every face.
func AmbientLight(intensity float64) Light {
	return Light{Kind: LightAmbient, Intensity: intensity}
}

// DirectionalLight returns a light shining along direction.
func DirectionalLight(intensity float64, direction math3d.Vec3) Light {
	return Light{Kind: LightDirectional, Intensity: intensity, Direction: direction}
}

// PointLight returns a light at position.
func PointLight(intensity float64, position math3d.Vec3) Light {
	return Light{Kind: LightPoint, Intensity: intensity, Position: position}
}

// Contribution returns how much l lights a surface at point with the given
// outward normal: Intensity * max(0, cos θ), where θ is the angle between the
// normal and the direction towards the light.
func (l Light) Contribution(point, normal math3d.Vec3) float64 {
	var toLight math3d.Vec3
	switch l.Kind {
	case LightAmbient:
		return l.Intensity
	case LightDirectional:
		toLight = l.Direction.Negate()
	case LightPoint:
		toLight = l.Position.Sub(point)
	default:
		return 0
	}

	denom := normal.Len() * toLight.Len()
	if denom == 0 {
		return 0
	}
	return l.Intensity * math.Max(0, normal.Dot(toLight)) / denom
}

// TotalIntensity sums the contribution of every light.
func TotalIntensity(lights []Light, point, normal math3d.Vec3) float64 {
	var total float64
	for _, l := range lights {
		total += l.Contribution(point, normal)
	}
	return total
}

// ShadeIndex maps an intensity to a ramp position: round(intensity * n),
// clamped to [0, n-1].
func ShadeIndex(intensity float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(math.Round(intensity * float64(n)))
	return min(max(i, 0), n-1)
}

// ShadeChar returns the BrightnessRamp character for intensity.
func ShadeChar(intensity float64) rune {
	return rampRunes[ShadeIndex(intensity, len(rampRunes))]
}

var rampRunes = []rune(BrightnessRamp)
