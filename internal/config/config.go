package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/taigrr/cellrender/pkg/canvas"
	"github.com/taigrr/cellrender/pkg/math3d"
	"github.com/taigrr/cellrender/pkg/scene"
)

// Prefix is prepended to every environment variable name.
const Prefix = "CELLRENDER"

type Config struct {
	FPS            int     `envconfig:"FPS" default:"30"`
	FOV            float64 `envconfig:"FOV" default:"95"`
	WidthStretch   float64 `envconfig:"WIDTH_STRETCH" default:"2.2"`
	NearClip       float64 `envconfig:"NEAR_CLIP" default:"0.1"`
	Mode           string  `envconfig:"MODE" default:"illuminated"`
	Shape          string  `envconfig:"SHAPE" default:"torus"`
	Wrap           string  `envconfig:"WRAP" default:"ignore"`
	CameraDistance float64 `envconfig:"CAMERA_DISTANCE" default:"6"`
	Ambient        float64 `envconfig:"AMBIENT" default:"0.3"`
	Directional    float64 `envconfig:"DIRECTIONAL" default:"0.7"`
	Grid           bool    `envconfig:"GRID" default:"false"`
	LogFile        string  `envconfig:"LOG_FILE"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that would make the viewer misbehave.
func (c *Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	case c.FOV <= 0:
		return fmt.Errorf("fov must be positive, got %g", c.FOV)
	case c.WidthStretch <= 0:
		return fmt.Errorf("width stretch must be positive, got %g", c.WidthStretch)
	case c.NearClip < 0:
		return fmt.Errorf("near clip must not be negative, got %g", c.NearClip)
	}
	if _, err := ParseMode(c.Mode, nil); err != nil {
		return err
	}
	if _, err := ParseWrap(c.Wrap); err != nil {
		return err
	}
	return nil
}

// Lights returns the ambient light and a directional light shining from the
// upper left, behind the camera.
func (c *Config) Lights() []scene.Light {
	return []scene.Light{
		scene.AmbientLight(c.Ambient),
		scene.DirectionalLight(c.Directional, math3d.V3(1, -1, -1)),
	}
}

// DisplayMode returns the configured display mode.
func (c *Config) DisplayMode() (scene.DisplayMode, error) {
	return ParseMode(c.Mode, c.Lights())
}

// ModeNames lists the names accepted by ParseMode, in cycling order.
var ModeNames = []string{"points", "debug", "wireframe", "wireframe-culled", "solid", "illuminated"}

// ParseMode maps a mode name to a display mode. lights is used by
// "illuminated".
func ParseMode(name string, lights []scene.Light) (scene.DisplayMode, error) {
	switch strings.ToLower(name) {
	case "points":
		return scene.Points(canvas.NewGlyph('*', canvas.None)), nil
	case "debug":
		return scene.Debug(), nil
	case "wireframe":
		return scene.Wireframe(false), nil
	case "wireframe-culled":
		return scene.Wireframe(true), nil
	case "solid":
		return scene.Solid(), nil
	case "illuminated":
		return scene.Illuminated(lights...), nil
	}
	return scene.DisplayMode{}, fmt.Errorf("unknown mode %q (want one of %s)", name, strings.Join(ModeNames, ", "))
}

// ParseWrap maps a wrap policy name to a canvas.WrapMode.
func ParseWrap(name string) (canvas.WrapMode, error) {
	for _, m := range []canvas.WrapMode{canvas.WrapAround, canvas.WrapIgnore, canvas.WrapPanic} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown wrap mode %q (want wrap, ignore or panic)", name)
}
