// cellrender - spinning meshes drawn with terminal glyphs.
//
// With no argument a built-in shape is shown; otherwise the OBJ, glTF or
// GLB file given is loaded.
//
// Controls:
//
//	W/S         - Spin around X
//	A/D         - Spin around Y
//	Q/E         - Spin around Z
//	Space       - Random spin
//	M           - Next display mode
//	G           - Toggle ground grid
//	R           - Reset rotation and camera
//	+/-         - Move the camera closer or further
//	Esc, Ctrl+C - Quit
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/cellrender/internal/config"
	"github.com/taigrr/cellrender/pkg/math3d"
	"github.com/taigrr/cellrender/pkg/models"
	"github.com/taigrr/cellrender/pkg/scene"
)

// options are the command-line settings that are not part of config.Config.
type options struct {
	once          bool
	width, height int
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "cellrender [model.obj|model.gltf|model.glb]",
		Short: "Render spinning 3D meshes with terminal glyphs",
		Long: "cellrender draws meshes as coloured characters in the terminal.\n" +
			"Settings come from CELLRENDER_* environment variables; flags override them.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}

			logger, closeLog, err := newLogger(cfg.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()
			slog.SetDefault(logger)

			mesh, err := loadMesh(cfg, args)
			if err != nil {
				return err
			}
			slog.Info("mesh ready", "vertices", len(mesh.Vertices), "faces", len(mesh.Faces), "mode", cfg.Mode)

			if opts.once {
				return renderOnce(cmd.OutOrStdout(), cfg, mesh, opts)
			}
			return runViewer(cmd.Context(), cfg, mesh)
		},
	}

	f := cmd.Flags()
	f.Int("fps", 0, "target frames per second")
	f.Float64("fov", 0, "field of view scale")
	f.String("mode", "", "display mode: points, debug, wireframe, wireframe-culled, solid or illuminated")
	f.String("shape", "", "built-in shape when no model is given: cube, torus or gimbal")
	f.String("wrap", "", "out-of-bounds policy: wrap, ignore or panic")
	f.Float64("distance", 0, "camera distance from the origin")
	f.Bool("grid", false, "draw a ground grid")
	f.BoolVar(&opts.once, "once", false, "print a single frame without escape codes and exit")
	f.IntVar(&opts.width, "width", 0, "canvas width for --once (default: terminal width)")
	f.IntVar(&opts.height, "height", 0, "canvas height for --once (default: terminal height)")
	return cmd
}

// applyFlags copies the flags the user set over the environment settings.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	var err error
	if f.Changed("fps") {
		cfg.FPS, err = f.GetInt("fps")
	}
	if err == nil && f.Changed("fov") {
		cfg.FOV, err = f.GetFloat64("fov")
	}
	if err == nil && f.Changed("mode") {
		cfg.Mode, err = f.GetString("mode")
	}
	if err == nil && f.Changed("shape") {
		cfg.Shape, err = f.GetString("shape")
	}
	if err == nil && f.Changed("wrap") {
		cfg.Wrap, err = f.GetString("wrap")
	}
	if err == nil && f.Changed("distance") {
		cfg.CameraDistance, err = f.GetFloat64("distance")
	}
	if err == nil && f.Changed("grid") {
		cfg.Grid, err = f.GetBool("grid")
	}
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// newLogger logs to path when set, otherwise to stderr.
func newLogger(path string) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})), closeFn, nil
}

// loadMesh loads the model named in args, or builds the configured shape.
func loadMesh(cfg *config.Config, args []string) (*scene.Mesh, error) {
	if len(args) == 1 {
		mesh, err := models.Load(args[0])
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		models.Normalize(mesh, 3)
		return mesh, nil
	}

	switch cfg.Shape {
	case "cube":
		return scene.Cube(), nil
	case "torus":
		return scene.Torus(2, 0.8, 24, 12), nil
	case "gimbal":
		gimbal := scene.Gimbal()
		gimbal.Transform.Scale = math3d.V3(2, 2, 2)
		return gimbal, nil
	}
	return nil, fmt.Errorf("unknown shape %q (want cube, torus or gimbal)", cfg.Shape)
}
