package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/cellrender/internal/config"
	"github.com/taigrr/cellrender/internal/term"
	"github.com/taigrr/cellrender/pkg/canvas"
	"github.com/taigrr/cellrender/pkg/math3d"
	"github.com/taigrr/cellrender/pkg/scene"
)

const (
	minDistance = 1.5
	maxDistance = 30
	// spinStrength is the impulse of one key press, in radians per frame.
	spinStrength = 0.02
)

// view owns everything drawn each frame.
type view struct {
	cfg      *config.Config
	canvas   *canvas.Canvas
	viewport *scene.Viewport
	mesh     *scene.Mesh
	grid     *scene.Grid
	showGrid bool
	showMode bool
	mode     int // index into config.ModeNames
	display  scene.DisplayMode
	wrap     canvas.WrapMode
}

func newView(cfg *config.Config, mesh *scene.Mesh, width, height int) (*view, error) {
	wrap, err := config.ParseWrap(cfg.Wrap)
	if err != nil {
		return nil, err
	}
	c := canvas.New(width, height, canvas.Empty)
	vp := scene.NewViewport(scene.Translated(math3d.V3(0, 0, cfg.CameraDistance)), cfg.FOV, c.Center())
	vp.WidthStretch = cfg.WidthStretch
	vp.NearClip = cfg.NearClip

	grid := scene.NewGrid(1, 10, canvas.NewGlyph('.', canvas.Faint))
	grid.Transform.Translation = math3d.V3(0, -2, 0)

	v := &view{
		cfg:      cfg,
		canvas:   c,
		viewport: vp,
		mesh:     mesh,
		grid:     grid,
		showGrid: cfg.Grid,
		wrap:     wrap,
	}
	mode := slices.IndexFunc(config.ModeNames, func(name string) bool {
		return strings.EqualFold(name, cfg.Mode)
	})
	if err := v.setMode(mode); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *view) setMode(i int) error {
	i = max(i, 0) % len(config.ModeNames)
	v.cfg.Mode = config.ModeNames[i]
	display, err := v.cfg.DisplayMode()
	if err != nil {
		return err
	}
	v.mode, v.display = i, display
	return nil
}

func (v *view) resize(width, height int) {
	v.canvas.Resize(width, height)
	v.viewport.Origin = v.canvas.Center()
}

func (v *view) moveCamera(delta float64) {
	t := &v.viewport.Transform.Translation
	t.Z = math.Min(maxDistance, math.Max(minDistance, t.Z+delta))
}

func (v *view) draw() {
	v.canvas.Clear()
	if v.showGrid {
		v.viewport.BlitTo(v.canvas, []scene.MeshRenderer{v.grid}, scene.Wireframe(false), v.wrap)
	}
	v.viewport.BlitTo(v.canvas, []scene.MeshRenderer{v.mesh}, v.display, v.wrap)
	if v.showMode {
		v.canvas.Blit(canvas.NewText(math3d.V2(1, 0), v.display.String(), canvas.Faint), canvas.WrapIgnore)
	}
}

// renderOnce writes a single frame, without escape codes for positioning,
// to w.
func renderOnce(w io.Writer, cfg *config.Config, mesh *scene.Mesh, opts options) error {
	width, height := opts.width, opts.height
	if width <= 0 || height <= 0 {
		tw, th, err := term.FitSize(uv.DefaultTerminal(), 1)
		if err != nil {
			slog.Warn("terminal size unknown, using 80x24", "error", err)
			tw, th = 80, 24
		}
		if width <= 0 {
			width = tw
		}
		if height <= 0 {
			height = th
		}
	}

	v, err := newView(cfg, mesh, width, height)
	if err != nil {
		return err
	}
	mesh.Transform.Rotation = math3d.V3(0.5, 0.6, 0)
	v.draw()
	if _, err := io.WriteString(w, v.canvas.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// runViewer draws frames until ctx is done or the user quits.
func runViewer(ctx context.Context, cfg *config.Config, mesh *scene.Mesh) error {
	t := uv.DefaultTerminal()
	if err := term.Prepare(os.Stdout, t); err != nil {
		return err
	}
	// The last row is left free so the final row break does not scroll.
	width, height, err := term.FitSize(t, 1)
	if err != nil {
		return err
	}
	v, err := newView(cfg, mesh, width, height)
	if err != nil {
		return err
	}
	v.showMode = true

	if err := t.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	defer t.Shutdown(context.Background())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rot := newSpin(cfg.FPS)
	rot.Impulse(0.01, 0.02, 0)
	events := t.Events()
	return term.WithScreen(os.Stdout, func() error {
		skip := false
		for {
			start := time.Now()
		drain:
			for {
				select {
				case <-ctx.Done():
					return nil
				case ev := <-events:
					v.handle(ev, rot, cancel)
				default:
					break drain
				}
			}

			rot.Update()
			mesh.Transform.Rotation = rot.Rotation()

			if skip {
				skip = false
			} else {
				v.draw()
				if err := v.canvas.WriteFrame(os.Stdout); err != nil {
					return err
				}
			}
			skip = term.SleepFPS(ctx, cfg.FPS, time.Since(start))
		}
	})
}

// handle applies one terminal event.
func (v *view) handle(ev uv.Event, rot *spin, quit func()) {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		v.resize(ev.Width, max(ev.Height-1, 0))

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape", "ctrl+c"):
			quit()
		case ev.MatchString("w", "up"):
			rot.Impulse(-spinStrength, 0, 0)
		case ev.MatchString("s", "down"):
			rot.Impulse(spinStrength, 0, 0)
		case ev.MatchString("a", "left"):
			rot.Impulse(0, -spinStrength, 0)
		case ev.MatchString("d", "right"):
			rot.Impulse(0, spinStrength, 0)
		case ev.MatchString("q"):
			rot.Impulse(0, 0, -spinStrength)
		case ev.MatchString("e"):
			rot.Impulse(0, 0, spinStrength)
		case ev.MatchString("space"):
			rot.Impulse(
				(rand.Float64()-0.5)*0.2,
				(rand.Float64()-0.5)*0.2,
				(rand.Float64()-0.5)*0.2,
			)
		case ev.MatchString("m"):
			if err := v.setMode(v.mode + 1); err != nil {
				slog.Error("switch mode", "error", err)
			}
		case ev.MatchString("g"):
			v.showGrid = !v.showGrid
		case ev.MatchString("r"):
			rot.Reset()
			v.viewport.Transform.Translation.Z = v.cfg.CameraDistance
		case ev.MatchString("+", "="):
			v.moveCamera(-0.5)
		case ev.MatchString("-", "_"):
			v.moveCamera(0.5)
		}
	}
}
