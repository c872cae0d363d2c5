package scene

import (
	"fmt"
	"strconv"

	"github.com/taigrr/cellrender/pkg/canvas"
	"github.com/taigrr/cellrender/pkg/raster"
)

// ModeKind selects how Render draws meshes.
type ModeKind uint8

const (
	ModePoints      ModeKind = iota // One glyph per vertex
	ModeDebug                       // Vertex indices as text
	ModeWireframe                   // Face outlines
	ModeSolid                       // Filled, depth-sorted, back faces culled
	ModeIlluminated                 // Solid, with characters chosen by lighting
)

// DisplayMode is a render mode and its parameters.
type DisplayMode struct {
	Kind   ModeKind
	Glyph  canvas.Glyph // ModePoints
	Cull   bool         // ModeWireframe
	Lights []Light      // ModeIlluminated
}

// Points draws each vertex as g.
func Points(g canvas.Glyph) DisplayMode {
	return DisplayMode{Kind: ModePoints, Glyph: g}
}

// Debug draws each vertex's index at its position.
func Debug() DisplayMode {
	return DisplayMode{Kind: ModeDebug}
}

// Wireframe draws face outlines, skipping back faces when cull is set.
func Wireframe(cull bool) DisplayMode {
	return DisplayMode{Kind: ModeWireframe, Cull: cull}
}

// Solid fills faces with their glyphs.
func Solid() DisplayMode {
	return DisplayMode{Kind: ModeSolid}
}

// Illuminated fills faces with BrightnessRamp characters picked by lights,
// keeping each face's modifier.
func Illuminated(lights ...Light) DisplayMode {
	return DisplayMode{Kind: ModeIlluminated, Lights: lights}
}

// String returns the mode name.
func (m DisplayMode) String() string {
	switch m.Kind {
	case ModePoints:
		return "points"
	case ModeDebug:
		return "debug"
	case ModeWireframe:
		if m.Cull {
			return "wireframe (culled)"
		}
		return "wireframe"
	case ModeSolid:
		return "solid"
	case ModeIlluminated:
		return "illuminated"
	}
	return fmt.Sprintf("ModeKind(%d)", m.Kind)
}

// Render projects meshes and returns their pixels in draw order.
func (v *Viewport) Render(meshes []MeshRenderer, mode DisplayMode) *canvas.Container {
	out := canvas.NewContainer()
	v.RenderInto(out, meshes, mode)
	return out
}

// RenderInto is Render appending to an existing container.
func (v *Viewport) RenderInto(out *canvas.Container, meshes []MeshRenderer, mode DisplayMode) {
	switch mode.Kind {
	case ModePoints, ModeDebug:
		for _, m := range meshes {
			v.transformMesh(m)
			for i, p := range v.view {
				if !v.Visible(p) {
					continue
				}
				if mode.Kind == ModePoints {
					out.Plot(v.screen[i], mode.Glyph)
				} else {
					out.Blit(canvas.NewText(v.screen[i], strconv.Itoa(i), canvas.None))
				}
			}
		}

	case ModeWireframe:
		for _, f := range v.ProjectFaces(meshes, FaceOptions{Cull: mode.Cull}) {
			v.points = v.points[:0]
			n := len(f.Screen)
			for i := range n {
				if n == 2 && i == 1 {
					break
				}
				v.points = raster.AppendLine(v.points, f.Screen[i], f.Screen[(i+1)%n])
			}
			out.AppendPoints(v.points, f.Glyph)
		}

	case ModeSolid, ModeIlluminated:
		for _, f := range v.ProjectFaces(meshes, FaceOptions{Cull: true, Sort: true}) {
			g := f.Glyph
			if mode.Kind == ModeIlluminated {
				if n, ok := f.Normal(); ok {
					g.Char = ShadeChar(TotalIntensity(mode.Lights, f.Center(), n))
				}
			}
			v.points = raster.AppendPolygon(v.points[:0], f.Screen)
			out.AppendPoints(v.points, g)
		}
	}
}

// BlitTo renders meshes straight onto c.
func (v *Viewport) BlitTo(c *canvas.Canvas, meshes []MeshRenderer, mode DisplayMode, wrap canvas.WrapMode) {
	out := canvas.NewContainer()
	v.RenderInto(out, meshes, mode)
	c.Blit(out, wrap)
}
