package scene

import (
	"github.com/taigrr/cellrender/pkg/canvas"
	"github.com/taigrr/cellrender/pkg/math3d"
)

// Grid is a flat square grid on the XZ plane, drawn as lines, for showing
// where the ground is. Its geometry is regenerated lazily after SetCellSize,
// SetCellCount or SetGlyph.
type Grid struct {
	Transform Transform

	cellSize  float64
	cellCount int
	glyph     canvas.Glyph

	vertices []math3d.Vec3
	faces    []Face
	dirty    bool
}

// NewGrid creates a grid of cellCount x cellCount cells, each cellSize wide.
// Odd counts are rounded down to the nearest even count.
func NewGrid(cellSize float64, cellCount int, g canvas.Glyph) *Grid {
	return &Grid{
		Transform: DefaultTransform(),
		cellSize:  cellSize,
		cellCount: max(cellCount, 0),
		glyph:     g,
		dirty:     true,
	}
}

// CellSize returns the width of one cell.
func (g *Grid) CellSize() float64 { return g.cellSize }

// CellCount returns the number of cells along each side.
func (g *Grid) CellCount() int { return g.cellCount }

// SetCellSize changes the width of one cell.
func (g *Grid) SetCellSize(size float64) {
	g.cellSize = size
	g.dirty = true
}

// SetCellCount changes the number of cells along each side.
func (g *Grid) SetCellCount(count int) {
	g.cellCount = max(count, 0)
	g.dirty = true
}

// SetGlyph changes the line glyph.
func (g *Grid) SetGlyph(glyph canvas.Glyph) {
	g.glyph = glyph
	g.dirty = true
}

// GetTransform implements MeshRenderer.
func (g *Grid) GetTransform() Transform { return g.Transform }

// VertexCount implements MeshRenderer.
func (g *Grid) VertexCount() int {
	g.regenerate()
	return len(g.vertices)
}

// GetVertex implements MeshRenderer.
func (g *Grid) GetVertex(i int) math3d.Vec3 {
	g.regenerate()
	return g.vertices[i]
}

// FaceCount implements MeshRenderer.
func (g *Grid) FaceCount() int {
	g.regenerate()
	return len(g.faces)
}

// GetFace implements MeshRenderer.
func (g *Grid) GetFace(i int) Face {
	g.regenerate()
	return g.faces[i]
}

// regenerate rebuilds the lines if a parameter changed. Vertices are laid
// out as two halves, the near/left ends then the far/right ends, and face i
// joins vertex i to vertex i+half.
func (g *Grid) regenerate() {
	if !g.dirty {
		return
	}
	g.dirty = false

	half := g.cellCount / 2
	g.vertices = g.vertices[:0]
	for _, p := range [2]int{-1, 1} {
		side := float64(half*p) * g.cellSize
		for b := -half; b <= half; b++ {
			along := float64(b) * g.cellSize
			g.vertices = append(g.vertices,
				math3d.V3(side, 0, along),
				math3d.V3(along, 0, side),
			)
		}
	}

	n := len(g.vertices) / 2
	g.faces = g.faces[:0]
	for i := range n {
		g.faces = append(g.faces, NewFace(g.glyph, i, i+n))
	}
}
