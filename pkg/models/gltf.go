package models

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/qmuntal/gltf"
	"github.com/taigrr/cellrender/pkg/canvas"
	"github.com/taigrr/cellrender/pkg/math3d"
	"github.com/taigrr/cellrender/pkg/scene"
)

// GLTFLoader loads glTF (.gltf) and binary glTF (.glb) files.
type GLTFLoader struct {
	// Glyph is used for every face.
	Glyph canvas.Glyph
	// MaterialColors colours faces with their material's base colour.
	MaterialColors bool
}

// NewGLTFLoader creates a loader drawing faces with canvas.Solid and
// material colours enabled.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		Glyph:          canvas.Solid,
		MaterialColors: true,
	}
}

// LoadGLB loads a binary glTF file.
func (l *GLTFLoader) LoadGLB(path string) (*scene.Mesh, error) {
	return l.load(path)
}

// LoadGLTF loads a JSON glTF file. Buffers may be embedded as data URIs or
// stored next to the file.
func (l *GLTFLoader) LoadGLTF(path string) (*scene.Mesh, error) {
	return l.load(path)
}

func (l *GLTFLoader) load(path string) (*scene.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := scene.NewMesh(nil, nil)
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("%w: %s has no triangle primitives", ErrUnsupported, path)
	}
	return mesh, nil
}

// processMesh appends the triangle primitives of m to mesh. glTF front
// faces wind counter-clockwise, which is what the renderer expects, so
// indices are kept in file order.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *scene.Mesh) error {
	for pi, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return fmt.Errorf("primitive %d: read positions: %w", pi, err)
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("primitive %d: read indices: %w", pi, err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		glyph := l.Glyph
		if l.MaterialColors && prim.Material != nil {
			if mod, ok := materialModifier(doc, *prim.Material); ok {
				glyph = glyph.WithMod(mod)
			}
		}

		base := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, positions...)
		for i := 0; i+2 < len(indices); i += 3 {
			tri := indices[i : i+3]
			for _, idx := range tri {
				if idx >= len(positions) {
					return fmt.Errorf("primitive %d: index %d out of range of %d vertices", pi, idx, len(positions))
				}
			}
			mesh.Faces = append(mesh.Faces, scene.NewFace(glyph, base+tri[0], base+tri[1], base+tri[2]))
		}
	}
	return nil
}

// materialModifier returns the base colour of material i as an RGB
// modifier.
func materialModifier(doc *gltf.Document, i int) (canvas.Modifier, bool) {
	if i < 0 || i >= len(doc.Materials) {
		return canvas.None, false
	}
	pbr := doc.Materials[i].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return canvas.None, false
	}
	c := pbr.BaseColorFactor
	r, g, b := colorful.LinearRgb(c[0], c[1], c[2]).Clamped().RGB255()
	return canvas.RGB(r, g, b), true
}

// readPositions reads a VEC3 float accessor.
func readPositions(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor, data, err := accessorData(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("%w: position accessor %v / %v", ErrUnsupported, accessor.Type, accessor.ComponentType)
	}

	stride := 12
	if sv := doc.BufferViews[*accessor.BufferView].ByteStride; sv != 0 {
		stride = sv
	}
	if err := checkSpan(data, accessor.Count, stride, 12); err != nil {
		return nil, err
	}

	out := make([]math3d.Vec3, accessor.Count)
	for i := range out {
		b := data[i*stride:]
		out[i] = math3d.V3(readFloat32(b), readFloat32(b[4:]), readFloat32(b[8:]))
	}
	return out, nil
}

// readIndices reads a SCALAR unsigned integer accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor, data, err := accessorData(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("%w: index accessor type %v", ErrUnsupported, accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("%w: index component %v", ErrUnsupported, accessor.ComponentType)
	}
	stride := size
	if sv := doc.BufferViews[*accessor.BufferView].ByteStride; sv != 0 {
		stride = sv
	}
	if err := checkSpan(data, accessor.Count, stride, size); err != nil {
		return nil, err
	}

	out := make([]int, accessor.Count)
	for i := range out {
		b := data[i*stride:]
		switch size {
		case 1:
			out[i] = int(b[0])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(b))
		case 4:
			out[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return out, nil
}

// accessorData returns accessor i and the bytes of its buffer starting at
// the accessor's first element.
func accessorData(doc *gltf.Document, i int) (*gltf.Accessor, []byte, error) {
	if i < 0 || i >= len(doc.Accessors) {
		return nil, nil, fmt.Errorf("accessor %d out of range", i)
	}
	accessor := doc.Accessors[i]
	if accessor.BufferView == nil {
		return nil, nil, fmt.Errorf("%w: sparse or empty accessor %d", ErrUnsupported, i)
	}
	if *accessor.BufferView >= len(doc.BufferViews) {
		return nil, nil, fmt.Errorf("accessor %d: buffer view %d out of range", i, *accessor.BufferView)
	}

	view := doc.BufferViews[*accessor.BufferView]
	if view.Buffer >= len(doc.Buffers) {
		return nil, nil, fmt.Errorf("buffer view %d: buffer %d out of range", *accessor.BufferView, view.Buffer)
	}
	buf := doc.Buffers[view.Buffer].Data
	if buf == nil {
		return nil, nil, fmt.Errorf("buffer %d has no data", view.Buffer)
	}

	start := view.ByteOffset + accessor.ByteOffset
	end := view.ByteOffset + view.ByteLength
	if start > end || end > len(buf) {
		return nil, nil, fmt.Errorf("accessor %d: bytes %d..%d outside buffer of %d", i, start, end, len(buf))
	}
	return accessor, buf[start:end], nil
}

// checkSpan reports whether count elements of elem bytes spaced stride apart
// fit in data.
func checkSpan(data []byte, count, stride, elem int) error {
	if count == 0 {
		return nil
	}
	if need := (count-1)*stride + elem; need > len(data) {
		return fmt.Errorf("accessor needs %d bytes, buffer view has %d", need, len(data))
	}
	return nil
}

func readFloat32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}
