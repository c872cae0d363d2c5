package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/cellrender/pkg/canvas"
	"github.com/taigrr/cellrender/pkg/math3d"
	"github.com/taigrr/cellrender/pkg/scene"
)

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*scene.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, nil
}

// ParseOBJ reads vertex (v) and face (f) records. Faces may be polygons and
// may use the v, v/vt, v//vn and v/vt/vn forms; negative indices count back
// from the last vertex read. Lines (l) become two-vertex faces. Everything
// else is ignored.
func ParseOBJ(r io.Reader) (*scene.Mesh, error) {
	mesh := scene.NewMesh(nil, nil)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "f", "l":
			need := 3
			if fields[0] == "l" {
				need = 2
			}
			if len(fields)-1 < need {
				return nil, fmt.Errorf("line %d: %s record needs at least %d vertices, got %d", line, fields[0], need, len(fields)-1)
			}
			face := scene.Face{V: make([]int, 0, len(fields)-1), Glyph: canvas.Solid}
			for _, ref := range fields[1:] {
				idx, err := resolveIndex(ref, len(mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				face.V = append(face.V, idx)
			}
			if fields[0] == "l" {
				for i := 0; i+1 < len(face.V); i++ {
					mesh.Faces = append(mesh.Faces, scene.NewFace(canvas.Solid, face.V[i], face.V[i+1]))
				}
				continue
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("%w: obj has no faces", ErrUnsupported)
	}
	return mesh, nil
}

func parseVertex(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var xyz [3]float64
	for i := range xyz {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("vertex coordinate %q: %w", fields[i], err)
		}
		xyz[i] = f
	}
	return math3d.V3(xyz[0], xyz[1], xyz[2]), nil
}

// resolveIndex turns a 1-based (or negative, relative) OBJ vertex reference
// into a 0-based index into the n vertices read so far.
func resolveIndex(ref string, n int) (int, error) {
	head, _, _ := strings.Cut(ref, "/")
	i, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("vertex reference %q: %w", ref, err)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, fmt.Errorf("vertex reference %d out of range of %d vertices", i, n)
	}
}
