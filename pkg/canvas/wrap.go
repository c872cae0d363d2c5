package canvas

import (
	"fmt"

	"github.com/taigrr/cellrender/pkg/math3d"
)

// WrapMode decides what Plot does with coordinates outside the canvas.
type WrapMode int

const (
	WrapAround WrapMode = iota // Write at the position modulo the canvas size
	WrapIgnore                 // Drop out-of-bounds writes silently
	WrapPanic                  // Treat out-of-bounds writes as a programming error
)

// String returns the mode name.
func (m WrapMode) String() string {
	switch m {
	case WrapAround:
		return "wrap"
	case WrapIgnore:
		return "ignore"
	case WrapPanic:
		return "panic"
	}
	return fmt.Sprintf("WrapMode(%d)", int(m))
}

// resolve maps pos onto a canvas of the given size. It reports false when
// nothing should be written.
func (m WrapMode) resolve(pos, size math3d.Vec2) (math3d.Vec2, bool) {
	if size.X <= 0 || size.Y <= 0 {
		if m == WrapPanic {
			panic(fmt.Sprintf("canvas: %v is out of bounds of an empty %dx%d canvas", pos, size.X, size.Y))
		}
		return pos, false
	}

	wrapped := pos.Rem(size)
	if wrapped == pos {
		return pos, true
	}
	switch m {
	case WrapAround:
		return wrapped, true
	case WrapPanic:
		panic(fmt.Sprintf("canvas: %v is out of bounds of %dx%d canvas", pos, size.X, size.Y))
	}
	return pos, false
}
