package canvas

import (
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	// frameStart homes the cursor and clears the screen below it.
	frameStart = "\x1b[H\x1b[J"
	// frameEnd clears anything left below the last row.
	frameEnd = "\x1b[J"
	// rowEnd terminates every serialized row; raw-mode terminals need the
	// carriage return.
	rowEnd = "\r\n"
)

// AppendRows appends the serialized grid to b: one line per row, each ended
// by "\r\n". A modifier's escape sequence is written only where a run of
// equally styled cells starts, and a reset only where such a run ends.
func (c *Canvas) AppendRows(b []byte) []byte {
	if c.CoordNumbers {
		b = append(b, ' ')
		for x := range c.width {
			b = append(b, byte('0'+x%10))
		}
		b = append(b, rowEnd...)
	}

	for y := range c.height {
		if c.CoordNumbers {
			b = append(b, byte('0'+y%10))
		}
		row := c.cells[y*c.width : (y+1)*c.width]
		for x, g := range row {
			if x == 0 || row[x-1].Mod != g.Mod {
				b = g.Mod.AppendSequence(b)
			}
			b = utf8.AppendRune(b, g.Char)
			if g.Mod != None && (x == len(row)-1 || row[x+1].Mod != g.Mod) {
				b = append(b, resetSequence...)
			}
		}
		b = append(b, rowEnd...)
	}
	return b
}

// String returns the serialized grid without the frame control sequences.
func (c *Canvas) String() string {
	return string(c.AppendRows(c.newBuffer()))
}

// Frame returns the grid wrapped in the sequences that redraw a terminal in
// place: cursor home and clear before, clear below after.
func (c *Canvas) Frame() []byte {
	b := append(c.newBuffer(), frameStart...)
	b = c.AppendRows(b)
	return append(b, frameEnd...)
}

// WriteFrame writes Frame to w in a single call.
func (c *Canvas) WriteFrame(w io.Writer) error {
	if _, err := w.Write(c.Frame()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// newBuffer returns an empty buffer sized for a mostly unstyled frame.
func (c *Canvas) newBuffer() []byte {
	return make([]byte, 0, (c.width*3+len(rowEnd))*(c.height+1)+len(frameStart)+len(frameEnd))
}
