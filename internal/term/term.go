// Package term holds the terminal-side collaborators of the viewer: size
// queries, one-time screen preparation and frame pacing.
package term

import (
	"fmt"
	"io"
)

// Sizer reports the terminal size in cells. *uv.Terminal satisfies it.
type Sizer interface {
	GetSize() (width, height int, err error)
}

// SizeError is returned when the terminal size cannot be read.
type SizeError struct {
	Err error
}

func (e *SizeError) Error() string {
	return "get terminal size: " + e.Err.Error()
}

func (e *SizeError) Unwrap() error {
	return e.Err
}

const clearScreen = "\x1b[H\x1b[J"

// Prepare scrolls whatever is on screen out of view by printing one
// screenful of blank lines, then homes the cursor and clears. Call it once
// before the first frame.
func Prepare(w io.Writer, s Sizer) error {
	_, height, err := s.GetSize()
	if err != nil {
		return &SizeError{Err: err}
	}

	buf := make([]byte, 0, 2*max(height, 0)+len(clearScreen))
	for range height {
		buf = append(buf, '\r', '\n')
	}
	buf = append(buf, clearScreen...)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}
	return nil
}

// FitSize returns the canvas size that fills the terminal while leaving
// reservedRows rows free at the bottom.
func FitSize(s Sizer, reservedRows int) (width, height int, err error) {
	w, h, err := s.GetSize()
	if err != nil {
		return 0, 0, &SizeError{Err: err}
	}
	return max(w, 0), max(h-reservedRows, 0), nil
}
