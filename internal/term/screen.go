package term

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
)

const (
	enterScreen = ansi.SetAltScreenSaveCursorMode + ansi.HideCursor
	leaveScreen = ansi.ShowCursor + ansi.ResetAltScreenSaveCursorMode
)

// EnterScreen switches w to the alternate screen and hides the cursor.
func EnterScreen(w io.Writer) error {
	if _, err := io.WriteString(w, enterScreen); err != nil {
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	return nil
}

// LeaveScreen shows the cursor and returns w to the main screen, restoring
// what was there before EnterScreen.
func LeaveScreen(w io.Writer) error {
	if _, err := io.WriteString(w, leaveScreen); err != nil {
		return fmt.Errorf("leave alternate screen: %w", err)
	}
	return nil
}

// WithScreen runs fn on the alternate screen of w. The main screen is
// restored even when fn fails or panics.
func WithScreen(w io.Writer, fn func() error) (err error) {
	if err := EnterScreen(w); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, LeaveScreen(w))
	}()
	return fn()
}
