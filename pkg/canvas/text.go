package canvas

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/taigrr/cellrender/pkg/math3d"
)

// Text is a single line of characters starting at Pos. Spaces are
// transparent. Wide runes advance the cursor by their display width and
// leave the following cell untouched.
type Text struct {
	Pos math3d.Vec2
	Mod Modifier

	content string
}

// NewText creates a Text. Content must be a single line; a newline is a
// programming error and panics.
func NewText(pos math3d.Vec2, content string, mod Modifier) Text {
	t := Text{Pos: pos, Mod: mod}
	t.SetContent(content)
	return t
}

// Content returns the text.
func (t Text) Content() string {
	return t.content
}

// SetContent replaces the text. Escape sequences are stripped; styling
// comes from Mod. It panics if content contains a newline.
func (t *Text) SetContent(content string) {
	if strings.ContainsAny(content, "\r\n") {
		panic(fmt.Sprintf("canvas: text %q spans more than one line", content))
	}
	t.content = ansi.Strip(content)
}

// Width returns the number of cells the text spans, measured the same way
// Pixels advances.
func (t Text) Width() int {
	w := 0
	for _, r := range t.content {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// Pixels implements Shape.
func (t Text) Pixels() []Pixel {
	out := make([]Pixel, 0, len(t.content))
	x := t.Pos.X
	for _, r := range t.content {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if r != ' ' {
			out = append(out, Pixel{Pos: math3d.V2(x, t.Pos.Y), Glyph: Glyph{Char: r, Mod: t.Mod}})
		}
		x += w
	}
	return out
}
