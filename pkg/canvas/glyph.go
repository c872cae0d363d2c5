package canvas

import (
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ModifierKind identifies how a Modifier styles its glyph.
type ModifierKind uint8

const (
	ModNone  ModifierKind = iota // No styling
	ModCoded                     // A single SGR attribute code
	ModRGB                       // 24-bit foreground color
)

// Modifier is the color or style applied to a glyph. The zero value is no
// modifier. Modifiers are comparable with ==.
type Modifier struct {
	Kind    ModifierKind
	Code    uint8
	R, G, B uint8
}

// None is the empty modifier.
var None = Modifier{}

// Named SGR attributes.
var (
	End       = Coded(0)
	Bold      = Coded(1)
	Faint     = Coded(2)
	Italic    = Coded(3)
	Underline = Coded(4)
	Inverted  = Coded(7)
	Crossed   = Coded(9)
	Red       = Coded(31)
	Green     = Coded(32)
	Yellow    = Coded(33)
	Blue      = Coded(34)
	Purple    = Coded(35)
	Cyan      = Coded(36)
)

// resetSequence ends every styled run.
const resetSequence = "\x1b[0m"

// Coded returns a modifier for the SGR attribute code.
func Coded(code uint8) Modifier {
	return Modifier{Kind: ModCoded, Code: code}
}

// RGB returns a 24-bit foreground color modifier.
func RGB(r, g, b uint8) Modifier {
	return Modifier{Kind: ModRGB, R: r, G: g, B: b}
}

// HSV returns a foreground color modifier from hue, saturation and value,
// each in 0..255.
func HSV(h, s, v uint8) Modifier {
	c := colorful.Hsv(float64(h)/255*360, float64(s)/255, float64(v)/255)
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// Shade scales an RGB modifier's brightness by factor, in linear RGB space.
// Other modifiers are returned unchanged.
func (m Modifier) Shade(factor float64) Modifier {
	if m.Kind != ModRGB {
		return m
	}
	lr, lg, lb := colorful.Color{
		R: float64(m.R) / 255,
		G: float64(m.G) / 255,
		B: float64(m.B) / 255,
	}.LinearRgb()
	factor = math.Max(0, factor)
	r, g, b := colorful.LinearRgb(lr*factor, lg*factor, lb*factor).Clamped().RGB255()
	return RGB(r, g, b)
}

// AppendSequence appends the escape sequence that switches to m. None
// appends nothing.
func (m Modifier) AppendSequence(b []byte) []byte {
	switch m.Kind {
	case ModCoded:
		b = append(b, "\x1b["...)
		b = strconv.AppendUint(b, uint64(m.Code), 10)
		return append(b, 'm')
	case ModRGB:
		b = append(b, "\x1b[38;2;"...)
		b = strconv.AppendUint(b, uint64(m.R), 10)
		b = append(b, ';')
		b = strconv.AppendUint(b, uint64(m.G), 10)
		b = append(b, ';')
		b = strconv.AppendUint(b, uint64(m.B), 10)
		return append(b, 'm')
	}
	return b
}

// String returns the escape sequence for m.
func (m Modifier) String() string {
	return string(m.AppendSequence(nil))
}

// Glyph is one displayed character together with its modifier.
type Glyph struct {
	Char rune
	Mod  Modifier
}

// Common glyphs.
var (
	Solid      = Glyph{Char: '█'}
	Background = Glyph{Char: '░'}
	Empty      = Glyph{Char: ' '}
	Void       = Glyph{Char: '\u2008'}
)

// NewGlyph creates a Glyph.
func NewGlyph(char rune, mod Modifier) Glyph {
	return Glyph{Char: char, Mod: mod}
}

// WithChar returns g with its character replaced.
func (g Glyph) WithChar(char rune) Glyph {
	g.Char = char
	return g
}

// WithMod returns g with its modifier replaced.
func (g Glyph) WithMod(mod Modifier) Glyph {
	g.Mod = mod
	return g
}

// String renders the glyph on its own: modifier, character, reset.
func (g Glyph) String() string {
	if g.Mod == None {
		return string(g.Char)
	}
	b := g.Mod.AppendSequence(nil)
	b = append(b, string(g.Char)...)
	return string(append(b, resetSequence...))
}
