package rt

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Colour is a linear RGB colour. Channels are nominally in [0, 1] but are
// left unbounded during computation; clamping only happens when a colour is
// written out (see Clamped and NRGBA).
type Colour struct {
	R, G, B float64
}

// NewColour creates a colour from its red, green and blue channels.
func NewColour(r, g, b float64) Colour {
	return Colour{R: r, G: g, B: b}
}

// Black returns colour(0, 0, 0).
func Black() Colour { return Colour{} }

// White returns colour(1, 1, 1).
func White() Colour { return Colour{R: 1, G: 1, B: 1} }

// Red returns colour(1, 0, 0).
func Red() Colour { return Colour{R: 1} }

// Green returns colour(0, 1, 0).
func Green() Colour { return Colour{G: 1} }

// Blue returns colour(0, 0, 1).
func Blue() Colour { return Colour{B: 1} }

// Add returns the channel-wise sum.
func (c Colour) Add(o Colour) Colour {
	return Colour{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns the channel-wise difference.
func (c Colour) Sub(o Colour) Colour {
	return Colour{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Mul returns the Hadamard product, used to blend light with a surface.
func (c Colour) Mul(o Colour) Colour {
	return Colour{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Scale returns the colour with every channel multiplied by s.
func (c Colour) Scale(s float64) Colour {
	return Colour{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Equal reports whether every channel is within Epsilon of o's.
func (c Colour) Equal(o Colour) bool {
	return AlmostSame(c.R, o.R) &&
		AlmostSame(c.G, o.G) &&
		AlmostSame(c.B, o.B)
}

// RGB8 packs the channels into bytes as uint8(channel*255), truncating
// toward zero. No clamping is done: channels outside [0, 1] give undefined
// bytes, so callers writing files should use Clamped first.
func (c Colour) RGB8() (r, g, b uint8) {
	return uint8(c.R * 255), uint8(c.G * 255), uint8(c.B * 255)
}

// Clamped returns the colour with every channel restricted to [0, 1].
func (c Colour) Clamped() Colour {
	return Colour{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// NRGBA converts the colour to an opaque color.NRGBA.
func (c Colour) NRGBA() color.NRGBA {
	r, g, b := c.Clamped().RGB8()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// ColourFromColor converts a standard color.Color, dropping alpha after
// un-premultiplying.
func ColourFromColor(cc color.Color) Colour {
	n := color.NRGBAModel.Convert(cc).(color.NRGBA)
	return Colour{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}
}

// String formats the colour as "colour(r, g, b)".
func (c Colour) String() string {
	return fmt.Sprintf("colour(%g, %g, %g)", c.R, c.G, c.B)
}

// NamedColour returns the SVG 1.1 colour with the given name, such as
// "cornflowerblue". Lookup is case-insensitive.
func NamedColour(name string) (Colour, error) {
	// A Caser carries state, so each lookup gets its own.
	key := cases.Lower(language.Und).String(name)
	rgba, ok := colornames.Map[key]
	if !ok {
		return Colour{}, fmt.Errorf("rt: NamedColour(%q): %w", name, ErrUnknownColour)
	}
	return ColourFromColor(rgba), nil
}

// clamp01 restricts x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
