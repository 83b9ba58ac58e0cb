package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/rt"
)

// Canvas is a rectangular buffer of colours addressed by (x, y), with the
// origin at the top-left corner.
type Canvas struct {
	width  int
	height int
	pixels []rt.Colour // row-major, width*height entries
}

// New creates a width×height canvas filled with the background colour
// (black unless WithBackground is given).
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: New(%d, %d): %w", width, height, ErrInvalidSize)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{
		width:  width,
		height: height,
		pixels: make([]rt.Colour, width*height),
	}
	if o.background != rt.Black() {
		c.Clear(o.background)
	}
	return c, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) contains(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// PixelAt returns the colour at (x, y).
func (c *Canvas) PixelAt(x, y int) (rt.Colour, error) {
	if !c.contains(x, y) {
		return rt.Colour{}, fmt.Errorf("canvas: PixelAt(%d, %d) on %dx%d: %w", x, y, c.width, c.height, ErrOutOfBounds)
	}
	return c.pixels[y*c.width+x], nil
}

// WritePixel sets the colour at (x, y).
func (c *Canvas) WritePixel(x, y int, col rt.Colour) error {
	if !c.contains(x, y) {
		return fmt.Errorf("canvas: WritePixel(%d, %d) on %dx%d: %w", x, y, c.width, c.height, ErrOutOfBounds)
	}
	c.pixels[y*c.width+x] = col
	return nil
}

// FillRect paints the half-open rectangle [x0, x1) × [y0, y1). The rectangle
// must lie inside the canvas; an empty rectangle is a no-op.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col rt.Colour) error {
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	if !c.contains(x0, y0) || !c.contains(x1-1, y1-1) {
		return fmt.Errorf("canvas: FillRect(%d, %d, %d, %d) on %dx%d: %w",
			x0, y0, x1, y1, c.width, c.height, ErrOutOfBounds)
	}
	for y := y0; y < y1; y++ {
		row := c.pixels[y*c.width : (y+1)*c.width]
		for x := x0; x < x1; x++ {
			row[x] = col
		}
	}
	return nil
}

// Clear fills the entire canvas with a colour.
func (c *Canvas) Clear(col rt.Colour) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// At implements the image.Image interface. Channels are clamped to [0, 1]
// and the alpha is always opaque.
func (c *Canvas) At(x, y int) color.Color {
	if !c.contains(x, y) {
		return color.NRGBA{}
	}
	return c.pixels[y*c.width+x].NRGBA()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// FromImage creates a canvas from an image, dropping alpha.
func FromImage(img image.Image) (*Canvas, error) {
	b := img.Bounds()
	c, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.pixels[y*c.width+x] = rt.ColourFromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return c, nil
}
