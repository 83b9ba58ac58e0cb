package canvas

import (
	"fmt"
	"image"

	"github.com/gogpu/rt"
	"golang.org/x/image/draw"
)

// Scale returns a copy of c enlarged by an integer factor using
// nearest-neighbour sampling, so every source pixel becomes a
// factor×factor block. Scaling goes through an 8-bit image, so the copy
// holds clamped, quantised colours.
func Scale(c *Canvas, factor int) (*Canvas, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("canvas: Scale by %d: %w", factor, ErrInvalidSize)
	}
	if factor == 1 {
		return c.clone(), nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, c.width*factor, c.height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c, c.Bounds(), draw.Src, nil)
	return FromImage(dst)
}

func (c *Canvas) clone() *Canvas {
	pixels := make([]rt.Colour, len(c.pixels))
	copy(pixels, c.pixels)
	return &Canvas{width: c.width, height: c.height, pixels: pixels}
}
