package canvas

import "github.com/gogpu/rt"

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := canvas.New(640, 480, canvas.WithBackground(rt.White()))
type Option func(*options)

type options struct {
	background rt.Colour
}

func defaultOptions() options {
	return options{background: rt.Black()}
}

// WithBackground fills a new canvas with c instead of black.
func WithBackground(c rt.Colour) Option {
	return func(o *options) {
		o.background = c
	}
}

// BMPOption configures BMP encoding.
type BMPOption func(*bmpOptions)

type bmpOptions struct {
	pixelsPerMetre int32
}

// defaultPixelsPerMetre is 72 DPI.
const defaultPixelsPerMetre = 2835

func defaultBMPOptions() bmpOptions {
	return bmpOptions{pixelsPerMetre: defaultPixelsPerMetre}
}

// WithResolution sets the horizontal and vertical resolution stored in the
// BMP header, in pixels per metre.
func WithResolution(ppm int32) BMPOption {
	return func(o *bmpOptions) {
		o.pixelsPerMetre = ppm
	}
}
