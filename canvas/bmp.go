package canvas

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/rt"
)

// BMP layout constants.
const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	pixelOffset    = fileHeaderSize + infoHeaderSize // 54
	bitsPerPixel   = 24
	biRGB          = 0
)

// bmpHeader is the BITMAPFILEHEADER followed by the BITMAPINFOHEADER, in
// file order. binary.Write emits it without padding.
type bmpHeader struct {
	Signature    [2]byte
	FileSize     uint32
	Reserved     uint32
	PixelOffset  uint32
	InfoSize     uint32
	Width        int32
	Height       int32
	Planes       uint16
	BitCount     uint16
	Compression  uint32
	ImageSize    uint32
	XPelsPerM    int32
	YPelsPerM    int32
	ColorsUsed   uint32
	ColorsImport uint32
}

// rowPadding returns the number of zero bytes that bring a row of width
// 24-bit pixels to a multiple of four bytes.
func rowPadding(width int) int {
	return (4 - (width*3)%4) % 4
}

// bmpLayout returns the padded row stride and pixel data size for a
// width×height bitmap. It fails with ErrInvalidSize when the dimensions or
// the file size do not fit the format's 32-bit header fields.
func bmpLayout(width, height int) (stride, imageSize int, err error) {
	if width <= 0 || height <= 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return 0, 0, fmt.Errorf("canvas: BMP of %dx%d: %w", width, height, ErrInvalidSize)
	}
	stride = width*3 + rowPadding(width)
	if stride > (math.MaxUint32-pixelOffset)/height {
		return 0, 0, fmt.Errorf("canvas: BMP of %dx%d exceeds 4 GiB: %w", width, height, ErrInvalidSize)
	}
	return stride, stride * height, nil
}

// EncodeBMP writes c as an uncompressed 24-bit BMP.
//
// Rows are written top to bottom and the height is stored as a negative
// number, which marks the bitmap as top-down. Readers that assume a
// bottom-up file with a positive height will see the image flipped.
//
// Each pixel is three bytes in blue, green, red order, each channel clamped
// to [0, 1] and then truncated from channel*255. Rows are zero-padded to a
// multiple of four bytes. Bitmaps too large for the format's 32-bit header
// fields fail with ErrInvalidSize.
func EncodeBMP(w io.Writer, c *Canvas, opts ...BMPOption) error {
	o := defaultBMPOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stride, imageSize, err := bmpLayout(c.width, c.height)
	if err != nil {
		return err
	}

	h := bmpHeader{
		Signature:   [2]byte{'B', 'M'},
		FileSize:    uint32(pixelOffset + imageSize),
		PixelOffset: pixelOffset,
		InfoSize:    infoHeaderSize,
		Width:       int32(c.width),
		Height:      -int32(c.height),
		Planes:      1,
		BitCount:    bitsPerPixel,
		Compression: biRGB,
		ImageSize:   uint32(imageSize),
		XPelsPerM:   o.pixelsPerMetre,
		YPelsPerM:   o.pixelsPerMetre,
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("canvas: write BMP header: %w", err)
	}

	row := make([]byte, stride)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b := c.pixels[y*c.width+x].Clamped().RGB8()
			row[x*3+0] = b
			row[x*3+1] = g
			row[x*3+2] = r
		}
		// Padding bytes stay zero from make.
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("canvas: write BMP row %d: %w", y, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("canvas: flush BMP: %w", err)
	}

	rt.Logger().Debug("canvas: encoded BMP",
		"width", c.width, "height", c.height, "bytes", h.FileSize, "padding", stride-c.width*3)
	return nil
}

// SaveBMP writes the canvas to a BMP file at path.
func (c *Canvas) SaveBMP(path string, opts ...BMPOption) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("canvas: SaveBMP: %w", err)
	}
	if err := EncodeBMP(f, c, opts...); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("canvas: SaveBMP: %w", err)
	}
	rt.Logger().Info("canvas: saved BMP", "path", path, "width", c.width, "height", c.height)
	return nil
}
