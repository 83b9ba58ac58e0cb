// Package canvas provides a pixel buffer of rt.Colour values and a 24-bit
// BMP writer for it.
//
// A Canvas stores unclamped colours; channels are clamped to [0, 1] only
// when the canvas is read as an image.Image or written to a file.
//
//	c, _ := canvas.New(512, 512)
//	_ = c.FillRect(0, 0, 128, 128, rt.Blue())
//	_ = c.SaveBMP("out.bmp")
package canvas
