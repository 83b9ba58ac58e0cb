// Command rtdemo paints a few test shapes with the rt core and writes them
// to a 24-bit BMP file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/rt"
	"github.com/gogpu/rt/canvas"
)

// reference is the canvas size the test rectangles were laid out for.
const reference = 512

func main() {
	var (
		width      = flag.Int("width", reference, "image width")
		height     = flag.Int("height", reference, "image height")
		output     = flag.String("output", "tst.bmp", "output file")
		scale      = flag.Int("scale", 1, "integer upscaling factor")
		background = flag.String("background", "black", "background colour name (SVG 1.1)")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	rt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	bg, err := rt.NamedColour(*background)
	if err != nil {
		log.Fatalf("Invalid background: %v", err)
	}

	c, err := canvas.New(*width, *height, canvas.WithBackground(bg))
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	if err := drawSquares(c); err != nil {
		log.Fatalf("Failed to draw squares: %v", err)
	}
	if err := drawClock(c, rt.White()); err != nil {
		log.Fatalf("Failed to draw clock: %v", err)
	}

	if *scale != 1 {
		if c, err = canvas.Scale(c, *scale); err != nil {
			log.Fatalf("Failed to scale: %v", err)
		}
	}

	if err := c.SaveBMP(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, c.Width(), c.Height())
}

// drawSquares paints the three test rectangles, laid out on a 512x512 grid
// and scaled to the canvas.
func drawSquares(c *canvas.Canvas) error {
	sx := func(v int) int { return v * c.Width() / reference }
	sy := func(v int) int { return v * c.Height() / reference }

	blue, red := rt.Blue(), rt.Red()
	rects := []struct {
		x0, y0, x1, y1 int
		col            rt.Colour
	}{
		{0, 0, 128, 128, blue},
		{384, 384, 512, 512, red},
		{450, 0, 512, 62, blue},
	}
	for _, r := range rects {
		if err := c.FillRect(sx(r.x0), sy(r.y0), sx(r.x1), sy(r.y1), r.col); err != nil {
			return err
		}
	}
	return nil
}

// drawClock marks the twelve hour positions by rotating the 12 o'clock point
// about the Z axis and mapping it onto the canvas.
func drawClock(c *canvas.Canvas, col rt.Colour) error {
	radius := 3 * float64(min(c.Width(), c.Height())) / 8
	toCanvas, err := rt.Chain(
		rt.Scaling(radius, -radius, 1),
		rt.Translation(float64(c.Width())/2, float64(c.Height())/2, 0),
	)
	if err != nil {
		return err
	}

	twelve := rt.Point(0, 1, 0)
	for hour := 0; hour < 12; hour++ {
		m, err := rt.Chain(rt.RotationZ(-float64(hour)*math.Pi/6), toCanvas)
		if err != nil {
			return err
		}
		p, err := m.MulTuple(twelve)
		if err != nil {
			return err
		}
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))
		x0, y0 := max(x-1, 0), max(y-1, 0)
		x1, y1 := min(x+2, c.Width()), min(y+2, c.Height())
		if err := c.FillRect(x0, y0, x1, y1, col); err != nil {
			return err
		}
	}
	return nil
}
