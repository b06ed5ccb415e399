package canvas

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/echoflaresat/phong/colors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Canvas is a grid of linear colors. Writes to distinct pixels may happen
// concurrently; writes to the same pixel may not.
type Canvas struct {
	Width  int
	Height int
	pixels []colors.Color
}

// New returns a black canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]colors.Color, width*height),
	}
}

// WritePixel stores c at (x, y). It panics when the coordinate is off the canvas.
func (c *Canvas) WritePixel(x, y int, col colors.Color) {
	c.pixels[c.index(x, y)] = col
}

// PixelAt returns the color stored at (x, y).
func (c *Canvas) PixelAt(x, y int) colors.Color {
	return c.pixels[c.index(x, y)]
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("pixel (%d,%d) outside %dx%d canvas", x, y, c.Width, c.Height))
	}
	return y*c.Width + x
}

// Image converts the canvas to 8-bit NRGBA, clamping every component.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetNRGBA(x, y, c.PixelAt(x, y).ToNRGBA())
		}
	}
	return img
}

// Encode writes the canvas in the format named by ext (".png", ".jpg",
// ".jpeg", ".bmp", ".tif" or ".tiff").
func (c *Canvas) Encode(w io.Writer, ext string) error {
	img := c.Image()
	switch strings.ToLower(ext) {
	case ".png":
		return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format: %q", ext)
	}
}

// Save writes the canvas to path, choosing the encoder from its extension.
func (c *Canvas) Save(path string) (err error) {
	ext := filepath.Ext(path)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return c.Encode(f, ext)
}
