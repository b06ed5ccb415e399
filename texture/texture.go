package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG format with image.Decode
	_ "image/png"  // register PNG format with image.Decode
	"io"
	"log/slog"
	"math"

	"github.com/echoflaresat/phong/colors"
	"github.com/echoflaresat/phong/vectors"
	"github.com/echoflaresat/tiff"
	"golang.org/x/exp/mmap"
)

// ErrUnsupportedFormat is returned when neither the TIFF decoder nor the
// registered image codecs can read a file.
var ErrUnsupportedFormat = errors.New("unsupported texture format")

// Texture is a decoded RGB image sampled by UV or by direction.
type Texture struct {
	Width  int
	Height int
	img    image.Image
	data   io.Closer // backing file mapping, nil for in-memory images
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image) Texture {
	b := img.Bounds()
	return Texture{
		Width:  b.Dx(),
		Height: b.Dy(),
		img:    img,
	}
}

// Load memory-maps path and decodes it, trying TIFF first and then the
// registered image codecs. The mapping stays open until Close.
func Load(path string) (Texture, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return Texture{}, err
	}

	img, err := decode(reader)
	if err != nil {
		reader.Close()
		return Texture{}, fmt.Errorf("load texture %s: %w", path, err)
	}
	tex := FromImage(img)
	tex.data = reader
	return tex, nil
}

// Close releases the file mapping behind a loaded texture. The texture
// must not be sampled afterwards.
func (t Texture) Close() error {
	if t.data != nil {
		return t.data.Close()
	}
	return nil
}

func decode(r io.ReaderAt) (image.Image, error) {
	size := int64(math.MaxInt64)
	if m, ok := r.(*mmap.ReaderAt); ok {
		size = int64(m.Len())
	}

	img, err := tiff.Decode(io.NewSectionReader(r, 0, size))
	if err == nil {
		return img, nil
	}
	slog.Debug("not a TIFF, falling back to image codecs", "error", err)

	img, _, err = image.Decode(io.NewSectionReader(r, 0, size))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, err
	}
	return img, nil
}

// SampleUV returns the nearest texel for u,v in [0,1]; v = 0 is the top row.
// Coordinates outside the unit square are clamped to the border.
func (t Texture) SampleUV(u, v float64) colors.Color {
	x := int(u * float64(t.Width-1))
	y := int(v * float64(t.Height-1))
	return t.Pixel(x, y)
}

// SampleSpherical maps a point on the unit sphere (object space, +y up)
// to an equirectangular lon-lat lookup.
func (t Texture) SampleSpherical(p vectors.Vec3) colors.Color {
	d := p.Normalize()
	lat := math.Asin(math.Max(-1, math.Min(1, d.Y)))
	lon := math.Atan2(d.X, -d.Z)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	u := lon / (2 * math.Pi)
	v := 0.5 - lat/math.Pi
	return t.SampleUV(u, v)
}

// Pixel returns the texel at (x, y), clamping coordinates to the image.
func (t Texture) Pixel(x, y int) colors.Color {
	if x < 0 {
		x = 0
	} else if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}

	b := t.img.Bounds()
	return colors.FromStandardColor(t.img.At(b.Min.X+x, b.Min.Y+y))
}
