package render

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/echoflaresat/phong/colors"
	"github.com/echoflaresat/phong/vectors"
	"github.com/echoflaresat/phong/world"
)

func TestRenderDefaultWorld(t *testing.T) {
	w := world.Default()
	c, err := NewCamera(11, 11, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	from := vectors.New(0, 0, -5)
	to := vectors.New(0, 0, 0)
	up := vectors.New(0, 1, 0)
	if err := c.SetTransform(vectors.ViewTransform(from, to, up)); err != nil {
		t.Fatal(err)
	}

	img := c.Render(w)
	want := colors.New(0.38066, 0.47583, 0.2855)
	if got := img.PixelAt(5, 5); !got.Approx(want, 1e-4) {
		t.Errorf("PixelAt(5,5) = %v, want %v", got, want)
	}
}

// countingWorld records how often each pixel's ray was traced.
type countingWorld struct {
	cam    *Camera
	counts []atomic.Int32
}

func (w *countingWorld) ColorAt(ray vectors.Ray) colors.Color {
	// recover the pixel from the ray direction on the z = -1 plane
	d := ray.Direction.Scale(-1 / ray.Direction.Z)
	px := int(math.Floor((w.cam.halfWidth - d.X) / w.cam.pixelSize))
	py := int(math.Floor((w.cam.halfHeight - d.Y) / w.cam.pixelSize))
	w.counts[py*w.cam.HSize()+px].Add(1)
	return colors.New(float64(px), float64(py), 0)
}

func TestRenderCoversEveryPixelOnce(t *testing.T) {
	for _, workers := range []int{1, 3, 16} {
		c, err := NewCamera(23, 17, math.Pi/3)
		if err != nil {
			t.Fatal(err)
		}
		w := &countingWorld{cam: c, counts: make([]atomic.Int32, c.HSize()*c.VSize())}

		img, err := c.RenderContext(context.Background(), w, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		for y := 0; y < c.VSize(); y++ {
			for x := 0; x < c.HSize(); x++ {
				if n := w.counts[y*c.HSize()+x].Load(); n != 1 {
					t.Fatalf("workers=%d: pixel (%d,%d) traced %d times", workers, x, y, n)
				}
				if got := img.PixelAt(x, y); got != colors.New(float64(x), float64(y), 0) {
					t.Fatalf("workers=%d: pixel (%d,%d) holds %v", workers, x, y, got)
				}
			}
		}
	}
}

type flatWorld struct{}

func (flatWorld) ColorAt(vectors.Ray) colors.Color { return colors.White() }

func TestRenderContextCancelled(t *testing.T) {
	c, _ := NewCamera(8, 8, math.Pi/2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, err := c.RenderContext(ctx, flatWorld{}, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Errorf("expected no canvas on cancellation")
	}
}
