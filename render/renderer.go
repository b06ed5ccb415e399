package render

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/echoflaresat/phong/canvas"
	"github.com/echoflaresat/phong/colors"
	"github.com/echoflaresat/phong/vectors"
	"golang.org/x/sync/errgroup"
)

// World is what the camera renders: something that can tell the color
// seen along a ray. Implementations must be safe for concurrent reads.
type World interface {
	ColorAt(ray vectors.Ray) colors.Color
}

// Render traces one ray per pixel using all available CPUs.
func (c *Camera) Render(w World) *canvas.Canvas {
	// Background is never cancelled, so RenderContext cannot fail here.
	img, _ := c.RenderContext(context.Background(), w, 0)
	return img
}

// RenderContext renders the canvas with rows spread across up to workers
// goroutines (GOMAXPROCS when workers <= 0). Every pixel is written exactly
// once and by a single goroutine. It returns ctx.Err() if ctx is cancelled
// before all rows finish.
func (c *Camera) RenderContext(ctx context.Context, w World, workers int) (*canvas.Canvas, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	img := canvas.New(c.hsize, c.vsize)
	progress := newProgress(c.vsize)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < c.vsize; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := 0; x < c.hsize; x++ {
				img.WritePixel(x, y, w.ColorAt(c.RayForPixel(x, y)))
			}
			progress.rowDone()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// progress logs every 10% of completed rows.
type progress struct {
	total int64
	done  atomic.Int64
}

func newProgress(rows int) *progress {
	return &progress{total: int64(rows)}
}

func (p *progress) rowDone() {
	n := p.done.Add(1)
	if n*10/p.total != (n-1)*10/p.total {
		slog.Debug("render progress", "percent", n*100/p.total)
	}
}
