package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/echoflaresat/phong/canvas"
	"github.com/echoflaresat/phong/texture"
)

// merge_tiles stitches separately rendered tiles into one image, e.g. when
// a large render was split across machines.
func main() {
	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <cols>x<rows> <output> <tile1> <tile2> ...\n", os.Args[0])
		os.Exit(1)
	}

	cols, rows, err := parseLayout(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	output := os.Args[2]
	inputFiles := os.Args[3:]
	if len(inputFiles) != cols*rows {
		log.Fatalf("Expected %d input files, got %d", cols*rows, len(inputFiles))
	}

	out, err := merge(cols, inputFiles)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("-> creating %s\n", output)
	if err := out.Save(output); err != nil {
		log.Fatalf("Could not write %s: %v", output, err)
	}
}

func parseLayout(s string) (cols, rows int, err error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid tile format: %s (expected NxM)", s)
	}
	if cols, err = strconv.Atoi(parts[0]); err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("invalid cols: %q", parts[0])
	}
	if rows, err = strconv.Atoi(parts[1]); err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("invalid rows: %q", parts[1])
	}
	return cols, rows, nil
}

// merge lays tiles out row-major, cols per row. All tiles must share one size.
func merge(cols int, paths []string) (*canvas.Canvas, error) {
	var out *canvas.Canvas
	var tileW, tileH int
	rows := len(paths) / cols

	for idx, path := range paths {
		fmt.Printf("Processing %s\n", path)
		tile, err := texture.Load(path)
		if err != nil {
			return nil, fmt.Errorf("could not load %q: %w", path, err)
		}

		if out == nil {
			tileW, tileH = tile.Width, tile.Height
			out = canvas.New(cols*tileW, rows*tileH)
		} else if tile.Width != tileW || tile.Height != tileH {
			tile.Close()
			return nil, fmt.Errorf("tile size mismatch for %q: expected %dx%d, got %dx%d",
				path, tileW, tileH, tile.Width, tile.Height)
		}

		x0 := (idx % cols) * tileW
		y0 := (idx / cols) * tileH
		for y := 0; y < tileH; y++ {
			for x := 0; x < tileW; x++ {
				out.WritePixel(x0+x, y0+y, tile.Pixel(x, y))
			}
		}
		tile.Close()
	}
	return out, nil
}
