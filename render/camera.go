package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/echoflaresat/phong/vectors"
)

// ErrInvalidCamera is wrapped by NewCamera when its arguments cannot
// describe a pinhole camera.
var ErrInvalidCamera = errors.New("invalid camera")

// Camera is a pinhole camera looking down -z from the origin of its own
// space. Transform places it in the world; by default it is the identity.
// Its size and field of view are fixed at construction.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64 // radians

	transform vectors.Mat4
	inverse   vectors.Mat4

	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera builds a camera for an hsize×vsize canvas with the given field
// of view in radians. The canvas is 1 unit in front of the eye and its
// longer side spans the field of view.
func NewCamera(hsize, vsize int, fieldOfView float64) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("%w: canvas size %dx%d", ErrInvalidCamera, hsize, vsize)
	}
	if !(fieldOfView > 0 && fieldOfView < math.Pi) {
		return nil, fmt.Errorf("%w: field of view %v outside (0, π)", ErrInvalidCamera, fieldOfView)
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   vectors.Identity(),
		inverse:     vectors.Identity(),
		pixelSize:   halfWidth * 2 / float64(hsize),
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
	}, nil
}

// HSize is the canvas width in pixels.
func (c *Camera) HSize() int { return c.hsize }

// VSize is the canvas height in pixels.
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView is the angle in radians spanned by the longer canvas side.
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// PixelSize is the world-space width of one pixel on the canvas plane.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

func (c *Camera) Transform() vectors.Mat4 { return c.transform }

// SetTransform positions the camera, typically with vectors.ViewTransform.
// The inverse is computed once here; a singular matrix is rejected.
func (c *Camera) SetTransform(m vectors.Mat4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform, c.inverse = m, inv
	return nil
}

// RayForPixel returns the world-space ray from the eye through the center
// of pixel (px, py). x grows to the right and y grows downward on the canvas.
func (c *Camera) RayForPixel(px, py int) vectors.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulPoint(vectors.New(worldX, worldY, -1))
	origin := c.inverse.MulPoint(vectors.Zero())
	direction := pixel.Sub(origin).Normalize()

	return vectors.NewRay(origin, direction)
}
