package patterns

import (
	"math"

	"github.com/echoflaresat/phong/colors"
	"github.com/echoflaresat/phong/texture"
	"github.com/echoflaresat/phong/vectors"
)

// Transformed is anything placed in the world by an invertible transform.
// Shapes satisfy it; so does every Pattern.
type Transformed interface {
	Inverse() vectors.Mat4
}

// Pattern maps a point in pattern space to a color.
type Pattern interface {
	Transformed
	At(p vectors.Vec3) colors.Color
}

// AtShape evaluates p for a world-space point on obj: the point is taken
// into the object's space and then into the pattern's own space.
func AtShape(p Pattern, obj Transformed, worldPoint vectors.Vec3) colors.Color {
	objectPoint := obj.Inverse().MulPoint(worldPoint)
	patternPoint := p.Inverse().MulPoint(objectPoint)
	return p.At(patternPoint)
}

// transform carries a pattern's placement and its cached inverse.
type transform struct {
	inverse vectors.Mat4
	set     bool
}

// Inverse returns the inverse of the pattern transform, identity by default.
func (t *transform) Inverse() vectors.Mat4 {
	if !t.set {
		return vectors.Identity()
	}
	return t.inverse
}

// SetTransform places the pattern relative to the object it decorates.
func (t *transform) SetTransform(m vectors.Mat4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	t.inverse, t.set = inv, true
	return nil
}

// Stripe alternates A and B along x every unit.
type Stripe struct {
	transform
	A, B colors.Color
}

func NewStripe(a, b colors.Color) *Stripe {
	return &Stripe{A: a, B: b}
}

func (s *Stripe) At(p vectors.Vec3) colors.Color {
	if int(math.Floor(p.X))%2 == 0 {
		return s.A
	}
	return s.B
}

// Gradient blends linearly from A to B across each unit of x.
type Gradient struct {
	transform
	A, B colors.Color
}

func NewGradient(a, b colors.Color) *Gradient {
	return &Gradient{A: a, B: b}
}

func (g *Gradient) At(p vectors.Vec3) colors.Color {
	return g.A.Mix(g.B, p.X-math.Floor(p.X))
}

// Ring alternates A and B in concentric rings around the y axis.
type Ring struct {
	transform
	A, B colors.Color
}

func NewRing(a, b colors.Color) *Ring {
	return &Ring{A: a, B: b}
}

func (r *Ring) At(p vectors.Vec3) colors.Color {
	if int(math.Floor(math.Hypot(p.X, p.Z)))%2 == 0 {
		return r.A
	}
	return r.B
}

// Checker alternates A and B in unit cubes.
type Checker struct {
	transform
	A, B colors.Color
}

func NewChecker(a, b colors.Color) *Checker {
	return &Checker{A: a, B: b}
}

func (c *Checker) At(p vectors.Vec3) colors.Color {
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	if int(sum)%2 == 0 {
		return c.A
	}
	return c.B
}

// Image wraps a texture around the unit sphere of pattern space using an
// equirectangular (lon-lat) projection.
type Image struct {
	transform
	Texture texture.Texture
}

func NewImage(tex texture.Texture) *Image {
	return &Image{Texture: tex}
}

func (i *Image) At(p vectors.Vec3) colors.Color {
	return i.Texture.SampleSpherical(p)
}
