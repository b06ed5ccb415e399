package shapes

import (
	"github.com/echoflaresat/phong/intersect"
	"github.com/echoflaresat/phong/material"
	"github.com/echoflaresat/phong/vectors"
)

// Shape is a renderable object. Intersect reports every crossing of the
// ray with the surface, each referencing the shape itself.
type Shape interface {
	intersect.Object
	Intersect(ray vectors.Ray) intersect.Intersections
	Transform() vectors.Mat4
	SetTransform(m vectors.Mat4) error
	SetMaterial(m material.Material)
}

// base holds what every shape shares: its placement and its material.
type base struct {
	transform vectors.Mat4
	inverse   vectors.Mat4
	material  material.Material
}

func newBase() base {
	return base{
		transform: vectors.Identity(),
		inverse:   vectors.Identity(),
		material:  material.Default(),
	}
}

func (b *base) Transform() vectors.Mat4 { return b.transform }
func (b *base) Inverse() vectors.Mat4   { return b.inverse }

// Material returns the shape's material for in-place edits.
func (b *base) Material() *material.Material { return &b.material }

func (b *base) SetMaterial(m material.Material) { b.material = m }

// SetTransform places the shape in the world. A singular matrix is
// rejected and the previous transform is kept.
func (b *base) SetTransform(m vectors.Mat4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform, b.inverse = m, inv
	return nil
}

// localRay maps a world ray into object space.
func (b *base) localRay(ray vectors.Ray) vectors.Ray {
	return ray.Transform(b.inverse)
}

// worldNormal maps an object-space normal back to world space using the
// inverse transpose, which keeps it perpendicular under non-uniform scaling.
func (b *base) worldNormal(local vectors.Vec3) vectors.Vec3 {
	return b.inverse.Transpose().MulVector(local).Normalize()
}
