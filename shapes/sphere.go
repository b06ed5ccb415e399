package shapes

import (
	"math"

	"github.com/echoflaresat/phong/intersect"
	"github.com/echoflaresat/phong/vectors"
)

// Sphere is the unit sphere at the object-space origin.
type Sphere struct {
	base
}

func NewSphere() *Sphere {
	return &Sphere{base: newBase()}
}

// Intersect solves |O + tD|² = 1 in object space.
func (s *Sphere) Intersect(ray vectors.Ray) intersect.Intersections {
	r := s.localRay(ray)

	a := r.Direction.Dot(r.Direction)
	b := 2.0 * r.Direction.Dot(r.Origin)
	c := r.Origin.Dot(r.Origin) - 1.0

	discriminant := b*b - 4.0*a*c
	if discriminant < 0 {
		return intersect.NewIntersections()
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2.0 * a)
	t2 := (-b + sqrtDisc) / (2.0 * a)
	return intersect.NewIntersections(
		intersect.New(t1, s),
		intersect.New(t2, s),
	)
}

func (s *Sphere) NormalAt(worldPoint vectors.Vec3) vectors.Vec3 {
	objectPoint := s.inverse.MulPoint(worldPoint)
	return s.worldNormal(objectPoint)
}
