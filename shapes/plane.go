package shapes

import (
	"math"

	"github.com/echoflaresat/phong/intersect"
	"github.com/echoflaresat/phong/vectors"
)

// Plane is the infinite xz plane in object space.
type Plane struct {
	base
}

func NewPlane() *Plane {
	return &Plane{base: newBase()}
}

func (p *Plane) Intersect(ray vectors.Ray) intersect.Intersections {
	r := p.localRay(ray)
	if math.Abs(r.Direction.Y) < vectors.EPSILON {
		// parallel or coplanar
		return intersect.NewIntersections()
	}
	t := -r.Origin.Y / r.Direction.Y
	return intersect.NewIntersections(intersect.New(t, p))
}

func (p *Plane) NormalAt(vectors.Vec3) vectors.Vec3 {
	return p.worldNormal(vectors.New(0, 1, 0))
}
