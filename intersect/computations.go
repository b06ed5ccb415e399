package intersect

import "github.com/echoflaresat/phong/vectors"

// Computations is the shading geometry derived from one intersection.
type Computations struct {
	T       float64
	Object  Object
	Point   vectors.Vec3 // world-space hit location
	Eyev    vectors.Vec3 // unit vector toward the ray origin
	Normalv vectors.Vec3 // unit normal, flipped to face the eye
	Inside  bool         // the ray started inside the object

	// OverPoint is Point nudged along Normalv by EPSILON, used as the
	// origin of shadow rays so the surface does not shadow itself.
	OverPoint vectors.Vec3
}

// PrepareComputations derives the shading inputs for i as seen along ray.
func (i Intersection) PrepareComputations(ray vectors.Ray) Computations {
	point := ray.Position(i.T)
	eyev := ray.Direction.Neg()
	normalv := i.Object.NormalAt(point)

	inside := false
	if normalv.Dot(eyev) < 0 {
		inside = true
		normalv = normalv.Neg()
	}

	return Computations{
		T:         i.T,
		Object:    i.Object,
		Point:     point,
		Eyev:      eyev,
		Normalv:   normalv,
		Inside:    inside,
		OverPoint: point.Add(normalv.Scale(vectors.EPSILON)),
	}
}
