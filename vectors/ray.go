package vectors

// Ray is a half-line O + t*D.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at distance t along the ray.
func (r Ray) Position(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform returns the ray mapped by m. The direction is not renormalized
// so that t values stay comparable across spaces.
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulVector(r.Direction),
	}
}
