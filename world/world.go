package world

import (
	"github.com/echoflaresat/phong/colors"
	"github.com/echoflaresat/phong/intersect"
	"github.com/echoflaresat/phong/lights"
	"github.com/echoflaresat/phong/shapes"
	"github.com/echoflaresat/phong/vectors"
)

// World is a collection of shapes lit by point lights. It is read-only
// while rendering, so ColorAt may be called from many goroutines.
type World struct {
	Objects    []shapes.Shape
	Lights     []lights.PointLight
	Background colors.Color
}

func New() *World {
	return &World{}
}

// Default returns the two-sphere test scene: an outer unit sphere and an
// inner sphere of radius 0.5, lit from (-10, 10, -10).
func Default() *World {
	outer := shapes.NewSphere()
	m := outer.Material()
	m.Color = colors.New(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2

	inner := shapes.NewSphere()
	// scaling by 0.5 is always invertible
	_ = inner.SetTransform(vectors.Scaling(0.5, 0.5, 0.5))

	return &World{
		Objects: []shapes.Shape{outer, inner},
		Lights: []lights.PointLight{
			lights.NewPointLight(vectors.New(-10, 10, -10), colors.White()),
		},
	}
}

// Intersect gathers every intersection of ray with the scene into a single
// sorted set so the hit is chosen scene-wide.
func (w *World) Intersect(ray vectors.Ray) intersect.Intersections {
	xs := intersect.NewIntersections()
	for _, obj := range w.Objects {
		xs.Extend(obj.Intersect(ray))
	}
	return xs
}

// ShadeHit sums the contribution of every light at the prepared hit.
func (w *World) ShadeHit(comps intersect.Computations) colors.Color {
	m := comps.Object.Material()
	out := colors.Black()
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(light.Position, comps.OverPoint)
		out = out.Add(m.Lighting(comps.Object, light, comps.OverPoint, comps.Eyev, comps.Normalv, shadowed))
	}
	return out
}

// ColorAt returns the color seen along ray, or the background when the ray
// escapes the scene.
func (w *World) ColorAt(ray vectors.Ray) colors.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return w.Background
	}
	return w.ShadeHit(hit.PrepareComputations(ray))
}

// IsShadowed reports whether something lies between point and the light.
func (w *World) IsShadowed(lightPosition, point vectors.Vec3) bool {
	v := lightPosition.Sub(point)
	distance := v.Norm()
	r := vectors.NewRay(point, v.Normalize())

	xs := w.Intersect(r)
	hit, ok := xs.Hit()
	return ok && hit.T < distance
}
