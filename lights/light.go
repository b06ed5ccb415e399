package lights

import (
	"time"

	"github.com/echoflaresat/phong/colors"
	"github.com/echoflaresat/phong/earth"
	"github.com/echoflaresat/phong/vectors"
)

// PointLight is a light source with no size emitting Intensity from Position.
type PointLight struct {
	Position  vectors.Vec3
	Intensity colors.Color
}

func NewPointLight(position vectors.Vec3, intensity colors.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Sun places a point light at distance from the scene origin along the
// direction of the Sun for an observer at latDeg/lonDeg at time t.
// Scene axes are +x east, +y up, -z north.
func Sun(t time.Time, latDeg, lonDeg, distance float64, intensity colors.Color) PointLight {
	dir := earth.SunDirection(t, latDeg, lonDeg)
	return PointLight{
		Position:  dir.Scale(distance),
		Intensity: intensity,
	}
}
