package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/echoflaresat/phong/colors"
	"github.com/echoflaresat/phong/lights"
	"github.com/echoflaresat/phong/patterns"
	"github.com/echoflaresat/phong/vectors"
)

const (
	DefaultAmbient   = 0.1
	DefaultDiffuse   = 0.9
	DefaultSpecular  = 0.9
	DefaultShininess = 200.0
)

// ErrInvalidMaterial is wrapped by Validate failures.
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds the Phong reflection coefficients of a surface.
// When Pattern is set it replaces Color as the base color.
type Material struct {
	Color     colors.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
	Pattern   patterns.Pattern
}

// Default returns a white material with the standard coefficients.
func Default() Material {
	return Material{
		Color:     colors.White(),
		Ambient:   DefaultAmbient,
		Diffuse:   DefaultDiffuse,
		Specular:  DefaultSpecular,
		Shininess: DefaultShininess,
	}
}

// Validate checks that all coefficients are usable.
func (m Material) Validate() error {
	switch {
	case m.Ambient < 0:
		return fmt.Errorf("%w: ambient %v < 0", ErrInvalidMaterial, m.Ambient)
	case m.Diffuse < 0:
		return fmt.Errorf("%w: diffuse %v < 0", ErrInvalidMaterial, m.Diffuse)
	case m.Specular < 0:
		return fmt.Errorf("%w: specular %v < 0", ErrInvalidMaterial, m.Specular)
	case !(m.Shininess > 0):
		return fmt.Errorf("%w: shininess %v must be positive", ErrInvalidMaterial, m.Shininess)
	}
	return nil
}

// Lighting shades point on object as seen along eyev with surface normal
// normalv under a single point light. Ambient light is kept even when the
// point is in shadow; diffuse and specular are dropped.
// No clamping happens here.
func (m Material) Lighting(
	object patterns.Transformed,
	light lights.PointLight,
	point, eyev, normalv vectors.Vec3,
	inShadow bool,
) colors.Color {
	base := m.Color
	if m.Pattern != nil {
		base = patterns.AtShape(m.Pattern, object, point)
	}

	effective := base.Mul(light.Intensity)
	lightv := light.Position.Sub(point).Normalize()
	ambient := effective.Scale(m.Ambient)
	if inShadow {
		return ambient
	}

	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	specular := colors.Black()
	reflectv := lightv.Neg().Reflect(normalv)
	if reflectDotEye := reflectv.Dot(eyev); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
