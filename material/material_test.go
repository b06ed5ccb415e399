package material

import (
	"errors"
	"math"
	"testing"

	"github.com/echoflaresat/phong/colors"
	"github.com/echoflaresat/phong/lights"
	"github.com/echoflaresat/phong/patterns"
	"github.com/echoflaresat/phong/vectors"
)

const tolerance = 1e-4

type unitObject struct{}

func (unitObject) Inverse() vectors.Mat4 { return vectors.Identity() }

func TestDefault(t *testing.T) {
	m := Default()
	if m.Color != colors.White() || m.Ambient != 0.1 || m.Diffuse != 0.9 ||
		m.Specular != 0.9 || m.Shininess != 200 || m.Pattern != nil {
		t.Errorf("unexpected default material: %+v", m)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("default material should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Material)
	}{
		{"negative ambient", func(m *Material) { m.Ambient = -0.1 }},
		{"negative diffuse", func(m *Material) { m.Diffuse = -1 }},
		{"negative specular", func(m *Material) { m.Specular = -1 }},
		{"zero shininess", func(m *Material) { m.Shininess = 0 }},
		{"NaN shininess", func(m *Material) { m.Shininess = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Default()
			tt.mutate(&m)
			if err := m.Validate(); !errors.Is(err, ErrInvalidMaterial) {
				t.Errorf("expected ErrInvalidMaterial, got %v", err)
			}
		})
	}
}

func TestLighting(t *testing.T) {
	position := vectors.New(0, 0, 0)
	normalv := vectors.New(0, 0, -1)
	s2 := math.Sqrt2 / 2

	tests := []struct {
		name     string
		eyev     vectors.Vec3
		light    vectors.Vec3
		inShadow bool
		want     colors.Color
	}{
		{"eye between light and surface", vectors.New(0, 0, -1), vectors.New(0, 0, -10), false, colors.New(1.9, 1.9, 1.9)},
		{"eye offset 45 degrees", vectors.New(0, s2, -s2), vectors.New(0, 0, -10), false, colors.New(1.0, 1.0, 1.0)},
		{"light offset 45 degrees", vectors.New(0, 0, -1), vectors.New(0, 10, -10), false, colors.New(0.7364, 0.7364, 0.7364)},
		{"eye in path of reflection", vectors.New(0, -s2, -s2), vectors.New(0, 10, -10), false, colors.New(1.6364, 1.6364, 1.6364)},
		{"light behind surface", vectors.New(0, 0, -1), vectors.New(0, 0, 10), false, colors.New(0.1, 0.1, 0.1)},
		{"surface in shadow", vectors.New(0, 0, -1), vectors.New(0, 0, -10), true, colors.New(0.1, 0.1, 0.1)},
		{"in shadow with offset eye", vectors.New(0, -s2, -s2), vectors.New(0, 10, -10), true, colors.New(0.1, 0.1, 0.1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Default()
			light := lights.NewPointLight(tt.light, colors.White())
			got := m.Lighting(unitObject{}, light, position, tt.eyev, normalv, tt.inShadow)
			if !got.Approx(tt.want, tolerance) {
				t.Errorf("Lighting() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLightingUsesLightColor(t *testing.T) {
	m := Default()
	m.Color = colors.New(1, 0.5, 0)
	light := lights.NewPointLight(vectors.New(0, 0, -10), colors.New(0.5, 1, 1))
	got := m.Lighting(unitObject{}, light, vectors.Zero(), vectors.New(0, 0, -1), vectors.New(0, 0, -1), true)
	if want := colors.New(0.05, 0.05, 0); !got.Approx(want, tolerance) {
		t.Errorf("ambient = %v, want %v", got, want)
	}
}

func TestLightingWithPattern(t *testing.T) {
	m := Material{
		Color:     colors.White(),
		Ambient:   1,
		Diffuse:   0,
		Specular:  0,
		Shininess: DefaultShininess,
		Pattern:   patterns.NewStripe(colors.White(), colors.Black()),
	}
	eyev := vectors.New(0, 0, -1)
	normalv := vectors.New(0, 0, -1)
	light := lights.NewPointLight(vectors.New(0, 0, -10), colors.White())

	c1 := m.Lighting(unitObject{}, light, vectors.New(0.9, 0, 0), eyev, normalv, false)
	c2 := m.Lighting(unitObject{}, light, vectors.New(1.1, 0, 0), eyev, normalv, false)
	if c1 != colors.White() {
		t.Errorf("c1 = %v, want white", c1)
	}
	if c2 != colors.Black() {
		t.Errorf("c2 = %v, want black", c2)
	}
}
