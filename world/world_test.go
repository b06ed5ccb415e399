package world

import (
	"testing"

	"github.com/echoflaresat/phong/colors"
	"github.com/echoflaresat/phong/intersect"
	"github.com/echoflaresat/phong/lights"
	"github.com/echoflaresat/phong/shapes"
	"github.com/echoflaresat/phong/vectors"
)

const tolerance = 1e-4

func TestEmptyWorld(t *testing.T) {
	w := New()
	if len(w.Objects) != 0 || len(w.Lights) != 0 {
		t.Errorf("expected empty world, got %+v", w)
	}
	r := vectors.NewRay(vectors.New(0, 0, -5), vectors.New(0, 0, 1))
	if got := w.ColorAt(r); got != colors.Black() {
		t.Errorf("empty world should render background, got %v", got)
	}
}

func TestDefaultWorld(t *testing.T) {
	w := Default()
	if len(w.Objects) != 2 || len(w.Lights) != 1 {
		t.Fatalf("unexpected default world: %d objects, %d lights", len(w.Objects), len(w.Lights))
	}
	if w.Lights[0].Position != vectors.New(-10, 10, -10) {
		t.Errorf("light position = %v", w.Lights[0].Position)
	}
	if w.Objects[1].Transform() != vectors.Scaling(0.5, 0.5, 0.5) {
		t.Errorf("inner sphere transform = %v", w.Objects[1].Transform())
	}
}

func TestIntersectWorld(t *testing.T) {
	w := Default()
	xs := w.Intersect(vectors.NewRay(vectors.New(0, 0, -5), vectors.New(0, 0, 1)))
	want := []float64{4, 4.5, 5.5, 6}
	if xs.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", xs.Len(), len(want))
	}
	for i, v := range want {
		if xs.At(i).T != v {
			t.Errorf("xs[%d].T = %v, want %v", i, xs.At(i).T, v)
		}
	}
	if hit, ok := xs.Hit(); !ok || hit.Object != w.Objects[0] {
		t.Errorf("hit should be the outer sphere")
	}
}

func TestShadeHit(t *testing.T) {
	t.Run("outside", func(t *testing.T) {
		w := Default()
		r := vectors.NewRay(vectors.New(0, 0, -5), vectors.New(0, 0, 1))
		comps := intersect.New(4, w.Objects[0]).PrepareComputations(r)
		want := colors.New(0.38066, 0.47583, 0.2855)
		if got := w.ShadeHit(comps); !got.Approx(want, tolerance) {
			t.Errorf("ShadeHit() = %v, want %v", got, want)
		}
	})
	t.Run("inside", func(t *testing.T) {
		w := Default()
		w.Lights = []lights.PointLight{lights.NewPointLight(vectors.New(0, 0.25, 0), colors.White())}
		r := vectors.NewRay(vectors.New(0, 0, 0), vectors.New(0, 0, 1))
		comps := intersect.New(0.5, w.Objects[1]).PrepareComputations(r)
		want := colors.New(0.90498, 0.90498, 0.90498)
		if got := w.ShadeHit(comps); !got.Approx(want, tolerance) {
			t.Errorf("ShadeHit() = %v, want %v", got, want)
		}
	})
	t.Run("in shadow", func(t *testing.T) {
		w := New()
		w.Lights = []lights.PointLight{lights.NewPointLight(vectors.New(0, 0, -10), colors.White())}
		s1 := shapes.NewSphere()
		s2 := shapes.NewSphere()
		if err := s2.SetTransform(vectors.Translation(0, 0, 10)); err != nil {
			t.Fatal(err)
		}
		w.Objects = []shapes.Shape{s1, s2}

		r := vectors.NewRay(vectors.New(0, 0, 5), vectors.New(0, 0, 1))
		comps := intersect.New(4, s2).PrepareComputations(r)
		want := colors.New(0.1, 0.1, 0.1)
		if got := w.ShadeHit(comps); !got.Approx(want, tolerance) {
			t.Errorf("ShadeHit() = %v, want %v", got, want)
		}
	})
	t.Run("two lights add up", func(t *testing.T) {
		w := Default()
		w.Lights = append(w.Lights, w.Lights[0])
		r := vectors.NewRay(vectors.New(0, 0, -5), vectors.New(0, 0, 1))
		comps := intersect.New(4, w.Objects[0]).PrepareComputations(r)
		want := colors.New(0.38066, 0.47583, 0.2855).Scale(2)
		if got := w.ShadeHit(comps); !got.Approx(want, tolerance) {
			t.Errorf("ShadeHit() = %v, want %v", got, want)
		}
	})
}

func TestColorAt(t *testing.T) {
	t.Run("ray misses", func(t *testing.T) {
		w := Default()
		r := vectors.NewRay(vectors.New(0, 0, -5), vectors.New(0, 1, 0))
		if got := w.ColorAt(r); got != colors.Black() {
			t.Errorf("ColorAt() = %v, want black", got)
		}
	})
	t.Run("custom background", func(t *testing.T) {
		w := Default()
		w.Background = colors.New(0.2, 0.3, 0.4)
		r := vectors.NewRay(vectors.New(0, 0, -5), vectors.New(0, 1, 0))
		if got := w.ColorAt(r); got != w.Background {
			t.Errorf("ColorAt() = %v, want %v", got, w.Background)
		}
	})
	t.Run("ray hits", func(t *testing.T) {
		w := Default()
		r := vectors.NewRay(vectors.New(0, 0, -5), vectors.New(0, 0, 1))
		want := colors.New(0.38066, 0.47583, 0.2855)
		if got := w.ColorAt(r); !got.Approx(want, tolerance) {
			t.Errorf("ColorAt() = %v, want %v", got, want)
		}
	})
	t.Run("intersection behind the ray", func(t *testing.T) {
		w := Default()
		w.Objects[0].Material().Ambient = 1
		inner := w.Objects[1]
		inner.Material().Ambient = 1
		r := vectors.NewRay(vectors.New(0, 0, 0.75), vectors.New(0, 0, -1))
		if got := w.ColorAt(r); !got.Approx(inner.Material().Color, tolerance) {
			t.Errorf("ColorAt() = %v, want %v", got, inner.Material().Color)
		}
	})
}

func TestIsShadowed(t *testing.T) {
	w := Default()
	light := w.Lights[0].Position
	tests := []struct {
		name  string
		point vectors.Vec3
		want  bool
	}{
		{"nothing collinear", vectors.New(0, 10, 0), false},
		{"object between point and light", vectors.New(10, -10, 10), true},
		{"object behind the light", vectors.New(-20, 20, -20), false},
		{"object behind the point", vectors.New(-2, 2, -2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.IsShadowed(light, tt.point); got != tt.want {
				t.Errorf("IsShadowed(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}
