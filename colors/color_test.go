package colors

import (
	"image/color"
	"testing"
)

func TestArithmetic(t *testing.T) {
	c1 := New(0.9, 0.6, 0.75)
	c2 := New(0.7, 0.1, 0.25)

	if got := c1.Add(c2); !got.Approx(New(1.6, 0.7, 1.0), 1e-9) {
		t.Errorf("Add = %v", got)
	}
	if got := c1.Sub(c2); !got.Approx(New(0.2, 0.5, 0.5), 1e-9) {
		t.Errorf("Sub = %v", got)
	}
	if got := New(0.2, 0.3, 0.4).Scale(2); !got.Approx(New(0.4, 0.6, 0.8), 1e-9) {
		t.Errorf("Scale = %v", got)
	}
	if got := New(1, 0.2, 0.4).Mul(New(0.9, 1, 0.1)); !got.Approx(New(0.9, 0.2, 0.04), 1e-9) {
		t.Errorf("Mul = %v", got)
	}
}

func TestNoClampingUntilDisplay(t *testing.T) {
	c := New(1.5, -0.5, 0.5)
	if sum := c.Add(c); sum.R != 3 || sum.G != -1 {
		t.Errorf("arithmetic must not clamp, got %v", sum)
	}
	want := color.NRGBA{255, 0, 128, 255}
	if got := c.ToNRGBA(); got != want {
		t.Errorf("ToNRGBA = %v, want %v", got, want)
	}
}

func TestFromStandardColor(t *testing.T) {
	got := FromStandardColor(color.NRGBA{255, 0, 255, 255})
	if !got.Approx(New(1, 0, 1), 1e-9) {
		t.Errorf("FromStandardColor = %v", got)
	}
	if got := FromStandardColor(color.NRGBA{10, 20, 30, 0}); got != Black() {
		t.Errorf("transparent should map to black, got %v", got)
	}
	if got := FromStandardColor(White()); got != White() {
		t.Errorf("fast path lost value: %v", got)
	}
}
