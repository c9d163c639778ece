package sim

import (
	"math"
	"math/rand"
	"testing"
)

func TestTargetColorInRange(t *testing.T) {
	p := NewPalette()
	rng := rand.New(rand.NewSource(1))
	for _, shape := range Shapes() {
		for i := 0; i < 200; i++ {
			for cycle := 0; cycle < 5; cycle++ {
				c := p.TargetColor(shape, i, cycle, rng)
				for _, ch := range [3]float64{c.X, c.Y, c.Z} {
					if ch < 0 || ch > 1 {
						t.Fatalf("%s cycle %d: channel out of range: %+v", shape, cycle, c)
					}
				}
			}
		}
	}
}

func TestTargetColorNearPaletteEntry(t *testing.T) {
	p := NewPalette()
	rng := rand.New(rand.NewSource(2))
	for _, shape := range Shapes() {
		for i := 0; i < 50; i++ {
			base := p.colors[shape][i%p.Len(shape)]
			c := p.TargetColor(shape, i, 0, rng)
			// Clamping can only pull a channel back toward the base, so the
			// perturbation bound holds even at the gamut edges.
			if math.Abs(c.X-base.X) > perturbation+1e-9 ||
				math.Abs(c.Y-base.Y) > perturbation+1e-9 ||
				math.Abs(c.Z-base.Z) > perturbation+1e-9 {
				t.Fatalf("%s[%d]: color %+v too far from base %+v", shape, i, c, base)
			}
		}
	}
}

func TestRotateRBPreservesGreen(t *testing.T) {
	c := Vec3{X: 0.8, Y: 0.35, Z: 0.2}
	for k := 1; k <= 12; k++ {
		r := rotateRB(c, float64(k)*hueStep)
		if r.Y != c.Y {
			t.Fatalf("green changed at cycle %d: %v", k, r.Y)
		}
	}
}

func TestRotateRBIsPureRotation(t *testing.T) {
	c := Vec3{X: 0.6, Y: 0.1, Z: 0.3}
	got := rotateRB(rotateRB(c, hueStep), -hueStep)
	if math.Abs(got.X-c.X) > 1e-12 || math.Abs(got.Z-c.Z) > 1e-12 {
		t.Fatalf("rotation not invertible: %+v vs %+v", got, c)
	}
	// Magnitude in the (r,b) plane is preserved, so the accumulated cycle
	// angle is the only difference between cycles.
	before := math.Hypot(c.X, c.Z)
	after := math.Hypot(rotateRB(c, 7*hueStep).X, rotateRB(c, 7*hueStep).Z)
	if math.Abs(before-after) > 1e-12 {
		t.Fatalf("rotation changed magnitude: %v vs %v", before, after)
	}
}

func TestPaletteCoversAllShapes(t *testing.T) {
	p := NewPalette()
	for _, shape := range Shapes() {
		if p.Len(shape) == 0 {
			t.Fatalf("no palette for %s", shape)
		}
	}
}
