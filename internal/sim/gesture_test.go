package sim

import (
	"math"
	"testing"
)

func TestMapGestureNilSnapshot(t *testing.T) {
	d := MapGesture(nil)
	if d.HasShape {
		t.Fatal("nil snapshot must not propose a template")
	}
	if d.ExpansionTarget != 1.0 {
		t.Fatalf("expected relaxed expansion target, got %v", d.ExpansionTarget)
	}
	if math.Hypot(d.RepulsionX, d.RepulsionY) < 1e5 {
		t.Fatalf("repulsion not parked out of range: (%v, %v)", d.RepulsionX, d.RepulsionY)
	}
}

func TestMapGestureShapeSelection(t *testing.T) {
	cases := []struct {
		name string
		snap GestureSnapshot
		want Shape
	}{
		{"fist", GestureSnapshot{Fist: true}, ShapeHeart},
		{"pinching", GestureSnapshot{Pinching: true}, ShapeDNA},
		{"open", GestureSnapshot{Open: true}, ShapeGalaxy},
		{"rock", GestureSnapshot{Rock: true}, ShapeSaturn},
		{"peace", GestureSnapshot{Peace: true}, ShapeFlower},
		{"pointing", GestureSnapshot{Pointing: true}, ShapeFireworks},
		// Conflicting flags resolve by priority, first match wins.
		{"fist beats pointing", GestureSnapshot{Fist: true, Pointing: true}, ShapeHeart},
		{"pinch beats open", GestureSnapshot{Pinching: true, Open: true}, ShapeDNA},
		{"open beats rock and peace", GestureSnapshot{Open: true, Rock: true, Peace: true}, ShapeGalaxy},
	}
	for _, tc := range cases {
		d := MapGesture(&tc.snap)
		if !d.HasShape {
			t.Fatalf("%s: expected a template proposal", tc.name)
		}
		if d.Shape != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, d.Shape, tc.want)
		}
	}
}

func TestMapGestureNoFlags(t *testing.T) {
	d := MapGesture(&GestureSnapshot{HandDetected: true, Spread: 0.5})
	if d.HasShape {
		t.Fatal("flagless snapshot must not propose a template")
	}
}

func TestMapGestureExpansion(t *testing.T) {
	cases := []struct {
		spread float64
		want   float64
	}{
		{0, 0.7},
		{0.5, 1.1},
		{1, 1.5},
	}
	for _, tc := range cases {
		d := MapGesture(&GestureSnapshot{HandDetected: true, Spread: tc.spread})
		if math.Abs(d.ExpansionTarget-tc.want) > 1e-12 {
			t.Fatalf("spread %v: got %v, want %v", tc.spread, d.ExpansionTarget, tc.want)
		}
	}
	// No hand: target relaxes to 1 regardless of spread.
	d := MapGesture(&GestureSnapshot{Spread: 1})
	if d.ExpansionTarget != 1.0 {
		t.Fatalf("no hand: got %v, want 1", d.ExpansionTarget)
	}
}

func TestMapGestureRepulsionScaling(t *testing.T) {
	d := MapGesture(&GestureSnapshot{HandDetected: true, PointerX: 0.5, PointerY: -1})
	if d.RepulsionX != 20 || d.RepulsionY != -20 {
		t.Fatalf("pointer scaling wrong: (%v, %v)", d.RepulsionX, d.RepulsionY)
	}
	// Without a hand the pointer is ignored.
	d = MapGesture(&GestureSnapshot{PointerX: 0.5, PointerY: 0.5})
	if math.Hypot(d.RepulsionX, d.RepulsionY) < 1e5 {
		t.Fatal("repulsion should be parked without a hand")
	}
}
