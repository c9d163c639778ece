package sim

// GestureSnapshot is the abstracted per-frame summary of hand-tracking state.
// It is produced by an external collaborator (a tracker, the keyboard shim,
// or a recording player); the simulation never sees raw landmarks.
type GestureSnapshot struct {
	Fist     bool `json:"fist"`
	Open     bool `json:"open"`
	Pinching bool `json:"pinching"`
	Pointing bool `json:"pointing"`
	Rock     bool `json:"rock"`
	Peace    bool `json:"peace"`

	HandDetected bool    `json:"handDetected"`
	Spread       float64 `json:"spread"`   // normalized [0,1]
	PointerX     float64 `json:"pointerX"` // normalized, roughly [-1,1]
	PointerY     float64 `json:"pointerY"`
}

// Directives is the simulation-facing translation of a gesture snapshot.
type Directives struct {
	Shape           Shape
	HasShape        bool
	ExpansionTarget float64
	RepulsionX      float64
	RepulsionY      float64
}

// noRepulsion parks the repulsion point far outside the interaction radius so
// no particle is ever affected when no pointer is present.
const noRepulsion = 1e6

// gesturePriority resolves snapshots that (erroneously) carry several flags:
// first match wins.
var gesturePriority = []struct {
	flag  func(*GestureSnapshot) bool
	shape Shape
}{
	{func(s *GestureSnapshot) bool { return s.Fist }, ShapeHeart},
	{func(s *GestureSnapshot) bool { return s.Pinching }, ShapeDNA},
	{func(s *GestureSnapshot) bool { return s.Open }, ShapeGalaxy},
	{func(s *GestureSnapshot) bool { return s.Rock }, ShapeSaturn},
	{func(s *GestureSnapshot) bool { return s.Peace }, ShapeFlower},
	{func(s *GestureSnapshot) bool { return s.Pointing }, ShapeFireworks},
}

// MapGesture translates a snapshot (or nil, meaning no tracking data this
// frame) into simulation directives. With no snapshot or no hand the
// expansion target relaxes to 1 and repulsion is disabled.
func MapGesture(snap *GestureSnapshot) Directives {
	d := Directives{
		ExpansionTarget: 1.0,
		RepulsionX:      noRepulsion,
		RepulsionY:      noRepulsion,
	}
	if snap == nil {
		return d
	}
	for _, g := range gesturePriority {
		if g.flag(snap) {
			d.Shape = g.shape
			d.HasShape = true
			break
		}
	}
	if snap.HandDetected {
		d.ExpansionTarget = 0.7 + 0.8*snap.Spread
		d.RepulsionX = snap.PointerX * 40
		d.RepulsionY = snap.PointerY * 20
	}
	return d
}
