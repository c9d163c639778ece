package sim

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// hueStep is the (r,b)-plane rotation applied per palette cycle, in radians.
// Rotating red against blue approximates a hue shift without a full HSV round
// trip, which is what the visual needs.
const hueStep = 0.35

// perturbation is the per-channel random variation applied to every target
// color so particles sharing a palette entry don't render as flat blocks.
const perturbation = 0.1

// Palette holds the per-shape base colors and derives per-particle target
// colors from them.
type Palette struct {
	colors [shapeCount][]Vec3
}

var paletteHex = map[Shape][]string{
	ShapeHeart:     {"#ff2e63", "#ff6b9d", "#ffc0cb", "#d90452"},
	ShapeFlower:    {"#ff70a6", "#ffd670", "#e9ff70", "#ff9770"},
	ShapeSaturn:    {"#e8c170", "#c9a227", "#f5e6b8", "#8c6d1f"},
	ShapeFireworks: {"#ff595e", "#ffca3a", "#8ac926", "#1982c4", "#6a4c93"},
	ShapeGalaxy:    {"#7b2ff7", "#2d9cdb", "#b8c0ff", "#4361ee"},
	ShapeDNA:       {"#2ec4b6", "#80ed99", "#38a3a5", "#57cc99"},
	ShapeStar:      {"#ffd60a", "#fff3b0", "#ffc300", "#ffffff"},
	ShapeTornado:   {"#8d99ae", "#6c91bf", "#bdd5ea", "#577399"},
	ShapeSphere:    {"#48cae4", "#90e0ef", "#0096c7", "#caf0f8"},
}

// NewPalette parses the built-in palettes. Panics on a malformed hex literal,
// which can only happen from an edit to the table above.
func NewPalette() *Palette {
	p := &Palette{}
	for shape, hexes := range paletteHex {
		entries := make([]Vec3, len(hexes))
		for i, h := range hexes {
			c, err := colorful.Hex(h)
			if err != nil {
				panic("sim: bad palette entry " + h + ": " + err.Error())
			}
			entries[i] = Vec3{X: c.R, Y: c.G, Z: c.B}
		}
		p.colors[shape] = entries
	}
	return p
}

// TargetColor returns the target color for one particle: the palette entry
// selected by index, hue-rotated by the cycle count, with a small random
// perturbation per channel. Channels are clamped to [0,1].
func (p *Palette) TargetColor(shape Shape, index, cycle int, rng *rand.Rand) Vec3 {
	entries := p.colors[shape]
	base := entries[index%len(entries)]
	c := rotateRB(base, float64(cycle)*hueStep)
	c.X += (rng.Float64()*2 - 1) * perturbation
	c.Y += (rng.Float64()*2 - 1) * perturbation
	c.Z += (rng.Float64()*2 - 1) * perturbation
	return c.Clamp01()
}

// Len returns the number of base colors for a shape.
func (p *Palette) Len(shape Shape) int {
	return len(p.colors[shape])
}

// rotateRB rotates the red and blue channels by angle, leaving green alone.
func rotateRB(c Vec3, angle float64) Vec3 {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return Vec3{
		X: c.X*cos - c.Z*sin,
		Y: c.Y,
		Z: c.X*sin + c.Z*cos,
	}
}
