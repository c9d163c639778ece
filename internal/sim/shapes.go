package sim

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Shape identifies one of the target point-cloud generators.
type Shape uint8

const (
	ShapeHeart Shape = iota
	ShapeFlower
	ShapeSaturn
	ShapeFireworks
	ShapeGalaxy
	ShapeDNA
	ShapeStar
	ShapeTornado
	ShapeSphere
	shapeCount
)

var shapeNames = [...]string{
	ShapeHeart:     "heart",
	ShapeFlower:    "flower",
	ShapeSaturn:    "saturn",
	ShapeFireworks: "fireworks",
	ShapeGalaxy:    "galaxy",
	ShapeDNA:       "dna",
	ShapeStar:      "star",
	ShapeTornado:   "tornado",
	ShapeSphere:    "sphere",
}

func (s Shape) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return shapeNames[s]
}

func (s Shape) Valid() bool {
	return s < shapeCount
}

// Shapes returns all shape identifiers in declaration order.
func Shapes() []Shape {
	out := make([]Shape, shapeCount)
	for i := range out {
		out[i] = Shape(i)
	}
	return out
}

// ParseShape maps a shape name to its identifier.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Generate maps a shape and two uniform samples u, v in [0,1) to a point in
// simulation space. Deterministic in u and v except where a shape fills its
// interior from rng (documented per shape). Returns the zero vector for an
// invalid shape; callers are expected to validate first.
func Generate(shape Shape, u, v float64, rng *rand.Rand) Vec3 {
	switch shape {
	case ShapeHeart:
		return genHeart(u, v, rng)
	case ShapeFlower:
		return genFlower(u, v)
	case ShapeSaturn:
		return genSaturn(u, v, rng)
	case ShapeFireworks:
		return genFireworks(u, v, rng)
	case ShapeGalaxy:
		return genGalaxy(u, v, rng)
	case ShapeDNA:
		return genDNA(u, v)
	case ShapeStar:
		return genStar(u, v, rng)
	case ShapeTornado:
		return genTornado(u, v)
	case ShapeSphere:
		return genSphere(u, v, rng)
	}
	return Vec3{}
}

// genHeart traces the classic planar heart curve and fills its interior with
// a cbrt radial factor. A thin z jitter gives the sheet some depth.
func genHeart(u, v float64, rng *rand.Rand) Vec3 {
	phi := u * 2 * math.Pi
	fill := math.Cbrt(v)
	x := 16 * math.Pow(math.Sin(phi), 3)
	y := 13*math.Cos(phi) - 5*math.Cos(2*phi) - 2*math.Cos(3*phi) - math.Cos(4*phi)
	return Vec3{
		X: x * 0.9 * fill,
		Y: y*0.9*fill + 2,
		Z: (rng.Float64()*2 - 1) * fill,
	}
}

// genFlower is a spherical rose with 5 petals.
func genFlower(u, v float64) Vec3 {
	phi := u * 2 * math.Pi
	theta := v * math.Pi
	r := 10 * (1 + 0.6*math.Sin(5*phi)*math.Sin(theta))
	return Vec3{
		X: r * math.Sin(theta) * math.Cos(phi),
		Y: r * math.Cos(theta),
		Z: r * math.Sin(theta) * math.Sin(phi),
	}
}

const saturnTilt = 25 * math.Pi / 180

// genSaturn splits v between a flattened planet body and a tilted ring.
func genSaturn(u, v float64, rng *rand.Rand) Vec3 {
	if v < 0.35 {
		p := genSphereRadius(u, v/0.35, 8*math.Cbrt(rng.Float64()))
		p.Y *= 0.6
		return p
	}
	angle := u * 2 * math.Pi
	r := 13 + 28*(v-0.35)/0.65
	p := Vec3{
		X: r * math.Cos(angle),
		Y: (rng.Float64()*2 - 1) * 0.4,
		Z: r * math.Sin(angle),
	}
	// Tilt the ring about the x axis.
	sin, cos := math.Sin(saturnTilt), math.Cos(saturnTilt)
	return Vec3{
		X: p.X,
		Y: p.Y*cos - p.Z*sin,
		Z: p.Y*sin + p.Z*cos,
	}
}

// genFireworks places 5 deterministic burst centers and fills a small sphere
// around the one selected by u.
func genFireworks(u, v float64, rng *rand.Rand) Vec3 {
	burst := math.Floor(u * 5)
	if burst > 4 {
		burst = 4
	}
	center := Vec3{
		X: math.Cos(burst*2.4) * 15,
		Y: math.Sin(burst*1.7) * 10,
		Z: math.Sin(burst*2.4) * 15,
	}
	phi := math.Acos(2*v - 1)
	theta := (u*5 - burst) * 2 * math.Pi
	r := rng.Float64() * 6
	return center.Add(Vec3{
		X: r * math.Sin(phi) * math.Cos(theta),
		Y: r * math.Cos(phi),
		Z: r * math.Sin(phi) * math.Sin(theta),
	})
}

// genGalaxy builds 3 spiral arms; spread and thinning vary with the radial
// parameter so arms stay tight near the core.
func genGalaxy(u, v float64, rng *rand.Rand) Vec3 {
	arm := math.Floor(u * 3)
	if arm > 2 {
		arm = 2
	}
	t := v * 30
	angle := arm*(2*math.Pi/3) + 0.4*t
	r := t + (rng.Float64()*2-1)*(0.5+t*0.15)
	return Vec3{
		X: r * math.Cos(angle),
		Y: (rng.Float64()*2 - 1) * (2 - t*0.05),
		Z: r * math.Sin(angle),
	}
}

// genDNA is a double helix with cross-bar rungs. u selects helix one, helix
// two, or a rung interpolated between them at the same height.
func genDNA(u, v float64) Vec3 {
	const radius = 6.0
	y := v*40 - 20
	theta := v * 3 * 2 * math.Pi
	a := Vec3{X: radius * math.Cos(theta), Y: y, Z: radius * math.Sin(theta)}
	b := Vec3{X: radius * math.Cos(theta+math.Pi), Y: y, Z: radius * math.Sin(theta+math.Pi)}
	switch {
	case u < 0.4:
		return a
	case u < 0.8:
		return b
	default:
		return a.Lerp(b, (u-0.8)/0.2)
	}
}

// genStar fills a five-point star outline; sqrt(v) keeps the radial density
// roughly uniform over the disc.
func genStar(u, v float64, rng *rand.Rand) Vec3 {
	const (
		outer = 14.0
		inner = 6.0
	)
	angle := u * 2 * math.Pi
	// 10 alternating half-segments between outer and inner vertices.
	seg := angle / (math.Pi / 5)
	idx := math.Floor(seg)
	frac := seg - idx
	var boundary float64
	if int(idx)%2 == 0 {
		boundary = outer + (inner-outer)*frac
	} else {
		boundary = inner + (outer-inner)*frac
	}
	r := boundary * math.Sqrt(v)
	return Vec3{
		X: r * math.Cos(angle),
		Y: r * math.Sin(angle),
		Z: (rng.Float64()*2 - 1) * 0.5,
	}
}

// genTornado spins an increasing-radius spiral upward; the twist grows with
// height so the funnel shears as it widens.
func genTornado(u, v float64) Vec3 {
	r := 2 + 18*v*v
	theta := u*2*math.Pi + v*6
	return Vec3{
		X: r * math.Cos(theta),
		Y: v*40 - 20,
		Z: r * math.Sin(theta),
	}
}

// genSphere is a filled ball; cbrt of the radius sample keeps volume density
// uniform.
func genSphere(u, v float64, rng *rand.Rand) Vec3 {
	return genSphereRadius(u, v, 15*math.Cbrt(rng.Float64()))
}

func genSphereRadius(u, v, r float64) Vec3 {
	phi := math.Acos(2*v - 1)
	theta := u * 2 * math.Pi
	return Vec3{
		X: r * math.Sin(phi) * math.Cos(theta),
		Y: r * math.Cos(phi),
		Z: r * math.Sin(phi) * math.Sin(theta),
	}
}
