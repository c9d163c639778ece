package sim

import (
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/aquilax/go-perlin"
)

// Integrator constants.
const (
	seekGain        = 2.5
	damping         = 0.88
	expansionRate   = 0.03
	colorBlendRate  = 0.025
	highlightBoost  = 0.15
	repulseMinSq    = 0.01
	repulseMaxSq    = 50.0
	repulseReach    = 7.0
	repulseStrength = 3.0
	switchJitter    = 0.3
)

type particle struct {
	pos    Vec3
	vel    Vec3
	col    Vec3
	target Vec3
	tcol   Vec3
	size   float64
	phase  float64
}

// Config controls simulation construction. Zero values fall back to defaults.
type Config struct {
	Particles  int     // fixed particle count, default 20000
	Seed       int64   // random source seed
	Shape      Shape   // initial template
	JitterGain float64 // perlin drift strength, 0 disables
	Parallel   bool    // fan the per-particle pass out across CPUs
}

// Frame is the per-tick snapshot read by the renderer. Positions and Colors
// are xyz/rgb triples, Sizes one entry per particle. The renderer must treat
// all three as read-only.
type Frame struct {
	Positions []float64
	Colors    []float64
	Sizes     []float64
}

// Simulation owns a fixed-size particle buffer and morphs it between shape
// templates. One instance per visualization; all methods are called from a
// single goroutine.
type Simulation struct {
	cfg       Config
	rng       *rand.Rand
	noise     *perlin.Perlin
	palette   *Palette
	particles []particle

	active    Shape
	hasTarget bool
	expansion float64
	elapsed   float64
	cycle     int

	frame Frame

	// OnTemplateChange, when set, is called synchronously from every
	// successful template switch. Intended for UI indicators.
	OnTemplateChange func(Shape)
}

// New allocates all particle state up front. Particles start at random
// positions with zero velocity and no target; the first SwitchTemplate (or
// the first directive carrying a shape) seeds the targets.
func New(cfg Config) *Simulation {
	if cfg.Particles <= 0 {
		cfg.Particles = 20000
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	s := &Simulation{
		cfg:       cfg,
		rng:       rng,
		noise:     perlin.NewPerlin(2, 2, 2, cfg.Seed),
		palette:   NewPalette(),
		particles: make([]particle, cfg.Particles),
		expansion: 1.0,
	}
	for i := range s.particles {
		p := &s.particles[i]
		p.pos = Vec3{
			X: (rng.Float64()*2 - 1) * 40,
			Y: (rng.Float64()*2 - 1) * 40,
			Z: (rng.Float64()*2 - 1) * 40,
		}
		p.col = Vec3{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
		p.tcol = p.col
		p.phase = rng.Float64() * 2 * math.Pi
		p.size = 0.3
	}
	n := cfg.Particles
	s.frame = Frame{
		Positions: make([]float64, 3*n),
		Colors:    make([]float64, 3*n),
		Sizes:     make([]float64, n),
	}
	s.SwitchTemplate(cfg.Shape)
	return s
}

// N returns the fixed particle count.
func (s *Simulation) N() int { return len(s.particles) }

// ActiveShape returns the current template.
func (s *Simulation) ActiveShape() Shape { return s.active }

// Expansion returns the smoothed expansion factor.
func (s *Simulation) Expansion() float64 { return s.expansion }

// Elapsed returns the simulation clock.
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// Frame returns the buffers filled at the end of the last Tick (or at
// construction). The caller must not mutate them.
func (s *Simulation) Frame() Frame {
	s.fillFrame()
	return s.frame
}

// SwitchTemplate regenerates every particle's target position and color from
// the named template. An invalid shape is ignored. The switch is atomic from
// the consumer's viewpoint: Tick never observes a half-seeded target buffer
// because both run on the same goroutine.
func (s *Simulation) SwitchTemplate(shape Shape) {
	if !shape.Valid() {
		return
	}
	for i := range s.particles {
		p := &s.particles[i]
		p.target = Generate(shape, s.rng.Float64(), s.rng.Float64(), s.rng).Add(Vec3{
			X: (s.rng.Float64()*2 - 1) * switchJitter,
			Y: (s.rng.Float64()*2 - 1) * switchJitter,
			Z: (s.rng.Float64()*2 - 1) * switchJitter,
		})
		p.tcol = s.palette.TargetColor(shape, i, s.cycle, s.rng)
	}
	s.active = shape
	s.hasTarget = true
	if s.OnTemplateChange != nil {
		s.OnTemplateChange(shape)
	}
}

// CyclePalette rotates every particle's target color one hue step without
// touching the active template.
func (s *Simulation) CyclePalette() {
	s.cycle++
	for i := range s.particles {
		s.particles[i].tcol = s.palette.TargetColor(s.active, i, s.cycle, s.rng)
	}
}

// Tick advances the simulation by dt seconds under the given directives.
// Callers clamp dt (≤0.05s) to bound integration error.
func (s *Simulation) Tick(dt float64, d Directives) {
	s.elapsed += dt
	if d.HasShape && d.Shape != s.active {
		s.SwitchTemplate(d.Shape)
	}
	s.expansion += (d.ExpansionTarget - s.expansion) * expansionRate

	if s.cfg.Parallel {
		s.stepParallel(dt, d)
	} else {
		s.stepRange(0, len(s.particles), dt, d)
	}
}

// stepParallel partitions the particle range across CPUs. Particles are
// independent, so any partition yields the same result as the sequential
// pass.
func (s *Simulation) stepParallel(dt float64, d Directives) {
	workers := runtime.NumCPU()
	if workers > len(s.particles) {
		workers = 1
	}
	chunk := (len(s.particles) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(s.particles) {
			hi = len(s.particles)
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			s.stepRange(lo, hi, dt, d)
		}(lo, hi)
	}
	wg.Wait()
}

func (s *Simulation) stepRange(lo, hi int, dt float64, d Directives) {
	for i := lo; i < hi; i++ {
		s.step(&s.particles[i], dt, d)
	}
}

func (s *Simulation) step(p *particle, dt float64, d Directives) {
	if s.hasTarget {
		goal := p.target.Scale(s.expansion)
		p.vel = p.vel.Add(goal.Sub(p.pos).Scale(seekGain * dt))
	}

	dx := p.pos.X - d.RepulsionX
	dy := p.pos.Y - d.RepulsionY
	distSq := dx*dx + dy*dy
	if distSq > repulseMinSq && distSq < repulseMaxSq {
		dist := math.Sqrt(distSq)
		f := (repulseReach - dist) * repulseStrength * dt * 6
		p.vel.X += dx / dist * f
		p.vel.Y += dy / dist * f
		p.col = Vec3{
			X: p.col.X + highlightBoost,
			Y: p.col.Y + highlightBoost,
			Z: p.col.Z + highlightBoost,
		}.Clamp01()
	} else {
		p.col = p.col.Lerp(p.tcol, colorBlendRate).Clamp01()
	}

	if g := s.cfg.JitterGain; g > 0 {
		t := s.elapsed*0.2 + p.phase
		p.vel.X += s.noise.Noise3D(p.pos.X*0.05, p.pos.Y*0.05, t) * g * dt
		p.vel.Y += s.noise.Noise3D(p.pos.Y*0.05, p.pos.Z*0.05, t+31) * g * dt
		p.vel.Z += s.noise.Noise3D(p.pos.Z*0.05, p.pos.X*0.05, t+67) * g * dt
	}

	p.vel = p.vel.Scale(damping)
	p.pos = p.pos.Add(p.vel.Scale(dt))
	p.size = 0.3 + 0.4*math.Sin(s.elapsed*1.5+p.phase)
}

func (s *Simulation) fillFrame() {
	for i := range s.particles {
		p := &s.particles[i]
		s.frame.Positions[3*i] = p.pos.X
		s.frame.Positions[3*i+1] = p.pos.Y
		s.frame.Positions[3*i+2] = p.pos.Z
		s.frame.Colors[3*i] = p.col.X
		s.frame.Colors[3*i+1] = p.col.Y
		s.frame.Colors[3*i+2] = p.col.Z
		s.frame.Sizes[i] = p.size
	}
}
