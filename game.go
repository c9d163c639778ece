package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/olivierh59500/particle-morph-go/internal/config"
	"github.com/olivierh59500/particle-morph-go/internal/recording"
	"github.com/olivierh59500/particle-morph-go/internal/sim"
)

// shapeKeys maps the digit row to templates for direct switching.
var shapeKeys = map[ebiten.Key]sim.Shape{
	ebiten.Key1: sim.ShapeHeart,
	ebiten.Key2: sim.ShapeFlower,
	ebiten.Key3: sim.ShapeSaturn,
	ebiten.Key4: sim.ShapeFireworks,
	ebiten.Key5: sim.ShapeGalaxy,
	ebiten.Key6: sim.ShapeDNA,
	ebiten.Key7: sim.ShapeStar,
	ebiten.Key8: sim.ShapeTornado,
	ebiten.Key9: sim.ShapeSphere,
}

// gestureKeys synthesize gesture flags when no hand tracker is attached.
var gestureKeys = []struct {
	key ebiten.Key
	set func(*sim.GestureSnapshot)
}{
	{ebiten.KeyZ, func(s *sim.GestureSnapshot) { s.Fist = true }},
	{ebiten.KeyX, func(s *sim.GestureSnapshot) { s.Open = true }},
	{ebiten.KeyV, func(s *sim.GestureSnapshot) { s.Pinching = true }},
	{ebiten.KeyB, func(s *sim.GestureSnapshot) { s.Rock = true }},
	{ebiten.KeyN, func(s *sim.GestureSnapshot) { s.Peace = true }},
	{ebiten.KeyM, func(s *sim.GestureSnapshot) { s.Pointing = true }},
}

// Game wires the simulation core to ebiten: it synthesizes or replays
// gesture snapshots, advances the simulation each tick, and projects the
// frame buffers to the screen.
type Game struct {
	sim      *sim.Simulation
	paused   bool
	spread   float64
	recorder recording.Recorder
	player   *recording.Player

	// camera
	orbit       float64
	nudge       float64 // spring position, extra orbit from template switches
	nudgeVel    float64
	nudgeTarget float64
	zoom        float64
	zoomVel     float64
	zoomTarget  float64
	spring      harmonica.Spring

	status      string
	statusTicks int
}

func NewGame(s *sim.Simulation) *Game {
	g := &Game{
		sim:        s,
		spread:     0.5,
		zoom:       config.DefaultZoom,
		zoomTarget: config.DefaultZoom,
		spring:     harmonica.NewSpring(harmonica.FPS(60), 4.0, 0.8),
	}
	s.OnTemplateChange = func(shape sim.Shape) {
		g.setStatus("template: " + shape.String())
		g.nudgeTarget += config.SwitchNudge
	}
	return g
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if dt > config.MaxDT {
		dt = config.MaxDT
	}

	g.handleInput()
	snap := g.gestureSnapshot(dt)
	if g.recorder.Recording() && snap != nil {
		g.recorder.Add(g.sim.Elapsed(), *snap)
	}

	if !g.paused {
		g.sim.Tick(dt, sim.MapGesture(snap))
	}

	g.orbit += config.OrbitSpeed * dt
	g.nudge, g.nudgeVel = g.spring.Update(g.nudge, g.nudgeVel, g.nudgeTarget)
	g.zoom, g.zoomVel = g.spring.Update(g.zoom, g.zoomVel, g.zoomTarget)

	if g.statusTicks > 0 {
		g.statusTicks--
	}
	return nil
}

func (g *Game) handleInput() {
	for key, shape := range shapeKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.sim.SwitchTemplate(shape)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.CyclePalette()
		g.setStatus("palette cycled")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.SwitchTemplate(g.sim.ActiveShape())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.openRecording()
	}

	// Hand spread on the minus/equal keys, zoom on the wheel.
	if ebiten.IsKeyPressed(ebiten.KeyMinus) {
		g.spread = math.Max(0, g.spread-0.02)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) {
		g.spread = math.Min(1, g.spread+0.02)
	}
	_, wheelY := ebiten.Wheel()
	g.zoomTarget += wheelY * 0.8
	if g.zoomTarget < config.MinZoom {
		g.zoomTarget = config.MinZoom
	}
	if g.zoomTarget > config.MaxZoom {
		g.zoomTarget = config.MaxZoom
	}
}

// gestureSnapshot returns this frame's input: the recording player when one
// is active, otherwise a snapshot synthesized from keyboard and mouse state.
// Nil means no tracking data, which the mapper handles.
func (g *Game) gestureSnapshot(dt float64) *sim.GestureSnapshot {
	if g.player != nil {
		snap := g.player.Advance(dt)
		if g.player.Done() && snap == nil {
			g.player = nil
			g.setStatus("replay finished")
		}
		return snap
	}

	snap := sim.GestureSnapshot{Spread: g.spread}
	any := false
	for _, gk := range gestureKeys {
		if ebiten.IsKeyPressed(gk.key) {
			gk.set(&snap)
			any = true
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		snap.HandDetected = true
		snap.PointerX = float64(mx)/float64(config.WindowWidth)*2 - 1
		snap.PointerY = 1 - float64(my)/float64(config.WindowHeight)*2
		any = true
	}
	if !any {
		return nil
	}
	return &snap
}

func (g *Game) toggleRecording() {
	if g.recorder.Recording() {
		if err := g.recorder.Stop(config.RecordingFile); err != nil {
			g.setStatus(err.Error())
			return
		}
		g.setStatus("recording saved to " + config.RecordingFile)
		return
	}
	g.recorder.Start(g.sim.Elapsed())
	g.setStatus("recording gestures")
}

func (g *Game) openRecording() {
	path, err := zenity.SelectFile(
		zenity.Title("Open Gesture Recording"),
		zenity.FileFilters{{
			Name:     "Recordings",
			Patterns: []string{"*.json"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.setStatus(err.Error())
		}
		return
	}
	rec, err := recording.Load(path)
	if err != nil {
		g.setStatus(err.Error())
		return
	}
	g.player = recording.NewPlayer(rec)
	g.setStatus("replaying " + path)
}

func (g *Game) saveSettings() {
	err := recording.SaveSettings(config.SettingsFile, recording.Settings{
		Seed:      config.StartSeed,
		Particles: g.sim.N(),
		Shape:     g.sim.ActiveShape().String(),
	})
	if err != nil {
		g.setStatus(err.Error())
		return
	}
	g.setStatus("settings saved")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = 180
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.sim.Frame()
	cx := float64(config.WindowWidth) / 2
	cy := float64(config.WindowHeight) / 2
	angle := g.orbit + g.nudge
	sin, cos := math.Sin(angle), math.Cos(angle)

	for i := 0; i < g.sim.N(); i++ {
		x := frame.Positions[3*i]
		y := frame.Positions[3*i+1]
		z := frame.Positions[3*i+2]

		// Orbit about the y axis, then a simple perspective divide.
		rx := x*cos - z*sin
		rz := x*sin + z*cos
		depth := config.FocalLength + rz + 50
		if depth <= 1 {
			continue
		}
		scale := config.FocalLength / depth
		sx := cx + rx*g.zoom*scale
		sy := cy - y*g.zoom*scale

		if sx < -4 || sx > float64(config.WindowWidth)+4 || sy < -4 || sy > float64(config.WindowHeight)+4 {
			continue
		}
		col := color.RGBA{
			R: uint8(frame.Colors[3*i] * 255),
			G: uint8(frame.Colors[3*i+1] * 255),
			B: uint8(frame.Colors[3*i+2] * 255),
			A: 255,
		}
		radius := frame.Sizes[i] * g.zoom * 0.12 * scale
		if radius < 0.5 {
			radius = 0.5
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), col, false)
	}

	ebitenutil.DebugPrintAt(screen, g.hud(), 8, 8)
	if g.statusTicks > 0 && g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 8, config.WindowHeight-24)
	}
}

func (g *Game) hud() string {
	mode := "live"
	if g.player != nil {
		mode = "replay"
	}
	if g.recorder.Recording() {
		mode = "recording"
	}
	return fmt.Sprintf(
		"%s  [%s]  spread %.2f\n1-9 shapes  C palette  R reseed  Space pause\nZ/X/V/B/N/M gestures  LMB point  -/= spread  F record  O replay  S save",
		g.sim.ActiveShape(), mode, g.spread,
	)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
