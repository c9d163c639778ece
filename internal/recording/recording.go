// Package recording captures gesture snapshot streams to JSON and plays them
// back as a simulation input source. It also persists the small settings file
// the front end offers to save.
package recording

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olivierh59500/particle-morph-go/internal/sim"
)

// Frame is one captured snapshot with its capture time in seconds from the
// start of the recording.
type Frame struct {
	T        float64             `json:"t"`
	Snapshot sim.GestureSnapshot `json:"snapshot"`
}

// Recording is the on-disk document. The format is process-local tooling,
// not a stable wire protocol.
type Recording struct {
	Frames []Frame `json:"frames"`
}

// Recorder accumulates frames during capture.
type Recorder struct {
	rec   Recording
	start float64
	open  bool
}

// Start begins a capture at the given simulation time.
func (r *Recorder) Start(now float64) {
	r.rec = Recording{}
	r.start = now
	r.open = true
}

// Recording reports whether a capture is in progress.
func (r *Recorder) Recording() bool { return r.open }

// Add appends a snapshot taken at simulation time now. Calls while no
// capture is open are ignored.
func (r *Recorder) Add(now float64, snap sim.GestureSnapshot) {
	if !r.open {
		return
	}
	r.rec.Frames = append(r.rec.Frames, Frame{T: now - r.start, Snapshot: snap})
}

// Stop ends the capture and writes it to path.
func (r *Recorder) Stop(path string) error {
	r.open = false
	data, err := json.MarshalIndent(r.rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write recording: %w", err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse recording %s: %w", path, err)
	}
	return &rec, nil
}

// Player replays a recording against an advancing clock. Frames are assumed
// to be in capture order.
type Player struct {
	rec  *Recording
	next int
	cur  *sim.GestureSnapshot
	t    float64
}

// NewPlayer starts playback from the beginning of rec.
func NewPlayer(rec *Recording) *Player {
	return &Player{rec: rec}
}

// Advance moves the playback clock by dt and returns the snapshot active at
// the new time, or nil once the recording is exhausted.
func (p *Player) Advance(dt float64) *sim.GestureSnapshot {
	p.t += dt
	for p.next < len(p.rec.Frames) && p.rec.Frames[p.next].T <= p.t {
		snap := p.rec.Frames[p.next].Snapshot
		p.cur = &snap
		p.next++
	}
	// Past the end the source goes quiet, like a tracker losing the hand.
	if p.Done() && p.t > p.end()+0.5 {
		p.cur = nil
	}
	return p.cur
}

// Done reports whether all frames have been consumed.
func (p *Player) Done() bool { return p.next >= len(p.rec.Frames) }

func (p *Player) end() float64 {
	if len(p.rec.Frames) == 0 {
		return 0
	}
	return p.rec.Frames[len(p.rec.Frames)-1].T
}

// Settings is the persisted front-end configuration.
type Settings struct {
	Seed      int64  `json:"seed"`
	Particles int    `json:"particles"`
	Shape     string `json:"shape"`
}

// SaveSettings writes s to path as JSON.
func SaveSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// LoadSettings reads settings from path.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}
