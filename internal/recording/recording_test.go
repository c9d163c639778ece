package recording

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/olivierh59500/particle-morph-go/internal/sim"
)

func TestRecorderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")

	var r Recorder
	r.Start(10.0)
	if !r.Recording() {
		t.Fatal("recorder not open after Start")
	}
	r.Add(10.0, sim.GestureSnapshot{Fist: true, HandDetected: true, Spread: 0.3})
	r.Add(10.5, sim.GestureSnapshot{Open: true, HandDetected: true, Spread: 0.9, PointerX: 0.4})
	if err := r.Stop(path); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if r.Recording() {
		t.Fatal("recorder still open after Stop")
	}

	rec, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rec.Frames) != 2 {
		t.Fatalf("frames = %d", len(rec.Frames))
	}
	if rec.Frames[0].T != 0 || rec.Frames[1].T != 0.5 {
		t.Fatalf("timestamps not rebased: %v, %v", rec.Frames[0].T, rec.Frames[1].T)
	}
	if !rec.Frames[0].Snapshot.Fist || !rec.Frames[1].Snapshot.Open {
		t.Fatal("snapshot flags lost in round trip")
	}
	if rec.Frames[1].Snapshot.PointerX != 0.4 {
		t.Fatalf("pointer lost: %v", rec.Frames[1].Snapshot.PointerX)
	}
}

func TestRecorderAddWhileClosed(t *testing.T) {
	var r Recorder
	r.Add(0, sim.GestureSnapshot{Fist: true})
	r.Start(0)
	if err := r.Stop(filepath.Join(t.TempDir(), "rec.json")); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	rec, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatalf("expected error for missing file, got %+v", rec)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPlayerAdvance(t *testing.T) {
	rec := &Recording{Frames: []Frame{
		{T: 0.1, Snapshot: sim.GestureSnapshot{Fist: true}},
		{T: 0.3, Snapshot: sim.GestureSnapshot{Open: true}},
	}}
	p := NewPlayer(rec)

	if snap := p.Advance(0.05); snap != nil {
		t.Fatalf("snapshot before first frame: %+v", snap)
	}
	snap := p.Advance(0.1) // t = 0.15
	if snap == nil || !snap.Fist {
		t.Fatalf("expected fist frame at 0.15, got %+v", snap)
	}
	snap = p.Advance(0.2) // t = 0.35
	if snap == nil || !snap.Open {
		t.Fatalf("expected open frame at 0.35, got %+v", snap)
	}
	if !p.Done() {
		t.Fatal("player should have consumed all frames")
	}
	// The last snapshot holds briefly, then the source goes quiet.
	if snap := p.Advance(0.1); snap == nil {
		t.Fatal("last snapshot should hold just past the end")
	}
	if snap := p.Advance(1.0); snap != nil {
		t.Fatalf("expected quiet source after the end, got %+v", snap)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	in := Settings{Seed: 99, Particles: 5000, Shape: "galaxy"}
	if err := SaveSettings(path, in); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	out, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v vs %+v", out, in)
	}
}
