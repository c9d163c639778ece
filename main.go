package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-morph-go/internal/config"
	"github.com/olivierh59500/particle-morph-go/internal/recording"
	"github.com/olivierh59500/particle-morph-go/internal/sim"
)

func main() {
	cfg := sim.Config{
		Particles:  config.ParticleCount,
		Seed:       config.StartSeed,
		Shape:      sim.ShapeSphere,
		JitterGain: config.JitterGain,
		Parallel:   true,
	}

	// Settings from a previous run override the defaults.
	if _, err := os.Stat(config.SettingsFile); err == nil {
		settings, err := recording.LoadSettings(config.SettingsFile)
		if err != nil {
			log.Printf("ignoring settings: %v", err)
		} else {
			cfg.Seed = settings.Seed
			if settings.Particles > 0 {
				cfg.Particles = settings.Particles
			}
			if shape, err := sim.ParseShape(settings.Shape); err == nil {
				cfg.Shape = shape
			}
		}
	}

	game := NewGame(sim.New(cfg))

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Particle Morph")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
