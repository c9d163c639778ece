package config

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Simulation defaults
	ParticleCount = 20000
	StartSeed     = 42
	JitterGain    = 0.4
	MaxDT         = 0.05

	// Camera
	FocalLength   = 60.0
	OrbitSpeed    = 0.15
	MinZoom       = 4.0
	MaxZoom       = 30.0
	DefaultZoom   = 12.0
	SwitchNudge   = 0.6 // radians added to the orbit target on template switch
	SettingsFile  = "settings.json"
	RecordingFile = "recording.json"
)
