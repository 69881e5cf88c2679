package config

import (
	"flag"
	"fmt"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Bouncing Cube - A: grow, D: shrink, Esc/Q: quit"

	// Ticks per second; velocity and angle increments are calibrated to it.
	TPS   = 60
	// Highest headless tick rate; the ticker period must stay above zero.
	MaxHz = 1000

	// Camera
	FieldOfViewDeg = 52.0
	CameraDistance = 3.0
	NearPlane      = 0.1
	FarPlane       = 100.0

	// Initial motion, in world units and degrees per tick
	InitialVelocityX = 0.01
	InitialVelocityY = 0.012
	InitialSize      = 0.2
	AngleIncrementX  = 0.1
	AngleIncrementY  = 0.3
	AngleIncrementZ  = 0.2

	// Size limits and steps
	MinSize     = 0.05
	MaxSize     = 2.0
	SizeStep    = 0.05
	GrowFactor  = 1.1
	DecayFactor = 0.9

	// Lighting, white point light in world space
	LightX           = 6.0
	LightY           = 0.0
	LightZ           = 2.0
	AmbientStrength  = 0.5
	DiffuseStrength  = 1.0
	SpecularStrength = 1.0
	Shininess        = 3.0

	// Collision chime
	ChimeSampleRate = 44100
	ChimeFrequency  = 660.0
	ChimeDuration   = 0.08 // seconds
	ChimeVolume     = 0.2
)

// Config is the runtime configuration resolved from command line flags.
type Config struct {
	Width    int
	Height   int
	Headless bool
	Hz       int
	Ticks    uint64
	Seed     uint64
	Debug    bool
	Mute     bool
	HUD      bool
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Width:  WindowWidth,
		Height: WindowHeight,
		Hz:     TPS,
	}
}

// RegisterFlags binds c to fs. Values already set in c are the flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Initial window width in pixels.")
	fs.IntVar(&c.Height, "height", c.Height, "Initial window height in pixels.")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "Run the animation without a window.")
	fs.IntVar(&c.Hz, "hz", c.Hz, "Tick rate in headless mode.")
	fs.Uint64Var(&c.Ticks, "ticks", c.Ticks, "Stop after N ticks in headless mode (0 = run forever).")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Seed for background colors (0 = random).")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write a debug log to logs/cube.log.")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "Disable the collision chime.")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "Show tick and size information.")
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Hz <= 0 || c.Hz > MaxHz {
		return fmt.Errorf("invalid tick rate: %d", c.Hz)
	}
	return nil
}
