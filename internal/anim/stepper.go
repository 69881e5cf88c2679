package anim

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouncing-cube/internal/config"
)

// Frame is what a tick hands to the renderer.
type Frame struct {
	Tick       uint64
	Model      mgl64.Mat4
	Background Color
	Aspect     float64
	Collision  CollisionReport
}

// Context owns the animation state and the bounds it collides against.
// It is not safe for concurrent use; one driver goroutine feeds it events in
// delivery order.
type Context struct {
	state  State
	bounds Bounds
	aspect float64
	rnd    RandomSource
	tick   uint64
}

// NewContext creates the startup state for a width x height window. A nil rnd
// gets a randomly seeded generator.
func NewContext(width, height int, rnd RandomSource) *Context {
	if rnd == nil {
		rnd = NewRandom(0)
	}
	c := &Context{
		state:  NewState(),
		aspect: 1,
		rnd:    rnd,
	}
	c.Resize(width, height)
	return c
}

// NewRandom returns a generator for background colors. Seed 0 picks a random seed.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// State returns a copy of the current animation state.
func (c *Context) State() State { return c.state }

// Bounds returns the walls used by the next collision check.
func (c *Context) Bounds() Bounds { return c.bounds }

// Aspect returns the width/height ratio of the last accepted window size.
func (c *Context) Aspect() float64 { return c.aspect }

// Ticks returns the number of steps taken so far.
func (c *Context) Ticks() uint64 { return c.tick }

// Resize recomputes the collision bounds for a new window size. A window
// without area keeps the previous bounds and Resize reports false.
func (c *Context) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.bounds = ComputeBounds(width, height, config.FieldOfViewDeg, config.CameraDistance)
	c.aspect = float64(width) / float64(height)
	return true
}

// Apply handles a keyboard command and reports whether it asks to quit.
func (c *Context) Apply(cmd Command) bool {
	return applyCommand(&c.state, cmd)
}

// Step advances the animation by one fixed tick.
func (c *Context) Step() Frame {
	s := &c.state
	for i := range s.Angles {
		s.Angles[i] = advanceAngle(s.Angles[i], s.Increments[i])
	}
	s.Position = s.Position.Add(s.Velocity)
	rep := Resolve(s, c.bounds, c.rnd)
	c.tick++

	return Frame{
		Tick:       c.tick,
		Model:      s.Model(),
		Background: s.Background,
		Aspect:     c.aspect,
		Collision:  rep,
	}
}

// advanceAngle adds inc to angle and folds it back once it reaches 360.
// The fold is 360-angle+inc rather than a modulo; for angles within one
// increment of 360 both land near zero, but the results differ.
func advanceAngle(angle, inc float64) float64 {
	if angle+inc < 360 {
		return angle + inc
	}
	return 360 - angle + inc
}
