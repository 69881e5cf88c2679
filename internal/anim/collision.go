package anim

import "github.com/iburimskiy/bouncing-cube/internal/config"

// RandomSource yields uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

// CollisionReport tells which walls the cube touched during a tick.
type CollisionReport struct {
	XHit bool
	YHit bool
}

func (r CollisionReport) Any() bool { return r.XHit || r.YHit }

// Resolve reflects the velocity of s on every axis whose wall the cube crossed
// while moving towards it. A tick with any hit re-rolls the background once and
// advances the size oscillation once, also when both axes hit together.
func Resolve(s *State, b Bounds, rnd RandomSource) CollisionReport {
	var rep CollisionReport

	rep.XHit = reflect(s, 0, b.Horizontal)
	rep.YHit = reflect(s, 1, b.Vertical)

	if rep.Any() {
		randomizeBackground(s, rnd)
		oscillate(s)
	}
	return rep
}

// reflect reverses one velocity component when the cube, moving towards the
// wall at +limit or -limit on that axis, has crossed it.
func reflect(s *State, axis int, limit float64) bool {
	p, v := s.Position[axis], s.Velocity[axis]
	if (v > 0 && p+s.Size > limit) || (v < 0 && p-s.Size < -limit) {
		s.Velocity[axis] = -v
		return true
	}
	return false
}

func randomizeBackground(s *State, rnd RandomSource) {
	s.Background = Color{
		R: rnd.Float64(),
		G: rnd.Float64(),
		B: rnd.Float64(),
	}
}

// oscillate moves the size one step along its triangle wave, turning around
// at the size limits.
func oscillate(s *State) {
	if s.Growing {
		s.Size *= config.GrowFactor
		if s.Size >= config.MaxSize {
			s.Size = config.MaxSize
			s.Growing = false
		}
	} else {
		s.Size *= config.DecayFactor
		if s.Size <= config.MinSize {
			s.Size = config.MinSize
			s.Growing = true
		}
	}
	s.Size = clampSize(s.Size)
}
