package anim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouncing-cube/internal/config"
)

// Rotation axes, in the order stored in State.Angles.
const (
	AxisX = iota
	AxisY
	AxisZ
)

// Color is an RGB color with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// State is the cube's mutable animation record. Only Context mutates it.
type State struct {
	Position   mgl64.Vec2
	Velocity   mgl64.Vec2 // world units per tick
	Size       float64
	Angles     [3]float64 // degrees
	Increments [3]float64 // degrees per tick
	Growing    bool
	Background Color
}

// NewState returns the startup state: centered, black background, growing.
func NewState() State {
	return State{
		Velocity: mgl64.Vec2{config.InitialVelocityX, config.InitialVelocityY},
		Size:     config.InitialSize,
		Increments: [3]float64{
			AxisX: config.AngleIncrementX,
			AxisY: config.AngleIncrementY,
			AxisZ: config.AngleIncrementZ,
		},
		Growing: true,
	}
}

// Model composes translate * rotY * rotX * rotZ * scale for the unit cube.
// The order matters: rotations happen around the cube's own center before it
// is moved to its position.
func (s State) Model() mgl64.Mat4 {
	return mgl64.Translate3D(s.Position.X(), s.Position.Y(), 0).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(s.Angles[AxisY]))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(s.Angles[AxisX]))).
		Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(s.Angles[AxisZ]))).
		Mul4(mgl64.Scale3D(s.Size, s.Size, s.Size))
}

func clampSize(v float64) float64 {
	return min(config.MaxSize, max(config.MinSize, v))
}
