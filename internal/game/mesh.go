package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouncing-cube/internal/anim"
)

type vertex struct {
	pos   mgl64.Vec3
	color anim.Color
}

var (
	red    = anim.Color{R: 1}
	green  = anim.Color{G: 1}
	blue   = anim.Color{B: 1}
	yellow = anim.Color{R: 1, G: 1}
)

// cubeMesh is the unit cube as a counter-clockwise triangle list, two
// triangles per face, with a color on every corner.
var cubeMesh = [36]vertex{
	// front
	{mgl64.Vec3{-0.5, -0.5, 0.5}, red},
	{mgl64.Vec3{0.5, -0.5, 0.5}, green},
	{mgl64.Vec3{0.5, 0.5, 0.5}, blue},
	{mgl64.Vec3{-0.5, -0.5, 0.5}, red},
	{mgl64.Vec3{0.5, 0.5, 0.5}, blue},
	{mgl64.Vec3{-0.5, 0.5, 0.5}, yellow},
	// right
	{mgl64.Vec3{0.5, -0.5, 0.5}, green},
	{mgl64.Vec3{0.5, -0.5, -0.5}, yellow},
	{mgl64.Vec3{0.5, 0.5, -0.5}, red},
	{mgl64.Vec3{0.5, -0.5, 0.5}, green},
	{mgl64.Vec3{0.5, 0.5, -0.5}, red},
	{mgl64.Vec3{0.5, 0.5, 0.5}, blue},
	// back
	{mgl64.Vec3{0.5, -0.5, -0.5}, yellow},
	{mgl64.Vec3{-0.5, -0.5, -0.5}, blue},
	{mgl64.Vec3{-0.5, 0.5, -0.5}, green},
	{mgl64.Vec3{0.5, -0.5, -0.5}, yellow},
	{mgl64.Vec3{-0.5, 0.5, -0.5}, green},
	{mgl64.Vec3{0.5, 0.5, -0.5}, red},
	// left
	{mgl64.Vec3{-0.5, -0.5, -0.5}, blue},
	{mgl64.Vec3{-0.5, -0.5, 0.5}, red},
	{mgl64.Vec3{-0.5, 0.5, 0.5}, yellow},
	{mgl64.Vec3{-0.5, -0.5, -0.5}, blue},
	{mgl64.Vec3{-0.5, 0.5, 0.5}, yellow},
	{mgl64.Vec3{-0.5, 0.5, -0.5}, green},
	// top
	{mgl64.Vec3{-0.5, 0.5, 0.5}, yellow},
	{mgl64.Vec3{0.5, 0.5, 0.5}, blue},
	{mgl64.Vec3{0.5, 0.5, -0.5}, red},
	{mgl64.Vec3{-0.5, 0.5, 0.5}, yellow},
	{mgl64.Vec3{0.5, 0.5, -0.5}, red},
	{mgl64.Vec3{-0.5, 0.5, -0.5}, green},
	// bottom
	{mgl64.Vec3{-0.5, -0.5, 0.5}, red},
	{mgl64.Vec3{-0.5, -0.5, -0.5}, blue},
	{mgl64.Vec3{0.5, -0.5, 0.5}, green},
	{mgl64.Vec3{-0.5, -0.5, -0.5}, blue},
	{mgl64.Vec3{0.5, -0.5, -0.5}, yellow},
	{mgl64.Vec3{0.5, -0.5, 0.5}, green},
}
