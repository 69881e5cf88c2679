package anim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds holds the half-extents, in world units, of the plane visible at the
// cube's depth. They act as the walls the cube bounces off.
type Bounds struct {
	Horizontal float64
	Vertical   float64
}

// ComputeBounds derives the visible half-extents for a width x height window
// seen through a perspective camera with the given vertical field of view,
// placed cameraDistance units from the plane.
//
// height must be > 0. Callers skip the call for a degenerate window instead of
// relying on the result.
func ComputeBounds(width, height int, fovDeg, cameraDistance float64) Bounds {
	vertical := math.Tan(mgl64.DegToRad(fovDeg)/2) * cameraDistance
	aspect := float64(width) / float64(height)
	return Bounds{
		Horizontal: vertical * aspect,
		Vertical:   vertical,
	}
}
