package anim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestModelScalesThenRotatesThenTranslates(t *testing.T) {
	s := NewState()
	s.Position = mgl64.Vec2{1, 2}
	s.Size = 0.5
	s.Angles[AxisY] = 90

	got := s.Model().Mul4x1(mgl64.Vec4{1, 0, 0, 1})
	if want := (mgl64.Vec4{1, 2, -0.5, 1}); !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("model * +x = %v, want %v", got, want)
	}

	// Rotating after the translation swings the cube around the origin.
	swapped := mgl64.HomogRotate3DY(mgl64.DegToRad(90)).
		Mul4(mgl64.Translate3D(1, 2, 0)).
		Mul4(mgl64.Scale3D(0.5, 0.5, 0.5)).
		Mul4x1(mgl64.Vec4{1, 0, 0, 1})
	if swapped.ApproxEqualThreshold(got, eps) {
		t.Errorf("composition order has no effect: %v", swapped)
	}
}

func TestModelWithoutRotationIsTranslateScale(t *testing.T) {
	s := NewState()
	s.Position = mgl64.Vec2{-0.3, 0.7}
	s.Size = 0.25

	want := mgl64.Translate3D(-0.3, 0.7, 0).Mul4(mgl64.Scale3D(0.25, 0.25, 0.25))
	if got := s.Model(); !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("model = %v, want %v", got, want)
	}
}

func TestModelRotatesAroundCubeCenter(t *testing.T) {
	s := NewState()
	s.Position = mgl64.Vec2{0.4, -0.1}
	s.Angles = [3]float64{AxisX: 30, AxisY: 45, AxisZ: 60}

	center := s.Model().Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	if want := (mgl64.Vec4{0.4, -0.1, 0, 1}); !center.ApproxEqualThreshold(want, eps) {
		t.Errorf("center = %v, want %v", center, want)
	}
}
