package camera

import (
	"math"
	"testing"
)

func newTestCamera() *Camera {
	return New(220, 30, 600, 0.8, 0.45, 45)
}

func TestPosition_DistanceFromTarget(t *testing.T) {
	c := newTestCamera()

	x, y, z := c.Position()
	dx, dy, dz := x-c.TargetX, y-c.TargetY, z-c.TargetZ
	dist := math.Sqrt(float64(dx*dx + dy*dy + dz*dz))

	if math.Abs(dist-float64(c.Distance)) > 1e-3 {
		t.Errorf("eye-target distance = %g, want %g", dist, c.Distance)
	}
}

func TestZoom_Clamped(t *testing.T) {
	c := newTestCamera()

	c.Zoom(10000)
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %g after zooming in, want clamp at %g", c.Distance, c.MinDistance)
	}

	c.Zoom(-10000)
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %g after zooming out, want clamp at %g", c.Distance, c.MaxDistance)
	}
}

func TestOrbit_PitchClamped(t *testing.T) {
	c := newTestCamera()

	c.Orbit(0, 100)
	if c.Pitch > c.MaxPitch {
		t.Errorf("pitch = %g above limit %g", c.Pitch, c.MaxPitch)
	}

	c.Orbit(0, -100)
	if c.Pitch < c.MinPitch {
		t.Errorf("pitch = %g below limit %g", c.Pitch, c.MinPitch)
	}
}

func TestOrbit_YawWraps(t *testing.T) {
	c := newTestCamera()

	c.Orbit(float32(7*math.Pi), 0)
	if c.Yaw < 0 || c.Yaw >= float32(2*math.Pi) {
		t.Errorf("yaw = %g outside [0,2pi)", c.Yaw)
	}
}

func TestPan_MovesTargetNotDistance(t *testing.T) {
	c := newTestCamera()
	before := c.Distance

	c.Pan(10, -4)

	if c.TargetX == 0 && c.TargetZ == 0 {
		t.Error("pan left target unchanged")
	}
	if c.TargetY != 0 {
		t.Errorf("pan moved target vertically to %g", c.TargetY)
	}
	if c.Distance != before {
		t.Errorf("pan changed distance from %g to %g", before, c.Distance)
	}
}
