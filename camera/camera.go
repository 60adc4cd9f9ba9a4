// Package camera provides an orbit camera for viewing the 3D scene.
package camera

import "math"

// Camera orbits a target point at a given distance, described by yaw
// (rotation around the vertical axis) and pitch (elevation). All angles
// are radians.
type Camera struct {
	// Target is the point the camera looks at.
	TargetX, TargetY, TargetZ float32

	Yaw, Pitch float32
	Distance   float32

	// Orbit constraints
	MinDistance, MaxDistance float32
	MinPitch, MaxPitch       float32

	// Vertical field of view in degrees
	FOV float32
}

// New creates a camera orbiting the origin.
func New(distance, minDistance, maxDistance, yaw, pitch, fov float32) *Camera {
	c := &Camera{
		Yaw:         yaw,
		Pitch:       pitch,
		Distance:    distance,
		MinDistance: minDistance,
		MaxDistance: maxDistance,
		MinPitch:    0.05,
		MaxPitch:    float32(math.Pi/2) - 0.05,
		FOV:         fov,
	}
	c.clamp()
	return c
}

// Position returns the camera eye position in world space.
func (c *Camera) Position() (x, y, z float32) {
	cosP := float32(math.Cos(float64(c.Pitch)))
	x = c.TargetX + c.Distance*cosP*float32(math.Cos(float64(c.Yaw)))
	y = c.TargetY + c.Distance*float32(math.Sin(float64(c.Pitch)))
	z = c.TargetZ + c.Distance*cosP*float32(math.Sin(float64(c.Yaw)))
	return x, y, z
}

// Orbit rotates the camera around the target by the given yaw and pitch
// deltas, keeping pitch inside its limits.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	c.clamp()
}

// Zoom moves the camera along the view ray. Positive delta moves closer.
func (c *Camera) Zoom(delta float32) {
	c.Distance -= delta
	c.clamp()
}

// Pan shifts the target point in the horizontal plane relative to the
// current view direction: dForward along the ground projection of the
// view ray, dRight perpendicular to it.
func (c *Camera) Pan(dForward, dRight float32) {
	sinY := float32(math.Sin(float64(c.Yaw)))
	cosY := float32(math.Cos(float64(c.Yaw)))

	// The ground-projected forward axis points from eye to target.
	c.TargetX += -dForward*cosY - dRight*sinY
	c.TargetZ += -dForward*sinY + dRight*cosY
}

// clamp enforces distance and pitch limits.
func (c *Camera) clamp() {
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}

	// Keep yaw in [0, 2pi) so it never accumulates without bound.
	twoPi := float32(2 * math.Pi)
	for c.Yaw >= twoPi {
		c.Yaw -= twoPi
	}
	for c.Yaw < 0 {
		c.Yaw += twoPi
	}
}
