// Package camera provides an orbit camera around the field origin.
package camera

import "math"

// pitchLimit keeps the orbit away from the poles to avoid flipping the
// up vector.
const pitchLimit = 1.45

// Orbit controls the viewpoint: a yaw/pitch/distance orbit around the
// origin. It is the mouse-driven fallback view control; the gesture
// transform is applied to the field itself, not the camera.
type Orbit struct {
	// Yaw and Pitch in radians, Distance in world units
	Yaw, Pitch, Distance float32

	// Distance constraints
	MinDistance, MaxDistance float32

	// Vertical field of view in degrees
	FOV float32

	home struct {
		yaw, pitch, distance float32
	}
}

// New creates an orbit camera at the given pose.
func New(yaw, pitch, distance, minDistance, maxDistance, fov float32) *Orbit {
	o := &Orbit{
		Yaw:         yaw,
		Pitch:       clamp(pitch, -pitchLimit, pitchLimit),
		Distance:    clamp(distance, minDistance, maxDistance),
		MinDistance: minDistance,
		MaxDistance: maxDistance,
		FOV:         fov,
	}
	o.home.yaw = o.Yaw
	o.home.pitch = o.Pitch
	o.home.distance = o.Distance
	return o
}

// Position returns the camera's world position looking at the origin.
func (o *Orbit) Position() (x, y, z float32) {
	cosPitch := float32(math.Cos(float64(o.Pitch)))
	x = o.Distance * cosPitch * float32(math.Sin(float64(o.Yaw)))
	y = o.Distance * float32(math.Sin(float64(o.Pitch)))
	z = o.Distance * cosPitch * float32(math.Cos(float64(o.Yaw)))
	return x, y, z
}

// Rotate adjusts yaw and pitch by the given deltas. Pitch is clamped
// short of the poles.
func (o *Orbit) Rotate(dyaw, dpitch float32) {
	o.Yaw += dyaw
	o.Pitch = clamp(o.Pitch+dpitch, -pitchLimit, pitchLimit)
}

// Dolly scales the orbit distance, clamped to the configured range.
func (o *Orbit) Dolly(factor float32) {
	o.Distance = clamp(o.Distance*factor, o.MinDistance, o.MaxDistance)
}

// Reset returns the camera to its initial pose.
func (o *Orbit) Reset() {
	o.Yaw = o.home.yaw
	o.Pitch = o.home.pitch
	o.Distance = o.home.distance
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
