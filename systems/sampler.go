package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/nebula/components"
	"github.com/pthm-cable/nebula/config"
)

// NewDescriptor samples one particle descriptor. Directions are uniform on
// the sphere surface (rejection-free: θ=2πu, φ=acos(2v-1)), the phase
// offset randomizes the particle's position within the cycle so the field
// looks populated at t=0, and the speed band desynchronizes cycle
// durations across particles.
func NewDescriptor(rng *rand.Rand, fc config.FieldConfig) components.Descriptor {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)

	sinPhi := math.Sin(phi)
	dir := components.Vec3{
		X: float32(sinPhi * math.Cos(theta)),
		Y: float32(math.Cos(phi)),
		Z: float32(sinPhi * math.Sin(theta)),
	}

	return components.Descriptor{
		Dir:   dir,
		Phase: rng.Float32() * float32(fc.MaxRadius),
		Speed: float32(fc.SpeedMin) + rng.Float32()*float32(fc.SpeedMax-fc.SpeedMin),
	}
}
