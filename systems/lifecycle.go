// Package systems holds the pure per-particle lifecycle computation and
// the descriptor sampling used to populate the field.
package systems

import (
	"github.com/pthm-cable/nebula/components"
	"github.com/pthm-cable/nebula/config"
)

// LifecycleParams holds the constants of the birth-death cycle. Built once
// from config and shared read-only across evaluation workers.
type LifecycleParams struct {
	MaxRadius     float32
	TravelRate    float32
	TwistStrength float32
	BobAmplitude  float32
	BobRate       float32
	FadeInFrac    float32
	FadeOutFrac   float32
	BasePointSize float32
}

// ParamsFromConfig builds lifecycle parameters from the field config.
func ParamsFromConfig(fc config.FieldConfig) LifecycleParams {
	return LifecycleParams{
		MaxRadius:     float32(fc.MaxRadius),
		TravelRate:    float32(fc.TravelRate),
		TwistStrength: float32(fc.TwistStrength),
		BobAmplitude:  float32(fc.BobAmplitude),
		BobRate:       float32(fc.BobRate),
		FadeInFrac:    float32(fc.FadeInFrac),
		FadeOutFrac:   float32(fc.FadeOutFrac),
		BasePointSize: float32(fc.BasePointSize),
	}
}

// Radius returns the particle's current distance from the origin: raw
// travel wrapped into [0, MaxRadius). Wrapping with a positive modulo is
// what makes the cycle loop - a particle reappears at the origin the
// instant it reaches the boundary, with no accumulated state.
func (p *LifecycleParams) Radius(t float32, d *components.Descriptor) float32 {
	travel := t*d.Speed*p.TravelRate + d.Phase
	return mod(travel, p.MaxRadius)
}

// Alpha returns the opacity for a particle at radius r: the product of a
// fade-in over the first FadeInFrac of the cycle and a fade-out over the
// last FadeOutFrac, so every particle has a soft birth and a soft death.
func (p *LifecycleParams) Alpha(r float32) float32 {
	norm := r / p.MaxRadius
	fadeIn := Smoothstep(0, p.FadeInFrac, norm)
	fadeOut := 1 - Smoothstep(1-p.FadeOutFrac, 1, norm)
	return fadeIn * fadeOut
}

// Evaluate computes a particle's position, point size and opacity at
// global time t. Pure function of its inputs: no frame-to-frame state is
// read or written, so the field can be re-evaluated at any instant and
// split across workers freely.
func (p *LifecycleParams) Evaluate(t float32, d *components.Descriptor) (pos components.Vec3, size, alpha float32) {
	r := p.Radius(t, d)

	// Base position along the particle's fixed direction
	pos = d.Dir.Scale(r)

	// Spiral twist around the Y axis: rotation grows linearly with radius,
	// which bends straight radial paths into galaxy arms
	angle := r * p.TwistStrength
	s, c := fastSin(angle), fastCos(angle)
	x, z := pos.X, pos.Z
	pos.X = x*c - z*s
	pos.Z = x*s + z*c

	// Organic vertical float, independent of radius
	pos.Y += fastSin(t*p.BobRate+d.Phase) * p.BobAmplitude

	// Particles grow out of the origin, then hold size; perspective
	// projection provides the camera-distance attenuation
	size = p.BasePointSize * Smoothstep(0, 1, r)

	alpha = p.Alpha(r)
	return pos, size, alpha
}
