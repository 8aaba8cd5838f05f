// Package components defines ECS components for the particle field.
package components

// Vec3 is a three-component float vector.
type Vec3 struct {
	X, Y, Z float32
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Descriptor holds a particle's immutable lifecycle parameters.
// Descriptors are created once at field initialization and never mutated;
// all per-frame variation comes from evaluating global time against them.
type Descriptor struct {
	Dir   Vec3    // Unit direction, uniformly sampled on the sphere
	Phase float32 // Offset into the birth-death cycle, [0, maxRadius)
	Speed float32 // Cycle speed, fixed band (e.g. [0.3, 0.7])
}

// Style assigns a particle to a render group. Groups are static for the
// session: one texture and one base color per group.
type Style struct {
	Group uint8
}
