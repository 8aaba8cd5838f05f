// Package renderer draws the particle field and the static scene around it.
package renderer

import "github.com/pthm-cable/nebula/components"

// Point is one evaluated particle for the current frame: the output of
// the lifecycle engine, ready for submission to the graphics pipeline.
type Point struct {
	Pos   components.Vec3
	Size  float32
	Alpha float32
	Group uint8
}
