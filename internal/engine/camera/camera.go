// Package camera provides the fixed chase camera used by the race view.
package camera

import (
	"github.com/Faultbox/laneracer/pkg/math"
)

// Rig is a camera that sits behind and above the player lane and never moves.
type Rig struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3
}

// Default eye, target and up of the chase view.
var (
	DefaultEye    = math.Vec3{X: 0, Y: 6, Z: -7}
	DefaultTarget = math.Vec3{X: 0, Y: 0, Z: 8}
	DefaultUp     = math.Vec3{X: 0, Y: 1, Z: 0}
)

// New creates a rig with the default chase placement.
func New() *Rig {
	return &Rig{Eye: DefaultEye, Target: DefaultTarget, Up: DefaultUp}
}

// FromArrays creates a rig from config triples.
func FromArrays(eye, target, up [3]float32) *Rig {
	return &Rig{
		Eye:    vec(eye),
		Target: vec(target),
		Up:     vec(up),
	}
}

// ForConfig creates a rig from config triples. A config with no camera
// placement at all gets the default chase view.
func ForConfig(eye, target, up [3]float32) *Rig {
	var zero [3]float32
	if eye == zero && target == zero && up == zero {
		return New()
	}
	return FromArrays(eye, target, up)
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// ViewMatrix returns the view matrix for this camera.
func (r *Rig) ViewMatrix() math.Mat4 {
	return math.LookAt(r.Eye, r.Target, r.Up)
}

// Viewer accepts a view matrix and the eye position it was built from.
type Viewer interface {
	SetView(view math.Mat4, eye math.Vec3)
}

// Apply hands the rig's view to v.
func (r *Rig) Apply(v Viewer) {
	v.SetView(r.ViewMatrix(), r.Eye)
}
