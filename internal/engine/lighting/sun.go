// Package lighting describes the single directional light the shading
// program uses.
package lighting

import (
	"github.com/Faultbox/laneracer/pkg/math"
)

// Sun is a directional light with fixed Phong-style coefficients.
type Sun struct {
	// Direction points from the scene toward the light, in world space.
	Direction math.Vec3

	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32
}

// Default returns the race lighting: a light above and behind the camera with
// no specular highlight.
func Default() Sun {
	return Sun{
		Direction: math.Vec3{X: 0, Y: 6, Z: -10}.Normalize(),
		Ambient:   0.3,
		Diffuse:   0.7,
		Specular:  0,
		Shininess: 50.5,
	}
}

// Coefficients packs ambient, diffuse, specular and shininess for upload.
func (s Sun) Coefficients() [4]float32 {
	return [4]float32{s.Ambient, s.Diffuse, s.Specular, s.Shininess}
}
