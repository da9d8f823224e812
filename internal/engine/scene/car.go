package scene

import (
	"github.com/Faultbox/laneracer/internal/engine/primitive"
	"github.com/Faultbox/laneracer/pkg/math"
)

var (
	tireColor      = math.Black
	rimColor       = math.RGB(0.666, 0.666, 0.666)
	windowColor    = math.Black
	taillightColor = math.RGB(0.784, 0, 0)
	headlightColor = math.White
)

// Wheel draws a tire with a thinner rim set slightly proud of it along the
// cylinder axis.
func Wheel(t Target, model math.Mat4) {
	t.SetColor(tireColor)
	t.Render(primitive.Cylinder, model.Mul(math.Scale(1, 1, 0.5)))

	t.SetColor(rimColor)
	t.Render(primitive.Cylinder, math.Compose(model, math.Translate(0, 0, -0.005), math.Scale(0.6, 0.6, 0.51)))
}

// Car draws a car facing +Z with its rear at the local origin. The body is
// painted with paint; windows, wheels and lights use fixed colors.
func Car(t Target, model math.Mat4, paint math.Color) {
	t.SetColor(paint)

	cube := func(parts ...math.Mat4) {
		t.Render(primitive.Cube, math.Compose(append([]math.Mat4{model}, parts...)...))
	}

	// floor panel
	cube(math.Translate(-0.5, 0, 0), math.Scale(1, 0.05, 2))
	// block between the wheels
	cube(math.Translate(-0.5, -0.2, 0.7), math.Scale(1, 0.3, 0.6))

	// bumpers
	bumper := math.Scale(1, 0.2, 0.2)
	cube(math.Translate(-0.5, -0.2, 1.8), bumper)
	cube(math.Translate(-0.5, -0.2, 0), bumper)

	// wheel wells
	well := math.Scale(1, 0.3, 0.1)
	tiltBack := math.Rotate(45, 1, 0, 0)
	tiltFront := math.Rotate(-45, 1, 0, 0)
	cube(math.Translate(-0.5, -0.13, 0.05), tiltBack, well)
	cube(math.Translate(-0.5, -0.13, 1.15), tiltBack, well)
	cube(math.Translate(-0.5, -0.2, 0.8), tiltFront, well)
	cube(math.Translate(-0.5, -0.2, 1.9), tiltFront, well)

	// cabin
	cube(math.Translate(-0.5, 0, 0.6), math.Scale(1, 0.5, 0.9))
	pillar := math.Scale(1, 0.4, 0.2)
	rearSlope := math.Rotate(20, 1, 0, 0)
	frontSlope := math.Rotate(-20, 1, 0, 0)
	cube(math.Translate(-0.5, 0.13, 0.44), rearSlope, pillar)
	cube(math.Translate(-0.5, 0.06, 1.45), frontSlope, pillar)

	// trunk and hood
	lid := math.Scale(1, 0.12, 0.7)
	cube(math.Translate(-0.5, -0.06, 0.02), math.Rotate(-10, 1, 0, 0), lid)
	cube(math.Translate(-0.5, 0.07, 1.29), math.Rotate(10, 1, 0, 0), lid)

	// windows
	t.SetColor(windowColor)
	shield := math.Scale(0.8, 0.3, 0.2)
	cube(math.Translate(-0.4, 0.19, 0.45), rearSlope, shield)
	cube(math.Translate(-0.4, 0.12, 1.43), frontSlope, shield)
	side := math.Scale(1.02, 0.3, 0.35)
	cube(math.Translate(-0.51, 0.15, 1.07), side)
	cube(math.Translate(-0.51, 0.15, 0.64), side)

	// wheels, turned so the cylinder axis points along X
	wheel := []math.Mat4{math.Rotate(90, 0, 1, 0), math.Scale(0.2, 0.2, 0.2)}
	for _, pos := range [4][2]float32{{0.4, 0.45}, {0.4, 1.55}, {-0.5, 0.45}, {-0.5, 1.55}} {
		Wheel(t, math.Compose(append([]math.Mat4{model, math.Translate(pos[0], -0.2, pos[1])}, wheel...)...))
	}

	sphere := func(parts ...math.Mat4) {
		t.Render(primitive.Sphere, math.Compose(append([]math.Mat4{model}, parts...)...))
	}

	t.SetColor(taillightColor)
	taillight := math.Scale(0.06, 0.09, 0.02)
	for _, x := range [4]float32{-0.4, -0.25, 0.4, 0.25} {
		sphere(math.Translate(x, -0.07, 0), taillight)
	}

	t.SetColor(headlightColor)
	headlight := math.Scale(0.1, 0.1, 0.02)
	sphere(math.Translate(-0.33, -0.07, 1.99), headlight)
	sphere(math.Translate(0.33, -0.07, 1.99), headlight)
}
