package scene

import (
	"github.com/Faultbox/laneracer/internal/engine/primitive"
	"github.com/Faultbox/laneracer/pkg/math"
)

// SegmentLength is the Z extent of one ground segment.
const SegmentLength = 10.0

var (
	roadColor  = math.RGB(0.286, 0.286, 0.286)
	grassColor = math.RGB(0.031, 0.749, 0)
	laneColor  = math.RGB(1, 0.913, 0)
	beamColor  = math.RGB(0.823, 0.615, 0.172)
	postColor  = math.RGB(0.6, 0.388, 0)
)

// Ground draws one tileable road segment at pos: road, grass verges, lane
// markings, a fence on each side and two trees.
func Ground(t Target, model math.Mat4, pos math.Vec3) {
	at := func(dx, dy, dz float32) math.Mat4 {
		return model.Mul(math.Translate(pos.X+dx, pos.Y+dy, pos.Z+dz))
	}

	t.SetColor(roadColor)
	t.Render(primitive.Cube, at(-2.25, -6.0, -1.0).Mul(math.Scale(4.5, 0.5, SegmentLength)))

	t.SetColor(grassColor)
	verge := math.Scale(5.0, 0.5, SegmentLength)
	t.Render(primitive.Cube, at(-7.25, -5.8, -1.0).Mul(verge))
	t.Render(primitive.Cube, at(2.25, -5.8, -1.0).Mul(verge))

	t.SetColor(laneColor)
	marking := math.Scale(0.15, 0.5, 1.5)
	for i := 0; i < 2; i++ {
		dz := -1.0 + 5.0*float32(i)
		t.Render(primitive.Cube, at(-0.8, -5.99, dz).Mul(marking))
		t.Render(primitive.Cube, at(0.65, -5.99, dz).Mul(marking))
	}

	t.SetColor(beamColor)
	beam := math.Scale(0.05, 0.05, SegmentLength)
	for i := 0; i < 2; i++ {
		dy := -5.0 + 0.3*float32(i)
		t.Render(primitive.Cylinder, at(-2.7, dy, -1.0).Mul(beam))
		t.Render(primitive.Cylinder, at(2.7, dy, -1.0).Mul(beam))
	}

	t.SetColor(postColor)
	post := math.Scale(0.1, 0.6, 0.1)
	for i := 0; i < 5; i++ {
		dz := -1.1 + 2.0*float32(i)
		t.Render(primitive.Cube, at(-2.75, -5.2, dz).Mul(post))
		t.Render(primitive.Cube, at(2.65, -5.2, dz).Mul(post))
	}

	tree := []math.Mat4{math.Rotate(90, 0, 1, 0), math.Scale(0.7, 0.7, 0.7)}
	Tree(t, math.Compose(append([]math.Mat4{at(3.5, -5.0, 0)}, tree...)...))
	Tree(t, math.Compose(append([]math.Mat4{at(-3.5, -5.0, 5.0)}, tree...)...))
}
