package scene

import (
	"github.com/Faultbox/laneracer/internal/engine/primitive"
	"github.com/Faultbox/laneracer/pkg/math"
)

var (
	barkColor    = math.RGB(0.517, 0.270, 0)
	foliageColor = math.RGB(0.027, 0.611, 0)
)

// Tree draws a trunk standing on the local origin with four branches and
// three flattened foliage clusters.
func Tree(t Target, model math.Mat4) {
	t.SetColor(barkColor)

	// The cylinder runs along Z; stand it up so it spans y in [0, 3].
	t.Render(primitive.Cylinder, math.Compose(model,
		math.Rotate(90, 1, 0, 0),
		math.Rotate(180, 0, 0, 1),
		math.Translate(0, 0, -3),
		math.Scale(0.15, 0.15, 3),
	))

	// middle branches
	t.Render(primitive.Cylinder, math.Compose(model, math.Translate(0, 1.5, -0.3), math.Scale(0.05, 0.05, 0.7)))
	t.Render(primitive.Cylinder, math.Compose(model, math.Translate(0, 1.5, 0.4), math.Rotate(-45, 1, 0, 0), math.Scale(0.03, 0.03, 0.4)))

	// upper branches
	upper := math.Scale(0.05, 0.05, 0.5)
	t.Render(primitive.Cylinder, math.Compose(model, math.Translate(0, 2.2, 0), math.Rotate(20, 1, 0, 0), math.Rotate(160, 0, 1, 0), upper))
	t.Render(primitive.Cylinder, math.Compose(model, math.Translate(0.15, 2.35, -0.42), math.Rotate(-110, 1, 0, 0), upper))

	t.SetColor(foliageColor)
	t.Render(primitive.Sphere, math.Compose(model, math.Translate(0, 3.5, 0), math.Scale(1.2, 0.5, 1.2)))
	cluster := math.Scale(0.7, 0.3, 0.7)
	t.Render(primitive.Sphere, math.Compose(model, math.Translate(0, 2, 0.8), cluster))
	t.Render(primitive.Sphere, math.Compose(model, math.Translate(0, 2.9, -0.9), cluster))
}
