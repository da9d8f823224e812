// Package scene assembles compound objects (cars, trees, ground segments)
// out of the three primitives. Builders take the accumulated parent transform
// and right-multiply their local transforms onto it.
package scene

import (
	"github.com/Faultbox/laneracer/internal/engine/primitive"
	"github.com/Faultbox/laneracer/pkg/math"
)

// Target receives draw calls. Color is stateful: SetColor applies to every
// following Render until the next SetColor, so builders set it before each
// group of renders that needs it.
type Target interface {
	SetColor(c math.Color)
	Render(kind primitive.Kind, model math.Mat4)
}

// Vertical placement of the frame's objects.
const (
	playerLift = 0.41
	enemyLift  = 0.4
	groundLift = 0.5
)

// CarPlacement is a car to draw in world space.
type CarPlacement struct {
	Position math.Vec3
	Color    math.Color
}

// Snapshot is everything visible in one frame.
type Snapshot struct {
	Player  CarPlacement
	Enemies []CarPlacement
	Grounds []math.Vec3
}

// Compose emits the draw calls for a whole frame: the player car, every
// enemy car and every ground segment.
func Compose(t Target, s Snapshot) {
	root := math.Identity()

	Car(t, root.Mul(math.Translate(s.Player.Position.X, playerLift, 0)), s.Player.Color)

	for _, e := range s.Enemies {
		Car(t, root.Mul(math.Translate(e.Position.X, enemyLift, e.Position.Z)), e.Color)
	}

	road := root.Mul(math.Translate(0, groundLift, 0))
	for _, g := range s.Grounds {
		Ground(t, road, g)
	}
}
