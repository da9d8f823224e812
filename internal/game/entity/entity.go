// Package entity implements the game objects (player car, enemy cars, ground
// segments) and the recycling of enemy rows.
package entity

import (
	"github.com/Faultbox/laneracer/pkg/math"
)

// HorizontalLimit bounds MoveHorizontal on both sides of the road center.
const HorizontalLimit = 1.4

// GameObject is a placed object with a collision extent.
type GameObject struct {
	Color    math.Color
	Position math.Vec3
	Size     math.Vec3 // extent from Position along each axis, used for collision
	Enabled  bool      // disabled objects are neither drawn nor collided with
}

// New creates an enabled object.
func New(color math.Color, position, size math.Vec3) GameObject {
	return GameObject{
		Color:    color,
		Position: position,
		Size:     size,
		Enabled:  true,
	}
}

// SetRandomColor paints the object with a random palette color.
func (g *GameObject) SetRandomColor(rng Rand) {
	g.Color = Palette[rng.IntN(len(Palette))]
}

// MoveForward moves the object dz toward the camera (negative Z).
func (g *GameObject) MoveForward(dz float32) {
	g.Position.Z -= dz
}

// MoveHorizontal moves the object dx along X, clamped to ±HorizontalLimit.
// The sign of dx picks the bound that applies.
func (g *GameObject) MoveHorizontal(dx float32) {
	if dx > 0 {
		g.Position.X = min(HorizontalLimit, g.Position.X+dx)
	} else {
		g.Position.X = max(-HorizontalLimit, g.Position.X+dx)
	}
}

// SteerToward moves X toward target by speed. A step that crosses the road
// center stops on it, and a step that crosses the target stops on the target.
func (g *GameObject) SteerToward(target, speed float32) {
	cur := g.Position.X
	next := cur + speed
	if cur > target {
		next = cur - speed
	}

	switch {
	case (cur < 0 && next > 0) || (cur > 0 && next < 0):
		g.Position.X = 0
	case (cur < target && next > target) || (cur > target && next < target):
		g.Position.X = target
	case target > cur:
		g.Position.X += speed
	case target < cur:
		g.Position.X -= speed
	}
}

// WillCollide reports whether g and other overlap on both X and Z. Y is
// ignored. Each box runs from Position to Position+Size, and touching edges
// count as a hit.
func (g *GameObject) WillCollide(other *GameObject) bool {
	onLeft := g.Position.X <= other.Position.X+other.Size.X
	onRight := g.Position.X+g.Size.X >= other.Position.X
	onFront := g.Position.Z+g.Size.Z >= other.Position.Z
	onBack := g.Position.Z <= other.Position.Z+other.Size.Z

	return onLeft && onRight && onFront && onBack
}
