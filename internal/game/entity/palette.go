package entity

import "github.com/Faultbox/laneracer/pkg/math"

// Palette holds the enemy car paint colors.
var Palette = [...]math.Color{
	{R: 0.807, G: 0.803, B: 0.815}, // light grey
	{R: 1, G: 0.227, B: 0.235},     // red
	{R: 1, G: 0.768, B: 0.031},     // gold
	{R: 0.015, G: 0.749, B: 0.007}, // green
	{R: 0, G: 0.870, B: 0.913},     // turquoise
	{R: 0.835, G: 0, B: 1},         // purple
}

// Rand is the random source used for recycling. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}
