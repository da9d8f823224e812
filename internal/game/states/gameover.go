package states

import (
	"github.com/Faultbox/laneracer/internal/engine/audio"
	"github.com/Faultbox/laneracer/internal/engine/input"
	"github.com/Faultbox/laneracer/internal/engine/scene"
	"github.com/Faultbox/laneracer/internal/game/world"
	"github.com/Faultbox/laneracer/pkg/math"
)

// Flash timing in frames: red until flashRed, then the normal paint until
// flashPeriod, then the cycle restarts.
const (
	flashRed    = 15
	flashPeriod = 30
)

// GameOverState freezes the race, flashes the player car and waits for the
// restart key.
type GameOverState struct {
	ctx     Context
	manager *Manager
	flash   int
}

// NewGameOverState creates a new game over state.
func NewGameOverState(ctx Context, manager *Manager) *GameOverState {
	return &GameOverState{
		ctx:     ctx,
		manager: manager,
	}
}

// Enter prints the final score.
func (s *GameOverState) Enter() error {
	s.flash = 0
	s.ctx.Sounds.SetEngineSpeed(0)
	s.ctx.HUD.GameOver(s.ctx.World.Score())
	return nil
}

// Exit is called when leaving this state.
func (s *GameOverState) Exit() error {
	return nil
}

// Update flashes the player and restarts the level on request.
func (s *GameOverState) Update() error {
	player := s.ctx.World.Player()

	if s.ctx.Input.Pressed(input.KeyRestart) {
		s.ctx.World.Reset()
		s.ctx.Sounds.Play(audio.CueRestart)
		s.manager.Change(NewPlayingState(s.ctx, s.manager))
		return nil
	}

	s.flash++
	switch {
	case s.flash < flashRed:
		player.Color = math.Red
	case s.flash < flashPeriod:
		player.Color = world.PlayerColor
	default:
		s.flash = 0
	}
	return nil
}

// Render draws the frozen world.
func (s *GameOverState) Render(t scene.Target) error {
	scene.Compose(t, s.ctx.World.Snapshot())
	return nil
}
