package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/laneracer/internal/engine/audio"
	"github.com/Faultbox/laneracer/internal/engine/input"
	"github.com/Faultbox/laneracer/internal/engine/scene"
	"github.com/Faultbox/laneracer/internal/game/world"
	"github.com/Faultbox/laneracer/internal/logger"
)

// PlayingState steps the race until the player crashes.
type PlayingState struct {
	ctx     Context
	manager *Manager
}

// NewPlayingState creates a new racing state.
func NewPlayingState(ctx Context, manager *Manager) *PlayingState {
	return &PlayingState{
		ctx:     ctx,
		manager: manager,
	}
}

// Enter is called when entering this state.
func (s *PlayingState) Enter() error {
	logger.Info("race started")
	s.ctx.HUD.Start()
	return nil
}

// Exit is called when leaving this state.
func (s *PlayingState) Exit() error {
	return nil
}

// Update steers, steps the world and watches for a crash.
func (s *PlayingState) Update() error {
	w := s.ctx.World
	w.Player().Color = world.PlayerColor

	in := s.ctx.Input
	ev := w.Step(world.Controls{
		LeftPressed:  in.Pressed(input.KeyLeft),
		RightPressed: in.Pressed(input.KeyRight),
		LeftHeld:     in.Held(input.KeyLeft),
		RightHeld:    in.Held(input.KeyRight),
	})

	s.ctx.Sounds.SetEngineSpeed(w.Speed())

	if ev.Scored > 0 {
		s.ctx.HUD.Score(w.Score())
		s.ctx.Sounds.Play(audio.CueScore)
	}
	if ev.Crashed {
		s.ctx.Sounds.Play(audio.CueCrash)
		logger.Info("crashed",
			zap.Int("score", w.Score()),
			zap.Int("frame", w.Frame()),
			zap.Float32("speed", w.Speed()),
		)
		s.manager.Change(NewGameOverState(s.ctx, s.manager))
	}
	return nil
}

// Render draws the world.
func (s *PlayingState) Render(t scene.Target) error {
	scene.Compose(t, s.ctx.World.Snapshot())
	return nil
}
