// Package states implements game state management.
package states

import (
	"github.com/Faultbox/laneracer/internal/engine/audio"
	"github.com/Faultbox/laneracer/internal/engine/input"
	"github.com/Faultbox/laneracer/internal/engine/scene"
	"github.com/Faultbox/laneracer/internal/game/hud"
	"github.com/Faultbox/laneracer/internal/game/world"
)

// State represents a game state (racing, game over).
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update advances the state by one frame.
	Update() error

	// Render emits the state's draw calls.
	Render(t scene.Target) error
}

// Sounds plays gameplay audio. *audio.Manager satisfies it.
type Sounds interface {
	Play(c audio.Cue)
	SetEngineSpeed(speed float32)
}

// Context is shared by every state.
type Context struct {
	World  *world.World
	Input  *input.Input
	HUD    *hud.HUD
	Sounds Sounds
}

// Manager manages game state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes state changes and updates current state.
func (m *Manager) Update() error {
	// Handle state transition
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	// Update current state
	if m.current != nil {
		return m.current.Update()
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render(t scene.Target) error {
	if m.current != nil {
		return m.current.Render(t)
	}
	return nil
}
