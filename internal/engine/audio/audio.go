// Package audio plays the race sound effects and the engine hum. All sounds
// are synthesized, so nothing is loaded from disk.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Engine hum pitch range in Hz, mapped from forward speed.
const (
	engineIdleHz  = 55.0
	engineHzSpeed = 120.0
)

// Manager handles audio playback for the game.
type Manager struct {
	mu sync.RWMutex

	// State
	initialized bool
	sampleRate  beep.SampleRate

	// Engine hum
	engine     *oscillator
	engineCtrl *beep.Ctrl
	engineVol  *effects.Volume

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	engineLevel  float64
	sfxVolLevel  float64

	// SFX mixer for concurrent sound effects
	sfxMixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sampleRate:   DefaultSampleRate,
		masterVolume: 1.0,
		engineLevel:  0.3,
		sfxVolLevel:  1.0,
		sfxMixer:     &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer and the engine hum.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.engine = newOscillator(m.sampleRate, engineIdleHz, squareWave)
	m.engineCtrl = &beep.Ctrl{Streamer: m.engine}
	m.engineVol = &effects.Volume{Streamer: m.engineCtrl, Base: 2}
	m.updateEngineVolume()

	// SFX mixer and engine run for the lifetime of the speaker
	speaker.Play(m.sfxMixer, m.engineVol)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateEngineVolume()
}

// SetEngineVolume sets the engine hum volume (0.0 to 1.0).
func (m *Manager) SetEngineVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engineLevel = clamp(vol, 0, 1)
	m.updateEngineVolume()
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// SFXVolume returns the SFX volume.
func (m *Manager) SFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

func (m *Manager) updateEngineVolume() {
	if m.engineVol == nil {
		return
	}
	vol := m.masterVolume * m.engineLevel
	speaker.Lock()
	m.engineVol.Silent = vol <= 0
	m.engineVol.Volume = volumeToDb(vol)
	speaker.Unlock()
}

// SetEngineSpeed retunes the engine hum for a forward speed. Zero speed
// pauses it.
func (m *Manager) SetEngineSpeed(speed float32) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.engineCtrl.Paused = speed <= 0
	m.engine.setFrequency(engineHz(speed))
	speaker.Unlock()
}

// engineHz maps forward speed to hum pitch.
func engineHz(speed float32) float64 {
	return engineIdleHz + engineHzSpeed*float64(max(speed, 0))
}

// Play starts a sound effect. It is a no-op before Init.
func (m *Manager) Play(c Cue) {
	m.mu.RLock()
	initialized := m.initialized
	sfxVol := m.masterVolume * m.sfxVolLevel
	sr := m.sampleRate
	m.mu.RUnlock()

	if !initialized {
		return
	}

	// Apply volume
	volStreamer := &effects.Volume{
		Streamer: c.Streamer(sr),
		Base:     2,
		Volume:   volumeToDb(sfxVol),
		Silent:   sfxVol <= 0,
	}

	// Add to mixer (concurrent playback)
	speaker.Lock()
	m.sfxMixer.Add(volStreamer)
	speaker.Unlock()
}

// volumeToDb converts a 0-1 volume to the base-2 scale effects.Volume uses:
// vol=1 -> 0, vol=0.5 -> -1, vol=0.25 -> -2.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
