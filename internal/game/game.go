// Package game implements the main game loop and state management.
package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/laneracer/internal/config"
	"github.com/Faultbox/laneracer/internal/engine/audio"
	"github.com/Faultbox/laneracer/internal/engine/camera"
	"github.com/Faultbox/laneracer/internal/engine/debug"
	"github.com/Faultbox/laneracer/internal/engine/input"
	"github.com/Faultbox/laneracer/internal/engine/lighting"
	"github.com/Faultbox/laneracer/internal/engine/renderer"
	"github.com/Faultbox/laneracer/internal/engine/window"
	"github.com/Faultbox/laneracer/internal/game/hud"
	"github.com/Faultbox/laneracer/internal/game/states"
	"github.com/Faultbox/laneracer/internal/game/world"
	"github.com/Faultbox/laneracer/internal/logger"
)

const windowTitle = "Lane Racer"

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	window   window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Rig
	world    *world.World
	states   *states.Manager
	shots    *debug.ScreenshotCapture
	audio    *audio.Manager

	drawW, drawH int

	// reloads carries configs from the file watcher to the main thread.
	reloads chan *config.Config
}

// New creates a new game instance.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.String("title", windowTitle),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("backend", cfg.Graphics.Backend),
	)

	g := &Game{
		config:  cfg,
		reloads: make(chan *config.Config, 1),
	}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:   windowTitle,
		Width:   cfg.Graphics.Width,
		Height:  cfg.Graphics.Height,
		VSync:   cfg.Graphics.VSync,
		Backend: cfg.Graphics.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.drawW, g.drawH = g.window.DrawableSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{
		Width:          g.drawW,
		Height:         g.drawH,
		SphereDepth:    cfg.Graphics.SphereDepth,
		CylinderFacets: cfg.Graphics.CylinderFacets,
		Sun:            lighting.Default(),
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("traffic seed", zap.Uint64("seed", seed))

	g.input = input.New()
	g.camera = camera.ForConfig(cfg.Camera.Eye, cfg.Camera.Target, cfg.Camera.Up)
	g.world = world.New(cfg.Game, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	g.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "laneracer", cfg.Debug.ScreenshotFormat)

	g.audio = audio.New()
	g.audio.SetMasterVolume(cfg.Audio.MasterVolume)
	g.audio.SetSFXVolume(cfg.Audio.SFXVolume)
	g.audio.SetEngineVolume(cfg.Audio.EngineVolume)
	if cfg.Audio.Enabled {
		// A missing audio device is not fatal.
		if err := g.audio.Init(); err != nil {
			logger.Warn("audio unavailable", zap.Error(err))
		}
	}

	g.states = states.NewManager()
	g.states.Change(states.NewPlayingState(states.Context{
		World:  g.world,
		Input:  g.input,
		HUD:    hud.New(os.Stderr),
		Sounds: g.audio,
	}, g.states))

	logger.Info("game initialized successfully")
	return g, nil
}

// Reload queues a new config to apply at the next frame boundary. It is safe
// to call from any goroutine; if a reload is already pending it is replaced.
func (g *Game) Reload(cfg *config.Config) {
	for {
		select {
		case g.reloads <- cfg:
			return
		default:
		}
		select {
		case <-g.reloads:
		default:
		}
	}
}

// applyReload takes the gameplay tunables, the screenshot directory and the
// log level from a pending reload.
func (g *Game) applyReload() {
	select {
	case cfg := <-g.reloads:
		g.config.Game = cfg.Game
		g.world.Tune(cfg.Game)
		g.config.Debug.ScreenshotDir = cfg.Debug.ScreenshotDir
		g.shots.SetOutputDir(cfg.Debug.ScreenshotDir)
		g.config.Logging.Level = cfg.Logging.Level
		logger.SetLevel(cfg.Logging.Level)
		logger.Info("settings reloaded",
			zap.Float32("speed_increment", cfg.Game.SpeedIncrement),
			zap.Int("speed_interval", cfg.Game.SpeedInterval),
			zap.String("steering", cfg.Game.Steering),
			zap.String("screenshot_dir", cfg.Debug.ScreenshotDir),
			zap.String("log_level", cfg.Logging.Level),
		)
	default:
	}
}

// Run starts the main game loop. It returns when the window closes, the quit
// key is pressed or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		if ctx.Err() != nil {
			break
		}

		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		g.window.PollEvents()
		if g.window.ShouldClose() {
			break
		}
		g.input.Update(g.window)
		if g.input.Pressed(input.KeyQuit) {
			break
		}

		// 2. Update game state
		g.applyReload()
		if err := g.states.Update(); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		if err := g.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if g.input.Pressed(input.KeyScreenshot) {
			g.screenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Int("score", g.world.Score()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	g.running = false
	logger.Info("game loop stopped", zap.Int("score", g.world.Score()))
	return nil
}

// render draws the current frame.
func (g *Game) render() error {
	if w, h := g.window.DrawableSize(); w != g.drawW || h != g.drawH {
		g.drawW, g.drawH = w, h
		g.renderer.Resize(w, h)
	}

	g.camera.Apply(g.renderer)
	g.renderer.Begin()
	return g.states.Render(g.renderer)
}

// screenshot saves the back buffer. Failures are logged and ignored.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
