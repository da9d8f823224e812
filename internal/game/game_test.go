package game

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/laneracer/internal/config"
	"github.com/Faultbox/laneracer/internal/engine/debug"
	"github.com/Faultbox/laneracer/internal/game/world"
	"github.com/Faultbox/laneracer/internal/logger"
)

func TestReloadKeepsNewest(t *testing.T) {
	g := &Game{reloads: make(chan *config.Config, 1)}

	first := config.Default()
	second := config.Default()
	second.Game.SpeedInterval = 50

	g.Reload(first)
	g.Reload(second)

	select {
	case got := <-g.reloads:
		assert.Same(t, second, got)
	default:
		t.Fatal("expected a pending reload")
	}
}

func TestApplyReloadTunesWorldAndScreenshots(t *testing.T) {
	cfg := config.Default()
	g := &Game{
		config:  cfg,
		world:   world.New(cfg.Game, rand.New(rand.NewPCG(5, 6))),
		shots:   debug.NewScreenshotCapture("", "laneracer", debug.FormatPNG),
		reloads: make(chan *config.Config, 1),
	}

	// Nothing pending.
	g.applyReload()
	assert.Equal(t, 100, g.config.Game.SpeedInterval)

	next := config.Default()
	next.Game.SpeedInterval = 1
	next.Game.SpeedIncrement = 0.5
	next.Debug.ScreenshotDir = filepath.Join("shots", "race")
	next.Logging.Level = "warn"
	defer logger.SetLevel("info")
	g.Reload(next)
	g.applyReload()

	assert.Equal(t, 1, g.config.Game.SpeedInterval)
	assert.Equal(t, next.Debug.ScreenshotDir, g.config.Debug.ScreenshotDir)
	assert.Equal(t, next.Debug.ScreenshotDir, filepath.Dir(g.shots.GenerateFilename()))
	assert.Equal(t, "warn", logger.Level())

	g.world.Step(world.Controls{})
	assert.InDelta(t, 0.8, g.world.Speed(), 1e-6)
}
