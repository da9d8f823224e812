package world

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/laneracer/internal/config"
	"github.com/Faultbox/laneracer/internal/engine/scene"
	"github.com/Faultbox/laneracer/internal/game/entity"
)

func newWorld(t *testing.T, mutate ...func(*config.GameConfig)) *World {
	t.Helper()
	cfg := config.Default().Game
	for _, m := range mutate {
		m(&cfg)
	}
	return New(cfg, rand.New(rand.NewPCG(1, 2)))
}

// clearTraffic parks every car far ahead and disables it.
func clearTraffic(w *World) {
	for i := range w.cars {
		w.cars[i].Position.Z = 500
		w.cars[i].Enabled = false
	}
}

func TestNewLaysOutLevel(t *testing.T) {
	w := newWorld(t)

	require.Len(t, w.rows, 7)
	require.Len(t, w.grounds, 12)

	for r, row := range w.rows {
		for i, car := range row {
			assert.InDelta(t, 18*float32(r), car.Position.Z, 1e-5)
			assert.InDelta(t, []float32{-1.5, 0, 1.5}[i], car.Position.X, 1e-6)
			assert.Equal(t, carSize, car.Size)
		}
		disabled := row.Pattern().Disabled()
		if r < openRows {
			assert.Equal(t, entity.RowSize, disabled, "row %d should start empty", r)
		} else {
			assert.True(t, disabled == 1 || disabled == 2, "row %d has %d disabled cars", r, disabled)
		}
	}

	for i, g := range w.grounds {
		assert.InDelta(t, 10*float32(i), g.Position.Z, 1e-5)
		assert.InDelta(t, 5, g.Position.Y, 1e-6)
	}

	assert.Equal(t, playerStart, w.Player().Position)
	assert.Equal(t, PlayerColor, w.Player().Color)
	assert.Equal(t, 1, w.Lane())
	assert.InDelta(t, 0.3, w.Speed(), 1e-6)
	assert.Zero(t, w.Score())
}

func TestSpeedIncreasesOnInterval(t *testing.T) {
	w := newWorld(t)
	clearTraffic(w)

	for i := 0; i < 99; i++ {
		w.Step(Controls{})
	}
	assert.InDelta(t, 0.3, w.Speed(), 1e-6)

	w.Step(Controls{})
	assert.InDelta(t, 0.33, w.Speed(), 1e-6)
	assert.Equal(t, 100, w.Frame())
}

func TestTuneChangesSpeedRamp(t *testing.T) {
	w := newWorld(t)
	clearTraffic(w)

	cfg := config.Default().Game
	cfg.SpeedInterval = 1
	cfg.SpeedIncrement = 0.1
	w.Tune(cfg)

	w.Step(Controls{})
	assert.InDelta(t, 0.4, w.Speed(), 1e-6)
}

func TestTuneKeepsRowLayoutUntilReset(t *testing.T) {
	w := newWorld(t)

	cfg := config.Default().Game
	cfg.CarRows = 3
	cfg.RowSpacing = 10
	w.Tune(cfg)

	for i := 0; i < 200; i++ {
		w.Step(Controls{})
	}

	require.Len(t, w.rows, 7)
	zs := make([]float32, len(w.rows))
	for i, row := range w.rows {
		zs[i] = row[0].Position.Z
	}
	slices.Sort(zs)
	for i := 1; i < len(zs); i++ {
		assert.InDelta(t, 18, zs[i]-zs[i-1], 1e-3, "rows %v", zs)
	}

	w.Reset()
	require.Len(t, w.rows, 3)
	assert.InDelta(t, 20, w.rows[2][0].Position.Z, 1e-5)
}

func TestLaneSteeringSnapsToLane(t *testing.T) {
	w := newWorld(t)
	clearTraffic(w)

	w.Step(Controls{RightPressed: true, RightHeld: true})
	assert.Equal(t, 2, w.Lane())
	assert.InDelta(t, -0.2, w.Player().Position.X, 1e-6)

	// Holding the key does not change lanes again.
	for i := 0; i < 10; i++ {
		w.Step(Controls{RightHeld: true})
	}
	assert.Equal(t, 2, w.Lane())
	assert.Equal(t, float32(-1.5), w.Player().Position.X)
}

func TestLaneIndexIsClamped(t *testing.T) {
	w := newWorld(t)
	clearTraffic(w)

	w.Step(Controls{LeftPressed: true})
	w.Step(Controls{})
	w.Step(Controls{LeftPressed: true})
	assert.Equal(t, 0, w.Lane())

	for i := 0; i < 3; i++ {
		w.Step(Controls{RightPressed: true})
		w.Step(Controls{})
	}
	assert.Equal(t, 2, w.Lane())
}

func TestFreeSteeringClamps(t *testing.T) {
	w := newWorld(t, func(c *config.GameConfig) { c.Steering = config.SteeringFree })
	clearTraffic(w)

	w.Step(Controls{RightHeld: true})
	assert.InDelta(t, -0.2, w.Player().Position.X, 1e-6)

	for i := 0; i < 20; i++ {
		w.Step(Controls{RightHeld: true})
	}
	assert.Equal(t, float32(-entity.HorizontalLimit), w.Player().Position.X)

	for i := 0; i < 20; i++ {
		w.Step(Controls{LeftHeld: true})
	}
	assert.Equal(t, float32(entity.HorizontalLimit), w.Player().Position.X)
}

func TestCrashWithEnabledCar(t *testing.T) {
	w := newWorld(t)
	clearTraffic(w)

	w.cars[1].Enabled = true
	w.cars[1].Position.Z = 1

	ev := w.Step(Controls{})
	assert.True(t, ev.Crashed)
}

func TestDisabledCarDoesNotCrash(t *testing.T) {
	w := newWorld(t)
	clearTraffic(w)

	w.cars[1].Position.Z = 1

	ev := w.Step(Controls{})
	assert.False(t, ev.Crashed)
}

func TestPassedRowScoresAndRecycles(t *testing.T) {
	w := newWorld(t)
	clearTraffic(w)

	for _, car := range w.rows[0] {
		car.Position.Z = -4.9
	}
	w.rows[0][2].Enabled = true // far lane, no crash

	ev := w.Step(Controls{})
	assert.False(t, ev.Crashed)
	assert.Equal(t, 1, ev.Scored)
	assert.Equal(t, 1, w.Score())

	for _, car := range w.rows[0] {
		assert.InDelta(t, -5.2+126, car.Position.Z, 1e-4)
	}
	assert.Equal(t, w.last, w.rows[0].Pattern())
	assert.Less(t, w.rows[0].Pattern().Disabled(), entity.RowSize)
}

func TestEmptyRowRecyclesWithoutScore(t *testing.T) {
	w := newWorld(t)
	clearTraffic(w)

	for _, car := range w.rows[0] {
		car.Position.Z = -4.9
	}

	ev := w.Step(Controls{})
	assert.Zero(t, ev.Scored)
	assert.Zero(t, w.Score())
	assert.InDelta(t, -5.2+126, w.rows[0][0].Position.Z, 1e-4)
}

func TestGroundWrapsBehindCamera(t *testing.T) {
	w := newWorld(t)
	clearTraffic(w)

	w.grounds[0].Position.Z = -9.8
	w.Step(Controls{})

	assert.InDelta(t, -10.1+120, w.grounds[0].Position.Z, 1e-4)
	assert.InDelta(t, 10-0.3, w.grounds[1].Position.Z, 1e-5)
}

func TestSnapshotSkipsDisabledCars(t *testing.T) {
	w := newWorld(t)

	enabled := 0
	for _, car := range w.cars {
		if car.Enabled {
			enabled++
		}
	}

	s := w.Snapshot()
	assert.Len(t, s.Enemies, enabled)
	assert.Len(t, s.Grounds, 12)
	assert.Equal(t, scene.CarPlacement{Position: playerStart, Color: PlayerColor}, s.Player)
}

func TestResetRestoresLevel(t *testing.T) {
	w := newWorld(t)
	clearTraffic(w)

	for _, car := range w.rows[0] {
		car.Position.Z = -4.9
	}
	w.rows[0][2].Enabled = true
	w.Step(Controls{RightPressed: true})
	require.Equal(t, 1, w.Score())

	w.Reset()
	assert.Zero(t, w.Score())
	assert.Zero(t, w.Frame())
	assert.Equal(t, 1, w.Lane())
	assert.InDelta(t, 0.3, w.Speed(), 1e-6)
	assert.Equal(t, playerStart, w.Player().Position)
	// The last laid-out row is the newest pattern memory.
	assert.Equal(t, w.last, w.rows[len(w.rows)-1].Pattern())
}
