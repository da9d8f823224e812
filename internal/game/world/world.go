// Package world runs the race simulation: it scrolls traffic and road toward
// the camera, steers the player, detects crashes, scores passed rows and
// recycles rows and road segments that fall behind the camera.
package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/laneracer/internal/config"
	"github.com/Faultbox/laneracer/internal/engine/scene"
	"github.com/Faultbox/laneracer/internal/game/entity"
	"github.com/Faultbox/laneracer/internal/logger"
	"github.com/Faultbox/laneracer/pkg/math"
)

// Level layout.
const (
	// passedZ is where a row counts as behind the camera.
	passedZ = -5.0
	// groundY is the height of every road segment origin.
	groundY = 5.0
	// openRows is how many leading rows start empty so the player can settle.
	openRows = 2
	// lateralDivisor relates forward speed to sideways speed.
	lateralDivisor = 1.5
)

// PlayerColor is the player's paint when not flashing.
var PlayerColor = math.RGB(0, 0.396, 1)

var (
	playerStart = math.Vec3{X: 0, Y: 0.01, Z: 0}
	carSize     = math.Vec3{X: 1, Y: 1, Z: 2}
)

// Controls is the steering input for one frame.
type Controls struct {
	LeftPressed  bool // went down this frame
	RightPressed bool
	LeftHeld     bool
	RightHeld    bool
}

// Events reports what happened during one Step.
type Events struct {
	Scored  int  // rows passed with at least one enabled car
	Crashed bool // player touched an enabled car
}

// World is the race state.
type World struct {
	cfg config.GameConfig
	rng entity.Rand
	log *zap.Logger

	player  entity.GameObject
	cars    []entity.GameObject
	rows    []entity.Row
	grounds []entity.GameObject
	last    entity.Pattern // pattern of the most recently recycled row

	lanes      [entity.RowSize]float32
	rowSpacing float32 // spacing the current rows were laid out with
	lane       int
	speed float32
	frame int
	score int
}

// New builds a world and lays out the first level.
func New(cfg config.GameConfig, rng entity.Rand) *World {
	w := &World{
		rng: rng,
		log: logger.Named("world"),
	}
	w.Tune(cfg)
	w.Reset()
	return w
}

// Tune applies gameplay settings. Layout settings (rows, spacing, lane width)
// take effect on the next Reset.
func (w *World) Tune(cfg config.GameConfig) {
	w.cfg = cfg
}

// Reset lays out a fresh level: player centered, traffic rows spaced ahead
// with the first rows empty, road segments tiled from the camera forward.
// The memory of the last drawn pattern carries over.
func (w *World) Reset() {
	w.lanes = [entity.RowSize]float32{w.cfg.LaneWidth, 0, -w.cfg.LaneWidth}
	w.rowSpacing = w.cfg.RowSpacing
	w.lane = 1
	w.speed = w.cfg.ForwardSpeed
	w.frame = 0
	w.score = 0

	w.player = entity.New(PlayerColor, playerStart, carSize)

	n := w.cfg.CarRows
	w.cars = make([]entity.GameObject, n*entity.RowSize)
	w.rows = make([]entity.Row, n)
	for r := 0; r < n; r++ {
		z := w.rowSpacing * float32(r)
		for i := 0; i < entity.RowSize; i++ {
			car := &w.cars[r*entity.RowSize+i]
			*car = entity.New(math.Black, math.Vec3{X: -w.lanes[i], Y: 0, Z: z}, carSize)
			w.rows[r][i] = car
		}
		entity.ResetRow(w.rows[r], 0, &w.last, w.rng)
		if r < openRows {
			for _, car := range w.rows[r] {
				car.Enabled = false
			}
		}
	}

	w.grounds = make([]entity.GameObject, w.cfg.GroundRows)
	for i := range w.grounds {
		pos := math.Vec3{X: 0, Y: groundY, Z: scene.SegmentLength * float32(i)}
		w.grounds[i] = entity.New(math.Black, pos, math.Vec3{})
	}

	w.log.Debug("level reset",
		zap.Int("rows", n),
		zap.Int("grounds", len(w.grounds)),
		zap.Float32("speed", w.speed),
	)
}

// Step advances the simulation one frame.
func (w *World) Step(c Controls) Events {
	var ev Events

	w.frame++
	if w.frame%w.cfg.SpeedInterval == 0 {
		w.speed += w.cfg.SpeedIncrement
	}
	lateral := w.speed / lateralDivisor

	w.steer(c, lateral)

	recycle := -float32(len(w.rows)) * w.rowSpacing
	for _, row := range w.rows {
		for _, car := range row {
			car.MoveForward(w.speed)
			if car.Enabled && w.player.WillCollide(car) {
				ev.Crashed = true
			}
		}

		if row[0].Position.Z < passedZ {
			if row.Pattern().Disabled() < entity.RowSize {
				ev.Scored++
			}
			entity.ResetRow(row, recycle, &w.last, w.rng)
		}
	}
	w.score += ev.Scored

	span := scene.SegmentLength * float32(len(w.grounds))
	for i := range w.grounds {
		g := &w.grounds[i]
		g.MoveForward(w.speed)
		if g.Position.Z <= -scene.SegmentLength {
			g.MoveForward(-span)
		}
	}

	if ev.Crashed {
		w.log.Debug("crash", zap.Int("frame", w.frame), zap.Int("score", w.score))
	}
	return ev
}

// steer moves the player for this frame. In lane mode a press changes the
// target lane and the car slides toward it; in free mode held keys move it.
// Lane order runs from +X to -X, so the right key moves toward -X.
func (w *World) steer(c Controls, lateral float32) {
	if w.cfg.Steering == config.SteeringFree {
		if c.RightHeld {
			w.player.MoveHorizontal(-lateral)
		}
		if c.LeftHeld {
			w.player.MoveHorizontal(lateral)
		}
		return
	}

	if c.RightPressed {
		w.lane = min(entity.RowSize-1, w.lane+1)
	}
	if c.LeftPressed {
		w.lane = max(0, w.lane-1)
	}
	w.player.SteerToward(w.lanes[w.lane], lateral)
}

// Player returns the player car.
func (w *World) Player() *entity.GameObject {
	return &w.player
}

// Score returns the rows passed since the last Reset.
func (w *World) Score() int {
	return w.score
}

// Speed returns the current forward speed per frame.
func (w *World) Speed() float32 {
	return w.speed
}

// Lane returns the target lane index, 0 through 2.
func (w *World) Lane() int {
	return w.lane
}

// Frame returns the number of steps since the last Reset.
func (w *World) Frame() int {
	return w.frame
}

// Snapshot returns what is visible this frame. Disabled cars are left out.
func (w *World) Snapshot() scene.Snapshot {
	s := scene.Snapshot{
		Player:  scene.CarPlacement{Position: w.player.Position, Color: w.player.Color},
		Grounds: make([]math.Vec3, len(w.grounds)),
	}
	for i := range w.cars {
		car := &w.cars[i]
		if car.Enabled {
			s.Enemies = append(s.Enemies, scene.CarPlacement{Position: car.Position, Color: car.Color})
		}
	}
	for i, g := range w.grounds {
		s.Grounds[i] = g.Position
	}
	return s
}
