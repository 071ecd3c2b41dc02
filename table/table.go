package table

import (
	"github.com/jakecoffman/cp"

	"github.com/jacob-juung/pinball/difficulty"
	"github.com/jacob-juung/pinball/event"
	"github.com/jacob-juung/pinball/game"
	"github.com/jacob-juung/pinball/physics"
)

// Playfield dimensions and fixed physical constants. Per-difficulty
// tuning lives in difficulty.Preset; these never change.
const (
	Width  = 600
	Height = 800

	ballMass     = 1.0
	ballRadius   = 12.0
	flipperMass  = 100.0
	bumperRadius = 25.0

	spawnX = 535.0
	spawnY = 710.0

	plungerX     = 535.0
	plungerRestY = 730.0
	plungerMinY  = 730.0
	plungerMaxY  = 745.0
	plungerW     = 40.0
	plungerH     = 10.0

	// Plunger lane region; a launch is only valid while the most recent
	// ball sits inside it.
	laneMinX = 505.0
	laneMaxX = 565.0
	laneMinY = 600.0

	// Off-table exit bounds checked by Update.
	exitBottomY = 800.0
	exitLeftX   = -50.0
)

type entity struct {
	id    int
	body  *cp.Body
	shape *cp.Shape
}

type spinnerEntity struct {
	entity
	anchor  cp.Vector
	halfLen float64
}

type flipperEntity struct {
	entity
	pivot cp.Vector
	verts []cp.Vector
}

// Table owns every static and kinematic entity of one playfield build.
// It is constructed once per difficulty selection and discarded, along
// with its world, when difficulty changes.
type Table struct {
	world  *physics.World
	state  *game.State
	preset *difficulty.Preset
	events *event.Queue

	// Game clock, advanced by Update. Drives the combo window.
	elapsed float64

	walls   []*cp.Shape
	targets []entity
	drain   *cp.Shape

	bumpers  []entity
	spinners []spinnerEntity

	left, right, mini flipperEntity

	plungerBody  *cp.Body
	plungerShape *cp.Shape

	balls []*cp.Shape

	nextID int

	// Static snapshot parts, built once.
	wallSnaps   []game.SegmentSnap
	targetSnaps []game.SegmentSnap
}

// New builds the full table in the given world and wires the collision
// dispatcher. The state must be freshly reset with the same preset.
func New(world *physics.World, state *game.State, preset *difficulty.Preset, events *event.Queue) *Table {
	t := &Table{
		world:  world,
		state:  state,
		preset: preset,
		events: events,
		nextID: 1,
	}

	t.createWalls()
	t.createFlippers()
	t.createPlungerLane()
	t.createBumpers()
	t.createSpinners()
	t.createTargets()
	t.createDrain()
	t.registerHandlers()

	return t
}

func (t *Table) allocID() int {
	id := t.nextID
	t.nextID++
	return id
}

// Elapsed returns the table's game clock in seconds.
func (t *Table) Elapsed() float64 {
	return t.elapsed
}

// BallInLane reports whether any live ball sits in the plunger lane.
func (t *Table) BallInLane() bool {
	for _, ball := range t.balls {
		if t.inPlungerLane(ball) {
			return true
		}
	}
	return false
}

func (t *Table) inPlungerLane(ball *cp.Shape) bool {
	pos := ball.Body().Position()
	return pos.X > laneMinX && pos.X < laneMaxX && pos.Y > laneMinY
}

// BallCount returns the number of live balls.
func (t *Table) BallCount() int {
	return len(t.balls)
}

// ClearBalls removes every live ball from the world. Used on reset and
// before teardown so no ball survives a rebuild.
func (t *Table) ClearBalls() {
	for _, ball := range t.balls {
		t.world.Remove(ball.Body(), ball)
	}
	t.balls = t.balls[:0]
}

func shapeID(s *cp.Shape) int {
	if id, ok := s.UserData.(int); ok {
		return id
	}
	return 0
}
