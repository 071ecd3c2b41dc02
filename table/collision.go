package table

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/jacob-juung/pinball/event"
	"github.com/jacob-juung/pinball/game"
	"github.com/jacob-juung/pinball/physics"
)

// Scoring constants. Base values scale with the preset's score
// multiplier and the live combo multiplier.
const (
	bumperBaseScore = 100
	targetBaseScore = 500

	// Angular speed above which a moving flipper imparts an extra boost.
	flipperBoostThreshold = 5.0
)

// registerHandlers wires the begin-contact dispatcher. Scoring and combo
// bookkeeping happen here, at most once per discrete contact, never per
// substep.
func (t *Table) registerHandlers() {
	t.world.OnContact(physics.KindBall, physics.KindBumper, t.onBumperHit)
	t.world.OnContact(physics.KindBall, physics.KindTarget, t.onTargetHit)
	t.world.OnContact(physics.KindBall, physics.KindDrain, t.onDrain)
	t.world.OnContact(physics.KindBall, physics.KindFlipper, t.onFlipperHit)
	t.world.OnContact(physics.KindBall, physics.KindSpinner, t.onSpinnerHit)
	t.world.OnContact(physics.KindBall, physics.KindWall, t.onWallHit)
}

func (t *Table) onBumperHit(ball, bumper *cp.Shape) {
	d := t.preset
	s := t.state

	if t.elapsed-s.LastHitTime < game.ComboWindow {
		if s.ComboMultiplier < game.ComboMax {
			s.ComboMultiplier++
		}
	} else {
		s.ComboMultiplier = 1
	}
	s.LastHitTime = t.elapsed

	base := int(bumperBaseScore * d.ScoreMultiplier)
	s.Score += base * s.ComboMultiplier

	// Kick the ball straight away from the bumper center.
	dir := ball.Body().Position().Sub(bumper.Body().Position()).Normalize()
	ball.Body().ApplyImpulseAtLocalPoint(dir.Mult(d.BumperImpulse), cp.Vector{})

	pos := bumper.Body().Position()
	t.events.Push(event.Event{Type: event.TypeBumper, X: pos.X, Y: pos.Y, Entity: shapeID(bumper)})
}

func (t *Table) onTargetHit(ball, target *cp.Shape) {
	d := t.preset
	s := t.state

	base := int(targetBaseScore * d.ScoreMultiplier)
	s.Score += base * s.ComboMultiplier

	pos := ball.Body().Position()
	t.events.Push(event.Event{Type: event.TypeTarget, X: pos.X, Y: pos.Y, Entity: shapeID(target)})
}

func (t *Table) onFlipperHit(ball, flipper *cp.Shape) {
	pos := ball.Body().Position()
	t.events.Push(event.Event{Type: event.TypeFlipper, X: pos.X, Y: pos.Y, Entity: shapeID(flipper)})

	// Only a moving flipper imparts extra energy; a resting one is just
	// an elastic surface.
	omega := flipper.Body().AngularVelocity()
	if math.Abs(omega) <= flipperBoostThreshold {
		return
	}

	boost := t.preset.FlipperImpulse * 0.015
	vel := ball.Body().Velocity()
	ball.Body().SetVelocity(vel.X*1.3, vel.Y-boost)
}

// onDrain handles the drain sensor. With the saver active the ball
// teleports back to the launch point; otherwise it is parked off-table
// so the next Update removes it and charges the drain.
func (t *Table) onDrain(ball, _ *cp.Shape) {
	if t.state.BallSaverActive {
		ball.Body().SetPosition(cp.Vector{X: spawnX, Y: spawnY})
		ball.Body().SetVelocity(0, 0)
		t.events.Push(event.Event{Type: event.TypeBallSaved, X: spawnX, Y: spawnY})
		return
	}

	ball.Body().SetPosition(cp.Vector{X: -100, Y: -100})
	t.events.Push(event.Event{Type: event.TypeDrain, X: -100, Y: -100})
}

func (t *Table) onSpinnerHit(ball, spinner *cp.Shape) {
	pos := ball.Body().Position()
	t.events.Push(event.Event{Type: event.TypeSpinner, X: pos.X, Y: pos.Y, Entity: shapeID(spinner)})
}

func (t *Table) onWallHit(ball, wall *cp.Shape) {
	pos := ball.Body().Position()
	t.events.Push(event.Event{Type: event.TypeWall, X: pos.X, Y: pos.Y, Entity: shapeID(wall)})
}
