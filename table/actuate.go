package table

import (
	"github.com/jakecoffman/cp"

	"github.com/jacob-juung/pinball/event"
	"github.com/jacob-juung/pinball/physics"
)

// flipImpulseOffset is where the flip impulse is applied, in flipper
// body coordinates: out along the blade from the pivot.
var flipImpulseOffset = cp.Vector{X: -60}

// FlipLeft kicks the left flipper upward. Repeated calls while the
// flipper already rests at its swing limit have no further effect; the
// rotary limit joint clamps the swing.
func (t *Table) FlipLeft() {
	imp := t.preset.FlipperImpulse
	t.left.body.ApplyImpulseAtLocalPoint(cp.Vector{Y: imp}, flipImpulseOffset)
}

// FlipRight kicks the right flipper and drives the mini flipper at half
// impulse.
func (t *Table) FlipRight() {
	imp := t.preset.FlipperImpulse
	t.right.body.ApplyImpulseAtLocalPoint(cp.Vector{Y: -imp}, flipImpulseOffset)
	t.mini.body.ApplyImpulseAtLocalPoint(cp.Vector{Y: -imp * 0.5}, cp.Vector{X: -30})
}

// CreateBall spawns a ball at the plunger lane spawn point.
func (t *Table) CreateBall() {
	t.CreateBallAt(cp.Vector{X: spawnX, Y: spawnY})
}

// CreateBallAt spawns a ball at the given position, marks it in play and
// unconditionally (re)arms the ball saver. This is the one guaranteed
// safety window per launch.
func (t *Table) CreateBallAt(pos cp.Vector) *cp.Shape {
	d := t.preset

	moment := cp.MomentForCircle(ballMass, 0, ballRadius, cp.Vector{})
	body := cp.NewBody(ballMass, moment)
	body.SetPosition(pos)

	shape := cp.NewCircle(body, ballRadius, cp.Vector{})
	shape.SetElasticity(d.BallElasticity)
	shape.SetFriction(d.BallFriction)
	shape.SetCollisionType(cp.CollisionType(physics.KindBall))
	t.world.AddBody(body, shape)
	t.balls = append(t.balls, shape)

	t.state.BallInPlay = true
	t.state.BallSaverActive = true
	t.state.BallSaverTimer = d.BallSaverDuration

	return shape
}

// LaunchBall fires the most recently created ball out of the plunger
// lane. A no-op unless that ball still sits inside the lane region and
// power is positive; launching thin air is physically meaningless.
func (t *Table) LaunchBall(power float64) {
	if len(t.balls) == 0 || power <= 0 {
		return
	}
	ball := t.balls[len(t.balls)-1]
	if !t.inPlungerLane(ball) {
		return
	}

	vy := -power * 2
	t.plungerBody.SetVelocity(0, vy)
	ball.Body().SetVelocity(0, vy)

	t.events.Push(event.Event{Type: event.TypeLaunch, X: spawnX, Y: spawnY})
}
