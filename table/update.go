package table

import (
	"github.com/jakecoffman/cp"
)

// Update runs per-frame housekeeping. Called once per frame, after the
// world step; the re-pinned actuator poses become the canonical start
// for the next frame's substeps.
func (t *Table) Update(dt float64) {
	t.elapsed += dt

	t.repinActuators()
	t.tickBallSaver(dt)
	t.removeExitedBalls()
}

// repinActuators snaps the jointed and kinematic bodies back to their
// designed poses. The spring/limit solver accumulates small positional
// error each step; without this the flippers slowly drift off their
// pivots.
func (t *Table) repinActuators() {
	for _, f := range []flipperEntity{t.left, t.right, t.mini} {
		f.body.SetPosition(f.pivot)
		f.body.SetVelocity(0, 0)
	}

	for _, sp := range t.spinners {
		sp.body.SetPosition(sp.anchor)
		sp.body.SetVelocity(0, 0)
	}

	if t.plungerBody.Position().Y < plungerMinY {
		t.plungerBody.SetPosition(cp.Vector{X: plungerX, Y: plungerRestY})
		t.plungerBody.SetVelocity(0, 0)
	}
}

func (t *Table) tickBallSaver(dt float64) {
	if !t.state.BallSaverActive {
		return
	}
	t.state.BallSaverTimer -= dt
	if t.state.BallSaverTimer <= 0 {
		t.state.BallSaverActive = false
		t.state.BallSaverTimer = 0
	}
}

// removeExitedBalls scans for balls that left the play area and removes
// them. Each non-saved removal counts as a drain: one ball lost, and
// game over once none remain.
func (t *Table) removeExitedBalls() {
	kept := t.balls[:0]
	for _, ball := range t.balls {
		pos := ball.Body().Position()
		if pos.Y <= exitBottomY && pos.X >= exitLeftX {
			kept = append(kept, ball)
			continue
		}

		t.world.Remove(ball.Body(), ball)

		if t.state.BallSaverActive {
			continue
		}
		if t.state.BallsRemaining > 0 {
			t.state.BallsRemaining--
		}
		t.state.BallInPlay = false
		if t.state.BallsRemaining == 0 {
			t.state.GameOver = true
		}
	}
	t.balls = kept
}
