package table

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/jacob-juung/pinball/difficulty"
	"github.com/jacob-juung/pinball/event"
)

// advance drives the table's game clock without stepping physics.
func advance(tbl *Table, seconds float64) {
	steps := int(seconds / frameDt)
	for i := 0; i < steps; i++ {
		tbl.Update(frameDt)
	}
}

func TestBumperComboScoring(t *testing.T) {
	tbl, state, _ := newTestTable(t)
	ball := tbl.CreateBallAt(cp.Vector{X: 120, Y: 180})
	bumper := tbl.bumpers[0]

	// Hit at t=0: fresh combo.
	tbl.onBumperHit(ball, bumper.shape)
	if state.Score != 100 {
		t.Errorf("first hit score = %d, want 100", state.Score)
	}
	if state.ComboMultiplier != 1 {
		t.Errorf("first hit combo = %d, want 1", state.ComboMultiplier)
	}

	// Second hit at t=1.5, inside the window: combo climbs to 2.
	advance(tbl, 1.5)
	tbl.onBumperHit(ball, bumper.shape)
	if state.Score != 300 {
		t.Errorf("score after second hit = %d, want 300", state.Score)
	}
	if state.ComboMultiplier != 2 {
		t.Errorf("combo after second hit = %d, want 2", state.ComboMultiplier)
	}

	// Third hit at t=4.0, gap over 2s: combo resets.
	advance(tbl, 2.5)
	tbl.onBumperHit(ball, bumper.shape)
	if state.Score != 400 {
		t.Errorf("score after third hit = %d, want 400", state.Score)
	}
	if state.ComboMultiplier != 1 {
		t.Errorf("combo after third hit = %d, want 1", state.ComboMultiplier)
	}
}

func TestComboCapsAtFive(t *testing.T) {
	tbl, state, _ := newTestTable(t)
	ball := tbl.CreateBallAt(cp.Vector{X: 120, Y: 180})
	bumper := tbl.bumpers[0]

	for i := 0; i < 10; i++ {
		advance(tbl, 0.5)
		tbl.onBumperHit(ball, bumper.shape)
		if state.ComboMultiplier < 1 || state.ComboMultiplier > 5 {
			t.Fatalf("combo multiplier %d out of [1,5]", state.ComboMultiplier)
		}
	}
	if state.ComboMultiplier != 5 {
		t.Errorf("combo = %d after rapid hits, want cap 5", state.ComboMultiplier)
	}
}

func TestBumperImpulsePushesBallAway(t *testing.T) {
	tbl, _, _ := newTestTable(t)
	bumper := tbl.bumpers[0]
	bpos := bumper.body.Position()

	// Ball just right of the bumper center, at rest.
	ball := tbl.CreateBallAt(cp.Vector{X: bpos.X + bumperRadius, Y: bpos.Y})
	ball.Body().SetVelocity(0, 0)

	tbl.onBumperHit(ball, bumper.shape)

	if vx := ball.Body().Velocity().X; vx <= 0 {
		t.Errorf("impulse velocity x = %v, want positive (away from bumper)", vx)
	}
}

func TestTargetScoringUsesCombo(t *testing.T) {
	tbl, state, _ := newTestTable(t)
	ball := tbl.CreateBallAt(cp.Vector{X: 120, Y: 380})
	state.ComboMultiplier = 2

	tbl.onTargetHit(ball, tbl.targets[0].shape)

	if state.Score != 1000 {
		t.Errorf("target score with combo 2 = %d, want 1000", state.Score)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	tbl, state, _ := newTestTable(t)
	ball := tbl.CreateBallAt(cp.Vector{X: 120, Y: 180})

	last := 0
	for i := 0; i < 20; i++ {
		advance(tbl, 0.9)
		tbl.onBumperHit(ball, tbl.bumpers[i%len(tbl.bumpers)].shape)
		if state.Score < last {
			t.Fatalf("score decreased from %d to %d", last, state.Score)
		}
		last = state.Score
	}
}

func TestFlipperBoostRequiresMovingFlipper(t *testing.T) {
	tbl, _, _ := newTestTable(t)
	ball := tbl.CreateBallAt(cp.Vector{X: 150, Y: 680})
	flipper := tbl.left

	// Resting flipper: no boost.
	ball.Body().SetVelocity(100, -50)
	flipper.body.SetAngularVelocity(1)
	tbl.onFlipperHit(ball, flipper.shape)
	if v := ball.Body().Velocity(); v.X != 100 || v.Y != -50 {
		t.Errorf("slow flipper changed velocity to (%v, %v)", v.X, v.Y)
	}

	// Fast flipper: horizontal scale and upward kick.
	flipper.body.SetAngularVelocity(10)
	tbl.onFlipperHit(ball, flipper.shape)
	v := ball.Body().Velocity()
	wantBoost := tbl.preset.FlipperImpulse * 0.015
	if math.Abs(v.X-130) > 1e-9 {
		t.Errorf("boosted vx = %v, want 130", v.X)
	}
	if math.Abs(v.Y-(-50-wantBoost)) > 1e-9 {
		t.Errorf("boosted vy = %v, want %v", v.Y, -50-wantBoost)
	}
}

func TestDrainWithSaverReturnsBallToLaunch(t *testing.T) {
	tbl, state, queue := newTestTable(t)
	ball := tbl.CreateBallAt(cp.Vector{X: 300, Y: 770})
	ball.Body().SetVelocity(50, 400)

	tbl.onDrain(ball, tbl.drain)

	pos := ball.Body().Position()
	if pos.X != spawnX || pos.Y != spawnY {
		t.Errorf("saved ball at (%v, %v), want launch point (%v, %v)", pos.X, pos.Y, spawnX, spawnY)
	}
	if v := ball.Body().Velocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("saved ball velocity = (%v, %v), want zero", v.X, v.Y)
	}
	if state.BallsRemaining != difficulty.Normal.StartingBalls {
		t.Errorf("save counted as drain: balls = %d", state.BallsRemaining)
	}

	found := false
	for _, ev := range queue.Consume() {
		if ev.Type == event.TypeBallSaved {
			found = true
		}
	}
	if !found {
		t.Error("no ball-saved event emitted")
	}
}

func TestDrainWithoutSaverParksBallOffTable(t *testing.T) {
	tbl, state, _ := newTestTable(t)
	ball := tbl.CreateBallAt(cp.Vector{X: 300, Y: 770})
	state.BallSaverActive = false

	tbl.onDrain(ball, tbl.drain)

	pos := ball.Body().Position()
	if pos.X >= exitLeftX {
		t.Errorf("drained ball at x=%v, expected off-table", pos.X)
	}

	// The next update removes it and charges the drain.
	start := state.BallsRemaining
	tbl.Update(frameDt)
	if tbl.BallCount() != 0 {
		t.Error("drained ball not removed on update")
	}
	if state.BallsRemaining != start-1 {
		t.Errorf("balls remaining = %d, want %d", state.BallsRemaining, start-1)
	}
}

func TestContactEventsCarryEntityHandles(t *testing.T) {
	tbl, _, queue := newTestTable(t)
	ball := tbl.CreateBallAt(cp.Vector{X: 120, Y: 180})

	tbl.onBumperHit(ball, tbl.bumpers[2].shape)
	tbl.onSpinnerHit(ball, tbl.spinners[1].shape)
	tbl.onWallHit(ball, tbl.walls[0])

	events := queue.Consume()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0].Type != event.TypeBumper || events[0].Entity != tbl.bumpers[2].id {
		t.Errorf("bumper event = %+v", events[0])
	}
	if events[1].Type != event.TypeSpinner || events[1].Entity != tbl.spinners[1].id {
		t.Errorf("spinner event = %+v", events[1])
	}
	if events[2].Type != event.TypeWall || events[2].Entity == 0 {
		t.Errorf("wall event = %+v", events[2])
	}
}
