package game

import (
	"testing"

	"github.com/jacob-juung/pinball/difficulty"
	"github.com/jacob-juung/pinball/physics"
)

// fakeField records the calls the session makes on its playfield.
type fakeField struct {
	state *State

	flipLefts  int
	flipRights int
	created    int
	launched   []float64
	updated    int
	cleared    int
	inLane     bool
}

func (f *fakeField) FlipLeft()  { f.flipLefts++ }
func (f *fakeField) FlipRight() { f.flipRights++ }
func (f *fakeField) CreateBall() {
	f.created++
	f.state.BallInPlay = true
	f.state.BallSaverActive = true
	f.inLane = true
}
func (f *fakeField) LaunchBall(power float64) { f.launched = append(f.launched, power) }
func (f *fakeField) Update(dt float64)        { f.updated++ }
func (f *fakeField) BallInLane() bool         { return f.inLane }
func (f *fakeField) ClearBalls()              { f.cleared++ }
func (f *fakeField) Snapshot() Snapshot       { return Snapshot{} }

type fakeStore struct {
	qualifies bool
	added     []string
}

func (f *fakeStore) Qualifies(int) bool { return f.qualifies }
func (f *fakeStore) Add(name string, _ int) {
	f.added = append(f.added, name)
}

func newTestSession(store *fakeStore) (*Session, *fakeField) {
	// One field instance survives rebuilds; only its state pointer is
	// refreshed, so tests keep observing the live playfield.
	field := &fakeField{}
	sess := NewSession(difficulty.NewManager(), store, func(_ *physics.World, state *State, _ *difficulty.Preset) Playfield {
		field.state = state
		return field
	})
	return sess, field
}

func TestPressLaunchSpawnsWhenIdle(t *testing.T) {
	sess, field := newTestSession(&fakeStore{})

	sess.PressLaunch()

	if field.created != 1 {
		t.Errorf("created = %d, want 1", field.created)
	}
	if !sess.State().PlungerCharging {
		t.Error("charging not started on first press")
	}
}

func TestPressLaunchChargesOnlyWithBallInLane(t *testing.T) {
	sess, field := newTestSession(&fakeStore{})
	sess.State().BallInPlay = true
	field.inLane = false

	sess.PressLaunch()
	if sess.State().PlungerCharging {
		t.Error("charging started with no ball in the lane")
	}
	if field.created != 0 {
		t.Error("spawned a ball while one is in play")
	}

	field.inLane = true
	sess.PressLaunch()
	if !sess.State().PlungerCharging {
		t.Error("charging not started with ball in lane")
	}
}

func TestReleaseLaunchFiresAndResetsCharge(t *testing.T) {
	sess, field := newTestSession(&fakeStore{})
	sess.PressLaunch()
	sess.State().PlungerPower = 1200
	sess.State().PlungerDirection = -1

	sess.ReleaseLaunch()

	if len(field.launched) != 1 || field.launched[0] != 1200 {
		t.Errorf("launched = %v, want [1200]", field.launched)
	}
	st := sess.State()
	if st.PlungerPower != 0 || st.PlungerCharging || st.PlungerDirection != 1 {
		t.Errorf("charge state not reset: power=%v charging=%v dir=%d", st.PlungerPower, st.PlungerCharging, st.PlungerDirection)
	}

	// Release without charge is a no-op.
	sess.ReleaseLaunch()
	if len(field.launched) != 1 {
		t.Error("release without charging launched")
	}
}

func TestPlungerChargeOscillates(t *testing.T) {
	sess, _ := newTestSession(&fakeStore{})
	sess.PressLaunch()
	p := sess.Preset()
	st := sess.State()

	// Charge climbs to max, clamps and flips direction.
	for i := 0; i < 1000 && st.PlungerDirection == 1; i++ {
		sess.Update(1.0 / 60)
		if st.PlungerPower < 0 || st.PlungerPower > p.PlungerMaxPower {
			t.Fatalf("plunger power %v outside [0, %v]", st.PlungerPower, p.PlungerMaxPower)
		}
	}
	if st.PlungerDirection != -1 {
		t.Fatal("direction never flipped at max power")
	}

	// And bounces back to zero, flipping again.
	for i := 0; i < 1000 && st.PlungerDirection == -1; i++ {
		sess.Update(1.0 / 60)
	}
	if st.PlungerDirection != 1 {
		t.Fatal("direction never flipped back at zero power")
	}
	if st.PlungerPower != 0 {
		t.Errorf("power = %v at bottom of bounce, want 0", st.PlungerPower)
	}
}

func TestUpdateFrozenAfterGameOver(t *testing.T) {
	sess, field := newTestSession(&fakeStore{})
	sess.State().GameOver = true

	sess.Update(1.0 / 60)

	if field.updated != 0 {
		t.Error("playfield updated after game over")
	}
}

func TestCycleDifficultyRebuilds(t *testing.T) {
	sess, _ := newTestSession(&fakeStore{})
	before := sess.Preset().Name

	sess.CycleDifficulty()

	if sess.Preset().Name == before {
		t.Error("preset did not change")
	}
	if sess.State().Score != 0 || sess.State().BallsRemaining != sess.Preset().StartingBalls {
		t.Error("state not rebuilt from new preset")
	}
}

func TestCycleDifficultyBlockedDuringPlay(t *testing.T) {
	sess, _ := newTestSession(&fakeStore{})
	sess.State().BallInPlay = true
	before := sess.Preset().Name

	sess.CycleDifficulty()

	if sess.Preset().Name != before {
		t.Error("difficulty changed with ball in play")
	}
}

func TestResetKeepsDifficulty(t *testing.T) {
	sess, field := newTestSession(&fakeStore{})
	sess.CycleDifficulty() // now HARD
	name := sess.Preset().Name
	sess.State().Score = 500
	sess.State().GameOver = true

	sess.Reset()

	if sess.Preset().Name != name {
		t.Error("reset changed difficulty")
	}
	if sess.State().Score != 0 || sess.State().GameOver {
		t.Error("reset did not reinitialize state")
	}
	if field.cleared == 0 {
		t.Error("reset did not clear balls")
	}
}

func TestHighScoreNameEntryFlow(t *testing.T) {
	store := &fakeStore{qualifies: true}
	sess, _ := newTestSession(store)
	sess.State().GameOver = true
	sess.State().Score = 9000

	sess.OfferHighScore()
	if !sess.State().AskingForName {
		t.Fatal("name entry not opened for qualifying score")
	}

	for _, r := range "go dev!" {
		sess.TypeNameRune(r)
	}
	if sess.State().PlayerName != "GO DEV" {
		t.Errorf("player name = %q, want %q (uppercase, symbol dropped)", sess.State().PlayerName, "GO DEV")
	}

	sess.EraseNameRune()
	if sess.State().PlayerName != "GO DE" {
		t.Errorf("player name after erase = %q", sess.State().PlayerName)
	}

	sess.SubmitName()
	if len(store.added) != 1 || store.added[0] != "GO DE" {
		t.Errorf("store received %v", store.added)
	}
	if sess.State().AskingForName || !sess.State().NameSubmitted {
		t.Error("name entry state not closed after submit")
	}
}

func TestNameEntryLengthCap(t *testing.T) {
	sess, _ := newTestSession(&fakeStore{qualifies: true})
	sess.State().GameOver = true
	sess.OfferHighScore()

	for _, r := range "ABCDEFGHIJKLMNOP" {
		sess.TypeNameRune(r)
	}
	if got := len(sess.State().PlayerName); got != maxNameLen {
		t.Errorf("name length = %d, want %d", got, maxNameLen)
	}
}

func TestEmptyNameNotSubmitted(t *testing.T) {
	store := &fakeStore{qualifies: true}
	sess, _ := newTestSession(store)
	sess.State().GameOver = true
	sess.OfferHighScore()

	sess.SubmitName()

	if len(store.added) != 0 {
		t.Error("empty name was persisted")
	}
	if !sess.State().AskingForName {
		t.Error("prompt closed on empty submit")
	}
}

func TestNonQualifyingScoreSkipsNameEntry(t *testing.T) {
	sess, _ := newTestSession(&fakeStore{qualifies: false})
	sess.State().GameOver = true

	sess.OfferHighScore()

	if sess.State().AskingForName {
		t.Error("name entry opened for non-qualifying score")
	}
}
