package game

import (
	"unicode"

	"github.com/jacob-juung/pinball/difficulty"
	"github.com/jacob-juung/pinball/physics"
)

// maxNameLen bounds high-score names.
const maxNameLen = 10

// Playfield is the table as the session drives it. The concrete
// implementation lives in the table package; the interface keeps the
// session testable without a physics world.
type Playfield interface {
	FlipLeft()
	FlipRight()
	CreateBall()
	LaunchBall(power float64)
	Update(dt float64)
	BallInLane() bool
	ClearBalls()
	Snapshot() Snapshot
}

// ScoreStore is the high-score collaborator. Failures inside it must
// not surface; gameplay never depends on persistence succeeding.
type ScoreStore interface {
	Qualifies(score int) bool
	Add(name string, score int)
}

// Builder constructs a playfield in a freshly built world. Injected so
// the session can rebuild world and table wholesale on difficulty
// change without importing the table package.
type Builder func(world *physics.World, state *State, preset *difficulty.Preset) Playfield

// Session owns one game: the difficulty manager, the physics world, the
// playfield and the game state. A single frame loop drives it; nothing
// here is safe for concurrent use.
type Session struct {
	manager *difficulty.Manager
	scores  ScoreStore
	build   Builder

	world *physics.World
	field Playfield
	state *State
}

func NewSession(manager *difficulty.Manager, scores ScoreStore, build Builder) *Session {
	s := &Session{
		manager: manager,
		scores:  scores,
		build:   build,
	}
	s.rebuild()
	return s
}

// rebuild discards the world and table and constructs both from the
// current preset. Physics bodies cannot be re-tuned in place, so a
// difficulty change is a full ownership transfer: in-flight balls are
// removed, then the old world is dropped entirely.
func (s *Session) rebuild() {
	if s.field != nil {
		s.field.ClearBalls()
	}
	p := s.manager.Current()
	s.state = NewState(p)
	s.world = physics.NewWorld(p.GravityX, p.GravityY)
	s.field = s.build(s.world, s.state, p)
}

func (s *Session) State() *State { return s.state }

func (s *Session) Preset() *difficulty.Preset { return s.manager.Current() }

func (s *Session) Snapshot() Snapshot { return s.field.Snapshot() }

// Update advances one frame: plunger charge, then the substepped world
// step with its collision callbacks, then lifecycle bookkeeping. The
// frame's resulting state is only rendered after all of it completes.
// Frozen once the game is over, until an explicit Reset.
func (s *Session) Update(dt float64) {
	if s.state.GameOver {
		return
	}

	s.tickPlungerCharge(dt)
	s.world.Step(dt)
	s.field.Update(dt)
}

// tickPlungerCharge advances the oscillating charge: power climbs to the
// preset maximum, bounces back to zero, and repeats while the charge
// control is held. Launch timing is a skill element.
func (s *Session) tickPlungerCharge(dt float64) {
	if !s.state.PlungerCharging {
		return
	}
	p := s.manager.Current()
	st := s.state

	st.PlungerPower += p.PlungerChargeRate * dt * float64(st.PlungerDirection)
	if st.PlungerPower >= p.PlungerMaxPower {
		st.PlungerPower = p.PlungerMaxPower
		st.PlungerDirection = -1
	} else if st.PlungerPower <= 0 {
		st.PlungerPower = 0
		st.PlungerDirection = 1
	}
}

func (s *Session) FlipLeft() {
	s.field.FlipLeft()
}

func (s *Session) FlipRight() {
	s.field.FlipRight()
}

// PressLaunch handles the charge control going down: the first press
// while idle spawns a ball, and charging begins whenever a ball sits in
// the plunger lane.
func (s *Session) PressLaunch() {
	if s.state.GameOver {
		return
	}
	if !s.state.BallInPlay {
		s.field.CreateBall()
		s.state.PlungerCharging = true
		return
	}
	if s.field.BallInLane() {
		s.state.PlungerCharging = true
	}
}

// ReleaseLaunch fires the charged launch and resets the charge state.
func (s *Session) ReleaseLaunch() {
	if !s.state.PlungerCharging {
		return
	}
	s.field.LaunchBall(s.state.PlungerPower)
	s.state.PlungerPower = 0
	s.state.PlungerCharging = false
	s.state.PlungerDirection = 1
}

// CycleDifficulty switches to the next preset. Permitted only between
// balls; with a ball in play it is a no-op.
func (s *Session) CycleDifficulty() {
	if s.state.BallInPlay {
		return
	}
	s.manager.Cycle()
	s.rebuild()
}

// Reset starts a new game on the current difficulty: balls removed,
// state reinitialized. The world and table survive since the preset is
// unchanged.
func (s *Session) Reset() {
	s.field.ClearBalls()
	s.state.Reset(s.manager.Current())
}

// Qualifies reports whether the final score makes the board.
func (s *Session) Qualifies() bool {
	return s.scores.Qualifies(s.state.Score)
}

// OfferHighScore begins name entry if the score qualifies. Valid only
// at game over before a name was submitted or declined.
func (s *Session) OfferHighScore() {
	if !s.state.GameOver || s.state.NameSubmitted {
		return
	}
	if s.scores.Qualifies(s.state.Score) {
		s.state.AskingForName = true
	}
}

// DeclineHighScore skips the board for this game.
func (s *Session) DeclineHighScore() {
	if !s.state.GameOver {
		return
	}
	s.state.NameSubmitted = true
}

// TypeNameRune appends one character of the player name. Only letters,
// digits, space, underscore and dash are accepted, uppercased, at most
// maxNameLen characters.
func (s *Session) TypeNameRune(r rune) {
	if !s.state.AskingForName || len(s.state.PlayerName) >= maxNameLen {
		return
	}
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' && r != '_' && r != '-' {
		return
	}
	s.state.PlayerName += string(unicode.ToUpper(r))
}

// EraseNameRune removes the last character of the player name.
func (s *Session) EraseNameRune() {
	if !s.state.AskingForName || s.state.PlayerName == "" {
		return
	}
	s.state.PlayerName = s.state.PlayerName[:len(s.state.PlayerName)-1]
}

// SubmitName persists the entered name and score. Empty names are
// ignored; the prompt stays up.
func (s *Session) SubmitName() {
	if !s.state.AskingForName || s.state.PlayerName == "" {
		return
	}
	s.scores.Add(s.state.PlayerName, s.state.Score)
	s.state.AskingForName = false
	s.state.NameSubmitted = true
}

// CancelNameEntry abandons name entry without submitting.
func (s *Session) CancelNameEntry() {
	s.state.AskingForName = false
}
