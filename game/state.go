package game

import (
	"github.com/jacob-juung/pinball/difficulty"
)

// Combo scoring constants.
const (
	// ComboWindow is the maximum gap between bumper hits that keeps a
	// combo alive.
	ComboWindow = 2.0
	// ComboMax caps the combo multiplier.
	ComboMax = 5
)

// State is the single owner of all score and progress fields for one
// game. It is created fresh from a preset at game start or reset; no
// other component holds a competing copy. The frame loop owns it
// exclusively, so fields are plain values, not atomics.
type State struct {
	// Scoring
	Score           int
	ComboMultiplier int     // 1..ComboMax
	LastHitTime     float64 // game-clock time of most recent bumper hit

	// Ball lifecycle
	BallsRemaining  int
	BallInPlay      bool
	GameOver        bool
	BallSaverActive bool
	BallSaverTimer  float64 // countdown seconds

	// Plunger charge sub-state
	PlungerPower     float64
	PlungerCharging  bool
	PlungerDirection int // +1 charging up, -1 bouncing down

	// High-score name entry
	AskingForName bool
	PlayerName    string
	NameSubmitted bool
}

// NewState initializes a fresh game from the preset.
func NewState(p *difficulty.Preset) *State {
	s := &State{}
	s.Reset(p)
	return s
}

// Reset reinitializes every field from the preset. Score drops to zero
// here and nowhere else.
func (s *State) Reset(p *difficulty.Preset) {
	*s = State{
		ComboMultiplier:  1,
		BallsRemaining:   p.StartingBalls,
		PlungerDirection: 1,
		// A hit at game clock zero must start a fresh combo, so the
		// previous-hit time sits one full window in the past.
		LastHitTime: -ComboWindow,
	}
}
