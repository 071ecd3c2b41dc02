// Package input translates terminal key events into core session calls.
// It contains no gameplay logic; every rule it appears to enforce (name
// entry capture, game-over prompts) is just routing to the one session
// operation that is meaningful in that state.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jacob-juung/pinball/game"
)

// Machine routes key events to the session.
//
// Terminals report no key releases, so the launch control is a toggle:
// the first space press spawns/charges, the second releases the plunger.
type Machine struct {
	sess *game.Session
}

func NewMachine(sess *game.Session) *Machine {
	return &Machine{sess: sess}
}

// HandleKey processes one key event. Returns true when the player quit.
func (m *Machine) HandleKey(ev *tcell.EventKey) bool {
	st := m.sess.State()

	if st.AskingForName {
		m.handleNameEntry(ev)
		return false
	}

	if st.GameOver && !st.NameSubmitted {
		switch ev.Rune() {
		case 'y', 'Y':
			m.sess.OfferHighScore()
			return false
		case 'n', 'N':
			m.sess.DeclineHighScore()
			return false
		}
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return true
	case tcell.KeyLeft:
		m.sess.FlipLeft()
		return false
	case tcell.KeyRight:
		m.sess.FlipRight()
		return false
	}

	switch ev.Rune() {
	case 'z', 'Z':
		m.sess.FlipLeft()
	case 'x', 'X':
		m.sess.FlipRight()
	case 'd', 'D':
		m.sess.CycleDifficulty()
	case 'r', 'R':
		m.sess.Reset()
	case ' ':
		if st.PlungerCharging {
			m.sess.ReleaseLaunch()
		} else {
			m.sess.PressLaunch()
		}
	}
	return false
}

func (m *Machine) handleNameEntry(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		m.sess.SubmitName()
	case tcell.KeyEscape:
		m.sess.CancelNameEntry()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		m.sess.EraseNameRune()
	case tcell.KeyRune:
		m.sess.TypeNameRune(ev.Rune())
	}
}
