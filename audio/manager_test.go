package audio

import (
	"testing"

	"github.com/jacob-juung/pinball/event"
)

// No test here calls Initialize: opening a real speaker needs audio
// hardware that CI does not have. The contract under test is that an
// uninitialized Manager degrades to silent no-ops.

func TestHandleWithoutInitializeIsNoOp(t *testing.T) {
	m := NewManager()
	// Must not panic or touch the speaker.
	m.Handle(event.Event{Type: event.TypeBumper})
	m.Handle(event.Event{Type: event.TypeLaunch})
}

func TestCleanupWithoutInitializeIsNoOp(t *testing.T) {
	m := NewManager()
	m.Cleanup()
	m.Cleanup()
}

func TestHandleIgnoresVoicelessEvents(t *testing.T) {
	m := NewManager()
	// Drain and ball-saved have no effect voice even when initialized;
	// uninitialized they must still be safe.
	m.Handle(event.Event{Type: event.TypeDrain})
	m.Handle(event.Event{Type: event.TypeBallSaved})
}
