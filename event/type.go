package event

// Type identifies a discrete game event emitted by the core for the
// audio and render collaborators.
type Type uint8

const (
	// TypeBumper fires once per ball-bumper contact.
	// Consumer: audio (bumper ping), render (hit flash + particles)
	TypeBumper Type = iota

	// TypeFlipper fires once per ball-flipper contact.
	TypeFlipper

	// TypeWall fires once per ball-wall contact. Advisory only.
	TypeWall

	// TypeTarget fires once per ball-target contact.
	TypeTarget

	// TypeSpinner fires once per ball-spinner contact. Advisory only.
	TypeSpinner

	// TypeLaunch fires when the plunger launches a ball.
	TypeLaunch

	// TypeDrain fires when a ball drains without the saver.
	TypeDrain

	// TypeBallSaved fires when the saver returns a drained ball to play.
	TypeBallSaved
)

// Event is one outbound notification. X, Y is the impact or action
// position in playfield coordinates; Entity is the stable handle of the
// table entity involved, or 0 when none applies.
type Event struct {
	Type   Type
	X, Y   float64
	Entity int
}
