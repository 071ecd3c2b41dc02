package physics

// Kind labels a shape with its gameplay role. Kinds double as the
// collision types the dispatcher keys begin-contact handlers on.
type Kind int

const (
	KindBall Kind = iota + 1
	KindBumper
	KindTarget
	KindDrain
	KindFlipper
	KindSpinner
	KindWall
)

// Shape filter groups. Walls and flippers share a group so a flipper
// never collides with the wall segments it overlaps near its pivot.
const (
	GroupStructure uint = 1
)

func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindBumper:
		return "bumper"
	case KindTarget:
		return "target"
	case KindDrain:
		return "drain"
	case KindFlipper:
		return "flipper"
	case KindSpinner:
		return "spinner"
	case KindWall:
		return "wall"
	}
	return "unknown"
}
