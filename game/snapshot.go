package game

// Snapshot types: read-only body poses handed to the render collaborator
// each frame. Entity IDs are the stable handles issued by the table at
// construction; collaborators key per-entity transient state (hit
// flashes, trails) on them.

type Vec struct {
	X, Y float64
}

type SegmentSnap struct {
	ID   int
	A, B Vec
	R    float64
}

type CircleSnap struct {
	ID  int
	Pos Vec
	R   float64
}

type SpinnerSnap struct {
	ID      int
	Pos     Vec
	Angle   float64
	HalfLen float64
}

type FlipperSnap struct {
	ID    int
	Pos   Vec
	Angle float64
	// Blade outline in body coordinates; render rotates by Angle.
	Verts []Vec
}

type RectSnap struct {
	Pos  Vec
	W, H float64
}

// Snapshot is one frame's view of the playfield.
type Snapshot struct {
	Difficulty      string
	PlungerMaxPower float64

	Walls    []SegmentSnap
	Targets  []SegmentSnap
	Bumpers  []CircleSnap
	Spinners []SpinnerSnap
	Flippers []FlipperSnap
	Balls    []CircleSnap
	Plunger  RectSnap
}
