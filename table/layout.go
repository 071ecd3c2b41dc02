package table

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/jacob-juung/pinball/game"
	"github.com/jacob-juung/pinball/physics"
)

func structureFilter() cp.ShapeFilter {
	return cp.NewShapeFilter(physics.GroupStructure, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
}

func (t *Table) createWalls() {
	segs := [][5]float64{
		// Outer left wall and upper-left slope
		{50, 750, 30, 200, 3},
		{30, 200, 80, 50, 3},

		// Top wall
		{80, 50, 520, 50, 3},

		// Plunger lane walls
		{510, 100, 510, 750, 3},
		{560, 750, 560, 100, 3},

		// Upper-right curve into the lane
		{560, 100, 555, 80, 3},
		{555, 80, 545, 60, 3},
		{545, 60, 520, 50, 3},

		// Left slingshot
		{50, 750, 100, 650, 3},
		{100, 650, 150, 620, 3},

		// Right slingshot
		{450, 750, 400, 650, 3},
		{400, 650, 350, 620, 3},

		{60, 540, 160, 610, 3},

		// Inner lane dividers
		{150, 150, 150, 250, 2},
		{350, 150, 350, 250, 2},

		// Ramp guides
		{200, 300, 180, 400, 2},
		{300, 300, 320, 400, 2},
	}

	for _, s := range segs {
		wall := t.world.AddStaticSegment(s[0], s[1], s[2], s[3], s[4])
		wall.SetElasticity(0.6)
		wall.SetFriction(0.5)
		wall.SetCollisionType(cp.CollisionType(physics.KindWall))
		wall.SetFilter(structureFilter())
		wall.UserData = t.allocID()
		t.walls = append(t.walls, wall)

		t.wallSnaps = append(t.wallSnaps, game.SegmentSnap{
			ID: shapeID(wall),
			A:  game.Vec{X: s[0], Y: s[1]},
			B:  game.Vec{X: s[2], Y: s[3]},
			R:  s[4],
		})
	}
}

// buildFlipper assembles one flipper: a dynamic poly pinned to a
// stationary kinematic anchor via a zero-length pin joint, pulled toward
// its rest angle by a damped rotary spring and clamped by a rotary limit.
func (t *Table) buildFlipper(verts []cp.Vector, pivot cp.Vector, mass, restAngle, stiffness, damping, limitMin, limitMax float64) flipperEntity {
	moment := cp.MomentForPoly(mass, len(verts), verts, cp.Vector{}, 0)
	body := cp.NewBody(mass, moment)
	body.SetPosition(pivot)

	shape := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
	shape.SetElasticity(t.preset.FlipperElasticity)
	shape.SetCollisionType(cp.CollisionType(physics.KindFlipper))
	shape.SetFilter(structureFilter())
	shape.UserData = t.allocID()
	t.world.AddBody(body, shape)

	anchor := cp.NewKinematicBody()
	anchor.SetPosition(pivot)
	t.world.Space().AddBody(anchor)

	t.world.AddConstraint(cp.NewPinJoint(body, anchor, cp.Vector{}, cp.Vector{}))
	t.world.AddConstraint(cp.NewDampedRotarySpring(body, anchor, restAngle, stiffness, damping))
	t.world.AddConstraint(cp.NewRotaryLimitJoint(body, anchor, limitMin, limitMax))

	return flipperEntity{
		entity: entity{id: shapeID(shape), body: body, shape: shape},
		pivot:  pivot,
		verts:  verts,
	}
}

func (t *Table) createFlippers() {
	d := t.preset

	rightVerts := []cp.Vector{{X: 15, Y: -10}, {X: -80, Y: 0}, {X: 15, Y: 10}}
	t.right = t.buildFlipper(rightVerts, cp.Vector{X: 350, Y: 700}, flipperMass,
		d.FlipperRestAngle, d.FlipperSpringStiffness, d.FlipperSpringDamping, -0.1, 0.6)

	leftVerts := make([]cp.Vector, len(rightVerts))
	for i, v := range rightVerts {
		leftVerts[i] = cp.Vector{X: -v.X, Y: v.Y}
	}
	t.left = t.buildFlipper(leftVerts, cp.Vector{X: 150, Y: 700}, flipperMass,
		-d.FlipperRestAngle, d.FlipperSpringStiffness, d.FlipperSpringDamping, -0.6, 0.1)

	miniVerts := []cp.Vector{{X: 8, Y: -5}, {X: -40, Y: 0}, {X: 8, Y: 5}}
	t.mini = t.buildFlipper(miniVerts, cp.Vector{X: 450, Y: 620}, flipperMass*0.5,
		d.FlipperRestAngle, d.FlipperSpringStiffness*0.5, d.FlipperSpringDamping*0.5, -0.1, 0.6)
}

func (t *Table) createPlungerLane() {
	t.plungerBody = cp.NewKinematicBody()
	t.plungerBody.SetPosition(cp.Vector{X: plungerX, Y: plungerRestY})

	t.plungerShape = cp.NewBox(t.plungerBody, plungerW, plungerH, 0)
	t.plungerShape.SetElasticity(0.95)
	t.plungerShape.SetFriction(0.5)
	t.world.AddBody(t.plungerBody, t.plungerShape)
}

func (t *Table) createBumpers() {
	positions := []cp.Vector{
		{X: 120, Y: 140}, {X: 300, Y: 120}, {X: 480, Y: 140},
		{X: 180, Y: 300}, {X: 420, Y: 300},
		{X: 300, Y: 420},
		{X: 150, Y: 520}, {X: 380, Y: 540},
	}

	for _, pos := range positions {
		body := cp.NewKinematicBody()
		body.SetPosition(pos)
		shape := cp.NewCircle(body, bumperRadius, cp.Vector{})
		shape.SetElasticity(t.preset.BumperElasticity)
		shape.SetCollisionType(cp.CollisionType(physics.KindBumper))
		shape.UserData = t.allocID()
		t.world.AddBody(body, shape)
		t.bumpers = append(t.bumpers, entity{id: shapeID(shape), body: body, shape: shape})
	}
}

func (t *Table) createSpinners() {
	specs := []struct {
		pos    cp.Vector
		length float64
		angle  float64
		speed  float64
	}{
		{cp.Vector{X: 200, Y: 220}, 80, 0, 2.6},
		{cp.Vector{X: 400, Y: 220}, 80, math.Pi / 2, -3.2},
		{cp.Vector{X: 300, Y: 320}, 90, 0, 2.0},
	}

	for _, spec := range specs {
		body := cp.NewKinematicBody()
		body.SetPosition(spec.pos)
		body.SetAngle(spec.angle)
		body.SetAngularVelocity(spec.speed)

		half := spec.length / 2
		shape := cp.NewSegment(body, cp.Vector{X: -half}, cp.Vector{X: half}, 6)
		shape.SetElasticity(0.9)
		shape.SetFriction(0.6)
		shape.SetCollisionType(cp.CollisionType(physics.KindSpinner))
		shape.UserData = t.allocID()
		t.world.AddBody(body, shape)

		t.spinners = append(t.spinners, spinnerEntity{
			entity:  entity{id: shapeID(shape), body: body, shape: shape},
			anchor:  spec.pos,
			halfLen: half,
		})
	}
}

func (t *Table) createTargets() {
	segs := [][4]float64{
		{120, 350, 120, 400}, // left lane target
		{380, 350, 380, 400}, // right lane target
		{250, 120, 350, 120}, // top target
	}

	for _, s := range segs {
		shape := t.world.AddStaticSegment(s[0], s[1], s[2], s[3], 5)
		shape.SetElasticity(0.8)
		shape.SetCollisionType(cp.CollisionType(physics.KindTarget))
		shape.UserData = t.allocID()
		t.targets = append(t.targets, entity{id: shapeID(shape), shape: shape})

		t.targetSnaps = append(t.targetSnaps, game.SegmentSnap{
			ID: shapeID(shape),
			A:  game.Vec{X: s[0], Y: s[1]},
			B:  game.Vec{X: s[2], Y: s[3]},
			R:  5,
		})
	}
}

func (t *Table) createDrain() {
	drain := t.world.AddStaticSegment(50, 780, 500, 780, 5)
	drain.SetSensor(true)
	drain.SetCollisionType(cp.CollisionType(physics.KindDrain))
	t.drain = drain
}
