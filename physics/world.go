package physics

import (
	"github.com/jakecoffman/cp"
)

// Substeps is the number of equal sub-increments one frame delta is
// divided into. Substepping keeps fast balls from tunneling through thin
// segments and stabilizes the flipper spring/joint solving.
const Substeps = 5

// ContactFunc handles a begin-contact event between two shapes. The
// shapes arrive in the order their kinds were registered.
type ContactFunc func(a, b *cp.Shape)

// World owns the chipmunk space and every body and shape in it. All
// mutation of body state goes through the world's owner (the table); the
// only exception is the per-step canonical-pose re-pinning the table
// applies to its kinematic actuators.
type World struct {
	space *cp.Space
}

// NewWorld creates an empty space with the preset's gravity.
func NewWorld(gravityX, gravityY float64) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: gravityX, Y: gravityY})
	return &World{space: space}
}

// Space exposes the underlying chipmunk space for entity construction.
func (w *World) Space() *cp.Space {
	return w.space
}

// Gravity returns the world gravity vector.
func (w *World) Gravity() cp.Vector {
	return w.space.Gravity()
}

// Step advances the simulation by dt, split into Substeps equal
// sub-increments. Registered contact handlers fire during the substeps.
func (w *World) Step(dt float64) {
	sub := dt / Substeps
	for i := 0; i < Substeps; i++ {
		w.space.Step(sub)
	}
}

// OnContact registers fn for first-contact events between shapes of the
// two kinds. It fires once per discrete contact episode, not per substep,
// so a ball resting against a bumper does not retrigger every tick.
func (w *World) OnContact(a, b Kind, fn ContactFunc) {
	handler := w.space.NewCollisionHandler(cp.CollisionType(a), cp.CollisionType(b))
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		sa, sb := arb.Shapes()
		fn(sa, sb)
		return true
	}
}

// AddStaticSegment attaches a static line segment to the space.
func (w *World) AddStaticSegment(ax, ay, bx, by, radius float64) *cp.Shape {
	seg := cp.NewSegment(w.space.StaticBody, cp.Vector{X: ax, Y: ay}, cp.Vector{X: bx, Y: by}, radius)
	w.space.AddShape(seg)
	return seg
}

// AddBody registers a body and its shape.
func (w *World) AddBody(body *cp.Body, shape *cp.Shape) {
	w.space.AddBody(body)
	w.space.AddShape(shape)
}

// Remove detaches a body and its shape from the space. Must not be
// called from inside a contact handler; removal happens in the table's
// per-frame update, after stepping.
func (w *World) Remove(body *cp.Body, shape *cp.Shape) {
	w.space.RemoveShape(shape)
	w.space.RemoveBody(body)
}

// AddConstraint registers a joint or spring.
func (w *World) AddConstraint(c *cp.Constraint) {
	w.space.AddConstraint(c)
}
