package table

import (
	"github.com/jacob-juung/pinball/game"
)

// Snapshot captures current body poses for the render collaborator.
// Static geometry is cached at construction; only dynamic poses are
// gathered per call.
func (t *Table) Snapshot() game.Snapshot {
	snap := game.Snapshot{
		Difficulty:      t.preset.Name,
		PlungerMaxPower: t.preset.PlungerMaxPower,
		Walls:           t.wallSnaps,
		Targets:         t.targetSnaps,
	}

	for _, b := range t.bumpers {
		pos := b.body.Position()
		snap.Bumpers = append(snap.Bumpers, game.CircleSnap{
			ID:  b.id,
			Pos: game.Vec{X: pos.X, Y: pos.Y},
			R:   bumperRadius,
		})
	}

	for _, sp := range t.spinners {
		pos := sp.body.Position()
		snap.Spinners = append(snap.Spinners, game.SpinnerSnap{
			ID:      sp.id,
			Pos:     game.Vec{X: pos.X, Y: pos.Y},
			Angle:   sp.body.Angle(),
			HalfLen: sp.halfLen,
		})
	}

	for _, f := range []flipperEntity{t.left, t.right, t.mini} {
		pos := f.body.Position()
		fs := game.FlipperSnap{
			ID:    f.id,
			Pos:   game.Vec{X: pos.X, Y: pos.Y},
			Angle: f.body.Angle(),
		}
		for _, v := range f.verts {
			fs.Verts = append(fs.Verts, game.Vec{X: v.X, Y: v.Y})
		}
		snap.Flippers = append(snap.Flippers, fs)
	}

	for _, ball := range t.balls {
		pos := ball.Body().Position()
		snap.Balls = append(snap.Balls, game.CircleSnap{
			Pos: game.Vec{X: pos.X, Y: pos.Y},
			R:   ballRadius,
		})
	}

	ppos := t.plungerBody.Position()
	snap.Plunger = game.RectSnap{
		Pos: game.Vec{X: ppos.X, Y: ppos.Y},
		W:   plungerW,
		H:   plungerH,
	}

	return snap
}
