// Package render draws the playfield to a terminal screen. It consumes
// read-only snapshots and events produced by the core and pushes nothing
// back; all gameplay state lives in the game package.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jacob-juung/pinball/game"
	"github.com/jacob-juung/pinball/highscore"
)

const trailLength = 8

// Neon palette.
var (
	styleWall     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(168, 85, 247))
	styleBall     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 50, 150))
	styleTrail    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(140, 30, 90))
	styleFlipper  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 255))
	styleBumper   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 100))
	styleTarget   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(59, 130, 246))
	styleSpinner  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 100, 50))
	stylePlunger  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 0))
	styleHit      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSaver    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 100)).Bold(true)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 50, 150)).Bold(true)
)

// Renderer draws snapshots and keeps per-entity transient visual state
// (hit flashes, ball trails, particles) keyed by entity handles.
type Renderer struct {
	screen tcell.Screen
	view   viewport

	flashes   map[int]time.Time
	particles []particle
	trails    [][][2]float64
	lastDraw  time.Time
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:   screen,
		flashes:  make(map[int]time.Time),
		lastDraw: time.Now(),
	}
}

// Draw renders one frame from the snapshot and state. scores is shown
// on the game-over overlay only.
func (r *Renderer) Draw(snap game.Snapshot, st *game.State, scores []highscore.Entry) {
	now := time.Now()
	dt := now.Sub(r.lastDraw).Seconds()
	r.lastDraw = now

	cols, rows := r.screen.Size()
	r.view = newViewport(cols, rows, 600, 800)

	r.screen.Clear()

	r.drawWalls(snap)
	r.drawTargets(snap)
	r.drawBumpers(snap)
	r.drawSpinners(snap)
	r.drawFlippers(snap)
	r.drawPlunger(snap, st)
	r.drawBalls(snap)

	r.stepParticles(dt)
	for _, p := range r.particles {
		cx, cy := r.view.cell(p.x, p.y)
		r.plot(cx, cy, p.ch, styleHit)
	}

	r.drawHUD(snap, st)

	if st.BallSaverActive {
		r.drawTextCentered(r.view.rows-1, fmt.Sprintf("BALL SAVER: %.1fs", st.BallSaverTimer), styleSaver)
	}

	if st.GameOver {
		r.drawGameOver(st, scores)
	}

	r.screen.Show()
}

func (r *Renderer) drawWalls(snap game.Snapshot) {
	for _, w := range snap.Walls {
		r.drawLine(w.A.X, w.A.Y, w.B.X, w.B.Y, '█', styleWall)
	}
}

func (r *Renderer) drawTargets(snap game.Snapshot) {
	for _, t := range snap.Targets {
		style := styleTarget
		if r.flashedSince(t.ID, targetFlashSec) {
			style = styleHit
		}
		r.drawLine(t.A.X, t.A.Y, t.B.X, t.B.Y, '▒', style)
	}
}

func (r *Renderer) drawBumpers(snap game.Snapshot) {
	for _, b := range snap.Bumpers {
		style := styleBumper
		core := 'O'
		if r.flashedSince(b.ID, bumperFlashSec) {
			style = styleHit
			core = '@'
		}
		// Sampled ring plus a core glyph.
		for i := 0; i < 12; i++ {
			a := float64(i) / 12 * 2 * math.Pi
			cx, cy := r.view.cell(b.Pos.X+math.Cos(a)*b.R, b.Pos.Y+math.Sin(a)*b.R)
			r.plot(cx, cy, 'o', style)
		}
		cx, cy := r.view.cell(b.Pos.X, b.Pos.Y)
		r.plot(cx, cy, core, style)
	}
}

func (r *Renderer) drawSpinners(snap game.Snapshot) {
	for _, sp := range snap.Spinners {
		cos, sin := math.Cos(sp.Angle), math.Sin(sp.Angle)
		x1 := sp.Pos.X - cos*sp.HalfLen
		y1 := sp.Pos.Y - sin*sp.HalfLen
		x2 := sp.Pos.X + cos*sp.HalfLen
		y2 := sp.Pos.Y + sin*sp.HalfLen
		r.drawLine(x1, y1, x2, y2, '─', styleSpinner)
		cx, cy := r.view.cell(sp.Pos.X, sp.Pos.Y)
		r.plot(cx, cy, '+', styleHit)
	}
}

func (r *Renderer) drawFlippers(snap game.Snapshot) {
	for _, f := range snap.Flippers {
		style := styleFlipper
		if r.flashedSince(f.ID, flipperFlashSec) {
			style = styleHit
		}
		cos, sin := math.Cos(f.Angle), math.Sin(f.Angle)
		n := len(f.Verts)
		for i := 0; i < n; i++ {
			a := f.Verts[i]
			b := f.Verts[(i+1)%n]
			ax := a.X*cos - a.Y*sin + f.Pos.X
			ay := a.X*sin + a.Y*cos + f.Pos.Y
			bx := b.X*cos - b.Y*sin + f.Pos.X
			by := b.X*sin + b.Y*cos + f.Pos.Y
			r.drawLine(ax, ay, bx, by, '▬', style)
		}
	}
}

func (r *Renderer) drawPlunger(snap game.Snapshot, st *game.State) {
	p := snap.Plunger
	r.drawLine(p.Pos.X-p.W/2, p.Pos.Y, p.Pos.X+p.W/2, p.Pos.Y, '▀', stylePlunger)

	// Charge bar along the right edge.
	if snap.PlungerMaxPower > 0 && st.PlungerPower > 0 {
		ratio := st.PlungerPower / snap.PlungerMaxPower
		barTop := 650.0
		barBottom := 750.0
		fill := barBottom - (barBottom-barTop)*ratio
		r.drawLine(585, fill, 585, barBottom, '|', stylePlunger)
	}
}

func (r *Renderer) drawBalls(snap game.Snapshot) {
	for i, b := range snap.Balls {
		r.pushTrail(i, b.Pos.X, b.Pos.Y)
		for _, pos := range r.trails[i] {
			cx, cy := r.view.cell(pos[0], pos[1])
			r.plot(cx, cy, '·', styleTrail)
		}
		cx, cy := r.view.cell(b.Pos.X, b.Pos.Y)
		r.plot(cx, cy, '●', styleBall)
	}
	// Drop trails for balls that no longer exist.
	if len(r.trails) > len(snap.Balls) {
		r.trails = r.trails[:len(snap.Balls)]
	}
}

func (r *Renderer) drawHUD(snap game.Snapshot, st *game.State) {
	r.drawText(1, 0, fmt.Sprintf("SCORE: %d", st.Score), styleText)
	right := fmt.Sprintf("BALLS: %d", st.BallsRemaining)
	r.drawText(r.view.cols-len(right)-1, 0, right, styleText)
	r.drawTextCentered(0, "["+snap.Difficulty+"]", stylePlunger)

	if st.ComboMultiplier > 1 {
		r.drawTextCentered(1, fmt.Sprintf("x%d COMBO!", st.ComboMultiplier), styleSaver)
	} else if !st.BallInPlay && !st.GameOver {
		r.drawTextCentered(1, "SPACE: launch  D: difficulty  R: reset", styleDim)
	}
}

func (r *Renderer) drawGameOver(st *game.State, scores []highscore.Entry) {
	mid := r.view.rows / 2
	base := mid - 8

	r.drawTextCentered(base, "GAME OVER", styleGameOver)
	r.drawTextCentered(base+2, fmt.Sprintf("YOUR SCORE: %d", st.Score), styleText)

	switch {
	case st.AskingForName:
		r.drawTextCentered(base+4, "NEW HIGH SCORE! Enter name:", styleSaver)
		cursor := " "
		if time.Now().UnixMilli()/500%2 == 0 {
			cursor = "_"
		}
		r.drawTextCentered(base+5, "["+st.PlayerName+cursor+"]", styleText)
		r.drawTextCentered(base+6, "ENTER to submit", styleDim)
	case !st.NameSubmitted:
		r.drawTextCentered(base+4, "Record your score? (Y/N)", styleSaver)
	}

	r.drawTextCentered(base+8, "=== HIGH SCORES ===", stylePlunger)
	if len(scores) == 0 {
		r.drawTextCentered(base+9, "No records yet!", styleDim)
	}
	for i, entry := range scores {
		if i >= 5 {
			break
		}
		style := styleText
		if i == 0 {
			style = styleGameOver
		}
		r.drawTextCentered(base+9+i, fmt.Sprintf("%d. %-10s %d", i+1, entry.Name, entry.Score), style)
	}

	r.drawTextCentered(r.view.rows-2, "Press R to restart", styleDim)
}
