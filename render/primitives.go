package render

import (
	"github.com/gdamore/tcell/v2"
)

// viewport maps playfield coordinates (600x800, y down) onto terminal
// cells. Rebuilt each frame from the current screen size; the top row is
// reserved for the HUD.
type viewport struct {
	cols, rows int
	top        int
	scaleX     float64
	scaleY     float64
}

func newViewport(cols, rows, fieldW, fieldH int) viewport {
	const hudRows = 2
	usable := rows - hudRows
	if usable < 1 {
		usable = 1
	}
	return viewport{
		cols:   cols,
		rows:   rows,
		top:    hudRows,
		scaleX: float64(cols) / float64(fieldW),
		scaleY: float64(usable) / float64(fieldH),
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(x * v.scaleX), v.top + int(y*v.scaleY)
}

func (r *Renderer) plot(cx, cy int, ch rune, style tcell.Style) {
	if cx < 0 || cy < r.view.top || cx >= r.view.cols || cy >= r.view.rows {
		return
	}
	r.screen.SetContent(cx, cy, ch, nil, style)
}

// drawLine rasterizes a playfield-space segment with Bresenham.
func (r *Renderer) drawLine(x1, y1, x2, y2 float64, ch rune, style tcell.Style) {
	cx1, cy1 := r.view.cell(x1, y1)
	cx2, cy2 := r.view.cell(x2, y2)

	dx := abs(cx2 - cx1)
	dy := -abs(cy2 - cy1)
	sx := 1
	if cx1 > cx2 {
		sx = -1
	}
	sy := 1
	if cy1 > cy2 {
		sy = -1
	}
	err := dx + dy

	for {
		r.plot(cx1, cy1, ch, style)
		if cx1 == cx2 && cy1 == cy2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			cx1 += sx
		}
		if e2 <= dx {
			err += dx
			cy1 += sy
		}
	}
}

// drawText writes a string starting at cell (cx, cy), ignoring HUD
// clipping so it can render on the reserved rows.
func (r *Renderer) drawText(cx, cy int, text string, style tcell.Style) {
	for i, ch := range text {
		x := cx + i
		if x < 0 || x >= r.view.cols || cy < 0 || cy >= r.view.rows {
			continue
		}
		r.screen.SetContent(x, cy, ch, nil, style)
	}
}

func (r *Renderer) drawTextCentered(cy int, text string, style tcell.Style) {
	r.drawText((r.view.cols-len(text))/2, cy, text, style)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
