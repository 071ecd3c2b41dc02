package render

import (
	"math"
	"math/rand"
	"time"

	"github.com/jacob-juung/pinball/event"
)

// Flash and particle lifetimes, seconds.
const (
	bumperFlashSec  = 0.2
	targetFlashSec  = 0.3
	flipperFlashSec = 0.15
)

type particle struct {
	x, y    float64 // playfield coordinates
	vx, vy  float64
	life    int
	maxLife int
	ch      rune
}

// HandleEvent records transient visual state for one game event:
// hit-flash timers keyed by the stable entity handle, plus a particle
// burst at the impact point. Called from the frame loop, not from
// physics callbacks.
func (r *Renderer) HandleEvent(ev event.Event) {
	now := time.Now()

	switch ev.Type {
	case event.TypeBumper:
		r.flashes[ev.Entity] = now
		r.spawnParticles(ev.X, ev.Y, 15)
	case event.TypeTarget:
		r.flashes[ev.Entity] = now
		r.spawnParticles(ev.X, ev.Y, 10)
	case event.TypeFlipper:
		r.flashes[ev.Entity] = now
		r.spawnParticles(ev.X, ev.Y, 12)
	case event.TypeBallSaved:
		r.spawnParticles(ev.X, ev.Y, 8)
	}
}

func (r *Renderer) flashedSince(id int, window float64) bool {
	t, ok := r.flashes[id]
	if !ok {
		return false
	}
	return time.Since(t).Seconds() < window
}

func (r *Renderer) spawnParticles(x, y float64, count int) {
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := rand.Float64()*30 + 12
		life := rand.Intn(20) + 20
		r.particles = append(r.particles, particle{
			x:       x,
			y:       y,
			vx:      math.Cos(angle) * speed,
			vy:      math.Sin(angle) * speed,
			life:    life,
			maxLife: life,
			ch:      '*',
		})
	}
}

// stepParticles advances and prunes particles once per drawn frame.
func (r *Renderer) stepParticles(dt float64) {
	alive := r.particles[:0]
	for _, p := range r.particles {
		p.life--
		if p.life <= 0 {
			continue
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
		p.vy += 60 * dt // light gravity pull on sparks
		if p.life < p.maxLife/3 {
			p.ch = '.'
		}
		alive = append(alive, p)
	}
	r.particles = alive
}

// pushTrail keeps a short position history per ball slot for the motion
// trail.
func (r *Renderer) pushTrail(slot int, x, y float64) {
	for len(r.trails) <= slot {
		r.trails = append(r.trails, nil)
	}
	r.trails[slot] = append(r.trails[slot], [2]float64{x, y})
	if len(r.trails[slot]) > trailLength {
		r.trails[slot] = r.trails[slot][1:]
	}
}
