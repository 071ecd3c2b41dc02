// Package audio plays short synthesized effects for game events. The
// speaker may be unavailable (headless terminals, CI); every operation
// on an uninitialized Manager is a silent no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/jacob-juung/pinball/event"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// bufferStreamer streams a mono floatBuffer to both channels once.
type bufferStreamer struct {
	samples floatBuffer
	pos     int
}

func (b *bufferStreamer) Stream(out [][2]float64) (int, bool) {
	if b.pos >= len(b.samples) {
		return 0, false
	}
	n := 0
	for i := range out {
		if b.pos >= len(b.samples) {
			break
		}
		v := b.samples[b.pos]
		out[i][0] = v
		out[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }

// Manager owns the speaker and one pre-synthesized buffer per effect.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	effects     map[event.Type]floatBuffer
	initialized bool
}

func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker, synthesizes the effect set and starts
// the mixer. Safe to call twice; the second call is a no-op.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	// Effect voices: frequency, duration, gain, attack, release. Tuned
	// to read as arcade hardware, not physical modeling.
	m.effects = map[event.Type]floatBuffer{
		event.TypeBumper:  synthesize(waveSquare, 880, 0.08, 0.3, 0.01, 0.07),
		event.TypeFlipper: synthesize(waveSaw, 220, 0.1, 0.4, 0.005, 0.095),
		event.TypeWall:    synthesize(waveSine, 440, 0.05, 0.2, 0.005, 0.045),
		event.TypeTarget:  synthesize(waveSine, 1200, 0.15, 0.3, 0.01, 0.14),
		event.TypeSpinner: synthesize(waveTriangle, 330, 0.06, 0.25, 0.01, 0.05),
		event.TypeLaunch:  synthesize(waveSaw, 150, 0.2, 0.4, 0.02, 0.18),
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Handle plays the effect for one game event, fire-and-forget. Events
// without a voice (drain, ball saved) are ignored.
func (m *Manager) Handle(ev event.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	samples, ok := m.effects[ev.Type]
	if !ok {
		return
	}

	speaker.Lock()
	m.mixer.Add(&bufferStreamer{samples: samples})
	speaker.Unlock()
}

// Cleanup silences the mixer. The speaker itself has no close; clearing
// the streamers prevents trailing artifacts.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}
