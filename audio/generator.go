package audio

import (
	"math"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveTriangle
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveTriangle:
			buf[i] = 2.0*math.Abs(2.0*phase-1.0) - 1.0
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(sampleRate))
	releaseSamples := int(releaseSec * float64(sampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// scale multiplies the buffer by gain in place
func scale(buf floatBuffer, gain float64) {
	for i := range buf {
		buf[i] *= gain
	}
}

// synthesize builds one effect: waveform, envelope, gain
func synthesize(waveType int, freq, durationSec, gain, attackSec, releaseSec float64) floatBuffer {
	buf := oscillator(waveType, freq, int(durationSec*float64(sampleRate)))
	applyEnvelope(buf, attackSec, releaseSec)
	scale(buf, gain)
	return buf
}
