package emulator

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

const (
	BEEPER_SAMPLE_RATE = 48000 // samples per second
	BEEPER_FREQ        = 440.0 // tone frequency in Hz
	BEEPER_VOLUME      = 0.25  // amplitude of the generated sine wave
)

// Sine tone generator gated by the sound timer. Implements io.Reader
// so it can be streamed straight into an audio player: `Read` produces
// 32 bit little-endian float samples and emits silence while the gate
// is closed.
type Beeper struct {
	gate  atomic.Bool // whether the tone is audible
	phase float64     // current position in the sine period
}

// Creates a new Beeper instance
func NewBeeper() *Beeper {
	return &Beeper{}
}

// Opens or closes the tone gate. Safe to call from a different
// goroutine than the one reading samples
func (beeper *Beeper) Gate(on bool) {
	beeper.gate.Store(on)
}

// Returns whether the tone gate is currently open
func (beeper *Beeper) Active() bool {
	return beeper.gate.Load()
}

// Fills `p` with float32le samples. The phase persists across calls
// so gating the tone on and off does not click at period boundaries
func (beeper *Beeper) Read(p []byte) (int, error) {
	const sampleSize = 4
	count := len(p) / sampleSize
	active := beeper.gate.Load()

	for sample := 0; sample < count; sample++ {
		var value float32
		if active {
			value = float32(math.Sin(2*math.Pi*beeper.phase) * BEEPER_VOLUME)
		}
		beeper.phase += BEEPER_FREQ / BEEPER_SAMPLE_RATE
		if beeper.phase >= 1 {
			beeper.phase -= 1
		}

		bits := math.Float32bits(value)
		binary.LittleEndian.PutUint32(p[sample*sampleSize:], bits)
	}
	return count * sampleSize, nil
}
