package emulator

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimersTick(t *testing.T) {
	timers := NewTimers()
	timers.Delay = 2
	timers.Sound = 1

	assert.True(t, timers.ToneActive())

	timers.Tick()
	assert.Equal(t, uint8(1), timers.Delay)
	assert.Equal(t, uint8(0), timers.Sound)
	assert.False(t, timers.ToneActive())

	// expired timers stay at zero
	timers.Tick()
	timers.Tick()
	assert.Equal(t, uint8(0), timers.Delay)
	assert.Equal(t, uint8(0), timers.Sound)
}

func TestTimersToneActive(t *testing.T) {
	timers := NewTimers()
	assert.False(t, timers.ToneActive())

	timers.Sound = 0xff
	assert.True(t, timers.ToneActive())

	// the delay timer has no tone
	timers.Sound = 0
	timers.Delay = 0xff
	assert.False(t, timers.ToneActive())
}
