package emulator

// Rate at which the delay and sound timers count down, independent of
// the instruction rate
const TIMER_HZ = 60

// The delay and sound timers. Both are 8 bit counters that tick down
// to zero at TIMER_HZ
type Timers struct {
	Delay uint8 // Delay timer, read and written by programs
	Sound uint8 // Sound timer, the tone plays while it is nonzero
}

// Returns a new Timers instance
func NewTimers() *Timers {
	return &Timers{}
}

// Decrements both timers by one if they are nonzero. Should be called
// at TIMER_HZ by the driver
func (timers *Timers) Tick() {
	if timers.Delay > 0 {
		timers.Delay--
	}
	if timers.Sound > 0 {
		timers.Sound--
	}
}

// Returns true while the tone should be audible
func (timers *Timers) ToneActive() bool {
	return timers.Sound > 0
}
