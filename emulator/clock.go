package emulator

// Default instruction rate. The original interpreters managed a few
// hundred instructions per second, most programs feel right here
const DEFAULT_CPU_HZ = 500

// Keeps track of the emulation time
type TimeHandler struct {
	// Keeps track of the current execution time. It is measured in
	// executed instructions, the machine has no subinstruction timing
	Cycles uint64
	CpuHz  uint64     // Instruction rate in instructions per second
	Timers *TimeSheet // Schedule of the 60Hz timer ticks

	frameAcc uint64 // Fractional instruction carry between video frames
}

// Returns a new instance of TimeHandler running at `cpuHz`
func NewTimeHandler(cpuHz uint64) *TimeHandler {
	if cpuHz == 0 {
		cpuHz = DEFAULT_CPU_HZ
	}
	th := &TimeHandler{
		CpuHz:  cpuHz,
		Timers: NewTimeSheet(),
	}
	th.Timers.NextSync = th.timerPeriod()
	return th
}

// Instructions between two 60Hz timer ticks, at least 1
func (th *TimeHandler) timerPeriod() uint64 {
	period := th.CpuHz / TIMER_HZ
	if period == 0 {
		period = 1
	}
	return period
}

// Advance the current time by `cycles`
func (th *TimeHandler) Tick(cycles uint64) {
	th.Cycles += cycles
}

// Returns true if the 60Hz timers reached the time of the next forced
// synchronization and schedules the following one. Keeping the
// schedule on a fixed cadence avoids drifting when CpuHz is not a
// multiple of TIMER_HZ
func (th *TimeHandler) NeedsTimerSync() bool {
	if !th.Timers.NeedsSync(th.Cycles) {
		return false
	}
	th.Timers.Sync(th.Cycles)
	th.Timers.NextSync += th.timerPeriod()
	return true
}

// Returns how many instructions make up one 60Hz video frame,
// spreading the fractional remainder over consecutive frames
func (th *TimeHandler) CyclesForFrame() uint64 {
	th.frameAcc += th.CpuHz
	cycles := th.frameAcc / TIMER_HZ
	th.frameAcc %= TIMER_HZ
	return cycles
}

// Keeps track of synchronization of the timer unit
type TimeSheet struct {
	LastSync uint64 // Time of the last synchronization
	NextSync uint64 // Date of the next synchronization
}

// Returns a new TimeSheet instance
func NewTimeSheet() *TimeSheet {
	return &TimeSheet{}
}

// Set the time sheet to the current time and return the time
// since the last synchronization
func (sheet *TimeSheet) Sync(cycles uint64) uint64 {
	delta := cycles - sheet.LastSync
	sheet.LastSync = cycles
	return delta
}

// Returns true if the unit reached `NextSync`
func (sheet *TimeSheet) NeedsSync(cycles uint64) bool {
	return sheet.NextSync <= cycles
}
