package emulator

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDebuggerBreakpoints(t *testing.T) {
	debugger := NewDebugger()

	debugger.AddBreakpoint(0x200)
	debugger.AddBreakpoint(0x204)
	debugger.AddBreakpoint(0x200) // duplicates are ignored
	assert.Equal(t, 2, len(debugger.Breakpoints))

	debugger.DeleteBreakpoint(0x200)
	assert.Equal(t, 1, len(debugger.Breakpoints))
	assert.Equal(t, uint16(0x204), debugger.Breakpoints[0])

	// deleting an address that was never added changes nothing
	debugger.DeleteBreakpoint(0x999)
	assert.Equal(t, 1, len(debugger.Breakpoints))
}

func TestDebuggerWatchpoints(t *testing.T) {
	debugger := NewDebugger()

	debugger.AddReadWatchpoint(0x300)
	debugger.AddReadWatchpoint(0x300)
	assert.Equal(t, 1, len(debugger.ReadWatchpoints))

	debugger.AddWriteWatchpoint(0x301)
	debugger.AddWriteWatchpoint(0x302)
	assert.Equal(t, 2, len(debugger.WriteWatchpoints))

	debugger.DeleteReadWatchpoint(0x300)
	assert.Equal(t, 0, len(debugger.ReadWatchpoints))

	debugger.DeleteWriteWatchpoint(0x301)
	assert.Equal(t, 1, len(debugger.WriteWatchpoints))
	assert.Equal(t, uint16(0x302), debugger.WriteWatchpoints[0])
}

func TestDebuggerHooksDoNotDisturbExecution(t *testing.T) {
	machine := newTestMachine(t,
		0xa3, 0x00, // ld i, $300
		0xf0, 0x55, // ld [i], v0
		0xf0, 0x65, // ld v0, [i]
	)
	machine.V[0] = 0x5a
	machine.Debugger = NewDebugger()
	machine.Debugger.AddBreakpoint(0x202)
	machine.Debugger.AddWriteWatchpoint(0x300)
	machine.Debugger.AddReadWatchpoint(0x300)

	for i := 0; i < 3; i++ {
		assert.NoError(t, machine.Step())
	}

	assert.Equal(t, STATE_RUNNING, machine.State)
	assert.Equal(t, byte(0x5a), machine.Mem.Load(0x300))
	assert.Equal(t, uint8(0x5a), machine.V[0])
}

func TestDebuggerDump(t *testing.T) {
	machine := newTestMachine(t, 0x61, 0x07)
	debugger := NewDebugger()

	// dumping state must work on a fresh and on a stepped machine
	debugger.Debug(machine)
	assert.NoError(t, machine.Step())
	debugger.Debug(machine)
}
