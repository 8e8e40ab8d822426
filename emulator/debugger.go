package emulator

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

type Debugger struct {
	Breakpoints      []uint16 // All breakpoint addresses
	ReadWatchpoints  []uint16 // All read watchpoints
	WriteWatchpoints []uint16 // All write watchpoints
}

func NewDebugger() *Debugger {
	return &Debugger{}
}

// Adds a breakpoint when the instruction at `addr` is about to be executed
func (debugger *Debugger) AddBreakpoint(addr uint16) {
	// check if that breakpoint already exists
	for _, breakpoint := range debugger.Breakpoints {
		if breakpoint == addr {
			return
		}
	}
	debugger.Breakpoints = append(debugger.Breakpoints, addr)
}

// Deletes a breakpoint at `addr`. Does nothing if it doesn't exist
func (debugger *Debugger) DeleteBreakpoint(addr uint16) {
	for idx, breakpoint := range debugger.Breakpoints {
		if breakpoint == addr {
			// remove this breakpoint
			debugger.Breakpoints = append(debugger.Breakpoints[:idx], debugger.Breakpoints[idx+1:]...)
			return
		}
	}
}

// Adds a memory read watchpoint for `addr`
func (debugger *Debugger) AddReadWatchpoint(addr uint16) {
	for _, watchpoint := range debugger.ReadWatchpoints {
		if watchpoint == addr {
			return
		}
	}
	debugger.ReadWatchpoints = append(debugger.ReadWatchpoints, addr)
}

// Adds a memory write watchpoint for `addr`
func (debugger *Debugger) AddWriteWatchpoint(addr uint16) {
	for _, watchpoint := range debugger.WriteWatchpoints {
		if watchpoint == addr {
			return
		}
	}
	debugger.WriteWatchpoints = append(debugger.WriteWatchpoints, addr)
}

// Deletes a memory read watchpoint at `addr`. Does nothing if it doesn't exist
func (debugger *Debugger) DeleteReadWatchpoint(addr uint16) {
	for idx, watchpoint := range debugger.ReadWatchpoints {
		if watchpoint == addr {
			// remove this watchpoint
			debugger.ReadWatchpoints = append(
				debugger.ReadWatchpoints[:idx],
				debugger.ReadWatchpoints[idx+1:]...,
			)
			return
		}
	}
}

// Deletes a memory write watchpoint at `addr`. Does nothing if it doesn't exist
func (debugger *Debugger) DeleteWriteWatchpoint(addr uint16) {
	for idx, watchpoint := range debugger.WriteWatchpoints {
		if watchpoint == addr {
			// remove this watchpoint
			debugger.WriteWatchpoints = append(
				debugger.WriteWatchpoints[:idx],
				debugger.WriteWatchpoints[idx+1:]...,
			)
			return
		}
	}
}

// Debugger entrypoint, called before an instruction fetch
func (debugger *Debugger) changedPc(machine *Machine, pc uint16) {
	// check if a breakpoint exists for this address
	for _, breakpoint := range debugger.Breakpoints {
		if breakpoint == pc {
			machine.Log.Info("reached breakpoint",
				log.String("addr", fmt.Sprintf("$%03X", pc)))
			debugger.Debug(machine)
			return
		}
	}
}

// Called by the machine when it's about to read a value from memory
func (debugger *Debugger) memoryRead(machine *Machine, addr uint16) {
	for _, watchpoint := range debugger.ReadWatchpoints {
		if watchpoint == addr {
			machine.Log.Info("triggered read watchpoint",
				log.String("addr", fmt.Sprintf("$%03X", addr)))
			debugger.Debug(machine)
			return
		}
	}
}

// Called by the machine when it's about to write a value to memory
func (debugger *Debugger) memoryWrite(machine *Machine, addr uint16) {
	for _, watchpoint := range debugger.WriteWatchpoints {
		if watchpoint == addr {
			machine.Log.Info("triggered write watchpoint",
				log.String("addr", fmt.Sprintf("$%03X", addr)))
			debugger.Debug(machine)
			return
		}
	}
}

// Dumps the machine state: the current instruction, all registers and
// the call stack depth
func (debugger *Debugger) Debug(machine *Machine) {
	instruction := Instruction(machine.Mem.LoadWord(machine.PC))

	var regs strings.Builder
	for idx, val := range machine.V {
		if idx > 0 {
			regs.WriteByte(' ')
		}
		fmt.Fprintf(&regs, "%s=%02x", GetRegisterName(uint8(idx)), val)
	}

	machine.Log.Info("machine state",
		log.String("pc", fmt.Sprintf("$%03X", machine.PC)),
		log.String("instruction", Disassemble(instruction)),
		log.String("i", fmt.Sprintf("$%03X", machine.I)),
		log.String("regs", regs.String()),
		log.Uint8("stack_depth", machine.Stack.Length()),
		log.String("state", machine.State.String()),
	)
}
