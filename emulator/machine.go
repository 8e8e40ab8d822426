package emulator

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Execution state of the machine
type MachineState uint8

const (
	STATE_RUNNING         MachineState = iota // Executing instructions
	STATE_WAITING_FOR_KEY MachineState = iota // Parked on a key wait until a key is held
	STATE_HALTED          MachineState = iota // Stopped after a fatal fault
)

func (state MachineState) String() string {
	switch state {
	case STATE_RUNNING:
		return "running"
	case STATE_WAITING_FOR_KEY:
		return "waiting for key"
	case STATE_HALTED:
		return "halted"
	}
	return "invalid"
}

// Machine state. The machine is passive: it has no clock and no I/O of
// its own, a driver calls Step at the instruction rate, TickTimers at
// TIMER_HZ and feeds key state through SetKey
type Machine struct {
	PC         uint16       // The program counter register, 12 bits
	I          uint16       // The index register, 12 bits
	V          [16]uint8    // General purpose registers. The last one doubles as the flag register
	Mem        *Memory      // Memory interface
	Stack      *CallStack   // Subroutine return addresses
	Timers     *Timers      // Delay and sound timers
	Fb         *Framebuffer // Display contents
	Keypad     *Keypad      // Keypad state
	Rng        *Rng         // Random source for the RND instruction
	State      MachineState // Current execution state
	LastFault  Fault        // The fault that halted the machine
	WaitReg    uint8        // Target register of a pending key wait
	IndexCarry bool         // If true, ADD I, Vx reports 12 bit overflow in VF
	Debugger   *Debugger    // Optional debugger, may be nil
	Log        *log.Logger  // Structured logger, replaceable by the driver
}

// Creates a new machine state with `mem` attached. The program counter
// starts at PROGRAM_START
func NewMachine(mem *Memory) *Machine {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel

	machine := &Machine{
		PC:         PROGRAM_START,
		Mem:        mem,
		Stack:      NewCallStack(),
		Timers:     NewTimers(),
		Fb:         NewFramebuffer(),
		Keypad:     NewKeypad(),
		Rng:        NewRng(),
		IndexCarry: true,
		Log:        log.NewWithConfig(cfg),
	}
	return machine
}

// Runs the instruction at the program counter and increments it. In
// STATE_WAITING_FOR_KEY only the keypad is polled, in STATE_HALTED
// nothing happens at all and the halting fault is returned again.
// Program bytes can never make Step panic: bad addresses wrap, bad
// opcodes are skipped and stack misuse halts the machine
func (machine *Machine) Step() error {
	switch machine.State {
	case STATE_HALTED:
		return machine.LastFault
	case STATE_WAITING_FOR_KEY:
		if key, ok := machine.Keypad.FirstPressed(); ok {
			machine.SetReg(machine.WaitReg, key)
			machine.SetPC(machine.PC + 2)
			machine.State = STATE_RUNNING
		}
		return nil
	}

	pc := machine.PC
	if machine.Debugger != nil {
		machine.Debugger.changedPc(machine, pc)
	}

	// fetch instruction at PC
	instruction := Instruction(machine.Mem.LoadWord(pc))

	// increment PC to point to the next instruction. the 12 bit mask
	// wraps 0xffe + 2 around to 0
	machine.SetPC(pc + 2)
	return machine.Execute(instruction)
}

// Ticks the 60Hz timers. Independent of Step: this keeps counting in
// every state, including STATE_HALTED
func (machine *Machine) TickTimers() {
	machine.Timers.Tick()
}

// Sets the held state of a keypad key. The only input entrypoint for
// drivers. The index is masked to 0..15
func (machine *Machine) SetKey(key uint8, pressed bool) {
	machine.Keypad.Set(key, pressed)
}

// Returns a copy of the display contents
func (machine *Machine) FramebufferSnapshot() []byte {
	return machine.Fb.Snapshot()
}

// Returns true while the tone should be audible
func (machine *Machine) IsToneActive() bool {
	return machine.Timers.ToneActive()
}

// Returns the register value at `index`
func (machine *Machine) Reg(index uint8) uint8 {
	return machine.V[index&0xf]
}

// Sets the value at the `index` register
func (machine *Machine) SetReg(index, val uint8) {
	machine.V[index&0xf] = val
}

// Sets the program counter, masked to 12 bits
func (machine *Machine) SetPC(addr uint16) {
	machine.PC = addr & ADDRESS_MASK
}

// Sets the index register, masked to 12 bits
func (machine *Machine) SetI(addr uint16) {
	machine.I = addr & ADDRESS_MASK
}

// Fetches the byte at `addr`
func (machine *Machine) Load(addr uint16) byte {
	if machine.Debugger != nil {
		machine.Debugger.memoryRead(machine, addr)
	}
	return machine.Mem.Load(addr)
}

// Sets the byte at `addr`
func (machine *Machine) Store(addr uint16, val byte) {
	if machine.Debugger != nil {
		machine.Debugger.memoryWrite(machine, addr)
	}
	machine.Mem.Store(addr, val)
}

// Records a fatal fault and halts the machine. All state remains
// readable afterwards. The program counter has advanced past the
// faulting instruction at this point
func (machine *Machine) fault(fault Fault) error {
	machine.LastFault = fault
	machine.State = STATE_HALTED
	machine.Log.Error("machine halted",
		log.Err(fault),
		log.String("pc", fmt.Sprintf("$%03X", (machine.PC-2)&ADDRESS_MASK)),
	)
	return fault
}
