package emulator

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Decodes and executes an instruction. Unknown instruction words are
// logged and skipped, they never stop the machine
func (machine *Machine) Execute(instruction Instruction) error {
	switch Decode(instruction) {
	case OP_CLS:
		machine.OpCls()
	case OP_RET:
		return machine.OpRet()
	case OP_SYS:
		machine.OpSys(instruction)
	case OP_JP:
		machine.OpJp(instruction)
	case OP_CALL:
		return machine.OpCall(instruction)
	case OP_SE_IMM:
		machine.OpSeImm(instruction)
	case OP_SNE_IMM:
		machine.OpSneImm(instruction)
	case OP_SE_REG:
		machine.OpSeReg(instruction)
	case OP_LD_IMM:
		machine.OpLdImm(instruction)
	case OP_ADD_IMM:
		machine.OpAddImm(instruction)
	case OP_LD_REG:
		machine.OpLdReg(instruction)
	case OP_OR:
		machine.OpOr(instruction)
	case OP_AND:
		machine.OpAnd(instruction)
	case OP_XOR:
		machine.OpXor(instruction)
	case OP_ADD_REG:
		machine.OpAddReg(instruction)
	case OP_SUB:
		machine.OpSub(instruction)
	case OP_SHR:
		machine.OpShr(instruction)
	case OP_SUBN:
		machine.OpSubn(instruction)
	case OP_SHL:
		machine.OpShl(instruction)
	case OP_SNE_REG:
		machine.OpSneReg(instruction)
	case OP_LD_I:
		machine.OpLdI(instruction)
	case OP_JP_V0:
		machine.OpJpV0(instruction)
	case OP_RND:
		machine.OpRnd(instruction)
	case OP_DRW:
		machine.OpDrw(instruction)
	case OP_SKP:
		machine.OpSkp(instruction)
	case OP_SKNP:
		machine.OpSknp(instruction)
	case OP_LD_VX_DT:
		machine.OpLdVxDt(instruction)
	case OP_LD_KEY:
		machine.OpLdKey(instruction)
	case OP_LD_DT_VX:
		machine.OpLdDtVx(instruction)
	case OP_LD_ST_VX:
		machine.OpLdStVx(instruction)
	case OP_ADD_I:
		machine.OpAddI(instruction)
	case OP_LD_FONT:
		machine.OpLdFont(instruction)
	case OP_BCD:
		machine.OpBcd(instruction)
	case OP_STORE_REGS:
		machine.OpStoreRegs(instruction)
	case OP_LOAD_REGS:
		machine.OpLoadRegs(instruction)
	default:
		// the program counter already advanced past the word, so the
		// instruction itself sits two bytes back
		machine.Log.Error("unknown instruction",
			log.String("word", fmt.Sprintf("$%04X", uint16(instruction))),
			log.String("pc", fmt.Sprintf("$%03X", (machine.PC-2)&ADDRESS_MASK)),
		)
	}
	return nil
}

// Clear the display
func (machine *Machine) OpCls() {
	machine.Fb.Clear()
}

// Return from a subroutine
func (machine *Machine) OpRet() error {
	addr, ok := machine.Stack.Pop()
	if !ok {
		return machine.fault(FAULT_STACK_UNDERFLOW)
	}
	machine.SetPC(addr)
	return nil
}

// Jump to a machine code routine. A relic from the original hardware,
// executes as a no-op
func (machine *Machine) OpSys(instruction Instruction) {
	machine.Log.Debug("ignoring sys instruction",
		log.Uint16("addr", instruction.Nnn()))
}

// Jump to address
func (machine *Machine) OpJp(instruction Instruction) {
	machine.SetPC(instruction.Nnn())
}

// Call a subroutine. The program counter already points past the call
// instruction, so it is the return address
func (machine *Machine) OpCall(instruction Instruction) error {
	if !machine.Stack.Push(machine.PC) {
		return machine.fault(FAULT_STACK_OVERFLOW)
	}
	machine.SetPC(instruction.Nnn())
	return nil
}

// Skip the next instruction if Vx equals the immediate
func (machine *Machine) OpSeImm(instruction Instruction) {
	if machine.Reg(instruction.X()) == instruction.Kk() {
		machine.SetPC(machine.PC + 2)
	}
}

// Skip the next instruction if Vx does not equal the immediate
func (machine *Machine) OpSneImm(instruction Instruction) {
	if machine.Reg(instruction.X()) != instruction.Kk() {
		machine.SetPC(machine.PC + 2)
	}
}

// Skip the next instruction if Vx equals Vy
func (machine *Machine) OpSeReg(instruction Instruction) {
	if machine.Reg(instruction.X()) == machine.Reg(instruction.Y()) {
		machine.SetPC(machine.PC + 2)
	}
}

// Load the immediate into Vx
func (machine *Machine) OpLdImm(instruction Instruction) {
	machine.SetReg(instruction.X(), instruction.Kk())
}

// Add the immediate to Vx. Wraps around and does not touch the flag
// register
func (machine *Machine) OpAddImm(instruction Instruction) {
	x := instruction.X()
	machine.SetReg(x, machine.Reg(x)+instruction.Kk())
}

// Copy Vy into Vx
func (machine *Machine) OpLdReg(instruction Instruction) {
	machine.SetReg(instruction.X(), machine.Reg(instruction.Y()))
}

// Bitwise or Vx with Vy
func (machine *Machine) OpOr(instruction Instruction) {
	x := instruction.X()
	machine.SetReg(x, machine.Reg(x)|machine.Reg(instruction.Y()))
}

// Bitwise and Vx with Vy
func (machine *Machine) OpAnd(instruction Instruction) {
	x := instruction.X()
	machine.SetReg(x, machine.Reg(x)&machine.Reg(instruction.Y()))
}

// Bitwise xor Vx with Vy
func (machine *Machine) OpXor(instruction Instruction) {
	x := instruction.X()
	machine.SetReg(x, machine.Reg(x)^machine.Reg(instruction.Y()))
}

// Add Vy to Vx. VF holds the carry out of bit 7, written after the
// result so it survives x = 15
func (machine *Machine) OpAddReg(instruction Instruction) {
	x := instruction.X()
	sum := uint16(machine.Reg(x)) + uint16(machine.Reg(instruction.Y()))
	machine.SetReg(x, uint8(sum))
	machine.V[0xf] = oneIfTrue(sum > 0xff)
}

// Subtract Vy from Vx. VF is 1 when no borrow happened (Vx > Vy)
func (machine *Machine) OpSub(instruction Instruction) {
	x := instruction.X()
	vx, vy := machine.Reg(x), machine.Reg(instruction.Y())
	machine.SetReg(x, vx-vy)
	machine.V[0xf] = oneIfTrue(vx > vy)
}

// Shift Vx right by one. VF holds the shifted out bit
func (machine *Machine) OpShr(instruction Instruction) {
	x := instruction.X()
	vx := machine.Reg(x)
	machine.SetReg(x, vx>>1)
	machine.V[0xf] = vx & 1
}

// Set Vx to Vy minus Vx. VF is 1 when no borrow happened (Vy > Vx)
func (machine *Machine) OpSubn(instruction Instruction) {
	x := instruction.X()
	vx, vy := machine.Reg(x), machine.Reg(instruction.Y())
	machine.SetReg(x, vy-vx)
	machine.V[0xf] = oneIfTrue(vy > vx)
}

// Shift Vx left by one. VF holds the shifted out bit
func (machine *Machine) OpShl(instruction Instruction) {
	x := instruction.X()
	vx := machine.Reg(x)
	machine.SetReg(x, vx<<1)
	machine.V[0xf] = vx >> 7
}

// Skip the next instruction if Vx does not equal Vy
func (machine *Machine) OpSneReg(instruction Instruction) {
	if machine.Reg(instruction.X()) != machine.Reg(instruction.Y()) {
		machine.SetPC(machine.PC + 2)
	}
}

// Load an address into the index register
func (machine *Machine) OpLdI(instruction Instruction) {
	machine.SetI(instruction.Nnn())
}

// Jump to the address plus V0
func (machine *Machine) OpJpV0(instruction Instruction) {
	machine.SetPC(instruction.Nnn() + uint16(machine.Reg(0)))
}

// Load a random byte masked by the immediate into Vx
func (machine *Machine) OpRnd(instruction Instruction) {
	machine.SetReg(instruction.X(), machine.Rng.NextByte()&instruction.Kk())
}

// Draw an n row sprite from memory at the coordinates in Vx and Vy.
// VF holds the collision flag
func (machine *Machine) OpDrw(instruction Instruction) {
	var rows [15]byte
	n := instruction.N()
	for i := uint8(0); i < n; i++ {
		rows[i] = machine.Load(machine.I + uint16(i))
	}

	x := machine.Reg(instruction.X())
	y := machine.Reg(instruction.Y())
	collided := machine.Fb.DrawSprite(x, y, rows[:n])
	machine.V[0xf] = oneIfTrue(collided)
}

// Skip the next instruction if the key in Vx is held
func (machine *Machine) OpSkp(instruction Instruction) {
	if machine.Keypad.Pressed(machine.Reg(instruction.X())) {
		machine.SetPC(machine.PC + 2)
	}
}

// Skip the next instruction if the key in Vx is not held
func (machine *Machine) OpSknp(instruction Instruction) {
	if !machine.Keypad.Pressed(machine.Reg(instruction.X())) {
		machine.SetPC(machine.PC + 2)
	}
}

// Load the delay timer into Vx
func (machine *Machine) OpLdVxDt(instruction Instruction) {
	machine.SetReg(instruction.X(), machine.Timers.Delay)
}

// Wait for a key press and store it in Vx. The program counter is
// parked back on this instruction and the machine polls the keypad
// on every Step until a key is held
func (machine *Machine) OpLdKey(instruction Instruction) {
	machine.WaitReg = instruction.X()
	machine.State = STATE_WAITING_FOR_KEY
	machine.SetPC(machine.PC - 2)
}

// Load Vx into the delay timer
func (machine *Machine) OpLdDtVx(instruction Instruction) {
	machine.Timers.Delay = machine.Reg(instruction.X())
}

// Load Vx into the sound timer
func (machine *Machine) OpLdStVx(instruction Instruction) {
	machine.Timers.Sound = machine.Reg(instruction.X())
}

// Add Vx to the index register, wrapping inside the 12 bit address
// space. With the IndexCarry policy on, VF reports whether the
// unmasked sum left the address space
func (machine *Machine) OpAddI(instruction Instruction) {
	sum := machine.I + uint16(machine.Reg(instruction.X()))
	machine.SetI(sum)
	if machine.IndexCarry {
		machine.V[0xf] = oneIfTrue(sum > ADDRESS_MASK)
	}
}

// Point the index register at the font glyph for the low nibble of Vx
func (machine *Machine) OpLdFont(instruction Instruction) {
	machine.SetI(FontGlyphAddress(machine.Reg(instruction.X())))
}

// Store the binary coded decimal form of Vx at I, I+1 and I+2
func (machine *Machine) OpBcd(instruction Instruction) {
	v := machine.Reg(instruction.X())
	machine.Store(machine.I, v/100)
	machine.Store(machine.I+1, v/10%10)
	machine.Store(machine.I+2, v%10)
}

// Store V0 through Vx to memory starting at I. I is left unchanged
func (machine *Machine) OpStoreRegs(instruction Instruction) {
	x := instruction.X()
	for i := uint8(0); i <= x; i++ {
		machine.Store(machine.I+uint16(i), machine.Reg(i))
	}
}

// Load V0 through Vx from memory starting at I. I is left unchanged
func (machine *Machine) OpLoadRegs(instruction Instruction) {
	x := instruction.X()
	for i := uint8(0); i <= x; i++ {
		machine.SetReg(i, machine.Load(machine.I+uint16(i)))
	}
}
