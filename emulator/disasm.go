package emulator

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Returns the assembly form of an instruction word, like "jp $228" or
// "ld V2, $44". Words that are no known instruction come back as a
// ".word" directive so trace output stays aligned
func Disassemble(instruction Instruction) string {
	word := uint16(instruction)

	// machine code routines have no entry of their own in the opcode
	// table, handle the 0 group up front
	if instruction.Group() == 0 {
		switch word {
		case 0x00e0:
			return chip8.Cls.Name
		case 0x00ee:
			return chip8.Ret.Name
		}
		return fmt.Sprintf("sys $%03X", instruction.Nnn())
	}

	var matched chip8.Opcode
	for _, op := range chip8.Opcodes[instruction.Group()] {
		if op.Info.Mask&word == op.Info.Value {
			matched = op
			break
		}
	}
	ins := matched.Instruction
	if ins == nil {
		return fmt.Sprintf(".word $%04X", word)
	}

	params := formatParams(ins, instruction)
	if params == "" {
		return ins.Name
	}
	return ins.Name + " " + params
}

// Renders the instruction operands. The same mnemonic can have several
// operand forms (ld covers immediate, register, index and timer moves),
// so the group nibble picks the right one
func formatParams(ins *chip8.Instruction, instruction Instruction) string {
	word := uint16(instruction)
	x, y := instruction.X(), instruction.Y()

	switch ins {
	case chip8.Cls, chip8.Ret:
		return ""
	case chip8.Jp:
		if instruction.Group() == 0xb {
			return fmt.Sprintf("V0, $%03X", instruction.Nnn())
		}
		return fmt.Sprintf("$%03X", instruction.Nnn())
	case chip8.Call:
		return fmt.Sprintf("$%03X", instruction.Nnn())
	case chip8.Se, chip8.Sne:
		if instruction.Group() == 0x5 || instruction.Group() == 0x9 {
			return fmt.Sprintf("V%X, V%X", x, y)
		}
		return fmt.Sprintf("V%X, $%02X", x, instruction.Kk())
	case chip8.Or, chip8.And, chip8.Xor, chip8.Sub, chip8.Subn:
		return fmt.Sprintf("V%X, V%X", x, y)
	case chip8.Shr, chip8.Shl:
		return fmt.Sprintf("V%X", x)
	case chip8.Rnd:
		return fmt.Sprintf("V%X, $%02X", x, instruction.Kk())
	case chip8.Drw:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, instruction.N())
	case chip8.Skp, chip8.Sknp:
		return fmt.Sprintf("V%X", x)
	case chip8.Add:
		switch instruction.Group() {
		case 0x7:
			return fmt.Sprintf("V%X, $%02X", x, instruction.Kk())
		case 0x8:
			return fmt.Sprintf("V%X, V%X", x, y)
		}
		return fmt.Sprintf("I, V%X", x) // Fx1E
	case chip8.Ld:
		switch instruction.Group() {
		case 0x6:
			return fmt.Sprintf("V%X, $%02X", x, instruction.Kk())
		case 0x8:
			return fmt.Sprintf("V%X, V%X", x, y)
		case 0xa:
			return fmt.Sprintf("I, $%03X", instruction.Nnn())
		}
		switch instruction.Kk() {
		case 0x07:
			return fmt.Sprintf("V%X, DT", x)
		case 0x0a:
			return fmt.Sprintf("V%X, K", x)
		case 0x15:
			return fmt.Sprintf("DT, V%X", x)
		case 0x18:
			return fmt.Sprintf("ST, V%X", x)
		case 0x29:
			return fmt.Sprintf("F, V%X", x)
		case 0x33:
			return fmt.Sprintf("B, V%X", x)
		case 0x55:
			return fmt.Sprintf("[I], V%X", x)
		case 0x65:
			return fmt.Sprintf("V%X, [I]", x)
		}
	}
	return fmt.Sprintf("$%04X", word)
}
