package emulator

type Instruction uint16

// Return bits [15:12] of the instruction (the opcode group)
func (op Instruction) Group() uint8 {
	return uint8(uint16(op) >> 12)
}

// Return the address in bits [11:0]
func (op Instruction) Nnn() uint16 {
	return uint16(op) & 0xfff
}

// Return the immediate value in bits [7:0]
func (op Instruction) Kk() uint8 {
	return uint8(op)
}

// Return register index in bits [11:8]
func (op Instruction) X() uint8 {
	return uint8(uint16(op)>>8) & 0xf
}

// Return register index in bits [7:4]
func (op Instruction) Y() uint8 {
	return uint8(uint16(op)>>4) & 0xf
}

// Return the sprite height in bits [3:0]
func (op Instruction) N() uint8 {
	return uint8(op) & 0xf
}
