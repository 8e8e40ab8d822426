package emulator

// A decoded operation. Operand fields are not part of the variant,
// they are extracted from the Instruction at execution time
type OpKind uint8

const (
	OP_UNKNOWN    OpKind = iota // No matching pattern
	OP_CLS        OpKind = iota // 00E0: clear the display
	OP_RET        OpKind = iota // 00EE: return from subroutine
	OP_SYS        OpKind = iota // 0nnn: machine code routine, ignored
	OP_JP         OpKind = iota // 1nnn: jump to nnn
	OP_CALL       OpKind = iota // 2nnn: call subroutine at nnn
	OP_SE_IMM     OpKind = iota // 3xkk: skip next if Vx == kk
	OP_SNE_IMM    OpKind = iota // 4xkk: skip next if Vx != kk
	OP_SE_REG     OpKind = iota // 5xy0: skip next if Vx == Vy
	OP_LD_IMM     OpKind = iota // 6xkk: Vx = kk
	OP_ADD_IMM    OpKind = iota // 7xkk: Vx += kk, no flag
	OP_LD_REG     OpKind = iota // 8xy0: Vx = Vy
	OP_OR         OpKind = iota // 8xy1: Vx |= Vy
	OP_AND        OpKind = iota // 8xy2: Vx &= Vy
	OP_XOR        OpKind = iota // 8xy3: Vx ^= Vy
	OP_ADD_REG    OpKind = iota // 8xy4: Vx += Vy, VF = carry
	OP_SUB        OpKind = iota // 8xy5: Vx -= Vy, VF = no borrow
	OP_SHR        OpKind = iota // 8xy6: Vx >>= 1, VF = shifted out bit
	OP_SUBN       OpKind = iota // 8xy7: Vx = Vy - Vx, VF = no borrow
	OP_SHL        OpKind = iota // 8xyE: Vx <<= 1, VF = shifted out bit
	OP_SNE_REG    OpKind = iota // 9xy0: skip next if Vx != Vy
	OP_LD_I       OpKind = iota // Annn: I = nnn
	OP_JP_V0      OpKind = iota // Bnnn: jump to nnn + V0
	OP_RND        OpKind = iota // Cxkk: Vx = random byte & kk
	OP_DRW        OpKind = iota // Dxyn: draw sprite, VF = collision
	OP_SKP        OpKind = iota // Ex9E: skip next if key Vx held
	OP_SKNP       OpKind = iota // ExA1: skip next if key Vx not held
	OP_LD_VX_DT   OpKind = iota // Fx07: Vx = delay timer
	OP_LD_KEY     OpKind = iota // Fx0A: wait for a key press
	OP_LD_DT_VX   OpKind = iota // Fx15: delay timer = Vx
	OP_LD_ST_VX   OpKind = iota // Fx18: sound timer = Vx
	OP_ADD_I      OpKind = iota // Fx1E: I += Vx
	OP_LD_FONT    OpKind = iota // Fx29: I = font glyph address of Vx
	OP_BCD        OpKind = iota // Fx33: memory[I..I+2] = BCD of Vx
	OP_STORE_REGS OpKind = iota // Fx55: memory[I..I+x] = V0..Vx
	OP_LOAD_REGS  OpKind = iota // Fx65: V0..Vx = memory[I..I+x]
)

type opcodePattern struct {
	Mask    uint16 // Bits that take part in the match
	Pattern uint16 // Required values of the masked bits
	Kind    OpKind // The operation the pattern decodes to
}

// Patterns are tried in order, so the exact 00E0/00EE matches have to
// come before the 0nnn catch-all
var opcodePatterns = []opcodePattern{
	{0xffff, 0x00e0, OP_CLS},
	{0xffff, 0x00ee, OP_RET},
	{0xf000, 0x0000, OP_SYS},
	{0xf000, 0x1000, OP_JP},
	{0xf000, 0x2000, OP_CALL},
	{0xf000, 0x3000, OP_SE_IMM},
	{0xf000, 0x4000, OP_SNE_IMM},
	{0xf00f, 0x5000, OP_SE_REG},
	{0xf000, 0x6000, OP_LD_IMM},
	{0xf000, 0x7000, OP_ADD_IMM},
	{0xf00f, 0x8000, OP_LD_REG},
	{0xf00f, 0x8001, OP_OR},
	{0xf00f, 0x8002, OP_AND},
	{0xf00f, 0x8003, OP_XOR},
	{0xf00f, 0x8004, OP_ADD_REG},
	{0xf00f, 0x8005, OP_SUB},
	{0xf00f, 0x8006, OP_SHR},
	{0xf00f, 0x8007, OP_SUBN},
	{0xf00f, 0x800e, OP_SHL},
	{0xf00f, 0x9000, OP_SNE_REG},
	{0xf000, 0xa000, OP_LD_I},
	{0xf000, 0xb000, OP_JP_V0},
	{0xf000, 0xc000, OP_RND},
	{0xf000, 0xd000, OP_DRW},
	{0xf0ff, 0xe09e, OP_SKP},
	{0xf0ff, 0xe0a1, OP_SKNP},
	{0xf0ff, 0xf007, OP_LD_VX_DT},
	{0xf0ff, 0xf00a, OP_LD_KEY},
	{0xf0ff, 0xf015, OP_LD_DT_VX},
	{0xf0ff, 0xf018, OP_LD_ST_VX},
	{0xf0ff, 0xf01e, OP_ADD_I},
	{0xf0ff, 0xf029, OP_LD_FONT},
	{0xf0ff, 0xf033, OP_BCD},
	{0xf0ff, 0xf055, OP_STORE_REGS},
	{0xf0ff, 0xf065, OP_LOAD_REGS},
}

// Decodes an instruction word into its operation. Words that match no
// pattern decode to OP_UNKNOWN
func Decode(instruction Instruction) OpKind {
	word := uint16(instruction)
	for _, entry := range opcodePatterns {
		if word&entry.Mask == entry.Pattern {
			return entry.Kind
		}
	}
	return OP_UNKNOWN
}
