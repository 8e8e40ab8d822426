package emulator

const (
	MEMORY_SIZE   = 4096  // Full address space: 4KB
	ADDRESS_MASK  = 0xfff // Addresses are 12 bits wide
	PROGRAM_START = 0x200 // Programs are loaded at this offset
)

type Memory struct {
	Data [MEMORY_SIZE]byte // Memory buffer
}

// Creates a new Memory instance (zero-filled, with the builtin font
// placed at the start of the address space)
func NewMemory() *Memory {
	mem := &Memory{}
	copy(mem.Data[FONT_RANGE.Start:], FontData[:])
	return mem
}

// Fetches the byte at `addr`. The address is masked to 12 bits, so
// out of range accesses wrap around instead of faulting
func (mem *Memory) Load(addr uint16) byte {
	return mem.Data[addr&ADDRESS_MASK]
}

// Sets the byte at `addr`. The address is masked to 12 bits
func (mem *Memory) Store(addr uint16, val byte) {
	mem.Data[addr&ADDRESS_MASK] = val
}

// Loads a 16 bit big endian word at `addr`. Both byte fetches wrap
// around the 12 bit address space, so a word read at 0xfff picks its
// low byte from 0x000
func (mem *Memory) LoadWord(addr uint16) uint16 {
	hi := uint16(mem.Load(addr))
	lo := uint16(mem.Load(addr + 1))
	return hi<<8 | lo
}

// Copies a program image into memory at PROGRAM_START
func (mem *Memory) LoadProgram(rom *ROM) {
	copy(mem.Data[PROGRAM_RANGE.Start:], rom.Data)
}
