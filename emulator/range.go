package emulator

var (
	// The range of the builtin font in system memory
	FONT_RANGE = NewRange(0x000, FONT_GLYPH_SIZE*FONT_GLYPH_COUNT)
	// The range where program images are loaded. Everything from
	// PROGRAM_START up to the end of memory belongs to the program
	PROGRAM_RANGE = NewRange(PROGRAM_START, MEMORY_SIZE-PROGRAM_START)
)

type Range struct {
	Start  uint16 // Start address
	Length uint16 // Length of the mapping
}

func NewRange(start uint16, length uint16) Range {
	return Range{Start: start, Length: length}
}

// Returns whether `addr` is located inside this range
func (r *Range) Contains(addr uint16) bool {
	return addr >= r.Start && addr < r.Start+r.Length
}

// Returns the offset between `addr` and the `Start` of the range.
// Does not check if the range contains the address, so if `addr`
// is smaller than `Start`, there will be an overflow
func (r *Range) Offset(addr uint16) uint16 {
	return addr - r.Start
}
