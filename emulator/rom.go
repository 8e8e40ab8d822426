package emulator

import (
	"fmt"
	"io"
)

// The biggest program image that fits between PROGRAM_START and the
// end of memory
const MAX_ROM_SIZE = MEMORY_SIZE - PROGRAM_START

// This stores the raw program data
type ROM struct {
	Data []byte // Raw program data
}

// Returned when a program image does not fit into the program area
// of memory
type RomTooLargeError struct {
	Size int // Size of the rejected image in bytes
}

func (e *RomTooLargeError) Error() string {
	return fmt.Sprintf("invalid ROM size (at most %d, got %d (bytes))", MAX_ROM_SIZE, e.Size)
}

// Loads a program image from a reader. Note that the image must fit
// into `MAX_ROM_SIZE` bytes, everything else is rejected at load time
// so execution never has to deal with a partially mapped program
func LoadROM(r io.Reader) (*ROM, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) > MAX_ROM_SIZE {
		return nil, &RomTooLargeError{Size: len(data)}
	}
	return &ROM{Data: data}, nil
}

// Returns the size of the program image in bytes
func (rom *ROM) Size() int {
	return len(rom.Data)
}
