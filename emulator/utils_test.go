package emulator

import (
	"fmt"
	"testing"
)

func TestGetRegisterName(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	for i := uint8(0); i < 16; i++ {
		assert(GetRegisterName(i) == fmt.Sprintf("v%x", i))
	}

	// out of range indices wrap to the low nibble
	assert(GetRegisterName(0x10) == "v0")
	assert(GetRegisterName(0xff) == "vf")
}

func TestOneIfTrue(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(oneIfTrue(true) == 1)
	assert(oneIfTrue(false) == 0)
}
