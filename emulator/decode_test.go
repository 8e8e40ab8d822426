package emulator

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word uint16
		kind OpKind
	}{
		{0x00e0, OP_CLS},
		{0x00ee, OP_RET},
		{0x0123, OP_SYS},
		{0x00e1, OP_SYS}, // close to the exact matches, still a machine routine
		{0x1abc, OP_JP},
		{0x2abc, OP_CALL},
		{0x3a12, OP_SE_IMM},
		{0x4a12, OP_SNE_IMM},
		{0x5ab0, OP_SE_REG},
		{0x6a12, OP_LD_IMM},
		{0x7a12, OP_ADD_IMM},
		{0x8ab0, OP_LD_REG},
		{0x8ab1, OP_OR},
		{0x8ab2, OP_AND},
		{0x8ab3, OP_XOR},
		{0x8ab4, OP_ADD_REG},
		{0x8ab5, OP_SUB},
		{0x8ab6, OP_SHR},
		{0x8ab7, OP_SUBN},
		{0x8abe, OP_SHL},
		{0x9ab0, OP_SNE_REG},
		{0xaabc, OP_LD_I},
		{0xbabc, OP_JP_V0},
		{0xca12, OP_RND},
		{0xdab5, OP_DRW},
		{0xea9e, OP_SKP},
		{0xeaa1, OP_SKNP},
		{0xfa07, OP_LD_VX_DT},
		{0xfa0a, OP_LD_KEY},
		{0xfa15, OP_LD_DT_VX},
		{0xfa18, OP_LD_ST_VX},
		{0xfa1e, OP_ADD_I},
		{0xfa29, OP_LD_FONT},
		{0xfa33, OP_BCD},
		{0xfa55, OP_STORE_REGS},
		{0xfa65, OP_LOAD_REGS},

		// no pattern matches these
		{0x5ab1, OP_UNKNOWN},
		{0x8ab8, OP_UNKNOWN},
		{0x8abf, OP_UNKNOWN},
		{0x9abf, OP_UNKNOWN},
		{0xea00, OP_UNKNOWN},
		{0xeaff, OP_UNKNOWN},
		{0xfa00, OP_UNKNOWN},
		{0xfaff, OP_UNKNOWN},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04x", tt.word), func(t *testing.T) {
			assert.Equal(t, tt.kind, Decode(Instruction(tt.word)))
		})
	}
}
