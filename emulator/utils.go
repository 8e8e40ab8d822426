package emulator

// Names of registers
var RegisterNames = []string{
	"v0", "v1", "v2", "v3", "v4", "v5", "v6", "v7", // 00
	"v8", "v9", "va", "vb", "vc", "vd", "ve", "vf", // 08
}

// Returns the name of the register index
func GetRegisterName(index uint8) string {
	return RegisterNames[index&0xf]
}

func oneIfTrue(val bool) uint8 {
	if val {
		return 1
	}
	return 0
}
