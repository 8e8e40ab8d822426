package emulator

// A fatal machine condition. Faults are not recoverable: the machine
// transitions to STATE_HALTED and stays there
type Fault uint8

const (
	FAULT_STACK_OVERFLOW  Fault = 0x1 // CALL with all stack slots in use
	FAULT_STACK_UNDERFLOW Fault = 0x2 // RET with an empty call stack
)

// Faults are surfaced to the driver as errors from Step
func (fault Fault) Error() string {
	switch fault {
	case FAULT_STACK_OVERFLOW:
		return "call stack overflow"
	case FAULT_STACK_UNDERFLOW:
		return "call stack underflow"
	}
	return "unknown fault"
}
