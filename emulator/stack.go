package emulator

const STACK_DEPTH = 16 // Maximum number of nested subroutine calls

// Holds return addresses for subroutine calls
type CallStack struct {
	Buffer [STACK_DEPTH]uint16 // Return address slots
	Ptr    uint8               // Index of the next free slot
}

// Returns a new CallStack instance
func NewCallStack() *CallStack {
	return &CallStack{}
}

// Returns true if the stack holds no return addresses
func (stack *CallStack) IsEmpty() bool {
	return stack.Ptr == 0
}

// Returns true if all STACK_DEPTH slots are in use
func (stack *CallStack) IsFull() bool {
	return stack.Ptr == STACK_DEPTH
}

// Resets the stack
func (stack *CallStack) Clear() {
	stack.Ptr = 0
	for i := 0; i < len(stack.Buffer); i++ {
		stack.Buffer[i] = 0
	}
}

// Pushes a return address onto the stack. Returns false if the stack
// is full, in which case the value is discarded
func (stack *CallStack) Push(addr uint16) bool {
	if stack.IsFull() {
		return false
	}
	stack.Buffer[stack.Ptr] = addr
	stack.Ptr++
	return true
}

// Pops the most recent return address off the stack. Returns false
// if the stack is empty
func (stack *CallStack) Pop() (uint16, bool) {
	if stack.IsEmpty() {
		return 0, false
	}
	stack.Ptr--
	return stack.Buffer[stack.Ptr], true
}

// Returns the amount of return addresses on the stack
func (stack *CallStack) Length() uint8 {
	return stack.Ptr
}
