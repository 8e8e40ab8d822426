package emulator

const KEY_COUNT = 16 // Keys 0..F on the hexadecimal keypad

// Holds the state of the 16 key hexadecimal keypad
type Keypad struct {
	Keys [KEY_COUNT]bool // True while the key is held down
}

// Returns a new Keypad instance with no keys held
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Sets the held state of a key. The index is masked to 0..15
func (keypad *Keypad) Set(key uint8, pressed bool) {
	keypad.Keys[key&0xf] = pressed
}

// Returns true if the key is held down. The index is masked to 0..15
func (keypad *Keypad) Pressed(key uint8) bool {
	return keypad.Keys[key&0xf]
}

// Scans keys 0..15 in ascending order and returns the first held one.
// The second return value is false if no key is held
func (keypad *Keypad) FirstPressed() (uint8, bool) {
	for key := uint8(0); key < KEY_COUNT; key++ {
		if keypad.Keys[key] {
			return key, true
		}
	}
	return 0, false
}

// Releases all keys
func (keypad *Keypad) Clear() {
	for i := 0; i < len(keypad.Keys); i++ {
		keypad.Keys[i] = false
	}
}
