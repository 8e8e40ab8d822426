package emulator

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypadSetAndPressed(t *testing.T) {
	keypad := NewKeypad()
	assert.False(t, keypad.Pressed(5))

	keypad.Set(5, true)
	assert.True(t, keypad.Pressed(5))

	keypad.Set(5, false)
	assert.False(t, keypad.Pressed(5))
}

func TestKeypadMasksKeyNumbers(t *testing.T) {
	keypad := NewKeypad()

	// only the low nibble selects a key
	keypad.Set(0x15, true)
	assert.True(t, keypad.Pressed(5))
	assert.True(t, keypad.Pressed(0xf5))
}

func TestKeypadFirstPressed(t *testing.T) {
	keypad := NewKeypad()

	_, ok := keypad.FirstPressed()
	assert.False(t, ok)

	keypad.Set(0xb, true)
	keypad.Set(0x4, true)

	key, ok := keypad.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x4), key)
}

func TestKeypadClear(t *testing.T) {
	keypad := NewKeypad()
	keypad.Set(0, true)
	keypad.Set(0xf, true)

	keypad.Clear()
	for key := uint8(0); key < KEY_COUNT; key++ {
		assert.False(t, keypad.Pressed(key))
	}
}
