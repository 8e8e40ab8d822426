package emulator

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimeHandlerDefaults(t *testing.T) {
	th := NewTimeHandler(0)
	assert.Equal(t, uint64(DEFAULT_CPU_HZ), th.CpuHz)
	assert.Equal(t, uint64(0), th.Cycles)
}

func TestTimeHandlerTimerSync(t *testing.T) {
	// 600 instructions per second puts a timer tick every 10
	th := NewTimeHandler(600)

	syncs := 0
	for i := 0; i < 65; i++ {
		th.Tick(1)
		if th.NeedsTimerSync() {
			syncs++
		}
	}
	assert.Equal(t, 6, syncs)
}

func TestTimeHandlerTimerSyncNoDrift(t *testing.T) {
	// 500 is not a multiple of 60, the tick schedule must not drift
	th := NewTimeHandler(500)

	syncs := 0
	for i := 0; i < 500; i++ {
		th.Tick(1)
		if th.NeedsTimerSync() {
			syncs++
		}
	}

	// a 500Hz machine with a period of 500/60=8 fits 62 ticks into
	// one second of cycles
	assert.Equal(t, 62, syncs)
}

func TestTimeHandlerCyclesForFrame(t *testing.T) {
	th := NewTimeHandler(500)

	total := uint64(0)
	short, long := 0, 0
	for frame := 0; frame < TIMER_HZ; frame++ {
		cycles := th.CyclesForFrame()
		total += cycles
		switch cycles {
		case 8:
			short++
		case 9:
			long++
		default:
			t.Errorf("unexpected frame budget %d", cycles)
		}
	}

	// the fractional remainder spreads over the frames and adds up
	// to exactly one second of instructions
	assert.Equal(t, uint64(500), total)
	assert.Equal(t, 40, short)
	assert.Equal(t, 20, long)
}

func TestTimeSheet(t *testing.T) {
	sheet := NewTimeSheet()
	sheet.NextSync = 100

	assert.False(t, sheet.NeedsSync(99))
	assert.True(t, sheet.NeedsSync(100))
	assert.True(t, sheet.NeedsSync(150))

	delta := sheet.Sync(150)
	assert.Equal(t, uint64(150), delta)
	assert.Equal(t, uint64(150), sheet.LastSync)

	delta = sheet.Sync(170)
	assert.Equal(t, uint64(20), delta)
}
