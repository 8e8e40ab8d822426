package emulator

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrogolib/log"
)

// Maps host keys to the hex keypad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R  --->  4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keymap = map[ebiten.Key]uint8{
	ebiten.KeyDigit1: 0x1, ebiten.KeyDigit2: 0x2, ebiten.KeyDigit3: 0x3, ebiten.KeyDigit4: 0xc,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xd,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xe,
	ebiten.KeyZ: 0xa, ebiten.KeyX: 0x0, ebiten.KeyC: 0xb, ebiten.KeyV: 0xf,
}

// An Ebitengine frontend that implements ebiten.Game. Every 60 Hz tick
// it feeds the machine a frame worth of cycles, decrements the timers
// and redraws the display when it changed
type EbitenRenderer struct {
	Machine *Machine
	Time    *TimeHandler
	Beeper  *OtoBeeper // nil when muted
	Config  RendererConfig

	frame  *ebiten.Image // offscreen display texture
	pixels []byte        // RGBA staging buffer
	trace  bool          // log every executed instruction

	titleAt     time.Time // last window title refresh
	titleCycles uint64    // cycle counter at the last refresh
}

// Returns a new Ebitengine frontend for the machine. `beeper` may be
// nil to run without audio
func (machine *Machine) NewEbitenRenderer(timeHandler *TimeHandler, beeper *OtoBeeper, config RendererConfig) *EbitenRenderer {
	renderer := &EbitenRenderer{
		Machine: machine,
		Time:    timeHandler,
		Beeper:  beeper,
		Config:  config,
		titleAt: time.Now(),
	}
	return renderer
}

func (renderer *EbitenRenderer) Update() error {
	machine := renderer.Machine

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		renderer.trace = !renderer.trace
		if renderer.trace {
			machine.Log.Info("instruction trace enabled")
		} else {
			machine.Log.Info("instruction trace disabled")
		}
	}

	for key, pad := range keymap {
		machine.SetKey(pad, ebiten.IsKeyPressed(key))
	}

	// a halted machine stays on screen for inspection, only the
	// timers keep running
	if machine.State != STATE_HALTED {
		cycles := renderer.Time.CyclesForFrame()
		for cycle := uint64(0); cycle < cycles; cycle++ {
			if renderer.trace {
				renderer.traceInstruction()
			}
			if err := machine.Step(); err != nil {
				break
			}
			renderer.Time.Tick(1)
		}
	}

	// ebiten calls Update at 60 ticks per second, which is exactly
	// the timer rate
	machine.TickTimers()

	if renderer.Beeper != nil {
		renderer.Beeper.Gate(machine.IsToneActive())
	}

	renderer.updateTitle()
	return nil
}

func (renderer *EbitenRenderer) Draw(screen *ebiten.Image) {
	if renderer.frame == nil {
		renderer.frame = ebiten.NewImage(DISPLAY_WIDTH, DISPLAY_HEIGHT)
		renderer.pixels = make([]byte, DISPLAY_WIDTH*DISPLAY_HEIGHT*4)
	}

	if renderer.Machine.Fb.TakeDirty() {
		writeRGBA(renderer.Machine.Fb, renderer.pixels)
		renderer.frame.WritePixels(renderer.pixels)
	}
	screen.DrawImage(renderer.frame, nil)
}

func (renderer *EbitenRenderer) Layout(_, _ int) (int, int) {
	// ebiten upscales the display to the window size
	return DISPLAY_WIDTH, DISPLAY_HEIGHT
}

// Opens the window and runs the game loop until the window is closed
// or ESC is pressed
func (renderer *EbitenRenderer) Run() error {
	ebiten.SetWindowSize(
		DISPLAY_WIDTH*renderer.Config.Scale,
		DISPLAY_HEIGHT*renderer.Config.Scale,
	)
	ebiten.SetWindowTitle(renderer.Config.Title)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(renderer)
}

// Logs the instruction the machine is about to execute
func (renderer *EbitenRenderer) traceInstruction() {
	machine := renderer.Machine
	word := machine.Mem.LoadWord(machine.PC)
	machine.Log.Info(Disassemble(Instruction(word)),
		log.String("pc", fmt.Sprintf("$%03X", machine.PC)),
		log.String("word", fmt.Sprintf("$%04X", word)),
	)
}

// Refreshes the FPS and instruction rate in the window title once
// per second
func (renderer *EbitenRenderer) updateTitle() {
	elapsed := time.Since(renderer.titleAt)
	if elapsed < time.Second {
		return
	}

	executed := renderer.Time.Cycles - renderer.titleCycles
	ips := float64(executed) / elapsed.Seconds()
	ebiten.SetWindowTitle(fmt.Sprintf("%s | %.0f FPS | %.0f IPS",
		renderer.Config.Title, ebiten.ActualFPS(), ips))

	renderer.titleAt = time.Now()
	renderer.titleCycles = renderer.Time.Cycles
}
