// Package main implements a CHIP-8 emulator
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
	"github.com/zeozeozeo/gochip8/emulator"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input string

	scale int
	hz    uint64
	mute  bool
	trace uint64

	debug bool
	quiet bool

	noIndexCarry bool
}

func main() {
	options := readArguments()
	logger := createLogger(options)

	machine, err := setupMachine(options, logger)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if options.trace > 0 {
		err = runTrace(app.Context(), logger, machine, options)
	} else {
		err = runWindowed(machine, options)
	}
	if err != nil {
		logger.Fatal(err.Error())
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.IntVar(&options.scale, "scale", emulator.DEFAULT_WINDOW_SCALE, "window scale factor")
	flags.Uint64Var(&options.hz, "hz", emulator.DEFAULT_CPU_HZ, "instructions executed per second")
	flags.BoolVar(&options.mute, "mute", false, "disable audio output")
	flags.Uint64Var(&options.trace, "trace", 0, "run headless for the given number of instructions and log each one")
	flags.BoolVar(&options.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&options.noIndexCarry, "no-index-carry", false, "keep VF untouched when ADD I, Vx overflows the address space")
	showVersion := flags.Bool("version", false, "print the version and exit")

	err := flags.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("gochip8 %s\n", buildinfo.Version(version, commit, date))
		os.Exit(0)
	}

	args := flags.Args()
	if err != nil || len(args) == 0 {
		printBanner()
		fmt.Printf("usage: gochip8 [options] <rom file>\n\n")
		flags.PrintDefaults()
		fmt.Printf(`
keypad mapping:
  1 2 3 4        1 2 3 C
  q w e r  --->  4 5 6 D
  a s d f        7 8 9 E
  z x c v        A 0 B F

esc quits, F1 toggles instruction tracing
`)
		os.Exit(1)
	}
	options.input = args[0]

	return options
}

func printBanner() {
	fmt.Println("[-----------------------------]")
	fmt.Println("[ gochip8 - a CHIP-8 emulator ]")
	fmt.Printf("[-----------------------------]\n\n")
	fmt.Printf("version: %s\n", buildinfo.Version(version, commit, date))
	fmt.Printf("homepage: https://github.com/zeozeozeo/gochip8\n\n")
}

func createLogger(options optionFlags) *log.Logger {
	cfg := log.DefaultConfig()
	if options.debug {
		cfg.Level = log.DebugLevel
	} else if options.quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func setupMachine(options optionFlags, logger *log.Logger) (*emulator.Machine, error) {
	rom, err := loadROM(options.input, logger)
	if err != nil {
		return nil, err
	}

	mem := emulator.NewMemory()
	mem.LoadProgram(rom)

	machine := emulator.NewMachine(mem)
	machine.Log = logger
	machine.IndexCarry = !options.noIndexCarry
	return machine, nil
}

func loadROM(path string, logger *log.Logger) (*emulator.ROM, error) {
	logger.Debug("loading ROM", log.String("path", path))
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ROM: %w", err)
	}
	defer file.Close()

	rom, err := emulator.LoadROM(file)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	logger.Info("loaded ROM",
		log.String("path", path),
		log.Int("bytes", rom.Size()),
		log.String("took", time.Since(start).String()))
	return rom, nil
}

// Runs the machine in a window until it is closed
func runWindowed(machine *emulator.Machine, options optionFlags) error {
	timeHandler := emulator.NewTimeHandler(options.hz)

	var beeper *emulator.OtoBeeper
	if !options.mute {
		var err error
		beeper, err = emulator.NewOtoBeeper()
		if err != nil {
			// a missing audio device is not fatal, run muted
			machine.Log.Error("opening audio device failed, running muted", log.Err(err))
		} else {
			defer beeper.Close()
		}
	}

	config := emulator.NewRendererConfig()
	config.Scale = options.scale

	renderer := machine.NewEbitenRenderer(timeHandler, beeper, config)
	return renderer.Run()
}

// Runs the machine headless for the configured number of instructions,
// logging each one, and prints the final display contents
func runTrace(ctx context.Context, logger *log.Logger, machine *emulator.Machine, options optionFlags) error {
	timeHandler := emulator.NewTimeHandler(options.hz)
	visited := set.New[uint16]()
	distinct := 0

	for timeHandler.Cycles < options.trace {
		if ctx.Err() != nil {
			logger.Info("interrupted")
			break
		}

		pc := machine.PC
		word := machine.Mem.LoadWord(pc)
		logger.Info(emulator.Disassemble(emulator.Instruction(word)),
			log.String("pc", fmt.Sprintf("$%03X", pc)),
			log.String("word", fmt.Sprintf("$%04X", word)))
		if !visited.Contains(pc) {
			visited.Add(pc)
			distinct++
		}

		if err := machine.Step(); err != nil {
			// the fault is already logged, stop the trace
			break
		}
		timeHandler.Tick(1)
		if timeHandler.NeedsTimerSync() {
			machine.TickTimers()
		}
	}

	logger.Info("trace finished",
		log.Int("instructions", int(timeHandler.Cycles)),
		log.Int("distinct", distinct),
		log.String("state", machine.State.String()))

	fmt.Println(machine.Fb.String())
	return nil
}
