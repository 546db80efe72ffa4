// Package runner orchestrates loading and running a program.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// headlessBatchSize is the number of steps executed between two context
// cancellation checks in headless mode.
const headlessBatchSize = 1000

// Runner orchestrates the complete run workflow.
type Runner struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	output   io.Writer
}

// New creates a new runner that prints headless frames to output.
func New(logger *log.Logger, output io.Writer) *Runner {
	return &Runner{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		output:   output,
	}
}

// Execute loads the program of the options and runs it either in a window
// or headless.
func (r *Runner) Execute(ctx context.Context, opts options.Program) error {
	system, err := r.detector.Detect(opts)
	if err != nil {
		return fmt.Errorf("detecting system: %w", err)
	}
	origin := r.detector.Origin(opts)

	program, err := r.loader.Load(opts.Input, origin)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	machine, err := r.CreateMachine(opts, origin, program)
	if err != nil {
		return err
	}

	r.printInfo(opts, system, origin)

	if opts.Headless {
		return r.runHeadless(ctx, machine, opts.Steps)
	}

	cfg := frontend.Config{
		Title:          "CHIP-8 - " + opts.Input,
		Scale:          opts.Scale,
		CyclesPerFrame: opts.Cycles,
		Palette:        frontend.DefaultPalette,
	}
	if err := frontend.Run(ctx, r.logger, machine, cfg); err != nil {
		return fmt.Errorf("running frontend: %w", err)
	}
	return nil
}

// CreateMachine creates a machine configured by the options with the
// program loaded at the origin.
func (r *Runner) CreateMachine(opts options.Program, origin uint16, program []byte) (*chip8.Machine, error) {
	machine := chip8.New(r.logger, config.MachineOptions(opts))
	if err := machine.Load(origin, program); err != nil {
		return nil, fmt.Errorf("loading program into memory: %w", err)
	}
	return machine, nil
}

// runHeadless executes up to steps instructions and prints the final frame.
func (r *Runner) runHeadless(ctx context.Context, machine *chip8.Machine, steps int) error {
	executed := 0
	var runErr error
	for executed < steps && !machine.Halted() {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := machine.Run(min(headlessBatchSize, steps-executed))
		executed += n
		if err != nil {
			runErr = err
			break
		}
		if n == 0 {
			break
		}
	}

	r.logger.Info("Execution finished",
		log.Int("steps", executed),
		log.Hex("pc", machine.ProgramCounter()))

	if err := r.printFrame(machine); err != nil {
		return fmt.Errorf("printing frame: %w", err)
	}

	if runErr != nil {
		var insErr *chip8.InstructionError
		if errors.As(runErr, &insErr) {
			r.logger.Debug("Instruction failed",
				log.Hex("address", insErr.Address),
				log.Hex("opcode", insErr.Opcode),
				log.String("instruction", insErr.Mnemonic))
		}
		return fmt.Errorf("executing program: %w", runErr)
	}
	return nil
}

func (r *Runner) printFrame(machine *chip8.Machine) error {
	style := frontend.ASCIIStyle
	if f, ok := r.output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		style = frontend.BlockStyle
	}

	display := machine.Display()
	return frontend.WriteText(r.output, &display, machine.HighResolution(), style)
}

// printInfo prints the information about the loaded program.
func (r *Runner) printInfo(opts options.Program, system arch.System, origin uint16) {
	if opts.Quiet {
		return
	}

	mode := "low"
	if opts.HighRes {
		mode = "high"
	}
	r.logger.Info("Running program",
		log.String("file", opts.Input),
		log.Stringer("system", system),
		log.Hex("origin", origin),
		log.String("resolution", mode))
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
