// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// Default values of numeric options.
const (
	DefaultSteps = 1000
	DefaultScale = 8
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage line and the flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <program to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program to run, please pass the program as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.System = strings.ToLower(strings.TrimSpace(opts.System))
	if opts.System == "chip-8" {
		opts.System = "chip8"
	}

	if opts.Steps < 0 {
		return fmt.Errorf("invalid step count %d, must not be negative", opts.Steps)
	}
	if opts.Cycles < 0 {
		return fmt.Errorf("invalid cycles per frame %d, must not be negative", opts.Cycles)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid window scale %d, must be at least 1", opts.Scale)
	}
	if opts.Debug && opts.Quiet {
		// debug output wins over quiet mode
		opts.Quiet = false
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the program image to run")
	flags.StringVar(&opts.System, "s", "", "system to run (chip8) - if not auto-detected from file extension")
	flags.BoolVar(&opts.ETI, "eti", false, "load the program at the ETI 660 origin $600 instead of $200")
	flags.BoolVar(&opts.HighRes, "hires", false, "use the 128x64 high resolution display mode")
	flags.BoolVar(&opts.Headless, "headless", false, "run without a window and print the final frame to the console")
	flags.IntVar(&opts.Steps, "steps", DefaultSteps, "number of instructions to execute in headless mode")
	flags.IntVar(&opts.Cycles, "cycles", 0, "instructions per frame, 0 runs until the display changes")
	flags.IntVar(&opts.Scale, "scale", DefaultScale, "window scale factor")
	flags.Int64Var(&opts.Seed, "seed", 0, "random generator seed, 0 seeds from the current time")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging and instruction tracing")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
