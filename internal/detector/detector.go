// Package detector handles system architecture detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles system architecture detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system architecture from options or file auto-detection.
// It first checks if a system is explicitly specified in options, otherwise
// attempts to detect the system from the input filename extension.
// Only CHIP-8 programs can be run, any other system returns an error.
func (d *Detector) Detect(opts options.Program) (arch.System, error) {
	system, _ := arch.SystemFromString(opts.System)
	if system == "" {
		if opts.System != "" {
			return "", fmt.Errorf("unsupported system '%s'", opts.System)
		}
		system = d.detectFromFile(opts.Input)
		d.logger.Debug("Auto-detected system",
			log.Stringer("system", system),
			log.String("file", opts.Input))
	}

	if system != arch.CHIP8System {
		return system, fmt.Errorf("unsupported system '%s'", system)
	}
	return system, nil
}

// Origin returns the memory address the program image is loaded to.
func (d *Detector) Origin(opts options.Program) uint16 {
	if opts.ETI || strings.EqualFold(filepath.Ext(opts.Input), ".eti") {
		return chip8.ETIProgramStart
	}
	return chip8.ProgramStart
}

// detectFromFile determines the system type based on file extension.
func (d *Detector) detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".nes":
		return arch.NES
	default:
		// .ch8, .c8, .eti, .rom and raw binaries without a header
		return arch.CHIP8System
	}
}
