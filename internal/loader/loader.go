// Package loader handles program image loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Loader handles loading program images from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the raw program image from the file. Images that do not fit
// into memory from the origin are rejected without reading them completely.
func (l *Loader) Load(path string, origin uint16) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file, origin)
}

// LoadFromReader reads a raw program image from the reader.
func (l *Loader) LoadFromReader(reader io.Reader, origin uint16) ([]byte, error) {
	if int(origin) >= chip8.MemorySize {
		return nil, fmt.Errorf("%w: $%04X", chip8.ErrInvalidOrigin, origin)
	}
	available := chip8.MemorySize - int(origin)

	data, err := io.ReadAll(io.LimitReader(reader, int64(available)+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	if len(data) > available {
		return nil, fmt.Errorf("%w: more than %d bytes available at $%03X",
			chip8.ErrProgramTooLarge, available, origin)
	}
	if len(data) == 0 {
		return nil, errors.New("program is empty")
	}
	return data, nil
}
