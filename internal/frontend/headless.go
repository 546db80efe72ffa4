//go:build headless

package frontend

import (
	"context"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Run is not available without window support.
func Run(_ context.Context, _ *log.Logger, _ *chip8.Machine, _ Config) error {
	return ErrNoDisplay
}
