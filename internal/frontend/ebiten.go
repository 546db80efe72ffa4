//go:build !headless

package frontend

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// keypad maps the hexadecimal keypad to the left block of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var keypad = [chip8.KeyCount]ebiten.Key{
	0x0: ebiten.KeyX,
	0x1: ebiten.Key1,
	0x2: ebiten.Key2,
	0x3: ebiten.Key3,
	0x4: ebiten.KeyQ,
	0x5: ebiten.KeyW,
	0x6: ebiten.KeyE,
	0x7: ebiten.KeyA,
	0x8: ebiten.KeyS,
	0x9: ebiten.KeyD,
	0xA: ebiten.KeyZ,
	0xB: ebiten.KeyC,
	0xC: ebiten.Key4,
	0xD: ebiten.KeyR,
	0xE: ebiten.KeyF,
	0xF: ebiten.KeyV,
}

type game struct {
	ctx     context.Context
	logger  *log.Logger
	machine *chip8.Machine
	config  Config

	frame  *ebiten.Image
	pixels []byte
	halted bool
}

// Run opens a window and drives the machine until the window is closed,
// Escape is pressed, the context is cancelled or the program fails.
func Run(ctx context.Context, logger *log.Logger, machine *chip8.Machine, config Config) error {
	scale := max(config.Scale, 1)
	ebiten.SetWindowSize(FrameWidth*scale, FrameHeight*scale)
	ebiten.SetWindowTitle(config.Title)

	g := &game{
		ctx:     ctx,
		logger:  logger,
		machine: machine,
		config:  config,
		pixels:  make([]byte, FrameBufferSize),
	}
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return ctx.Err()
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var keys [chip8.KeyCount]bool
	for key, physical := range keypad {
		keys[key] = ebiten.IsKeyPressed(physical)
	}
	g.machine.SetKeys(keys)

	if g.machine.Halted() {
		if !g.halted {
			g.halted = true
			g.logger.Info("Program halted, press Escape to quit",
				log.Hex("pc", g.machine.ProgramCounter()))
		}
		return nil
	}

	var err error
	if g.config.CyclesPerFrame > 0 {
		_, err = g.machine.Run(g.config.CyclesPerFrame)
	} else {
		_, err = g.machine.RunUntilRedraw(maxStepsPerFrame)
	}
	if err != nil {
		return fmt.Errorf("executing program: %w", err)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(FrameWidth, FrameHeight)
		g.refresh()
	} else if g.machine.NeedsRedraw() {
		g.refresh()
	}

	screen.DrawImage(g.frame, &ebiten.DrawImageOptions{})
}

// refresh uploads the current display to the frame image and
// acknowledges the redraw request.
func (g *game) refresh() {
	display := g.machine.Display()
	Rasterize(g.pixels, &display, g.machine.HighResolution(), g.config.Palette)
	g.frame.WritePixels(g.pixels)
	g.machine.ClearRedraw()
}

func (g *game) Layout(_, _ int) (int, int) {
	return FrameWidth, FrameHeight
}
