// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"program image to run"`
}

// Flags contains behavior options.
type Flags struct {
	System   string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
	ETI      bool   `flag:"eti" usage:"load the program at the ETI 660 origin $600"`
	HighRes  bool   `flag:"hires" usage:"use the 128x64 display mode"`
	Headless bool   `flag:"headless" usage:"run without a window and print the final frame"`
	Steps    int    `flag:"steps" usage:"instructions to execute in headless mode" default:"1000"`
	Cycles   int    `flag:"cycles" usage:"instructions per frame, 0 runs until the display changes"`
	Scale    int    `flag:"scale" usage:"window scale factor" default:"8"`
	Seed     int64  `flag:"seed" usage:"random generator seed, 0 seeds from the current time"`
	Debug    bool   `flag:"debug" usage:"enable debug logging and instruction tracing"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}
