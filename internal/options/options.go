// Package options contains the program options.
package options

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"name of the input .bin file"`
	Output string `flag:"o" usage:"name of the output .asm file, printed on console if no name given"`
	Batch  string `flag:"batch" usage:"process a batch of given path and file mask and automatically .asm file naming, for example *.bin"`
}

// Flags contains behavior options.
type Flags struct {
	Color string `flag:"color" usage:"highlight the output (auto/always/never)" default:"auto"`
	Debug bool   `flag:"debug" usage:"enable debugging options for extended logging"`
	Quiet bool   `flag:"q" usage:"perform operations quietly"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
}

// Disassembler defines options to control the output of the disassembler.
type Disassembler struct {
	HexComments bool // append the raw opcode byte to every line
	Highlight   bool // colorize the output lines
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		HexComments: true,
	}
}
