// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/gbdisasm/internal/loader"
	"github.com/retroenv/gbdisasm/internal/options"
	retrocli "github.com/retroenv/retrogolib/cli"
)

// outputFlags contains flags that are inverted into disassembler options.
type outputFlags struct {
	NoHexComments bool `flag:"nohexcomments" usage:"do not output opcode bytes as hex values"`
}

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := retrocli.NewFlagSet("gbdisasm")
	var opts options.Program
	var output outputFlags
	flags.AddSection("Parameters", &opts.Parameters)
	flags.AddSection("Flags", &opts.Flags)
	flags.AddSection("Output", &output)

	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, retrocli.ErrHelpRequested) {
			// the flag set already printed the usage
			return opts, options.Disassembler{}, &UsageError{}
		}
		return opts, options.Disassembler{}, &UsageError{flags: flags, msg: err.Error()}
	}

	if len(args) == 0 && opts.Input == "" && opts.Batch == "" {
		return opts, options.Disassembler{}, &UsageError{flags: flags, msg: "no input file given"}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Input == "" && opts.Batch == "" {
		opts.Input = args[0]
	}

	if err := normalizeOptions(flags, &opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	disasmOptions := options.NewDisassembler()
	disasmOptions.HexComments = !output.NoHexComments
	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *retrocli.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "usage requested"
	}
	return e.msg
}

// ShowUsage prints the usage and all flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("error: %s\n\n", e.msg)
	}
	if e.flags != nil {
		e.flags.ShowUsage()
	}
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *retrocli.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(flags *retrocli.FlagSet, opts *options.Program) error {
	if opts.Input != "" {
		if err := loader.Validate(opts.Input); err != nil {
			return &UsageError{flags: flags, msg: err.Error()}
		}
	}

	opts.Color = strings.ToLower(opts.Color)
	validModes := []string{options.ColorAuto, options.ColorAlways, options.ColorNever}
	for _, valid := range validModes {
		if opts.Color == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported color mode: %s. Valid options: %s",
		opts.Color, strings.Join(validModes, ", "))
}
