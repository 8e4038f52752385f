// Package app provides the main application helper for the disassembler.
package app

import (
	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// PrintInfo prints the information about the input file that is processed.
func PrintInfo(logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) {
	if opts.Quiet {
		return
	}

	output := opts.Output
	if output == "" {
		output = "stdout"
	}

	logger.Info("Processing Game Boy binary",
		log.String("file", opts.Input),
		log.String("output", output),
		log.Bool("hex_comments", disasmOptions.HexComments),
		log.Bool("highlight", disasmOptions.Highlight),
	)
}
