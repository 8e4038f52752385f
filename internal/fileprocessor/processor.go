// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/gbdisasm/internal/app"
	"github.com/retroenv/gbdisasm/internal/config"
	"github.com/retroenv/gbdisasm/internal/disasm"
	"github.com/retroenv/gbdisasm/internal/highlight"
	"github.com/retroenv/gbdisasm/internal/loader"
	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/gbdisasm/internal/writer"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("processing file: %w", err)
	}

	source, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading file: %w", err)
	}
	defer func() { _ = source.Close() }()

	output, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if output == os.Stdout {
			return
		}
		if closeErr := output.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing output file %s: %w", opts.Output, closeErr))
		}
	}()

	disasmOptions.Highlight = config.UseColor(opts.Color, output)
	app.PrintInfo(logger, opts, disasmOptions)

	summary, err := Disassemble(logger, source, output, disasmOptions)
	if err != nil {
		return err
	}

	logger.Info("Disassembly finished",
		log.String("file", source.Name()),
		log.Int("instructions", summary.Instructions),
		log.Int("data_runs", summary.DataRuns),
		log.Int("unknown", summary.Unknown),
		log.Int("bytes", summary.Bytes),
	)
	return nil
}

// Disassemble decodes the source and writes the listing to output.
func Disassemble(logger *log.Logger, source io.ByteReader, output io.Writer,
	disasmOptions options.Disassembler) (disasm.Summary, error) {

	writerOptions := writer.Options{
		HexComments: disasmOptions.HexComments,
	}
	if disasmOptions.Highlight {
		writerOptions.Highlighter = highlight.New()
	}

	w := writer.New(output, writerOptions)
	summary, err := disasm.New(logger).Process(source, w.WriteUnit)
	if err != nil {
		// flush the lines decoded before the failure
		return summary, errors.Join(fmt.Errorf("disassembling: %w", err), w.Flush())
	}
	if err := w.Flush(); err != nil {
		return summary, err
	}

	logger.Debug("Listing written", log.Int("lines", w.Lines()))
	return summary, nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

func createWriter(opts options.Program) (*os.File, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("gbdisasm - Game Boy binary disassembler",
		log.String("version", buildinfo.Version(version, commit, date)))
}
