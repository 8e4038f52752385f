// Package writer implements the assembly line output of decoded units.
package writer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/gbdisasm/internal/disasm"
)

// Highlighter decorates a single output line, for example with terminal colors.
type Highlighter interface {
	Line(line string) (string, error)
}

// Options of the writer.
type Options struct {
	HexComments bool        // append the opcode byte to every line
	Highlighter Highlighter // optional
}

// Writer writes one line per decoded unit.
type Writer struct {
	options Options
	writer  *bufio.Writer
	lines   int
}

// New creates a new writer. Output is buffered until Flush is called.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  bufio.NewWriter(writer),
	}
}

// FormatUnit renders a unit as a single line without line break.
func FormatUnit(unit disasm.Unit, hexComments bool) string {
	if !hexComments {
		return fmt.Sprintf("%04X: %s", unit.Address, unit.Text)
	}
	return fmt.Sprintf("%04X: %-14s x%02X", unit.Address, unit.Text, unit.Opcode)
}

// WriteUnit writes the line of a decoded unit.
func (w *Writer) WriteUnit(unit disasm.Unit) error {
	line := FormatUnit(unit, w.options.HexComments)

	if w.options.Highlighter != nil {
		highlighted, err := w.options.Highlighter.Line(line)
		if err != nil {
			return fmt.Errorf("highlighting line: %w", err)
		}
		line = highlighted
	}

	if _, err := fmt.Fprintln(w.writer, line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	w.lines++
	return nil
}

// Lines returns the number of lines written.
func (w *Writer) Lines() int {
	return w.lines
}

// Flush writes all buffered lines to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
