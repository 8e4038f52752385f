// Package loader handles input file loading operations.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// BinaryExtension is the extension that raw Game Boy images are expected to have.
const BinaryExtension = ".bin"

// ErrNotBinary is returned for input files that are not named as raw binary images.
var ErrNotBinary = errors.New("input must be a binary file " + BinaryExtension)

// Source is an opened input file that is read byte by byte from address 0.
type Source struct {
	*bufio.Reader

	file io.Closer
	name string
}

// Name returns the file name of the source.
func (s *Source) Name() string {
	return s.name
}

// Close closes the underlying file.
func (s *Source) Close() error {
	return s.file.Close()
}

// Loader handles loading input files from disk.
type Loader struct{}

// New creates a new input file loader.
func New() *Loader {
	return &Loader{}
}

// Load validates the file name and opens the file for sequential reading.
func (l *Loader) Load(name string) (*Source, error) {
	if err := Validate(name); err != nil {
		return nil, err
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", name, err)
	}

	return &Source{
		Reader: bufio.NewReader(file),
		file:   file,
		name:   name,
	}, nil
}

// Validate checks whether the file name refers to a raw binary image.
func Validate(name string) error {
	if !strings.Contains(strings.ToLower(name), BinaryExtension) {
		return fmt.Errorf("%w: %s", ErrNotBinary, name)
	}
	return nil
}
