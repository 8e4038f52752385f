package loader

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		valid bool
	}{
		{"bin extension", "game.bin", true},
		{"upper case extension", "GAME.BIN", true},
		{"bin inside name", "dump.bin.bak", true},
		{"gameboy rom", "game.gb", false},
		{"no extension", "game", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.file)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrNotBinary))
			}
		})
	}
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "test.bin")
	assert.NoError(t, os.WriteFile(name, []byte{0xC3, 0x50, 0x01}, 0o600))

	source, err := New().Load(name)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = source.Close() })

	assert.Equal(t, name, source.Name())
	data, err := io.ReadAll(source)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xC3, 0x50, 0x01}, data)

	_, err = source.ReadByte()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestLoader_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := New().Load(filepath.Join(dir, "test.gb"))
	assert.True(t, errors.Is(err, ErrNotBinary))

	_, err = New().Load(filepath.Join(dir, "missing.bin"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
