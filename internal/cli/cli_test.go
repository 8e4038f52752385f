package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		want   options.Program
		disasm options.Disassembler
	}{
		{
			name:   "default flags",
			args:   []string{"prog", "test.bin"},
			want:   options.Program{Parameters: options.Parameters{Input: "test.bin"}, Flags: options.Flags{Color: "auto"}},
			disasm: options.Disassembler{HexComments: true},
		},
		{
			name:   "nohexcomments flag",
			args:   []string{"prog", "-nohexcomments", "test.bin"},
			want:   options.Program{Parameters: options.Parameters{Input: "test.bin"}, Flags: options.Flags{Color: "auto"}},
			disasm: options.Disassembler{},
		},
		{
			name: "output and color",
			args: []string{"prog", "-o", "out.asm", "-color", "NEVER", "-q", "test.bin"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.bin", Output: "out.asm"},
				Flags:      options.Flags{Color: "never", Quiet: true},
			},
			disasm: options.Disassembler{HexComments: true},
		},
		{
			name: "batch without positional argument",
			args: []string{"prog", "-batch", "*.bin", "-debug"},
			want: options.Program{
				Parameters: options.Parameters{Batch: "*.bin"},
				Flags:      options.Flags{Color: "auto", Debug: true},
			},
			disasm: options.Disassembler{HexComments: true},
		},
		{
			name:   "input flag",
			args:   []string{"prog", "-i", "game.bin"},
			want:   options.Program{Parameters: options.Parameters{Input: "game.bin"}, Flags: options.Flags{Color: "auto"}},
			disasm: options.Disassembler{HexComments: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			opts, disasmOpts, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, opts)
			assert.Equal(t, tt.disasm, disasmOpts)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no input", []string{"prog"}, true},
		{"not a binary file", []string{"prog", "game.gb"}, true},
		{"flag after file", []string{"prog", "test.bin", "-q"}, true},
		{"unknown flag", []string{"prog", "-unknown", "test.bin"}, true},
		{"missing flag value", []string{"prog", "-o"}, true},
		{"invalid color mode", []string{"prog", "-color", "rainbow", "test.bin"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, _, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}
