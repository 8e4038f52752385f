package writer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/gbdisasm/internal/disasm"
	"github.com/retroenv/retrogolib/assert"
)

func TestFormatUnit(t *testing.T) {
	tests := []struct {
		name        string
		unit        disasm.Unit
		hexComments bool
		expected    string
	}{
		{
			name:        "instruction",
			unit:        disasm.Unit{Address: 0x0000, Opcode: 0xC3, Text: "JP $0005"},
			hexComments: true,
			expected:    "0000: JP $0005       xC3",
		},
		{
			name:        "short data run",
			unit:        disasm.Unit{Address: 0x0003, Kind: disasm.DataUnit, Opcode: 0x00, Text: ".db $00, $00"},
			hexComments: true,
			expected:    "0003: .db $00, $00   x00",
		},
		{
			name:        "long data run keeps separator",
			unit:        disasm.Unit{Address: 0x0011, Kind: disasm.DataUnit, Opcode: 0xAA, Text: ".db $AA, $BB, $CC, $DD"},
			hexComments: true,
			expected:    "0011: .db $AA, $BB, $CC, $DD xAA",
		},
		{
			name:        "without hex comments",
			unit:        disasm.Unit{Address: 0x1234, Opcode: 0xC9, Text: "RET"},
			hexComments: false,
			expected:    "1234: RET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatUnit(tt.unit, tt.hexComments))
		})
	}
}

type lowerHighlighter struct {
	err error
}

func (h lowerHighlighter) Line(line string) (string, error) {
	return "<" + strings.ToLower(line) + ">", h.err
}

func TestWriter_WriteUnit(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, Options{HexComments: true})

	assert.NoError(t, w.WriteUnit(disasm.Unit{Address: 0, Opcode: 0x00, Text: "NOP", Bytes: []byte{0}}))
	assert.NoError(t, w.WriteUnit(disasm.Unit{Address: 1, Opcode: 0xC9, Text: "RET", Bytes: []byte{0xC9}}))
	assert.Equal(t, "", buf.String())

	assert.NoError(t, w.Flush())
	assert.Equal(t, "0000: NOP            x00\n0001: RET            xC9\n", buf.String())
	assert.Equal(t, 2, w.Lines())
}

func TestWriter_Highlighter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, Options{Highlighter: lowerHighlighter{}})

	assert.NoError(t, w.WriteUnit(disasm.Unit{Address: 0x10, Text: "INC A"}))
	assert.NoError(t, w.Flush())
	assert.Equal(t, "<0010: inc a>\n", buf.String())

	errHighlight := errors.New("lexer failed")
	w = New(buf, Options{Highlighter: lowerHighlighter{err: errHighlight}})
	err := w.WriteUnit(disasm.Unit{Text: "NOP"})
	assert.True(t, errors.Is(err, errHighlight))
}
