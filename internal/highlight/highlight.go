// Package highlight adds terminal syntax highlighting to disassembly lines.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// lexer candidates in order of preference, the Z80 syntax is the closest to the Game Boy CPU.
var lexerNames = []string{"z80", "nasm", "gas"}

var styleNames = []string{"monokai", "dracula"}

var formatterNames = []string{"terminal256", "terminal16"}

// Highlighter colorizes assembly lines.
type Highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// New returns a highlighter using the best available assembly lexer.
func New() *Highlighter {
	return &Highlighter{
		lexer:     assemblyLexer(),
		style:     firstStyle(),
		formatter: firstFormatter(),
	}
}

// Line returns the line with ANSI color sequences. Line breaks added by the lexer are removed.
func (h *Highlighter) Line(line string) (string, error) {
	if h.lexer == nil {
		return line, nil
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line, fmt.Errorf("tokenising line: %w", err)
	}

	buf := &strings.Builder{}
	if err := h.formatter.Format(buf, h.style, iterator); err != nil {
		return line, fmt.Errorf("formatting line: %w", err)
	}
	return strings.ReplaceAll(buf.String(), "\n", ""), nil
}

func assemblyLexer() chroma.Lexer {
	for _, name := range lexerNames {
		if lexer := lexers.Get(name); lexer != nil {
			return chroma.Coalesce(lexer)
		}
	}
	return nil
}

func firstStyle() *chroma.Style {
	for _, name := range styleNames {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

func firstFormatter() chroma.Formatter {
	for _, name := range formatterNames {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}
