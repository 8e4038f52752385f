package lr35902

import "fmt"

var (
	registers8     = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	registerPairs  = [4]string{"BC", "DE", "HL", "SP"}
	stackPairs     = [4]string{"BC", "DE", "HL", "AF"}
	lowRegisters   = [4]string{"B", "D", "H", "(HL)"}
	highRegisters  = [4]string{"C", "E", "L", "A"}
	aluLow         = [4]string{"ADD A,", "SUB ", "AND ", "OR "}
	aluHigh        = [4]string{"ADC A,", "SBC A,", "XOR ", "CP "}
	restartVectors = [4]string{"$00", "$10", "$20", "$30"}
)

// fixedOpcodes are matched before any nibble family.
var fixedOpcodes = map[byte]Opcode{
	0x00: implied("NOP"),
	0x07: implied("RLCA"),
	0x08: {Prefix: "LD (", Suffix: "),SP", Operand: Address16},
	0x0E: {Prefix: "LDH A,(", Suffix: ")", Operand: Immediate8},
	0x0F: {Prefix: "LDH (", Suffix: "),A", Operand: Immediate8},
	0x10: implied("STOP"),
	0x17: implied("RLA"),
	0x20: {Prefix: "JR NZ,", Operand: Relative8, Flow: RelativeJump, Conditional: true},
	0x22: implied("LD (HL+),A"),
	0x27: implied("DAA"),
	0x2A: implied("LD A,(HL+)"),
	0x30: {Prefix: "JR NC,", Operand: Relative8, Flow: RelativeJump, Conditional: true},
	0x32: implied("LD (HL-),A"),
	0x37: implied("SCF"),
	0x3A: implied("LD A,(HL-)"),
	0x76: implied("HALT"),
	0xC3: {Prefix: "JP ", Operand: Address16, Flow: Jump},
	0xC9: {Prefix: "RET", Flow: Return},
	0xCA: {Prefix: "JP Z,", Operand: Address16, Flow: Jump, Conditional: true},
	0xCB: {Prefix: "CB ", Operand: SubOpcode},
	0xCC: {Prefix: "CALL Z,", Operand: Address16, Flow: Call, Conditional: true},
	0xCD: {Prefix: "CALL ", Operand: Address16, Flow: Call},
	0xDA: {Prefix: "JP C,", Operand: Address16, Flow: Jump, Conditional: true},
	0xDC: {Prefix: "CALL C,", Operand: Address16, Flow: Call, Conditional: true},
	0xE0: {Prefix: "LDH (", Suffix: "),A", Operand: Immediate8},
	0xE2: implied("LD (C),A"),
	0xEA: {Prefix: "LD (", Suffix: "),A", Operand: Address16},
	0xF0: {Prefix: "LDH A,(", Suffix: ")", Operand: Immediate8},
	0xF2: implied("LD A,(C)"),
	0xF3: implied("DI"),
	0xFB: implied("EI"),
}

// nibbleSpan is an inclusive range of nibble values.
type nibbleSpan struct {
	first, last byte
}

func (s nibbleSpan) contains(n byte) bool {
	return n >= s.first && n <= s.last
}

// family decodes all opcodes whose nibbles fall into both spans.
// The decode function gets the nibbles relative to the start of the spans.
type family struct {
	lower  nibbleSpan
	upper  nibbleSpan
	decode func(upper, lower byte) Opcode
}

// families are evaluated in order, the first match wins.
var families = []family{
	{
		lower: nibbleSpan{0x1, 0x1}, upper: nibbleSpan{0xC, 0xF},
		decode: func(upper, _ byte) Opcode { return implied("POP " + stackPairs[upper]) },
	},
	{
		lower: nibbleSpan{0xF, 0xF}, upper: nibbleSpan{0xC, 0xF},
		decode: func(upper, _ byte) Opcode { return implied("RST " + restartVectors[upper]) },
	},
	{
		lower: nibbleSpan{0x5, 0x5}, upper: nibbleSpan{0xC, 0xF},
		decode: func(upper, _ byte) Opcode { return implied("PUSH " + stackPairs[upper]) },
	},
	{
		// the immediate is part of the text, no operand byte is consumed
		lower: nibbleSpan{0xE, 0xE}, upper: nibbleSpan{0xC, 0xF},
		decode: func(upper, _ byte) Opcode { return implied(aluHigh[upper] + "$0") },
	},
	{
		lower: nibbleSpan{0xA, 0xB}, upper: nibbleSpan{0x0, 0x3},
		decode: func(upper, lower byte) Opcode {
			if lower == 0 {
				return implied("LD A,(" + registerPairs[upper] + ")")
			}
			return implied("DEC " + registerPairs[upper])
		},
	},
	{
		lower: nibbleSpan{0xC, 0xE}, upper: nibbleSpan{0x0, 0x3},
		decode: func(upper, lower byte) Opcode {
			return incDecLoad(highRegisters[upper], lower)
		},
	},
	{
		lower: nibbleSpan{0x0, 0x7}, upper: nibbleSpan{0x8, 0xB},
		decode: func(upper, lower byte) Opcode { return implied(aluLow[upper] + registers8[lower]) },
	},
	{
		lower: nibbleSpan{0x8, 0xF}, upper: nibbleSpan{0x8, 0xB},
		decode: func(upper, lower byte) Opcode { return implied(aluHigh[upper] + registers8[lower]) },
	},
	{
		lower: nibbleSpan{0x8, 0x8}, upper: nibbleSpan{0x1, 0x3},
		decode: func(upper, _ byte) Opcode {
			conditions := [3]string{"", "Z,", "C,"}
			return Opcode{
				Prefix:      "JR " + conditions[upper],
				Operand:     Relative8,
				Flow:        RelativeJump,
				Conditional: upper != 0,
			}
		},
	},
	{
		lower: nibbleSpan{0x2, 0x3}, upper: nibbleSpan{0x0, 0x3},
		decode: func(upper, lower byte) Opcode {
			if lower == 0 {
				return implied("LD (" + registerPairs[upper] + "),A")
			}
			return implied("INC " + registerPairs[upper])
		},
	},
	{
		lower: nibbleSpan{0x1, 0x1}, upper: nibbleSpan{0x0, 0x3},
		decode: func(upper, _ byte) Opcode {
			return Opcode{Prefix: "LD " + registerPairs[upper] + ",", Operand: Address16}
		},
	},
	{
		lower: nibbleSpan{0x8, 0xF}, upper: nibbleSpan{0x4, 0x7},
		decode: func(upper, lower byte) Opcode {
			return implied("LD " + highRegisters[upper] + "," + registers8[lower])
		},
	},
	{
		lower: nibbleSpan{0x6, 0x6}, upper: nibbleSpan{0xC, 0xF},
		decode: func(upper, _ byte) Opcode {
			prefixes := [4]string{"ADD a,", "SUB ", "AND ", "OR "}
			return Opcode{Prefix: prefixes[upper], Operand: Immediate8}
		},
	},
	{
		lower: nibbleSpan{0x0, 0x7}, upper: nibbleSpan{0x4, 0x7},
		decode: func(upper, lower byte) Opcode {
			return implied("LD " + lowRegisters[upper] + "," + registers8[lower])
		},
	},
	{
		lower: nibbleSpan{0x4, 0x6}, upper: nibbleSpan{0x0, 0x3},
		decode: func(upper, lower byte) Opcode {
			return incDecLoad(lowRegisters[upper], lower)
		},
	},
}

// opcodes contains the decoded form of every byte value.
var opcodes = buildOpcodes()

// Decode returns the opcode for the given byte.
func Decode(b byte) Opcode {
	return opcodes[b]
}

func buildOpcodes() [256]Opcode {
	var table [256]Opcode
	for i := range table {
		b := byte(i)
		op := decodeByte(b)
		op.Value = b
		table[i] = op
	}
	return table
}

func decodeByte(b byte) Opcode {
	if op, ok := fixedOpcodes[b]; ok {
		return op
	}

	upper, lower := b>>4, b&0x0F
	for _, f := range families {
		if f.lower.contains(lower) && f.upper.contains(upper) {
			return f.decode(upper-f.upper.first, lower-f.lower.first)
		}
	}

	return Opcode{
		Prefix:  fmt.Sprintf("0x%02X", b),
		unknown: true,
	}
}

// incDecLoad decodes the INC r, DEC r, LD r,d8 column triple.
func incDecLoad(register string, column byte) Opcode {
	switch column {
	case 0:
		return implied("INC " + register)
	case 1:
		return implied("DEC " + register)
	default:
		return Opcode{Prefix: "LD " + register + ",", Operand: Immediate8}
	}
}

func implied(text string) Opcode {
	return Opcode{Prefix: text}
}
