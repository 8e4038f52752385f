package lr35902

import (
	"fmt"
	"strings"
)

// EscapePrefix is the opcode that introduces the extended instruction set.
const EscapePrefix = 0xCB

// OperandKind defines the operand slot of an opcode.
type OperandKind uint8

// operand kinds.
const (
	NoOperand OperandKind = iota
	Immediate8
	Relative8
	SubOpcode
	Address16
)

// Size returns the number of bytes that follow the opcode for this operand kind.
func (k OperandKind) Size() int {
	switch k {
	case Immediate8, Relative8, SubOpcode:
		return 1
	case Address16:
		return 2
	default:
		return 0
	}
}

// Format renders an operand value. Relative8 values are expected to already be
// resolved to the absolute target address.
func (k OperandKind) Format(value uint16) string {
	switch k {
	case Immediate8, SubOpcode:
		return fmt.Sprintf("$%02X", byte(value))
	case Relative8, Address16:
		return fmt.Sprintf("$%04X", value)
	default:
		return ""
	}
}

func (k OperandKind) String() string {
	switch k {
	case NoOperand:
		return "none"
	case Immediate8:
		return "d8"
	case Relative8:
		return "r8"
	case SubOpcode:
		return "cb"
	case Address16:
		return "a16"
	default:
		return fmt.Sprintf("OperandKind(%d)", uint8(k))
	}
}

// Flow defines how an instruction affects the control flow.
type Flow uint8

// control flow kinds.
const (
	Sequential Flow = iota
	Call
	Jump         // absolute jump
	RelativeJump // jump by signed displacement
	Return
)

// Opcode is a decoded opcode byte.
type Opcode struct {
	Value byte

	Prefix string // text before the operand
	Suffix string // text after the operand

	Operand     OperandKind
	Flow        Flow
	Conditional bool // instruction depends on a flag condition
	unknown     bool
}

// Size returns the number of operand bytes that follow the opcode byte.
func (o Opcode) Size() int {
	return o.Operand.Size()
}

// IsUnknown returns whether the byte is not assigned to any instruction.
func (o Opcode) IsUnknown() bool {
	return o.unknown
}

// Format renders the instruction using an already formatted operand.
func (o Opcode) Format(operand string) string {
	if o.Operand == NoOperand {
		return o.Prefix + o.Suffix
	}
	return o.Prefix + operand + o.Suffix
}

// Name returns the mnemonic without operands.
func (o Opcode) Name() string {
	name, _, _ := strings.Cut(o.Prefix, " ")
	return strings.TrimSuffix(name, ",")
}

func (o Opcode) String() string {
	if o.Operand == NoOperand {
		return o.Prefix + o.Suffix
	}
	return o.Prefix + o.Operand.String() + o.Suffix
}
