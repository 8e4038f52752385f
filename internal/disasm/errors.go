package disasm

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedOperand is returned when the input ends before all operand bytes of
	// an instruction could be read.
	ErrTruncatedOperand = errors.New("truncated operand")
	// ErrInvariantViolation is returned for an opcode with an operand size the decoder
	// can not handle. It indicates a bug in the opcode table.
	ErrInvariantViolation = errors.New("decoder invariant violation")
)

// DecodeError adds the position of a fatal decoding error.
type DecodeError struct {
	Address uint16
	Opcode  byte
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding opcode $%02X at address $%04X: %v", e.Opcode, e.Address, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
