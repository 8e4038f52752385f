// Package disasm implements a single pass Game Boy disassembler that separates code from
// inline data by tracking pending call and forward jump targets.
package disasm

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/gbdisasm/internal/arch/lr35902"
	"github.com/retroenv/retrogolib/log"
)

// dataBytesPerLine limits the number of bytes of a single data run.
const dataBytesPerLine = 16

// relativeJumpLength is added to the signed displacement of a relative jump,
// the displacement is relative to the end of the 2 byte instruction.
const relativeJumpLength = 2

// EmitFunc receives every decoded unit in address order.
type EmitFunc func(unit Unit) error

// Disasm implements a disassembler.
type Disasm struct {
	logger *log.Logger
}

// New creates a new disassembler.
func New(logger *log.Logger) *Disasm {
	return &Disasm{
		logger: logger,
	}
}

// Process disassembles all bytes of the source and passes every decoded unit to emit.
// Every call uses a fresh tracker, processing the same input twice results in the same units.
func (dis *Disasm) Process(src io.ByteReader, emit EmitFunc) (Summary, error) {
	var summary Summary
	t := NewTracker()

	for {
		unit, err := dis.Step(t, src)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return summary, nil
			}
			return summary, err
		}

		summary.add(unit, unit.Kind == InstructionUnit && lr35902.Decode(unit.Opcode).IsUnknown())

		if err := emit(unit); err != nil {
			return summary, fmt.Errorf("emitting unit at address $%04X: %w", unit.Address, err)
		}
	}
}

// Step decodes the next unit at the cursor of the tracker and advances the cursor by
// the number of consumed bytes. It returns io.EOF if the source has no more bytes.
func (dis *Disasm) Step(t *Tracker, src io.ByteReader) (Unit, error) {
	b, err := src.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Unit{}, io.EOF
		}
		return Unit{}, fmt.Errorf("reading opcode at address $%04X: %w", t.cursor, err)
	}
	if t.wrapped {
		t.wrapped = false
		dis.logger.Warn("Input exceeds the 16 bit address space, addresses wrap around",
			log.Hex("address", t.cursor))
	}

	if t.inData() {
		unit, err := dis.readDataRun(t, src, b)
		if err != nil {
			return Unit{}, err
		}
		t.advance(unit.Size())
		return unit, nil
	}
	t.disarm()

	unit, err := dis.decodeInstruction(t, src, b)
	if err != nil {
		return Unit{}, err
	}
	t.advance(unit.Size())
	return unit, nil
}

// decodeInstruction decodes the instruction starting with the given opcode byte and
// updates the tracker based on its control flow.
func (dis *Disasm) decodeInstruction(t *Tracker, src io.ByteReader, b byte) (Unit, error) {
	op := lr35902.Decode(b)
	unit := Unit{
		Address: t.cursor,
		Kind:    InstructionUnit,
		Opcode:  b,
		Bytes:   make([]byte, 1, 1+op.Size()),
	}
	unit.Bytes[0] = b

	for range op.Size() {
		arg, err := src.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrTruncatedOperand
			}
			return Unit{}, &DecodeError{Address: t.cursor, Opcode: b, Err: err}
		}
		unit.Bytes = append(unit.Bytes, arg)
	}

	switch op.Size() {
	case 0:
		if op.Flow == lr35902.Return {
			dis.handleReturn(t)
		}
		unit.Text = op.Format("")

	case 1:
		arg := unit.Bytes[1]
		value := uint16(arg)
		if op.Flow == lr35902.RelativeJump {
			value = dis.handleRelativeJump(t, op, arg)
		}
		unit.Text = op.Format(op.Operand.Format(value))

	case 2:
		value := uint16(unit.Bytes[2])<<8 | uint16(unit.Bytes[1])
		dis.handleAbsolute(t, op, value)
		unit.Text = op.Format(op.Operand.Format(value))

	default:
		return Unit{}, &DecodeError{
			Address: t.cursor,
			Opcode:  b,
			Err:     fmt.Errorf("%w: operand size %d", ErrInvariantViolation, op.Size()),
		}
	}

	return unit, nil
}

// handleReturn drops all call targets that have been passed and rearms the data window
// up to the next pending target, code following a return is presumed unreachable.
func (dis *Disasm) handleReturn(t *Tracker) {
	t.pruneCalls()
	t.recomputeDataEnd()

	if end, ok := t.DataEnd(); ok {
		dis.logger.Debug("Data window after return",
			log.Hex("address", t.cursor),
			log.Hex("end", end))
	}
}

// handleRelativeJump returns the target address of a relative jump. Forward targets of
// conditional jumps are recorded, an unconditional backward jump rearms the data window.
// A zero offset changes nothing.
func (dis *Disasm) handleRelativeJump(t *Tracker, op lr35902.Opcode, arg byte) uint16 {
	offset := int(int8(arg)) + relativeJumpLength
	target := uint16(int(t.cursor) + offset)

	switch {
	case offset > 0 && op.Conditional:
		t.addForwardJump(target)
		dis.logger.Debug("Forward jump target",
			log.String("instruction", op.Name()),
			log.Hex("address", t.cursor),
			log.Hex("target", target))

	case offset < 0 && !op.Conditional:
		t.recomputeDataEnd()
		if end, ok := t.DataEnd(); ok {
			dis.logger.Debug("Data window after backward jump",
				log.Hex("address", t.cursor),
				log.Hex("end", end))
		}
	}

	return target
}

// handleAbsolute records call targets and arms the data window up to the target of an
// unconditional absolute jump.
func (dis *Disasm) handleAbsolute(t *Tracker, op lr35902.Opcode, value uint16) {
	switch op.Flow {
	case lr35902.Call:
		if t.addCall(value) {
			dis.logger.Debug("Call target",
				log.String("instruction", op.Name()),
				log.Hex("address", t.cursor),
				log.Hex("target", value))
		}

	case lr35902.Jump:
		if op.Conditional {
			return
		}
		t.setDataEnd(value)
		if value > t.cursor {
			dis.logger.Debug("Data window after jump",
				log.String("instruction", op.Name()),
				log.Hex("address", t.cursor),
				log.Hex("end", value))
		}
	}
}

// readDataRun reads a data run starting with the given byte. The run ends at the data
// window end, after dataBytesPerLine bytes or at the end of the source.
func (dis *Disasm) readDataRun(t *Tracker, src io.ByteReader, first byte) (Unit, error) {
	data := make([]byte, 1, dataBytesPerLine)
	data[0] = first

	for len(data) < dataBytesPerLine && int(t.cursor)+len(data) < int(t.dataEnd) {
		b, err := src.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Unit{}, fmt.Errorf("reading data at address $%04X: %w", int(t.cursor)+len(data), err)
		}
		data = append(data, b)
	}

	return Unit{
		Address: t.cursor,
		Kind:    DataUnit,
		Opcode:  first,
		Text:    formatData(data),
		Bytes:   data,
	}, nil
}

// formatData renders bytes as a data directive.
func formatData(data []byte) string {
	buf := &strings.Builder{}
	buf.WriteString(".db ")
	for i, b := range data {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "$%02X", b)
	}
	return buf.String()
}
