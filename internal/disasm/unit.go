package disasm

// UnitKind defines what a decoded unit represents.
type UnitKind uint8

// unit kinds.
const (
	InstructionUnit UnitKind = iota
	DataUnit
)

func (k UnitKind) String() string {
	if k == DataUnit {
		return "data"
	}
	return "instruction"
}

// Unit is a single decoded instruction or data run that is emitted as one line.
type Unit struct {
	Address uint16
	Kind    UnitKind
	Opcode  byte   // first byte of the unit
	Text    string // rendered instruction or data directive
	Bytes   []byte // all bytes consumed by the unit, including the opcode
}

// Size returns the number of bytes the unit consumed.
func (u Unit) Size() int {
	return len(u.Bytes)
}

// Summary contains statistics of a completed pass.
type Summary struct {
	Units        int
	Instructions int
	DataRuns     int
	Unknown      int // unassigned opcodes rendered literally
	Bytes        int
}

func (s *Summary) add(unit Unit, unknown bool) {
	s.Units++
	s.Bytes += unit.Size()
	if unit.Kind == DataUnit {
		s.DataRuns++
		return
	}
	s.Instructions++
	if unknown {
		s.Unknown++
	}
}
