package disasm

import (
	"math"

	"github.com/retroenv/retrogolib/set"
)

// Tracker is the decoder context of a single pass. It holds the cursor and the pending
// control flow targets that bound the current data window.
type Tracker struct {
	cursor uint16

	calls        set.Set[uint16] // call targets ahead of the cursor
	forwardJumps set.Set[uint16] // conditional relative jump targets ahead of the cursor

	dataEnd uint16 // end of the data window, 0 if no window is armed
	wrapped bool   // cursor passed $FFFF and continues at $0000
}

// NewTracker returns a tracker positioned at address 0.
func NewTracker() *Tracker {
	return &Tracker{
		calls:        set.New[uint16](),
		forwardJumps: set.New[uint16](),
	}
}

// Cursor returns the address of the next byte to decode.
func (t *Tracker) Cursor() uint16 {
	return t.cursor
}

// DataEnd returns the end of the data window and whether a window is armed.
func (t *Tracker) DataEnd() (uint16, bool) {
	return t.dataEnd, t.dataEnd != 0
}

// PendingCalls returns the recorded call targets in ascending order.
func (t *Tracker) PendingCalls() []uint16 {
	return set.Sorted(t.calls)
}

// PendingForwardJumps returns the recorded forward jump targets in ascending order.
func (t *Tracker) PendingForwardJumps() []uint16 {
	return set.Sorted(t.forwardJumps)
}

// inData returns whether the byte at the cursor lies inside the data window.
func (t *Tracker) inData() bool {
	return t.cursor < t.dataEnd
}

func (t *Tracker) disarm() {
	t.dataEnd = 0
}

// addCall records a call target if it lies ahead of the cursor.
func (t *Tracker) addCall(address uint16) bool {
	if address <= t.cursor {
		return false
	}
	t.calls.Add(address)
	return true
}

func (t *Tracker) addForwardJump(address uint16) {
	t.forwardJumps.Add(address)
}

// pruneCalls drops all call targets that are not strictly ahead of the cursor.
func (t *Tracker) pruneCalls() {
	pending := set.New[uint16]()
	for address := range t.calls {
		if address > t.cursor {
			pending.Add(address)
		}
	}
	t.calls = pending
}

// recomputeDataEnd sets the data window end to the nearest pending call or
// forward jump target ahead of the cursor, or disarms the window if there is none.
func (t *Tracker) recomputeDataEnd() {
	jump, jumpOK := nearestAbove(t.forwardJumps, t.cursor)
	call, callOK := nearestAbove(t.calls, t.cursor)

	switch {
	case jumpOK && callOK:
		t.dataEnd = min(jump, call)
	case jumpOK:
		t.dataEnd = jump
	case callOK:
		t.dataEnd = call
	default:
		t.dataEnd = 0
	}
}

func (t *Tracker) setDataEnd(address uint16) {
	t.dataEnd = address
}

func (t *Tracker) advance(n int) {
	if int(t.cursor)+n > math.MaxUint16 {
		t.wrapped = true
	}
	t.cursor += uint16(n)
}

func nearestAbove(addresses set.Set[uint16], cursor uint16) (uint16, bool) {
	var nearest uint16
	found := false
	for address := range addresses {
		if address <= cursor {
			continue
		}
		if !found || address < nearest {
			nearest = address
			found = true
		}
	}
	return nearest, found
}
