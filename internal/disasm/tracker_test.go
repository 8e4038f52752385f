package disasm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTracker_RecomputeDataEnd(t *testing.T) {
	tests := []struct {
		name         string
		cursor       uint16
		calls        []uint16
		forwardJumps []uint16
		expected     uint16
		armed        bool
	}{
		{"no targets", 0x10, nil, nil, 0, false},
		{"nearest call", 0x10, []uint16{0x40, 0x20}, nil, 0x20, true},
		{"nearest forward jump", 0x10, nil, []uint16{0x18, 0x30}, 0x18, true},
		{"minimum of both", 0x10, []uint16{0x30}, []uint16{0x28}, 0x28, true},
		{"targets behind cursor are ignored", 0x30, []uint16{0x10, 0x30}, []uint16{0x20, 0x50}, 0x50, true},
		{"all targets passed", 0x30, []uint16{0x10}, []uint16{0x30}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewTracker()
			for _, address := range tt.calls {
				tracker.calls.Add(address)
			}
			for _, address := range tt.forwardJumps {
				tracker.addForwardJump(address)
			}
			tracker.cursor = tt.cursor
			tracker.setDataEnd(0x1234)

			tracker.recomputeDataEnd()

			end, armed := tracker.DataEnd()
			assert.Equal(t, tt.expected, end)
			assert.Equal(t, tt.armed, armed)
		})
	}
}

func TestTracker_AddCall(t *testing.T) {
	tracker := NewTracker()
	tracker.advance(0x10)

	assert.False(t, tracker.addCall(0x08))
	assert.False(t, tracker.addCall(0x10))
	assert.True(t, tracker.addCall(0x11))
	assert.True(t, tracker.addCall(0x11))
	assert.Equal(t, []uint16{0x11}, tracker.PendingCalls())
}

func TestTracker_PruneCalls(t *testing.T) {
	tracker := NewTracker()
	for _, address := range []uint16{0x05, 0x10, 0x11, 0x80} {
		tracker.calls.Add(address)
	}
	tracker.addForwardJump(0x08)
	tracker.advance(0x10)

	tracker.pruneCalls()

	assert.Equal(t, []uint16{0x11, 0x80}, tracker.PendingCalls())
	// forward jumps are only filtered on lookup, never pruned
	assert.Equal(t, []uint16{0x08}, tracker.PendingForwardJumps())
}

func TestTracker_InData(t *testing.T) {
	tracker := NewTracker()
	assert.False(t, tracker.inData())

	tracker.setDataEnd(0x04)
	assert.True(t, tracker.inData())

	tracker.advance(4)
	assert.False(t, tracker.inData())
	assert.Equal(t, uint16(4), tracker.Cursor())

	tracker.disarm()
	_, armed := tracker.DataEnd()
	assert.False(t, armed)
}
