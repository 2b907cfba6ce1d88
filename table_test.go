package govtparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allStates() []State {
	states := make([]State, 0, int(stateCount)-1)
	for s := StateGround; s < stateCount; s++ {
		states = append(states, s)
	}
	return states
}

func TestTableAnywhereRules(t *testing.T) {
	for _, s := range allStates() {
		t.Run(s.String(), func(t *testing.T) {
			// ESC restarts a sequence from any state.
			assert.Equal(t, StateEscape, stateTable[s][0x1B].state)
			assert.Equal(t, ActionNone, stateTable[s][0x1B].action)

			// CAN and SUB abort to ground, executing.
			for _, b := range []byte{0x18, 0x1A} {
				assert.Equal(t, StateGround, stateTable[s][b].state)
				assert.Equal(t, ActionExecute, stateTable[s][b].action)
			}

			// 8-bit C1 introducers.
			assert.Equal(t, StateCSIEntry, stateTable[s][0x9B].state)
			assert.Equal(t, StateOSCString, stateTable[s][0x9D].state)
			assert.Equal(t, StateDCSEntry, stateTable[s][0x90].state)
			assert.Equal(t, StateGround, stateTable[s][0x9C].state)
			for _, b := range []byte{0x98, 0x9E, 0x9F} {
				assert.Equal(t, StateSOSPMApcString, stateTable[s][b].state)
			}
		})
	}
}

func TestTableRowsCompleteThroughC1(t *testing.T) {
	// Every state must define behavior for all bytes up to 0x9F: either
	// an action, a state change, or both.
	for _, s := range allStates() {
		for b := 0; b <= 0x9F; b++ {
			tr := stateTable[s][b]
			assert.False(t, tr.action == ActionNone && tr.state == stateNone,
				"state %v byte 0x%02x has no transition", s, b)
		}
	}
}

func TestTableEntriesWellFormed(t *testing.T) {
	for _, s := range allStates() {
		for b := 0; b < 256; b++ {
			tr := stateTable[s][b]
			assert.Less(t, tr.action, actionCount)
			assert.Less(t, tr.state, stateCount)
		}
	}
}

func TestTableEntryActions(t *testing.T) {
	// Entering any entry state must clear the accumulators; the string
	// states open and close through their entry/exit actions.
	assert.Equal(t, ActionClear, entryActions[StateEscape])
	assert.Equal(t, ActionClear, entryActions[StateCSIEntry])
	assert.Equal(t, ActionClear, entryActions[StateDCSEntry])
	assert.Equal(t, ActionOSCStart, entryActions[StateOSCString])
	assert.Equal(t, ActionHook, entryActions[StateDCSPassthrough])

	assert.Equal(t, ActionOSCEnd, exitActions[StateOSCString])
	assert.Equal(t, ActionUnhook, exitActions[StateDCSPassthrough])

	for _, s := range []State{StateGround, StateCSIParam, StateCSIIntermediate,
		StateCSIIgnore, StateDCSParam, StateDCSIntermediate, StateDCSIgnore,
		StateEscapeIntermediate, StateSOSPMApcString} {
		assert.Equal(t, ActionNone, entryActions[s], "state %v", s)
		assert.Equal(t, ActionNone, exitActions[s], "state %v", s)
	}
}

func TestTableGroundRow(t *testing.T) {
	for b := 0x20; b <= 0x7F; b++ {
		assert.Equal(t, ActionPrint, stateTable[StateGround][b].action)
		assert.Equal(t, stateNone, stateTable[StateGround][b].state)
	}
	for _, b := range []byte{0x00, 0x0A, 0x0D, 0x19, 0x1C} {
		assert.Equal(t, ActionExecute, stateTable[StateGround][b].action)
	}
	for b := 0xA0; b <= 0xFF; b++ {
		assert.Equal(t, ActionPrint, stateTable[StateGround][b].action)
	}
}

func TestTableEscapeDispatchRanges(t *testing.T) {
	// Final bytes of two-character escape sequences dispatch back to
	// ground; the string and CSI introducers do not.
	finals := []byte{0x30, 0x4F, 0x51, 0x57, 0x59, 0x5A, 0x5C, 0x60, 0x7E}
	for _, b := range finals {
		tr := stateTable[StateEscape][b]
		assert.Equal(t, ActionESCDispatch, tr.action, "byte 0x%02x", b)
		assert.Equal(t, StateGround, tr.state, "byte 0x%02x", b)
	}

	introducers := map[byte]State{
		0x50: StateDCSEntry,
		0x58: StateSOSPMApcString,
		0x5B: StateCSIEntry,
		0x5D: StateOSCString,
		0x5E: StateSOSPMApcString,
		0x5F: StateSOSPMApcString,
	}
	for b, want := range introducers {
		tr := stateTable[StateEscape][b]
		assert.Equal(t, ActionNone, tr.action, "byte 0x%02x", b)
		assert.Equal(t, want, tr.state, "byte 0x%02x", b)
	}
}

func TestTableOSCBellTermination(t *testing.T) {
	tr := stateTable[StateOSCString][0x07]
	assert.Equal(t, StateGround, tr.state)
	assert.Equal(t, ActionNone, tr.action)
}

func TestTableIsSharedSafely(t *testing.T) {
	// Two parsers driven over the same tables must not interfere.
	p1perf := &MockPerformer{}
	p2perf := &MockPerformer{}
	p1 := NewParser(p1perf)
	p2 := NewParser(p2perf)

	p1.Advance([]byte("\x1b[1;2"))
	p2.Advance([]byte("\x1b[9"))
	p1.Advance([]byte("m"))
	p2.Advance([]byte("m"))

	assert.Equal(t, []uint16{1, 2}, p1perf.csiDispatched[0].params)
	assert.Equal(t, []uint16{9}, p2perf.csiDispatched[0].params)
}
