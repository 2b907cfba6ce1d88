package govtparse

import "fmt"

// State identifies a state of the VT500-series parser state machine.
//
// The zero value stateNone is reserved as the "no state change" sentinel
// inside transition table entries; it is never the current state of a
// running parser.
type State uint8

const (
	stateNone State = iota

	// StateGround is the default state: printable characters are emitted
	// and control bytes trigger transitions.
	StateGround
	StateEscape
	StateEscapeIntermediate
	StateCSIEntry
	StateCSIParam
	StateCSIIntermediate
	StateCSIIgnore
	StateDCSEntry
	StateDCSParam
	StateDCSIntermediate
	StateDCSPassthrough
	StateDCSIgnore
	StateOSCString
	StateSOSPMApcString

	stateCount
)

// String returns the string representation of the state.
func (s State) String() string {
	names := []string{
		"None",
		"Ground",
		"Escape",
		"EscapeIntermediate",
		"CSIEntry",
		"CSIParam",
		"CSIIntermediate",
		"CSIIgnore",
		"DCSEntry",
		"DCSParam",
		"DCSIntermediate",
		"DCSPassthrough",
		"DCSIgnore",
		"OSCString",
		"SOSPMApcString",
	}

	if int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("Unknown(%d)", uint8(s))
}

// IsValid checks if the state is a machine state the parser can be in.
func (s State) IsValid() bool {
	return s >= StateGround && s < stateCount
}
