package govtparse

import "fmt"

// Action identifies an effect produced by the state machine: either an
// internal mutation of the parser accumulators or an outward Performer
// callback.
//
// The zero value ActionNone is the "no action" sentinel inside transition
// table entries.
type Action uint8

const (
	ActionNone Action = iota

	ActionPrint
	ActionExecute
	ActionHook
	ActionPut
	ActionOSCStart
	ActionOSCPut
	ActionOSCEnd
	ActionUnhook
	ActionCSIDispatch
	ActionESCDispatch
	ActionIgnore
	ActionCollect
	ActionParam
	ActionClear

	actionCount
)

// String returns the string representation of the action.
func (a Action) String() string {
	names := []string{
		"None",
		"Print",
		"Execute",
		"Hook",
		"Put",
		"OSCStart",
		"OSCPut",
		"OSCEnd",
		"Unhook",
		"CSIDispatch",
		"ESCDispatch",
		"Ignore",
		"Collect",
		"Param",
		"Clear",
	}

	if int(a) < len(names) {
		return names[a]
	}
	return fmt.Sprintf("Unknown(%d)", uint8(a))
}
