package govtparse

// transition is one decoded entry of the state table: an optional action
// to run and an optional state to enter. ActionNone means "no action",
// stateNone means "no state change".
type transition struct {
	action Action
	state  State
}

// The three tables parameterizing the state machine. They are filled in
// once at package init from the rule set below and are read-only
// afterwards, so they can be shared by any number of parser instances
// across goroutines.
var (
	stateTable   [stateCount][256]transition
	entryActions [stateCount]Action
	exitActions  [stateCount]Action
)

// span records one rule of the machine description: bytes lo through hi
// received in state s run action a and move to state next.
func span(s State, lo, hi byte, a Action, next State) {
	for b := int(lo); b <= int(hi); b++ {
		stateTable[s][b] = transition{action: a, state: next}
	}
}

func one(s State, b byte, a Action, next State) {
	span(s, b, b, a, next)
}

// ctl records the common C0 rule of a state: 0x00-0x17, 0x19 and
// 0x1C-0x1F share one action. CAN, SUB and ESC are carved out for the
// anywhere rules.
func ctl(s State, a Action) {
	span(s, 0x00, 0x17, a, stateNone)
	one(s, 0x19, a, stateNone)
	span(s, 0x1C, 0x1F, a, stateNone)
}

// anywhere records a rule that applies in every machine state, overriding
// any per-state rule for the same byte.
func anywhere(lo, hi byte, a Action, next State) {
	for s := StateGround; s < stateCount; s++ {
		span(s, lo, hi, a, next)
	}
}

func init() {
	// Ground. Printables 0x20-0x7F never reach this row in practice (the
	// driver short-circuits them into the print buffer), but the row is
	// complete so the table stands alone.
	ctl(StateGround, ActionExecute)
	span(StateGround, 0x20, 0x7F, ActionPrint, stateNone)
	span(StateGround, 0xA0, 0xFF, ActionPrint, stateNone)

	// Escape.
	ctl(StateEscape, ActionExecute)
	one(StateEscape, 0x7F, ActionIgnore, stateNone)
	span(StateEscape, 0x20, 0x2F, ActionCollect, StateEscapeIntermediate)
	span(StateEscape, 0x30, 0x4F, ActionESCDispatch, StateGround)
	one(StateEscape, 0x50, ActionNone, StateDCSEntry)
	span(StateEscape, 0x51, 0x57, ActionESCDispatch, StateGround)
	one(StateEscape, 0x58, ActionNone, StateSOSPMApcString)
	span(StateEscape, 0x59, 0x5A, ActionESCDispatch, StateGround)
	one(StateEscape, 0x5B, ActionNone, StateCSIEntry)
	one(StateEscape, 0x5C, ActionESCDispatch, StateGround)
	one(StateEscape, 0x5D, ActionNone, StateOSCString)
	span(StateEscape, 0x5E, 0x5F, ActionNone, StateSOSPMApcString)
	span(StateEscape, 0x60, 0x7E, ActionESCDispatch, StateGround)

	// Escape intermediate.
	ctl(StateEscapeIntermediate, ActionExecute)
	span(StateEscapeIntermediate, 0x20, 0x2F, ActionCollect, stateNone)
	span(StateEscapeIntermediate, 0x30, 0x7E, ActionESCDispatch, StateGround)
	one(StateEscapeIntermediate, 0x7F, ActionIgnore, stateNone)

	// CSI entry.
	ctl(StateCSIEntry, ActionExecute)
	one(StateCSIEntry, 0x7F, ActionIgnore, stateNone)
	span(StateCSIEntry, 0x20, 0x2F, ActionCollect, StateCSIIntermediate)
	span(StateCSIEntry, 0x30, 0x39, ActionParam, StateCSIParam)
	one(StateCSIEntry, 0x3A, ActionNone, StateCSIIgnore)
	one(StateCSIEntry, 0x3B, ActionParam, StateCSIParam)
	span(StateCSIEntry, 0x3C, 0x3F, ActionCollect, StateCSIParam)
	span(StateCSIEntry, 0x40, 0x7E, ActionCSIDispatch, StateGround)

	// CSI parameter.
	ctl(StateCSIParam, ActionExecute)
	span(StateCSIParam, 0x30, 0x39, ActionParam, stateNone)
	one(StateCSIParam, 0x3A, ActionNone, StateCSIIgnore)
	one(StateCSIParam, 0x3B, ActionParam, stateNone)
	one(StateCSIParam, 0x7F, ActionIgnore, stateNone)
	span(StateCSIParam, 0x3C, 0x3F, ActionNone, StateCSIIgnore)
	span(StateCSIParam, 0x20, 0x2F, ActionCollect, StateCSIIntermediate)
	span(StateCSIParam, 0x40, 0x7E, ActionCSIDispatch, StateGround)

	// CSI intermediate.
	ctl(StateCSIIntermediate, ActionExecute)
	span(StateCSIIntermediate, 0x20, 0x2F, ActionCollect, stateNone)
	span(StateCSIIntermediate, 0x30, 0x3F, ActionNone, StateCSIIgnore)
	span(StateCSIIntermediate, 0x40, 0x7E, ActionCSIDispatch, StateGround)
	one(StateCSIIntermediate, 0x7F, ActionIgnore, stateNone)

	// CSI ignore: consume the malformed sequence up to its final byte.
	ctl(StateCSIIgnore, ActionExecute)
	span(StateCSIIgnore, 0x20, 0x3F, ActionIgnore, stateNone)
	span(StateCSIIgnore, 0x40, 0x7E, ActionNone, StateGround)
	one(StateCSIIgnore, 0x7F, ActionIgnore, stateNone)

	// DCS entry.
	ctl(StateDCSEntry, ActionIgnore)
	one(StateDCSEntry, 0x7F, ActionIgnore, stateNone)
	span(StateDCSEntry, 0x20, 0x2F, ActionCollect, StateDCSIntermediate)
	span(StateDCSEntry, 0x30, 0x39, ActionParam, StateDCSParam)
	one(StateDCSEntry, 0x3A, ActionNone, StateDCSIgnore)
	one(StateDCSEntry, 0x3B, ActionParam, StateDCSParam)
	span(StateDCSEntry, 0x3C, 0x3F, ActionCollect, StateDCSParam)
	span(StateDCSEntry, 0x40, 0x7E, ActionNone, StateDCSPassthrough)

	// DCS parameter.
	ctl(StateDCSParam, ActionIgnore)
	span(StateDCSParam, 0x30, 0x39, ActionParam, stateNone)
	one(StateDCSParam, 0x3A, ActionNone, StateDCSIgnore)
	one(StateDCSParam, 0x3B, ActionParam, stateNone)
	span(StateDCSParam, 0x3C, 0x3F, ActionNone, StateDCSIgnore)
	span(StateDCSParam, 0x20, 0x2F, ActionCollect, StateDCSIntermediate)
	span(StateDCSParam, 0x40, 0x7E, ActionNone, StateDCSPassthrough)
	one(StateDCSParam, 0x7F, ActionIgnore, stateNone)

	// DCS intermediate.
	ctl(StateDCSIntermediate, ActionIgnore)
	span(StateDCSIntermediate, 0x20, 0x2F, ActionCollect, stateNone)
	span(StateDCSIntermediate, 0x30, 0x3F, ActionNone, StateDCSIgnore)
	span(StateDCSIntermediate, 0x40, 0x7E, ActionNone, StateDCSPassthrough)
	one(StateDCSIntermediate, 0x7F, ActionIgnore, stateNone)

	// DCS passthrough.
	ctl(StateDCSPassthrough, ActionPut)
	span(StateDCSPassthrough, 0x20, 0x7E, ActionPut, stateNone)
	one(StateDCSPassthrough, 0x7F, ActionIgnore, stateNone)

	// DCS ignore: swallow everything until the string terminator.
	ctl(StateDCSIgnore, ActionIgnore)
	span(StateDCSIgnore, 0x20, 0x7F, ActionIgnore, stateNone)

	// OSC string. BEL termination is an extension over the original
	// diagram, matching xterm: the exit action delivers OSCEnd.
	ctl(StateOSCString, ActionIgnore)
	one(StateOSCString, 0x07, ActionNone, StateGround)
	span(StateOSCString, 0x20, 0x7F, ActionOSCPut, stateNone)

	// SOS/PM/APC string: contents are discarded until the terminator.
	ctl(StateSOSPMApcString, ActionIgnore)
	span(StateSOSPMApcString, 0x20, 0x7F, ActionIgnore, stateNone)

	// Rules that hold in every state. CAN and SUB abort any sequence in
	// progress; ESC restarts one; 8-bit C1 controls act as their 7-bit
	// ESC Fe equivalents.
	anywhere(0x18, 0x18, ActionExecute, StateGround)
	anywhere(0x1A, 0x1A, ActionExecute, StateGround)
	anywhere(0x1B, 0x1B, ActionNone, StateEscape)
	anywhere(0x80, 0x8F, ActionExecute, StateGround)
	anywhere(0x90, 0x90, ActionNone, StateDCSEntry)
	anywhere(0x91, 0x97, ActionExecute, StateGround)
	anywhere(0x98, 0x98, ActionNone, StateSOSPMApcString)
	anywhere(0x99, 0x9A, ActionExecute, StateGround)
	anywhere(0x9B, 0x9B, ActionNone, StateCSIEntry)
	anywhere(0x9C, 0x9C, ActionNone, StateGround)
	anywhere(0x9D, 0x9D, ActionNone, StateOSCString)
	anywhere(0x9E, 0x9F, ActionNone, StateSOSPMApcString)

	// Entry and exit actions. Entering any *Entry state clears the
	// accumulators; leaving a string-collecting state closes it out.
	entryActions[StateEscape] = ActionClear
	entryActions[StateCSIEntry] = ActionClear
	entryActions[StateDCSEntry] = ActionClear
	entryActions[StateOSCString] = ActionOSCStart
	entryActions[StateDCSPassthrough] = ActionHook

	exitActions[StateOSCString] = ActionOSCEnd
	exitActions[StateDCSPassthrough] = ActionUnhook
}
