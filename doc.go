// Package govtparse implements a streaming parser for DEC-compatible
// terminal escape sequences, following Paul Williams' state machine for
// VT500-series terminals (https://vt100.net/emu/dec_ansi_parser).
//
// The machine is table-driven: three read-only tables map the current
// state and input byte to a transition, and map states to their entry and
// exit actions. Input arrives as raw bytes via Parser.Advance, which runs
// them through a UTF-8 front-end, or as pre-decoded code points via
// Parser.AdvanceRunes. Semantic events are delivered synchronously to a
// Performer; runs of ground-state printable characters are coalesced into
// a single Print call.
//
// The parser never fails on input: every byte stream produces some event
// sequence, with malformed control sequences silently consumed by the
// CSIIgnore and DCSIgnore states. The default UTF-8 decoder is likewise
// permissive and does not reject overlong forms, surrogates, or 5- and
// 6-byte sequences; WithStrictUTF8 selects validation with U+FFFD
// replacement instead.
//
// A Parser holds no heap allocations and no OS resources, and must only
// be driven from one goroutine at a time.
package govtparse
