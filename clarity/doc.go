// Package clarity implements a bidirectional codec for the Clarity value
// notation produced and consumed by a simnet ledger-simulation engine,
// plus a structural matcher over the engine's ordered event logs.
//
// The package has three layers:
//   - Encoders turn typed Go values into notation fragments
//     (Ok, Uint, Buff, Tuple, ...) that can be sent to the engine.
//   - The expect family on Value decodes engine output back into typed
//     values while checking it against an expected shape
//     (ExpectOk, ExpectUint, ExpectTuple, ...).
//   - EventLog scans ordered event records for transfers, mints and
//     burns matching a set of expectations, first match wins.
//
// # Notation
//
// Result wrappers:  (ok V)  (err V)
// Optionals:        (some V)  none
// Booleans:         true / false
// Integers:         123 (signed)  u123 (unsigned)
// Strings:          "ascii"  u"utf8"
// Buffers:          0x<lowercase hex>
// Principals:       'ST1ABC...
// Tuples:           { k: V, k: V }
// Lists:            (list V V V) when encoding, [V, V, V] when decoding
//
// The list forms are deliberately distinct: encoded lists are sent to the
// engine and never come back through this decoder, while decoded lists
// arrive from the engine in bracketed, comma-separated form. The codec
// keeps both grammars as-is rather than unifying them.
//
// All operations work on complete, already-returned strings. There is no
// shared mutable state beyond a byte-to-hex table built once at startup,
// so any number of callers may decode concurrently.
package clarity
