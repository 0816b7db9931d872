// Package sim provides the discrete-event simulation engine for fieldsim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - field.go: Field identity, parity and complexity
//   - calendar.go: the fixed-slot event calendar and its tie-break rule
//   - encoder.go: the bounded encoder buffer, its discard policy and service
//   - storage.go: paired storage service
//   - simulator.go: run state and the event loop
//
// # Model
//
// Interlaced fields arrive at an encoder with exponentially distributed
// inter-arrival times and complexities. The encoder buffer is bounded; on
// overflow fields are discarded in TOP/BOTTOM pairs so that the storage
// server, which always consumes two fields at once, only ever sees matched
// pairs. The storage buffer is unbounded.
//
// Each event kind has at most one pending occurrence, so the calendar is a
// seven-slot array instead of a priority queue. Ties are broken in favor of
// the lowest slot index, which together with a seeded RandomSource makes a
// run bit-for-bit reproducible.
//
// # Sub-packages
//   - sim/trace/: optional per-run record of arrivals, discards and served pairs
//   - sim/sweep/: parameter-sweep driver running many Simulators concurrently
//   - sim/results/: CSV and JSON result sinks
package sim
