// Package catalog defines the engine's view of the host's live
// mission-type catalog: the runtime list of mission types eligible for
// random selection.
//
// The engine only ever reads readiness, enumerates entries, removes
// disabled ones and adds configured-type placeholders. The in-memory
// implementation exists for the CLI dry-run host and for tests; a real
// host adapts its own catalog behind the same interface.
package catalog
