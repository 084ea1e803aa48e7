// Package adjuster reconciles the host's live mission-type catalog with a
// loaded contract pack.
//
// Adjustment entries name built-in mission types to disable; the adjuster
// resolves those names against the live catalog, removes each resolved
// type once, and then adds enough configured-contract placeholder entries
// that the host's random mission selection picks a configured type with
// odds proportional to how many were loaded (one placeholder per four
// loaded types, half rounding up).
//
// Adjustment runs exactly once per process. Until the host reports its
// catalog ready, Run is a polite no-op to be retried on a later tick.
package adjuster
