// Package lifecycle drives the extension layer through its load phases.
//
// The host calls Controller.Step once per tick. The controller advances
// through AwaitingStartup → Loaded → AwaitingCatalog → Adjusted: discovery
// and the two-pass pack load run synchronously inside the first eligible
// tick, the catalog adjustment waits on the host catalog's readiness and
// runs once, and Adjusted is terminal. There is no internal threading and
// no mid-pass suspension; a tick either completes its phase's work or
// leaves the phase untouched for the next tick.
package lifecycle
