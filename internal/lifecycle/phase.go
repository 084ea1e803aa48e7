package lifecycle

// Phase is the controller's position in the load sequence.
type Phase int

const (
	// PhaseAwaitingStartup waits for the host to reach its startup
	// point; discovery and the pack load run on the first tick after.
	PhaseAwaitingStartup Phase = iota
	// PhaseLoaded means the pack load finished (with whatever per-entry
	// outcomes it had).
	PhaseLoaded
	// PhaseAwaitingCatalog polls the host catalog's readiness before
	// adjustment.
	PhaseAwaitingCatalog
	// PhaseAdjusted is terminal: the catalog has been reconciled.
	PhaseAdjusted
)

// String returns the phase name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStartup:
		return "awaiting_startup"
	case PhaseLoaded:
		return "loaded"
	case PhaseAwaitingCatalog:
		return "awaiting_catalog"
	case PhaseAdjusted:
		return "adjusted"
	default:
		return "unknown"
	}
}
