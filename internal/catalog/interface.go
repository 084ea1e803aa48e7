package catalog

// Entry is a handle to one mission type in the live catalog.
type Entry interface {
	// TypeName returns the exact type name the catalog entry is known
	// by. Disable requests match against it case-sensitively.
	TypeName() string
}

// Catalog is the host's live mission-type list.
type Catalog interface {
	// Ready reports whether the host has populated the catalog yet. The
	// adjustment step polls this and retries on later ticks; not-ready
	// is a precondition gate, never an error.
	Ready() bool

	// Entries returns the current catalog entries.
	Entries() []Entry

	// Remove deletes an entry from the catalog. Removing an entry that
	// is not present is a no-op.
	Remove(entry Entry)

	// Add appends an entry to the catalog.
	Add(entry Entry)
}

// ConfiguredContract is the generic placeholder entry standing in for
// "pick one of the loaded contract types at random". The adjuster adds one
// instance per synthetic slot so configured types keep proportional odds
// in the host's random selection.
type ConfiguredContract struct{}

// TypeName implements Entry.
func (ConfiguredContract) TypeName() string { return "ConfiguredContract" }
