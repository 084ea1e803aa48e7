package catalog

// BuiltinType is a plain named catalog entry, as seeded by the dry-run
// host for the game's built-in mission types.
type BuiltinType struct {
	name string
}

// NewBuiltinType creates a catalog entry for a built-in mission type.
func NewBuiltinType(name string) *BuiltinType {
	return &BuiltinType{name: name}
}

// TypeName implements Entry.
func (b *BuiltinType) TypeName() string { return b.name }

// Memory is an in-memory Catalog for the CLI dry-run host and tests.
// Mutation follows the engine's single-driver model, so there is no
// locking here.
type Memory struct {
	ready   bool
	entries []Entry
}

// NewMemory creates a not-yet-ready in-memory catalog seeded with one
// BuiltinType per name.
func NewMemory(builtinNames ...string) *Memory {
	m := &Memory{}
	for _, name := range builtinNames {
		m.entries = append(m.entries, NewBuiltinType(name))
	}
	return m
}

// MarkReady flips the catalog to ready, simulating the host finishing its
// own startup.
func (m *Memory) MarkReady() { m.ready = true }

// Ready implements Catalog.
func (m *Memory) Ready() bool { return m.ready }

// Entries implements Catalog. The returned slice is a copy.
func (m *Memory) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Remove implements Catalog. The first occurrence of the entry is
// removed; an absent entry is a no-op.
func (m *Memory) Remove(entry Entry) {
	for i, e := range m.entries {
		if e == entry {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

// Add implements Catalog.
func (m *Memory) Add(entry Entry) {
	m.entries = append(m.entries, entry)
}
