package discovery

import "github.com/vk/contractforge/internal/plugins"

// Entry declares one check type a module ships. TypeName is the Go type
// name; the registration name is derived from it by the kind's suffix rule.
type Entry struct {
	Kind     plugins.Kind
	TypeName string
	New      plugins.Factory
}

// Manifest is a module's static declaration of everything it provides.
type Manifest struct {
	// Module is the module's identifier, used in diagnostics.
	Module string
	// Entries lists the module's check types in declaration order.
	Entries []Entry
}

// Module is the interface plugin packages implement to take part in
// discovery.
type Module interface {
	Manifest() Manifest
}
