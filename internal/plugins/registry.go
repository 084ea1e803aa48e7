package plugins

import (
	"context"

	"github.com/vk/contractforge/internal/confignode"
	"github.com/vk/contractforge/internal/ctxlog"
)

// Check is a configured plugin instance. Implementations interpret their
// own configuration node; the engine only constructs and configures them.
type Check interface {
	// Configure populates the check from its configuration node. A
	// returned error fails the population of the enclosing contract type.
	Configure(ctx context.Context, node confignode.Node) error
}

// Factory constructs a fresh, unconfigured check instance.
type Factory func() Check

// Registry holds the name→factory bindings for every plugin kind. It is
// populated once at startup and only read afterwards; all mutation happens
// on the single load driver.
type Registry struct {
	factories map[Kind]map[string]Factory
	order     map[Kind][]string
}

// New creates and initializes an empty Registry instance.
func New() *Registry {
	return &Registry{
		factories: make(map[Kind]map[string]Factory),
		order:     make(map[Kind][]string),
	}
}

// Register stores a name→factory binding for the given kind. Registering a
// name twice within one kind is a programmer error: the first binding is
// kept and a DuplicateRegistrationError is returned, never a silent
// overwrite.
func (r *Registry) Register(kind Kind, name string, factory Factory) error {
	if factory == nil {
		panic("plugins: Register called with nil factory")
	}
	byName, ok := r.factories[kind]
	if !ok {
		byName = make(map[string]Factory)
		r.factories[kind] = byName
	}
	if _, exists := byName[name]; exists {
		return &DuplicateRegistrationError{Kind: kind, Name: name}
	}
	byName[name] = factory
	r.order[kind] = append(r.order[kind], name)
	return nil
}

// MustRegister is Register for static registration paths, where a
// collision means two modules fight over one name and startup should not
// proceed.
func (r *Registry) MustRegister(kind Kind, name string, factory Factory) {
	if err := r.Register(kind, name, factory); err != nil {
		panic(err)
	}
}

// Create constructs a new instance of the check registered under name. The
// binding used is deterministic: whichever registration won the name.
func (r *Registry) Create(ctx context.Context, kind Kind, name string) (Check, error) {
	factory, ok := r.factories[kind][name]
	if !ok {
		return nil, &UnknownPluginError{Kind: kind, Name: name}
	}
	ctxlog.FromContext(ctx).Debug("Creating plugin check.", "kind", kind.String(), "name", name)
	return factory(), nil
}

// Has reports whether a binding exists for name within kind.
func (r *Registry) Has(kind Kind, name string) bool {
	_, ok := r.factories[kind][name]
	return ok
}

// Names returns the registered names for kind in registration order, for
// diagnostics and deterministic enumeration.
func (r *Registry) Names(kind Kind) []string {
	names := make([]string, len(r.order[kind]))
	copy(names, r.order[kind])
	return names
}
