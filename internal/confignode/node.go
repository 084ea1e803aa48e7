package confignode

// Node is a single named configuration entry: scalar key/value pairs plus
// nested child nodes. Keys may repeat; a repeated key reads back as an
// ordered sequence of string values.
type Node interface {
	// Name returns the node's declared name (its block label). May be
	// empty for anonymous nodes such as adjustment entries.
	Name() string

	// Keys returns the attribute keys present on this node, in
	// declaration order, each key listed once.
	Keys() []string

	// Values returns all values recorded under key, in declaration
	// order. A missing key returns nil.
	Values(key string) []string

	// Value returns the first value recorded under key, if any.
	Value(key string) (string, bool)

	// ChildNames returns the distinct child-node names, in declaration
	// order of first appearance.
	ChildNames() []string

	// Children returns all child nodes declared under name, in
	// declaration order. A missing name returns nil.
	Children(name string) []Node
}
