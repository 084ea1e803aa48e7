package hclpack

import "github.com/vk/contractforge/internal/confignode"

// node is the hclpack-backed implementation of confignode.Node.
type node struct {
	name       string
	keys       []string
	values     map[string][]string
	childNames []string
	children   map[string][]confignode.Node
}

func newNode(name string) *node {
	return &node{
		name:     name,
		values:   make(map[string][]string),
		children: make(map[string][]confignode.Node),
	}
}

// Name returns the node's block label.
func (n *node) Name() string { return n.name }

// Keys returns the attribute keys in declaration order.
func (n *node) Keys() []string { return n.keys }

// Values returns all values recorded under key.
func (n *node) Values(key string) []string { return n.values[key] }

// Value returns the first value recorded under key, if any.
func (n *node) Value(key string) (string, bool) {
	vals := n.values[key]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// ChildNames returns the distinct child block names in order of first
// appearance.
func (n *node) ChildNames() []string { return n.childNames }

// Children returns all child nodes declared under name.
func (n *node) Children(name string) []confignode.Node { return n.children[name] }

func (n *node) addValues(key string, vals []string) {
	if _, seen := n.values[key]; !seen {
		n.keys = append(n.keys, key)
	}
	n.values[key] = append(n.values[key], vals...)
}

func (n *node) addChild(name string, child confignode.Node) {
	if _, seen := n.children[name]; !seen {
		n.childNames = append(n.childNames, name)
	}
	n.children[name] = append(n.children[name], child)
}
