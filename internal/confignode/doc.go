// Package confignode defines the read-only contract between the loading
// engine and the host's declarative configuration representation.
//
// The engine never parses configuration itself; the host hands it a tree of
// named nodes with string-valued, possibly repeated keys and named child
// nodes. Everything the loader, the plugin checks, and the adjuster know
// about configuration goes through the Node interface, so the concrete
// representation (HCL in this repository, anything else in an embedding
// host) stays swappable.
package confignode
