// Package plugins provides the central registry for pluggable contract
// checks.
//
// The Registry stores mappings between the string identifiers used in pack
// configuration (e.g. a requirement block labelled "FlagSet") and the
// compiled Go constructors that implement them. It is populated once at
// startup from module manifests and read during pack population, when
// contract types resolve their parameter, requirement and behaviour blocks
// by name.
package plugins
