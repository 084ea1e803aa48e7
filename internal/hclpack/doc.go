// Package hclpack is the HCL implementation of the host's configuration
// side of the loading engine.
//
// A contract pack is a directory of .hcl files. Top-level blocks are
// grouped by their block type, which doubles as the logical tag the engine
// asks for: `contract_type "Name" { ... }` entries under "contract_type",
// `adjustment { ... }` entries under "adjustment". Block bodies translate
// into confignode trees: attributes become string-valued keys (list values
// flatten into ordered repeated values) and nested blocks become child
// nodes.
//
// Values are evaluated statically at parse time; pack files carry data,
// not expressions.
package hclpack
