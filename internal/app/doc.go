// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the tick loop that drives the load
// lifecycle, decoupled from any specific entrypoint like a CLI.
//
// App doubles as the dry-run host: it owns an in-memory live catalog
// seeded with built-in type names and reports its readiness one tick after
// the pack load, the way a real host finishes its own startup while the
// extension layer polls.
package app
