// Package discovery finds plugin check types across compiled modules and
// feeds them into the plugin registry.
//
// Discovery is manifest-driven: every module declares its check types in a
// static Manifest instead of being found by runtime reflection. A module
// whose manifest cannot be read is logged and skipped; one broken module
// never fails the scan for the others.
package discovery
