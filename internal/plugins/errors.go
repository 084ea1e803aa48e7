package plugins

import "fmt"

// DuplicateRegistrationError reports a second registration under an
// already-bound name. The original binding stays in effect.
type DuplicateRegistrationError struct {
	Kind Kind
	Name string
}

// Error implements the error interface.
func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("%s plugin %q already registered", e.Kind, e.Name)
}

// UnknownPluginError reports a Create against a name that was never
// registered for the kind.
type UnknownPluginError struct {
	Kind Kind
	Name string
}

// Error implements the error interface.
func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("no %s plugin registered under %q", e.Kind, e.Name)
}
