package loader

import "fmt"

// DuplicateNameError reports an entry whose declared name was already
// reserved by an earlier entry in the batch. The entry is skipped; the
// first reservation stands.
type DuplicateNameError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("contract type name %q already declared", e.Name)
}

// PopulationError reports an entry that reserved its name but failed to
// populate. The entry has been evicted from the store; the cause chain is
// reachable through Unwrap.
type PopulationError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *PopulationError) Error() string {
	return fmt.Sprintf("populating contract type %q failed: %v", e.Name, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PopulationError) Unwrap() error { return e.Err }
