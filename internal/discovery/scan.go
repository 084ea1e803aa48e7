package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/contractforge/internal/ctxlog"
	"github.com/vk/contractforge/internal/plugins"
)

// ScanError reports a module whose manifest could not be read. The module
// is skipped; scanning continues with the rest.
type ScanError struct {
	Module string
	Err    error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("scanning module %q failed: %v", e.Module, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ScanError) Unwrap() error { return e.Err }

// Scan returns all entries of the given kind declared across modules, in
// module order. Entry order is stable for a given module set. Unreadable
// modules are logged and skipped.
func Scan(ctx context.Context, modules []Module, kind plugins.Kind) []Entry {
	logger := ctxlog.FromContext(ctx)

	var found []Entry
	for i, mod := range modules {
		manifest, err := readManifest(mod)
		if err != nil {
			logger.Error("Skipping module with unreadable manifest.", "index", i, "error", err)
			continue
		}
		for _, entry := range manifest.Entries {
			if entry.Kind == kind {
				found = append(found, entry)
			}
		}
	}
	return found
}

// Populate registers every entry declared by modules under its derived
// name. Unreadable modules are skipped as in Scan. Colliding derived names
// keep their first binding; each collision is reported in the returned
// joined error so it surfaces in testing, but registration of the
// remaining entries continues.
func Populate(ctx context.Context, reg *plugins.Registry, modules []Module) error {
	logger := ctxlog.FromContext(ctx)

	var errs []error
	registered := 0
	for i, mod := range modules {
		manifest, err := readManifest(mod)
		if err != nil {
			logger.Error("Skipping module with unreadable manifest.", "index", i, "error", err)
			continue
		}
		for _, entry := range manifest.Entries {
			name := plugins.DeriveName(entry.TypeName, entry.Kind)
			if err := reg.Register(entry.Kind, name, entry.New); err != nil {
				logger.Error("Plugin registration rejected.",
					"module", manifest.Module, "kind", entry.Kind.String(), "name", name, "error", err)
				errs = append(errs, err)
				continue
			}
			logger.Debug("Registered plugin check.",
				"module", manifest.Module, "kind", entry.Kind.String(), "name", name, "type", entry.TypeName)
			registered++
		}
	}

	logger.Info("Plugin discovery complete.", "modules", len(modules), "registered", registered)
	return errors.Join(errs...)
}

// readManifest reads a module's manifest, converting panics and malformed
// declarations into a ScanError so one module cannot abort the batch.
func readManifest(mod Module) (manifest Manifest, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ScanError{Module: fmt.Sprintf("%T", mod), Err: fmt.Errorf("manifest panicked: %v", r)}
		}
	}()

	manifest = mod.Manifest()
	for _, entry := range manifest.Entries {
		if entry.TypeName == "" || entry.New == nil {
			return Manifest{}, &ScanError{
				Module: manifest.Module,
				Err:    fmt.Errorf("malformed entry: type name %q, nil factory %t", entry.TypeName, entry.New == nil),
			}
		}
	}
	return manifest, nil
}
