package loader

import (
	"context"
	"fmt"

	"github.com/vk/contractforge/internal/confignode"
	"github.com/vk/contractforge/internal/ctxlog"
	"github.com/vk/contractforge/internal/plugins"
)

// EntryResult is the per-entry outcome of a load. Err is nil for entries
// that ended up in the store.
type EntryResult struct {
	Name string
	Err  error
}

// Report collects every entry's result for one Load call, in entry order.
type Report struct {
	Results []EntryResult
}

// Loaded returns the number of entries that loaded successfully.
func (r *Report) Loaded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of entries that were skipped or rolled back.
func (r *Report) Failed() int {
	return len(r.Results) - r.Loaded()
}

// Loader runs the two-pass load of contract-type entries into a store.
type Loader struct {
	reg   *plugins.Registry
	store *Store
}

// New creates a Loader writing into store and resolving plugin names
// through reg.
func New(reg *plugins.Registry, store *Store) *Loader {
	return &Loader{reg: reg, store: store}
}

// Load runs both passes over entries and returns the per-entry report.
// Failures never abort the batch; each entry either ends up fully
// populated in the store or absent from it.
func (l *Loader) Load(ctx context.Context, entries []confignode.Node) *Report {
	logger := ctxlog.FromContext(ctx)
	report := &Report{Results: make([]EntryResult, len(entries))}

	// Pass 1: reserve every declared name so pass-2 population can
	// resolve sibling references regardless of declaration order.
	reserved := make([]*ContractType, len(entries))
	for i, entry := range entries {
		name := entry.Name()
		report.Results[i].Name = name

		if name == "" {
			err := fmt.Errorf("contract type entry %d has no name", i)
			logger.Error("Skipping unnamed contract type entry.", "index", i)
			report.Results[i].Err = err
			continue
		}

		item, err := l.store.Reserve(name)
		if err != nil {
			logger.Error("Skipping contract type with duplicate name.", "name", name, "error", err)
			report.Results[i].Err = err
			continue
		}
		reserved[i] = item
	}

	// Pass 2: populate the survivors in entry order. A failed entry is
	// evicted whole so later readers never observe a partial item.
	for i, entry := range entries {
		item := reserved[i]
		if item == nil {
			continue
		}

		if err := l.populateEntry(ctx, item, entry); err != nil {
			popErr := &PopulationError{Name: item.Name, Err: err}
			logger.Error("Contract type population failed, entry rolled back.", "name", item.Name, "error", popErr)
			l.store.Evict(item.Name)
			report.Results[i].Err = popErr
			continue
		}

		item.populated = true
		logger.Debug("Contract type populated.", "name", item.Name)
	}

	logger.Info("Contract pack loaded.", "loaded", report.Loaded(), "failed", report.Failed())
	return report
}

// populateEntry runs one entry's population, converting a panicking plugin
// into an ordinary per-entry error so the batch survives.
func (l *Loader) populateEntry(ctx context.Context, item *ContractType, entry confignode.Node) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("population panicked: %v", r)
		}
	}()
	return item.populate(ctx, entry, l.reg, l.store)
}
