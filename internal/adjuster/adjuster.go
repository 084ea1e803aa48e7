package adjuster

import (
	"context"
	"math"

	"github.com/vk/contractforge/internal/catalog"
	"github.com/vk/contractforge/internal/confignode"
	"github.com/vk/contractforge/internal/ctxlog"
)

// disabledKey is the repeatable adjustment-entry key naming built-in types
// to disable.
const disabledKey = "disabled_contract_type"

// syntheticRatio is how many loaded contract types one placeholder slot
// represents.
const syntheticRatio = 4.0

// Result summarizes one completed adjustment run.
type Result struct {
	// Disabled lists the type names actually removed from the catalog.
	Disabled []string
	// Unresolved lists requested names with no matching catalog type.
	Unresolved []string
	// SyntheticCount is how many configured-contract placeholders were
	// added.
	SyntheticCount int
}

// Adjuster applies the pack's catalog adjustments. It runs at most once;
// the completion flag makes later calls return the recorded result.
type Adjuster struct {
	done   bool
	result *Result
}

// New creates an Adjuster that has not yet run.
func New() *Adjuster {
	return &Adjuster{}
}

// Done reports whether adjustment has completed.
func (a *Adjuster) Done() bool { return a.done }

// Run applies the adjustment once the catalog is ready. The second return
// is false while the catalog precondition does not hold yet; the caller
// retries on a later tick. After completion, Run returns the recorded
// result without re-applying anything.
func (a *Adjuster) Run(ctx context.Context, cat catalog.Catalog, entries []confignode.Node, loadedCount int) (*Result, bool) {
	if a.done {
		return a.result, true
	}
	if !cat.Ready() {
		ctxlog.FromContext(ctx).Debug("Live catalog not ready, deferring adjustment.")
		return nil, false
	}

	logger := ctxlog.FromContext(ctx)
	result := &Result{}

	for _, name := range CollectDisabled(entries) {
		entry, ok := resolve(cat, name)
		if !ok {
			logger.Warn("Disable target not found in live catalog.", "name", name)
			result.Unresolved = append(result.Unresolved, name)
			continue
		}
		cat.Remove(entry)
		logger.Info("Disabled built-in contract type.", "name", name)
		result.Disabled = append(result.Disabled, name)
	}

	result.SyntheticCount = SyntheticCount(loadedCount)
	for i := 0; i < result.SyntheticCount; i++ {
		cat.Add(catalog.ConfiguredContract{})
	}
	logger.Info("Catalog adjustment complete.",
		"disabled", len(result.Disabled), "unresolved", len(result.Unresolved),
		"synthetic", result.SyntheticCount, "loaded", loadedCount)

	a.done = true
	a.result = result
	return result, true
}

// CollectDisabled gathers the disable requests across all adjustment
// entries into a deduplicated list, preserving first-seen order.
func CollectDisabled(entries []confignode.Node) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, entry := range entries {
		for _, name := range entry.Values(disabledKey) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// SyntheticCount computes how many configured-contract placeholders a
// given number of loaded types earns: loaded/4, half rounding up.
func SyntheticCount(loaded int) int {
	return int(math.Round(float64(loaded) / syntheticRatio))
}

// resolve finds the first catalog entry whose type name matches exactly.
func resolve(cat catalog.Catalog, name string) (catalog.Entry, bool) {
	for _, entry := range cat.Entries() {
		if entry.TypeName() == name {
			return entry, true
		}
	}
	return nil, false
}
