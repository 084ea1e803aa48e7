package adjustment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/contractforge/internal/catalog"
	"github.com/vk/contractforge/internal/lifecycle"
	"github.com/vk/contractforge/internal/testutil"
)

func catalogNames(entries []catalog.Entry) []string {
	var names []string
	for _, entry := range entries {
		names = append(names, entry.TypeName())
	}
	return names
}

func TestAdjustmentEndToEnd(t *testing.T) {
	result := testutil.RunPackTest(t, testutil.PackTest{
		Builtins: []string{"Foo", "Baz"},
		Files: map[string]string{
			"types.hcl": `
				contract_type "T1" {}
				contract_type "T2" {}
				contract_type "T3" {}
				contract_type "T4" {}
				contract_type "T5" {}
				contract_type "T6" {}
				contract_type "T7" {}
			`,
			"tuning.hcl": `
				adjustment {
					disabled_contract_type = ["Foo", "Bar"]
				}
			`,
		},
	})

	require.NoError(t, result.Err)
	assert.Equal(t, lifecycle.PhaseAdjusted, result.App.Controller().Phase())

	// Foo was disabled, Bar was not present, and round(7/4) placeholder
	// slots were added for the seven loaded types.
	names := catalogNames(result.App.Catalog().Entries())
	assert.Equal(t, []string{"Baz", "ConfiguredContract", "ConfiguredContract"}, names)

	assert.Contains(t, result.Output, "Disabled built-in types: 1")
	assert.Contains(t, result.Output, "? Bar (not in live catalog)")
	assert.Contains(t, result.Output, "Synthetic configured slots: 2")
	assert.Contains(t, result.Output, "Live catalog size: 3")
}

func TestAdjustmentDeduplicatesAcrossFiles(t *testing.T) {
	result := testutil.RunPackTest(t, testutil.PackTest{
		Builtins: []string{"Trade", "Patrol"},
		Files: map[string]string{
			"01_tuning.hcl": `
				adjustment {
					disabled_contract_type = ["Trade"]
				}
			`,
			"02_tuning.hcl": `
				adjustment {
					disabled_contract_type = ["Trade", "Patrol"]
				}
			`,
		},
	})

	require.NoError(t, result.Err)

	adjust := result.App.Controller().AdjustResult()
	require.NotNil(t, adjust)
	assert.Equal(t, []string{"Trade", "Patrol"}, adjust.Disabled)
	assert.Empty(t, adjust.Unresolved)
	assert.Empty(t, result.App.Catalog().Entries())
}

func TestAdjustmentWithoutBlocksStillAddsSlots(t *testing.T) {
	result := testutil.RunPackTest(t, testutil.PackTest{
		Builtins: []string{"Trade"},
		Files: map[string]string{
			"types.hcl": `
				contract_type "T1" {}
				contract_type "T2" {}
			`,
		},
	})

	require.NoError(t, result.Err)

	adjust := result.App.Controller().AdjustResult()
	require.NotNil(t, adjust)
	assert.Empty(t, adjust.Disabled)
	assert.Equal(t, 1, adjust.SyntheticCount)
	assert.Equal(t, []string{"Trade", "ConfiguredContract"}, catalogNames(result.App.Catalog().Entries()))
}

func TestFailedEntriesDoNotCountTowardSlots(t *testing.T) {
	result := testutil.RunPackTest(t, testutil.PackTest{
		Files: map[string]string{
			"types.hcl": `
				contract_type "Good1" {}
				contract_type "Good2" {}
				contract_type "Bad" {
					requirement "NeverRegistered" {}
				}
			`,
		},
	})

	require.NoError(t, result.Err)

	// Slots derive from the two surviving types, not the three entries.
	adjust := result.App.Controller().AdjustResult()
	require.NotNil(t, adjust)
	assert.Equal(t, 1, adjust.SyntheticCount)
	assert.Contains(t, result.Output, "Loaded contract types: 2 (failed: 1)")
}
