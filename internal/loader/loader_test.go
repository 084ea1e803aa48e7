package loader

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/contractforge/internal/confignode"
	"github.com/vk/contractforge/internal/hclpack"
	"github.com/vk/contractforge/internal/plugins"
)

type stubCheck struct {
	configure func(ctx context.Context, node confignode.Node) error
}

func (s *stubCheck) Configure(ctx context.Context, node confignode.Node) error {
	if s.configure == nil {
		return nil
	}
	return s.configure(ctx, node)
}

// newTestRegistry registers one well-behaved check per kind plus two
// misbehaving requirement checks.
func newTestRegistry(t *testing.T) *plugins.Registry {
	t.Helper()
	reg := plugins.New()

	reg.MustRegister(plugins.KindParameter, "Threshold", func() plugins.Check { return &stubCheck{} })
	reg.MustRegister(plugins.KindRequirement, "FlagSet", func() plugins.Check { return &stubCheck{} })
	reg.MustRegister(plugins.KindBehaviour, "GrantReward", func() plugins.Check { return &stubCheck{} })
	reg.MustRegister(plugins.KindRequirement, "Broken", func() plugins.Check {
		return &stubCheck{configure: func(context.Context, confignode.Node) error {
			return fmt.Errorf("bad config value")
		}}
	})
	reg.MustRegister(plugins.KindRequirement, "Explosive", func() plugins.Check {
		return &stubCheck{configure: func(context.Context, confignode.Node) error {
			panic("configure exploded")
		}}
	})

	return reg
}

func parseEntries(t *testing.T, src string) []confignode.Node {
	t.Helper()
	source, err := hclpack.ParseBytes(context.Background(), "test.hcl", []byte(src))
	require.NoError(t, err)
	return source.NodesByTag("contract_type")
}

func TestLoadPopulatesEntries(t *testing.T) {
	entries := parseEntries(t, `
		contract_type "IceMining" {
			description = "Haul ice"
			weight      = 2
			parameter "Threshold" { min = 1 }
			requirement "FlagSet" { flag = "docked" }
			behaviour "GrantReward" { amount = 500 }
		}
	`)

	store := NewStore()
	report := New(newTestRegistry(t), store).Load(context.Background(), entries)

	assert.Equal(t, 1, report.Loaded())
	assert.Equal(t, 0, report.Failed())

	item, ok := store.Get("IceMining")
	require.True(t, ok)
	assert.True(t, item.Populated())
	assert.Equal(t, "Haul ice", item.Description)
	assert.Equal(t, 2.0, item.Weight)
	assert.Len(t, item.Parameters, 1)
	assert.Len(t, item.Requirements, 1)
	assert.Len(t, item.Behaviours, 1)
}

func TestLoadDuplicateNameSkipsLaterEntry(t *testing.T) {
	entries := parseEntries(t, `
		contract_type "Salvage" { description = "first" }
		contract_type "Salvage" { description = "second" }
		contract_type "Patrol" {}
	`)

	store := NewStore()
	report := New(newTestRegistry(t), store).Load(context.Background(), entries)

	assert.Equal(t, 2, report.Loaded())
	assert.Equal(t, 1, report.Failed())

	var dup *DuplicateNameError
	require.ErrorAs(t, report.Results[1].Err, &dup)
	assert.Equal(t, "Salvage", dup.Name)

	// The first declaration won the name.
	item, ok := store.Get("Salvage")
	require.True(t, ok)
	assert.Equal(t, "first", item.Description)
	assert.Equal(t, []string{"Salvage", "Patrol"}, store.Names())
}

func TestLoadRollsBackFailedPopulation(t *testing.T) {
	entries := parseEntries(t, `
		contract_type "Good" {}
		contract_type "Bad" {
			requirement "Broken" {}
		}
		contract_type "AlsoGood" {}
	`)

	store := NewStore()
	report := New(newTestRegistry(t), store).Load(context.Background(), entries)

	assert.Equal(t, 2, report.Loaded())
	assert.Equal(t, 1, report.Failed())

	var popErr *PopulationError
	require.ErrorAs(t, report.Results[1].Err, &popErr)
	assert.Equal(t, "Bad", popErr.Name)

	// No partial item is visible, and the name is free again.
	_, ok := store.Get("Bad")
	assert.False(t, ok)
	_, err := store.Reserve("Bad")
	assert.NoError(t, err)
}

func TestLoadUnknownPluginSurfacesAsPopulationFailure(t *testing.T) {
	entries := parseEntries(t, `
		contract_type "Mystery" {
			requirement "NeverRegistered" {}
		}
	`)

	store := NewStore()
	report := New(newTestRegistry(t), store).Load(context.Background(), entries)

	require.Error(t, report.Results[0].Err)

	var popErr *PopulationError
	require.ErrorAs(t, report.Results[0].Err, &popErr)
	var unknown *plugins.UnknownPluginError
	require.ErrorAs(t, report.Results[0].Err, &unknown)
	assert.Equal(t, "NeverRegistered", unknown.Name)

	_, ok := store.Get("Mystery")
	assert.False(t, ok)
}

func TestLoadRecoversPanickingPlugin(t *testing.T) {
	entries := parseEntries(t, `
		contract_type "Volatile" {
			requirement "Explosive" {}
		}
		contract_type "Calm" {}
	`)

	store := NewStore()
	report := New(newTestRegistry(t), store).Load(context.Background(), entries)

	require.Error(t, report.Results[0].Err)
	assert.Contains(t, report.Results[0].Err.Error(), "configure exploded")

	// The batch survived the panic.
	assert.Equal(t, 1, report.Loaded())
	_, ok := store.Get("Calm")
	assert.True(t, ok)
}

func TestLoadResolvesForwardReferences(t *testing.T) {
	entries := parseEntries(t, `
		contract_type "Escort" {
			requires_contract = ["Patrol"]
		}
		contract_type "Patrol" {}
	`)

	store := NewStore()
	report := New(newTestRegistry(t), store).Load(context.Background(), entries)

	assert.Equal(t, 2, report.Loaded())

	escort, ok := store.Get("Escort")
	require.True(t, ok)
	require.Len(t, escort.Requires, 1)

	patrol, ok := store.Get("Patrol")
	require.True(t, ok)
	assert.Same(t, patrol, escort.Requires[0])
}

func TestLoadRejectsUndeclaredReference(t *testing.T) {
	entries := parseEntries(t, `
		contract_type "Escort" {
			requires_contract = ["Ghost"]
		}
	`)

	store := NewStore()
	report := New(newTestRegistry(t), store).Load(context.Background(), entries)

	require.Error(t, report.Results[0].Err)
	assert.Contains(t, report.Results[0].Err.Error(), `"Ghost"`)
	assert.Equal(t, 0, store.Len())
}

func TestLoadSkipsUnnamedEntry(t *testing.T) {
	entries := parseEntries(t, `
		contract_type {}
		contract_type "Named" {}
	`)

	store := NewStore()
	report := New(newTestRegistry(t), store).Load(context.Background(), entries)

	require.Error(t, report.Results[0].Err)
	assert.Equal(t, 1, report.Loaded())
	assert.Equal(t, []string{"Named"}, store.Names())
}

func TestLoadInvalidWeight(t *testing.T) {
	entries := parseEntries(t, `
		contract_type "Heavy" {
			weight = "plenty"
		}
	`)

	store := NewStore()
	report := New(newTestRegistry(t), store).Load(context.Background(), entries)

	require.Error(t, report.Results[0].Err)
	assert.True(t, errors.As(report.Results[0].Err, new(*PopulationError)))
	_, ok := store.Get("Heavy")
	assert.False(t, ok)
}
