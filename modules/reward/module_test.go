package reward

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/contractforge/internal/confignode"
	"github.com/vk/contractforge/internal/hclpack"
	"github.com/vk/contractforge/internal/plugins"
)

func parseBlock(t *testing.T, src string) confignode.Node {
	t.Helper()
	source, err := hclpack.ParseBytes(context.Background(), "test.hcl", []byte(src))
	require.NoError(t, err)
	nodes := source.NodesByTag("behaviour")
	require.Len(t, nodes, 1)
	return nodes[0]
}

func TestConfigureDefaultsCurrency(t *testing.T) {
	node := parseBlock(t, `
		behaviour "GrantReward" {
			amount = 1500
		}
	`)

	b := &GrantRewardBehaviour{}
	require.NoError(t, b.Configure(context.Background(), node))
	assert.Equal(t, 1500.0, b.Amount)
	assert.Equal(t, "credits", b.Currency)
}

func TestConfigureExplicitCurrency(t *testing.T) {
	node := parseBlock(t, `
		behaviour "GrantReward" {
			amount   = 25.5
			currency = "reputation"
		}
	`)

	b := &GrantRewardBehaviour{}
	require.NoError(t, b.Configure(context.Background(), node))
	assert.Equal(t, 25.5, b.Amount)
	assert.Equal(t, "reputation", b.Currency)
}

func TestConfigureRequiresAmount(t *testing.T) {
	node := parseBlock(t, `
		behaviour "GrantReward" {}
	`)

	err := (&GrantRewardBehaviour{}).Configure(context.Background(), node)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires an amount")
}

func TestConfigureRejectsNonPositiveAmount(t *testing.T) {
	node := parseBlock(t, `
		behaviour "GrantReward" {
			amount = 0
		}
	`)

	err := (&GrantRewardBehaviour{}).Configure(context.Background(), node)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestConfigureRejectsBadAmount(t *testing.T) {
	node := parseBlock(t, `
		behaviour "GrantReward" {
			amount = "a bundle"
		}
	`)

	err := (&GrantRewardBehaviour{}).Configure(context.Background(), node)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid amount "a bundle"`)
}

func TestManifest(t *testing.T) {
	m := Module{}.Manifest()

	assert.Equal(t, "reward", m.Module)
	require.Len(t, m.Entries, 1)
	assert.Equal(t, plugins.KindBehaviour, m.Entries[0].Kind)
	assert.Equal(t, "GrantRewardBehaviour", m.Entries[0].TypeName)
	assert.IsType(t, &GrantRewardBehaviour{}, m.Entries[0].New())
}
