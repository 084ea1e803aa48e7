// Package reward ships the GrantReward behaviour: a payout applied when a
// configured mission completes.
package reward

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/contractforge/internal/confignode"
	"github.com/vk/contractforge/internal/discovery"
	"github.com/vk/contractforge/internal/plugins"
)

// Module implements the discovery.Module interface for this package.
type Module struct{}

// defaultCurrency is used when a reward block does not name one.
const defaultCurrency = "credits"

// GrantRewardBehaviour pays out a fixed amount on mission completion.
type GrantRewardBehaviour struct {
	Amount   float64
	Currency string
}

// Configure populates the check from its behaviour block.
func (b *GrantRewardBehaviour) Configure(ctx context.Context, node confignode.Node) error {
	raw, ok := node.Value("amount")
	if !ok {
		return fmt.Errorf("grant_reward requires an amount")
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %v", amount)
	}
	b.Amount = amount

	b.Currency = defaultCurrency
	if currency, ok := node.Value("currency"); ok {
		b.Currency = currency
	}
	return nil
}

// Manifest declares the check types this module ships.
func (Module) Manifest() discovery.Manifest {
	return discovery.Manifest{
		Module: "reward",
		Entries: []discovery.Entry{
			{
				Kind:     plugins.KindBehaviour,
				TypeName: "GrantRewardBehaviour",
				New:      func() plugins.Check { return &GrantRewardBehaviour{} },
			},
		},
	}
}
