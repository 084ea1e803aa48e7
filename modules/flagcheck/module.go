// Package flagcheck ships the FlagSet requirement check: a mission is only
// offered while a named game flag holds the expected state.
package flagcheck

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

// FlagSetRequirement gates a contract type on a host-side flag.
type FlagSetRequirement struct {
	Flag   string
	Negate bool
}

// Configure populates the check from its requirement block.
func (r *FlagSetRequirement) Configure(ctx context.Context, node confignode.Node) error {
	flag, ok := node.Value("flag")
	if !ok || flag == "" {
		return fmt.Errorf("flag_set requires a non-empty flag")
	}
	r.Flag = flag

	if raw, ok := node.Value("negate"); ok {
		negate, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid negate %q: %w", raw, err)
		}
		r.Negate = negate
	}
	return nil
}

// Manifest declares the check types this module ships.
func (Module) Manifest() discovery.Manifest {
	return discovery.Manifest{
		Module: "flagcheck",
		Entries: []discovery.Entry{
			{
				Kind:     plugins.KindRequirement,
				TypeName: "FlagSetRequirement",
				New:      func() plugins.Check { return &FlagSetRequirement{} },
			},
		},
	}
}
