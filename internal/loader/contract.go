package loader

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/contractforge/internal/confignode"
	"github.com/vk/contractforge/internal/plugins"
)

// ContractType is one loaded mission template: a named bundle of
// configured parameter, requirement and behaviour checks plus references
// to the sibling types it builds on.
type ContractType struct {
	Name        string
	Description string
	// Weight biases the host's random selection among configured types.
	Weight float64

	Parameters   []plugins.Check
	Requirements []plugins.Check
	Behaviours   []plugins.Check

	// Requires points at sibling contract types referenced by name. A
	// referenced sibling is guaranteed reserved, not guaranteed
	// populated, because pass 2 runs in declaration order.
	Requires []*ContractType

	populated bool
}

// Populated reports whether pass-2 population completed for this type.
// Readers must treat an unpopulated type as name-only.
func (c *ContractType) Populated() bool { return c.populated }

// checkKinds is the population order for check blocks within an entry.
var checkKinds = []plugins.Kind{plugins.KindParameter, plugins.KindRequirement, plugins.KindBehaviour}

// populate fills the contract type from its configuration entry. Plugin
// names resolve through reg; sibling references resolve against the
// reserved names in store. Any error leaves the receiver partially built;
// the loader evicts it.
func (c *ContractType) populate(ctx context.Context, entry confignode.Node, reg *plugins.Registry, store *Store) error {
	if desc, ok := entry.Value("description"); ok {
		c.Description = desc
	}
	if raw, ok := entry.Value("weight"); ok {
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q: %w", raw, err)
		}
		c.Weight = weight
	}

	for _, name := range entry.Values("requires_contract") {
		required, ok := store.Get(name)
		if !ok {
			return fmt.Errorf("references undeclared contract type %q", name)
		}
		c.Requires = append(c.Requires, required)
	}

	for _, kind := range checkKinds {
		for _, block := range entry.Children(kind.String()) {
			check, err := buildCheck(ctx, reg, kind, block)
			if err != nil {
				return err
			}
			switch kind {
			case plugins.KindParameter:
				c.Parameters = append(c.Parameters, check)
			case plugins.KindRequirement:
				c.Requirements = append(c.Requirements, check)
			case plugins.KindBehaviour:
				c.Behaviours = append(c.Behaviours, check)
			}
		}
	}

	return nil
}

// buildCheck resolves one check block against the registry and configures
// the fresh instance with the block's own node.
func buildCheck(ctx context.Context, reg *plugins.Registry, kind plugins.Kind, block confignode.Node) (plugins.Check, error) {
	name := block.Name()
	if name == "" {
		return nil, fmt.Errorf("%s block is missing its plugin name label", kind)
	}
	check, err := reg.Create(ctx, kind, name)
	if err != nil {
		return nil, err
	}
	if err := check.Configure(ctx, block); err != nil {
		return nil, fmt.Errorf("configuring %s %q failed: %w", kind, name, err)
	}
	return check, nil
}
