// Package threshold ships the Threshold parameter check: a numeric bound a
// generated mission parameter must fall within.
package threshold

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

// ThresholdParameter bounds a numeric mission parameter. At least one of
// min and max must be configured.
type ThresholdParameter struct {
	Min    *float64
	Max    *float64
	Target string
}

// Configure populates the check from its parameter block.
func (p *ThresholdParameter) Configure(ctx context.Context, node confignode.Node) error {
	if target, ok := node.Value("target"); ok {
		p.Target = target
	}
	var err error
	if p.Min, err = optionalFloat(node, "min"); err != nil {
		return err
	}
	if p.Max, err = optionalFloat(node, "max"); err != nil {
		return err
	}

	if p.Min == nil && p.Max == nil {
		return fmt.Errorf("threshold requires at least one of min or max")
	}
	if p.Min != nil && p.Max != nil && *p.Min > *p.Max {
		return fmt.Errorf("threshold min %v exceeds max %v", *p.Min, *p.Max)
	}
	return nil
}

func optionalFloat(node confignode.Node, key string) (*float64, error) {
	raw, ok := node.Value(key)
	if !ok {
		return nil, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return &val, nil
}

// Manifest declares the check types this module ships.
func (Module) Manifest() discovery.Manifest {
	return discovery.Manifest{
		Module: "threshold",
		Entries: []discovery.Entry{
			{
				Kind:     plugins.KindParameter,
				TypeName: "ThresholdParameter",
				New:      func() plugins.Check { return &ThresholdParameter{} },
			},
		},
	}
}
