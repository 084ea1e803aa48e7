package testutil

import (
	"context"

	"github.com/vk/contractforge/internal/confignode"
	"github.com/vk/contractforge/internal/discovery"
	"github.com/vk/contractforge/internal/plugins"
)

// CheckFunc adapts a bare function into a plugins.Check.
type CheckFunc func(ctx context.Context, node confignode.Node) error

// Configure implements plugins.Check.
func (f CheckFunc) Configure(ctx context.Context, node confignode.Node) error {
	return f(ctx, node)
}

// NoopCheck returns a check whose Configure always succeeds.
func NoopCheck() plugins.Check {
	return CheckFunc(func(context.Context, confignode.Node) error { return nil })
}

// FailingCheck returns a check whose Configure always fails with err.
func FailingCheck(err error) plugins.Check {
	return CheckFunc(func(context.Context, confignode.Node) error { return err })
}

// PanickingCheck returns a check whose Configure panics, for testing the
// loader's per-entry fault isolation.
func PanickingCheck(msg string) plugins.Check {
	return CheckFunc(func(context.Context, confignode.Node) error { panic(msg) })
}

// StaticModule is a discovery.Module declared inline in a test.
type StaticModule struct {
	M discovery.Manifest
}

// Manifest implements discovery.Module.
func (s StaticModule) Manifest() discovery.Manifest { return s.M }

// ModuleOf builds a single-manifest module from entries.
func ModuleOf(name string, entries ...discovery.Entry) discovery.Module {
	return StaticModule{M: discovery.Manifest{Module: name, Entries: entries}}
}

// PanickingModule is a module whose manifest cannot be read; discovery
// must skip it and carry on.
type PanickingModule struct{}

// Manifest implements discovery.Module by panicking.
func (PanickingModule) Manifest() discovery.Manifest {
	panic("manifest exploded")
}
