package lifecycle

import (
	"context"

	"github.com/vk/contractforge/internal/adjuster"
	"github.com/vk/contractforge/internal/catalog"
	"github.com/vk/contractforge/internal/confignode"
	"github.com/vk/contractforge/internal/ctxlog"
	"github.com/vk/contractforge/internal/discovery"
	"github.com/vk/contractforge/internal/loader"
	"github.com/vk/contractforge/internal/plugins"
)

// Logical tags the engine requests from the host's configuration source.
const (
	TagContractType = "contract_type"
	TagAdjustment   = "adjustment"
)

// Source is the host-provided configuration collaborator.
type Source interface {
	NodesByTag(tag string) []confignode.Node
}

// Config wires a Controller to its collaborators.
type Config struct {
	Source   Source
	Modules  []discovery.Module
	Registry *plugins.Registry
	Store    *loader.Store
	Catalog  catalog.Catalog

	// Started gates the load phase on the host reaching its startup
	// point. A nil Started means the host is ready immediately.
	Started func() bool
}

// Controller is the tick-driven state machine owning the load sequence.
// It is single-threaded: the host must call Step from one driver only.
type Controller struct {
	cfg      Config
	phase    Phase
	adjuster *adjuster.Adjuster

	report       *loader.Report
	adjustResult *adjuster.Result
}

// New creates a Controller in PhaseAwaitingStartup. Missing collaborators
// are programmer errors.
func New(cfg Config) *Controller {
	if cfg.Source == nil {
		panic("lifecycle: Config.Source must not be nil")
	}
	if cfg.Registry == nil {
		panic("lifecycle: Config.Registry must not be nil")
	}
	if cfg.Store == nil {
		panic("lifecycle: Config.Store must not be nil")
	}
	if cfg.Catalog == nil {
		panic("lifecycle: Config.Catalog must not be nil")
	}
	return &Controller{
		cfg:      cfg,
		phase:    PhaseAwaitingStartup,
		adjuster: adjuster.New(),
	}
}

// Phase returns the controller's current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Report returns the pack-load report, nil before PhaseLoaded.
func (c *Controller) Report() *loader.Report { return c.report }

// AdjustResult returns the adjustment summary, nil before PhaseAdjusted.
func (c *Controller) AdjustResult() *adjuster.Result { return c.adjustResult }

// Step advances the machine by at most one phase and returns the phase it
// ended the tick in. Step on PhaseAdjusted is a no-op.
func (c *Controller) Step(ctx context.Context) Phase {
	logger := ctxlog.FromContext(ctx)

	switch c.phase {
	case PhaseAwaitingStartup:
		if c.cfg.Started != nil && !c.cfg.Started() {
			logger.Debug("Host startup not reached, deferring load.")
			return c.phase
		}
		c.load(ctx)
		c.phase = PhaseLoaded
		logger.Debug("Phase transition.", "phase", c.phase.String())

	case PhaseLoaded:
		c.phase = PhaseAwaitingCatalog
		logger.Debug("Phase transition.", "phase", c.phase.String())

	case PhaseAwaitingCatalog:
		entries := c.cfg.Source.NodesByTag(TagAdjustment)
		result, done := c.adjuster.Run(ctx, c.cfg.Catalog, entries, c.cfg.Store.Len())
		if !done {
			return c.phase
		}
		c.adjustResult = result
		c.phase = PhaseAdjusted
		logger.Debug("Phase transition.", "phase", c.phase.String())

	case PhaseAdjusted:
		// Terminal.
	}

	return c.phase
}

// load runs discovery and the two-pass pack load synchronously within the
// current tick.
func (c *Controller) load(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)

	if err := discovery.Populate(ctx, c.cfg.Registry, c.cfg.Modules); err != nil {
		// Colliding registrations keep their first binding; surfacing
		// the conflict is enough, the load itself continues.
		logger.Error("Plugin registration conflicts detected.", "error", err)
	}

	entries := c.cfg.Source.NodesByTag(TagContractType)
	c.report = loader.New(c.cfg.Registry, c.cfg.Store).Load(ctx, entries)
}
