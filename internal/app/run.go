package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/contractforge/internal/ctxlog"
	"github.com/vk/contractforge/internal/lifecycle"
)

// Run drives the lifecycle controller one tick at a time until the catalog
// has been adjusted, then prints the dry-run summary.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	for tick := 0; tick < appConfig.MaxTicks; tick++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		phase := a.controller.Step(ctx)
		a.logger.Debug("Tick complete.", "tick", tick, "phase", phase.String())

		// The dry-run host finishes populating its own catalog one tick
		// after the pack load, which is what the controller polls for.
		if phase == lifecycle.PhaseAwaitingCatalog && !a.catalog.Ready() {
			a.catalog.MarkReady()
			a.logger.Debug("Dry-run catalog marked ready.")
		}

		if phase == lifecycle.PhaseAdjusted {
			a.printSummary()
			return nil
		}
	}

	return fmt.Errorf("load did not reach the adjusted phase within %d ticks", appConfig.MaxTicks)
}

// printSummary writes the human-readable dry-run outcome to the app's
// output writer.
func (a *App) printSummary() {
	report := a.controller.Report()
	result := a.controller.AdjustResult()

	fmt.Fprintf(a.outW, "Loaded contract types: %d (failed: %d)\n", report.Loaded(), report.Failed())
	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(a.outW, "  ✗ %s: %v\n", res.Name, res.Err)
		}
	}
	if len(a.store.Names()) > 0 {
		fmt.Fprintf(a.outW, "  %s\n", strings.Join(a.store.Names(), ", "))
	}

	fmt.Fprintf(a.outW, "Disabled built-in types: %d\n", len(result.Disabled))
	for _, name := range result.Unresolved {
		fmt.Fprintf(a.outW, "  ? %s (not in live catalog)\n", name)
	}
	fmt.Fprintf(a.outW, "Synthetic configured slots: %d\n", result.SyntheticCount)
	fmt.Fprintf(a.outW, "Live catalog size: %d\n", len(a.catalog.Entries()))
}
