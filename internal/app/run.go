package app

import (
	"context"
	"fmt"
	"reflect"

	"github.com/specialistvlad/modcompat/internal/config"
	"github.com/specialistvlad/modcompat/internal/ctxlog"
	"github.com/specialistvlad/modcompat/internal/guard"
)

// Run evaluates every configured probe and prints a per-probe verdict to the
// output writer. It returns an error when any probe marked required is
// unsatisfied.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Probe run started.", "probes", len(a.model.Probes))

	requiredMissing := 0
	for _, probe := range a.model.Probes {
		if a.runProbe(probe) {
			fmt.Fprintf(a.outW, "ok      %s (%s %s)\n", probe.Name, probe.Module, probe.Symbol)
			continue
		}
		fmt.Fprintf(a.outW, "absent  %s (%s %s)\n", probe.Name, probe.Module, probe.Symbol)
		if probe.Required {
			requiredMissing++
		}
	}

	logger.Debug("Probe run finished.", "required_missing", requiredMissing)
	if requiredMissing > 0 {
		return fmt.Errorf("%d required probe(s) unsatisfied", requiredMissing)
	}
	return nil
}

// runProbe evaluates a single probe through the guard. A probe whose
// expected type identifiers cannot all be resolved is unsatisfied.
func (a *App) runProbe(probe *config.Probe) bool {
	expected, ok := a.expectedTypes(probe)
	if !ok {
		return false
	}
	opts := guard.Options{Diagnostics: !a.config.Quiet}
	return a.guard.VerifiedHandleToken(probe.Module, probe.Symbol, expected, opts) != nil
}

// expectedTypes resolves the probe's textual type identifiers through the
// universe's name index.
func (a *App) expectedTypes(probe *config.Probe) ([]reflect.Type, bool) {
	expected := make([]reflect.Type, 0, len(probe.Expected))
	for _, identifier := range probe.Expected {
		t, ok := a.universe.TypeByName(identifier)
		if !ok {
			a.logger.Warn("Probe references an unknown type identifier.",
				"probe", probe.Name, "type", identifier)
			return nil, false
		}
		expected = append(expected, t)
	}
	return expected, true
}
