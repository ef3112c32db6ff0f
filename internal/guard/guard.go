// Package guard is the entry point for compatibility checks. It composes
// the module registry, the symbol resolver, and the signature verifier into
// a single decision procedure: is the module active, does the symbol exist,
// and is its signature still what the caller expects. Every failure path
// collapses to a nil handle; callers treat "no handle" uniformly as "fall
// back to default behavior".
package guard

import (
	"fmt"
	"reflect"

	"github.com/specialistvlad/modcompat/internal/diag"
	"github.com/specialistvlad/modcompat/internal/registry"
	"github.com/specialistvlad/modcompat/internal/symbol"
	"github.com/specialistvlad/modcompat/internal/verify"
)

// Options controls diagnostic emission for a single check.
type Options struct {
	Diagnostics bool
}

// Guard performs the registry check → resolution → verification pipeline.
type Guard struct {
	registry *registry.Registry
	resolver *symbol.Resolver
	verifier *verify.Verifier
	sink     diag.Sink
}

// New creates a guard. A nil sink discards diagnostics.
func New(reg *registry.Registry, resolver *symbol.Resolver, sink diag.Sink) *Guard {
	if sink == nil {
		sink = diag.Nop()
	}
	return &Guard{
		registry: reg,
		resolver: resolver,
		verifier: verify.New(reg, sink),
		sink:     sink,
	}
}

// VerifiedHandle returns a callable handle for the named symbol iff the
// module is active, the symbol resolves, and its signature matches the
// expected parameter types exactly. Otherwise it returns nil. An inactive
// or absent module is an expected condition and never produces a
// diagnostic; resolution and signature failures produce one when
// opts.Diagnostics is set.
func (g *Guard) VerifiedHandle(moduleID string, ref symbol.Ref, expected []reflect.Type, opts Options) *symbol.Handle {
	if !g.registry.IsActive(moduleID) {
		return nil
	}

	// Prefer an exact match on the expected shape, then fall back to a
	// by-name lookup so a drifted overload can still be inspected. The
	// fallback can surface a differently-shaped candidate when several
	// share the name; verification below is what keeps that safe.
	filtered := ref
	filtered.ParamFilter = expected
	handle := g.resolver.Resolve(filtered)
	if handle == nil {
		unfiltered := ref
		unfiltered.ParamFilter = nil
		handle = g.resolver.Resolve(unfiltered)
	}

	if handle == nil {
		if opts.Diagnostics {
			g.sink.Record(fmt.Sprintf("%s: method %s:%s could not be located",
				g.prefix(moduleID), ref.Owner, ref.Method))
		}
		return nil
	}

	if !g.verifier.Verify(handle, expected, verify.Options{
		Diagnostics: opts.Diagnostics,
		ModuleID:    moduleID,
	}) {
		return nil
	}
	return handle
}

// VerifiedHandleToken is VerifiedHandle for a combined "Owner:Method"
// token. A malformed token resolves to nothing and is reported the same way
// as a missing method.
func (g *Guard) VerifiedHandleToken(moduleID, token string, expected []reflect.Type, opts Options) *symbol.Handle {
	ref, ok := symbol.ParseRef(token)
	if !ok {
		if !g.registry.IsActive(moduleID) {
			return nil
		}
		if opts.Diagnostics {
			g.sink.Record(fmt.Sprintf("%s: symbol token %q is malformed",
				g.prefix(moduleID), token))
		}
		return nil
	}
	return g.VerifiedHandle(moduleID, ref, expected, opts)
}

func (g *Guard) prefix(moduleID string) string {
	if name, ok := g.registry.DisplayNameOf(moduleID); ok {
		return name
	}
	return "optional module"
}
