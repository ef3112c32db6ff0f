// Package verify checks a resolved callable's parameter shape against the
// shape the caller's invocation code assumes. Comparison is exact type
// identity, position by position, after normalizing by-reference (pointer)
// parameters to their element type. There is no assignability leniency:
// a handle either still has the expected shape or it is unusable.
package verify

import (
	"fmt"
	"reflect"

	"github.com/specialistvlad/modcompat/internal/diag"
	"github.com/specialistvlad/modcompat/internal/registry"
	"github.com/specialistvlad/modcompat/internal/symbol"
)

// Reason classifies why a signature check failed.
type Reason int

const (
	// ReasonLengthMismatch means the parameter counts differ.
	ReasonLengthMismatch Reason = iota
	// ReasonPositionMismatch means the first differing position failed the
	// exact-identity comparison.
	ReasonPositionMismatch
)

// Outcome is the tagged result of a signature check. It drives diagnostic
// messages internally; callers of the public surface only see the boolean.
type Outcome struct {
	Consistent bool
	Reason     Reason
	// Index is the 0-based position of the first mismatch when Reason is
	// ReasonPositionMismatch.
	Index            int
	Actual, Expected reflect.Type
	ActualLen        int
	ExpectedLen      int
}

// Options controls diagnostic emission for a single verification. The
// boolean result never depends on these.
type Options struct {
	// Diagnostics enables emission of a human-readable message on failure.
	Diagnostics bool
	// ModuleID, when set and resolvable to an active module, prefixes
	// diagnostics with the module's display name.
	ModuleID string
}

// Verifier compares resolved handles against expected signatures.
type Verifier struct {
	registry *registry.Registry
	sink     diag.Sink
}

// New creates a verifier. The registry is only consulted to resolve display
// names for diagnostics and may be nil; a nil sink discards diagnostics.
func New(reg *registry.Registry, sink diag.Sink) *Verifier {
	if sink == nil {
		sink = diag.Nop()
	}
	return &Verifier{registry: reg, sink: sink}
}

// Verify reports whether the handle's actual parameter shape exactly matches
// the expected types. A nil handle is false with no diagnostic: absence is a
// resolution failure, not a signature failure.
func (v *Verifier) Verify(handle *symbol.Handle, expected []reflect.Type, opts Options) bool {
	if handle == nil {
		return false
	}
	outcome := check(handle, expected)
	if outcome.Consistent {
		return true
	}
	if opts.Diagnostics {
		v.sink.Record(v.describe(handle, outcome, opts.ModuleID))
	}
	return false
}

// check performs the pure comparison, producing a tagged outcome.
func check(handle *symbol.Handle, expected []reflect.Type) Outcome {
	actual := handle.NormalizedParams()
	if len(actual) != len(expected) {
		return Outcome{
			Reason:      ReasonLengthMismatch,
			ActualLen:   len(actual),
			ExpectedLen: len(expected),
		}
	}
	for i := range actual {
		if actual[i] != expected[i] {
			return Outcome{
				Reason:   ReasonPositionMismatch,
				Index:    i,
				Actual:   actual[i],
				Expected: expected[i],
			}
		}
	}
	return Outcome{Consistent: true}
}

// describe composes the advisory message for a failed check. The mismatch
// position is reported 1-based.
func (v *Verifier) describe(handle *symbol.Handle, outcome Outcome, moduleID string) string {
	prefix := v.prefix(moduleID)
	switch outcome.Reason {
	case ReasonLengthMismatch:
		return fmt.Sprintf("%s: method %s.%s takes %d parameter(s), caller expects %d",
			prefix, handle.Owner(), handle.Method(), outcome.ActualLen, outcome.ExpectedLen)
	default:
		return fmt.Sprintf("%s: method %s.%s parameter %d is %s, caller expects %s",
			prefix, handle.Owner(), handle.Method(), outcome.Index+1, outcome.Actual, outcome.Expected)
	}
}

func (v *Verifier) prefix(moduleID string) string {
	if v.registry != nil && moduleID != "" {
		if name, ok := v.registry.DisplayNameOf(moduleID); ok {
			return name
		}
	}
	return "optional module"
}
