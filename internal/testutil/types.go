// Package testutil provides shared fixture types and helpers for the
// compatibility-check test suites. The fixtures play the role of an
// optional module's internals: owner types whose method shapes the tests
// probe, including a drifted variant registered under the same owner name.
package testutil

import (
	"reflect"
	"sync"

	"github.com/specialistvlad/modcompat/internal/symbol"
)

// Exporter is the current shape of the fixture module's service type.
type Exporter struct{}

// ExporterOptions is a fixture parameter struct, passed by reference to
// Configure.
type ExporterOptions struct {
	Indent int
}

// WriteSnapshot is the fixture's main probed method.
func (Exporter) WriteSnapshot(path string, pretty bool) error { return nil }

// Flush is a niladic fixture method.
func (Exporter) Flush() error { return nil }

// Configure takes its options by reference, for pointer-unwrap tests.
func (*Exporter) Configure(opts *ExporterOptions) {}

// LegacyExporter is an older shape of the same service: WriteSnapshot lost
// a parameter across versions.
type LegacyExporter struct{}

// WriteSnapshot is the drifted variant of Exporter.WriteSnapshot.
func (LegacyExporter) WriteSnapshot(path string) error { return nil }

// Box is a generic fixture type for type-argument filter tests.
type Box[T any] struct{}

// Put accepts a value of the box's element type.
func (Box[T]) Put(v T) {}

// ExporterOwner is the universe name both exporter shapes register under.
const ExporterOwner = "export.Exporter"

// BoxOwner is the universe name both Box instantiations register under.
const BoxOwner = "export.Box"

// NewFixtureUniverse builds a universe with the fixture types registered:
// both exporter shapes under ExporterOwner (current shape first) and two
// Box instantiations under BoxOwner.
func NewFixtureUniverse() *symbol.Universe {
	u := symbol.NewUniverse()
	u.RegisterType(ExporterOwner, reflect.TypeOf(Exporter{}))
	u.RegisterType(ExporterOwner, reflect.TypeOf(LegacyExporter{}))
	u.RegisterType(BoxOwner, reflect.TypeOf(Box[int]{}))
	u.RegisterType(BoxOwner, reflect.TypeOf(Box[string]{}))
	u.RegisterType("export.ExporterOptions", reflect.TypeOf(ExporterOptions{}))
	return u
}

// CaptureSink records every diagnostic message it receives.
type CaptureSink struct {
	mu       sync.Mutex
	messages []string
}

// Record implements diag.Sink.
func (s *CaptureSink) Record(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of everything recorded so far.
func (s *CaptureSink) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}
