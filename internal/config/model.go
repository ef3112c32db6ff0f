package config

import "github.com/specialistvlad/modcompat/internal/registry"

// Model is the unified representation of everything loaded from
// configuration: the module snapshot and the probes to run against it.
type Model struct {
	Modules registry.Snapshot
	Probes  []*Probe
}

// Probe describes one compatibility check: does the named module expose the
// named symbol with the expected parameter shape.
type Probe struct {
	// Name identifies the probe in reports.
	Name string
	// Module is the identifier of the optional module the symbol belongs to.
	Module string
	// Symbol is a combined "Owner:Method" token.
	Symbol string
	// Expected holds the textual type identifiers of the parameter shape the
	// integration code assumes, in order. May be empty for niladic methods.
	Expected []string
	// Required marks probes whose absence should fail the overall run.
	Required bool
}
