// Package schema defines the HCL block shapes for module manifests and
// probe definitions, decoded with gohcl before translation into the
// format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Module represents a `module` block: one entry in the host's declared
// snapshot of installed modules.
type Module struct {
	ID          string         `hcl:"id,label"`
	DisplayName string         `hcl:"display_name,optional"`
	Active      hcl.Expression `hcl:"active,optional"`
}

// Probe represents a `probe` block: a single compatibility check against an
// optional module's symbol.
type Probe struct {
	Name     string         `hcl:"name,label"`
	Module   string         `hcl:"module"`
	Symbol   string         `hcl:"symbol"`
	Expects  hcl.Expression `hcl:"expects,optional"`
	Required bool           `hcl:"required,optional"`
}
