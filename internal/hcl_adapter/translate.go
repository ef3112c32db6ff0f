// This file translates decoded HCL schema structs into the format-agnostic
// configuration model, evaluating attribute expressions with cty.

package hcl_adapter

import (
	"fmt"

	"github.com/specialistvlad/modcompat/internal/config"
	"github.com/specialistvlad/modcompat/internal/registry"
	"github.com/specialistvlad/modcompat/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateModule converts a `module` block into a descriptor. An omitted
// `active` attribute means active; the display name defaults to the id.
func translateModule(mod *schema.Module) (registry.ModuleDescriptor, error) {
	desc := registry.ModuleDescriptor{
		ID:          mod.ID,
		DisplayName: mod.DisplayName,
		Active:      true,
	}
	if desc.ID == "" {
		return desc, fmt.Errorf("module block is missing an id label")
	}
	if desc.DisplayName == "" {
		desc.DisplayName = desc.ID
	}

	if mod.Active != nil {
		val, diags := mod.Active.Value(nil)
		if diags.HasErrors() {
			return desc, fmt.Errorf("module '%s': invalid 'active' expression: %w", mod.ID, diags)
		}
		if !val.IsNull() {
			boolVal, err := convert.Convert(val, cty.Bool)
			if err != nil {
				return desc, fmt.Errorf("module '%s': 'active' must be a bool: %w", mod.ID, err)
			}
			desc.Active = boolVal.True()
		}
	}

	return desc, nil
}

// translateProbe converts a `probe` block into a model probe, flattening the
// `expects` list into textual type identifiers.
func translateProbe(probe *schema.Probe) (*config.Probe, error) {
	p := &config.Probe{
		Name:     probe.Name,
		Module:   probe.Module,
		Symbol:   probe.Symbol,
		Required: probe.Required,
	}
	if p.Name == "" {
		return nil, fmt.Errorf("probe block is missing a name label")
	}
	if p.Module == "" {
		return nil, fmt.Errorf("probe '%s': 'module' must not be empty", p.Name)
	}
	if p.Symbol == "" {
		return nil, fmt.Errorf("probe '%s': 'symbol' must not be empty", p.Name)
	}

	if probe.Expects != nil {
		val, diags := probe.Expects.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("probe '%s': invalid 'expects' expression: %w", p.Name, diags)
		}
		if !val.IsNull() {
			listVal, err := convert.Convert(val, cty.List(cty.String))
			if err != nil {
				return nil, fmt.Errorf("probe '%s': 'expects' must be a list of type names: %w", p.Name, err)
			}
			for it := listVal.ElementIterator(); it.Next(); {
				_, elem := it.Element()
				p.Expected = append(p.Expected, elem.AsString())
			}
		}
	}

	return p, nil
}
