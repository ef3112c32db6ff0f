package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/modcompat/internal/config"
	"github.com/specialistvlad/modcompat/internal/ctxlog"
	"github.com/specialistvlad/modcompat/internal/fsutil"
	"github.com/specialistvlad/modcompat/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes all recognized top-level blocks from any file. Module
// and probe blocks may be freely mixed across files.
type fileRoot struct {
	Modules []*schema.Module `hcl:"module,block"`
	Probes  []*schema.Probe  `hcl:"probe,block"`
	Remain  hcl.Body         `hcl:",remain"`
}

// Load parses every .hcl file reachable from the given paths and merges the
// declared modules and probes into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, mod := range root.Modules {
			desc, err := translateModule(mod)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Modules = append(model.Modules, desc)
		}
		for _, probe := range root.Probes {
			p, err := translateProbe(probe)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Probes = append(model.Probes, p)
		}
	}

	logger.Debug("HCL loading complete.", "modules", len(model.Modules), "probes", len(model.Probes))
	return model, nil
}

// findAllHCLFiles flattens the given paths into a deduplicated list of .hcl
// files. Paths that do not exist are skipped rather than treated as errors.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(file string) {
		if _, wasSeen := seen[file]; !wasSeen {
			allFiles = append(allFiles, file)
			seen[file] = struct{}{}
		}
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}

		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			add(file)
		}
	}

	return allFiles, nil
}
