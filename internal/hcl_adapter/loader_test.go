package hcl_adapter_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/modcompat/internal/hcl_adapter"
	"github.com/stretchr/testify/require"
)

func writeHCL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_ModulesAndProbesFromMixedFiles(t *testing.T) {
	tempDir := t.TempDir()
	writeHCL(t, tempDir, "modules.hcl", `
		module "export.mod" {
			display_name = "Snapshot Exporter"
			active       = true
		}

		module "disabled.mod" {
			display_name = "Disabled Mod"
			active       = false
		}
	`)
	writeHCL(t, tempDir, "probes.hcl", `
		probe "snapshot_hook" {
			module   = "export.mod"
			symbol   = "export.Exporter:WriteSnapshot"
			expects  = ["string", "bool"]
			required = true
		}
	`)

	model, err := hcl_adapter.NewLoader().Load(context.Background(), tempDir)

	require.NoError(t, err)
	require.Len(t, model.Modules, 2)
	require.Equal(t, "export.mod", model.Modules[0].ID)
	require.Equal(t, "Snapshot Exporter", model.Modules[0].DisplayName)
	require.True(t, model.Modules[0].Active)
	require.False(t, model.Modules[1].Active)

	require.Len(t, model.Probes, 1)
	probe := model.Probes[0]
	require.Equal(t, "snapshot_hook", probe.Name)
	require.Equal(t, "export.mod", probe.Module)
	require.Equal(t, "export.Exporter:WriteSnapshot", probe.Symbol)
	require.Equal(t, []string{"string", "bool"}, probe.Expected)
	require.True(t, probe.Required)
}

func TestLoad_ModuleDefaults(t *testing.T) {
	tempDir := t.TempDir()
	writeHCL(t, tempDir, "modules.hcl", `
		module "bare.mod" {}
	`)

	model, err := hcl_adapter.NewLoader().Load(context.Background(), tempDir)

	require.NoError(t, err)
	require.Len(t, model.Modules, 1)
	require.Equal(t, "bare.mod", model.Modules[0].ID)
	require.Equal(t, "bare.mod", model.Modules[0].DisplayName)
	require.True(t, model.Modules[0].Active)
}

func TestLoad_ProbeDefaults(t *testing.T) {
	tempDir := t.TempDir()
	writeHCL(t, tempDir, "probes.hcl", `
		probe "niladic" {
			module = "export.mod"
			symbol = "export.Exporter:Flush"
		}
	`)

	model, err := hcl_adapter.NewLoader().Load(context.Background(), tempDir)

	require.NoError(t, err)
	require.Len(t, model.Probes, 1)
	require.Empty(t, model.Probes[0].Expected)
	require.False(t, model.Probes[0].Required)
}

func TestLoad_SingleFilePath(t *testing.T) {
	tempDir := t.TempDir()
	file := writeHCL(t, tempDir, "only.hcl", `
		module "export.mod" {}
	`)

	model, err := hcl_adapter.NewLoader().Load(context.Background(), file)

	require.NoError(t, err)
	require.Len(t, model.Modules, 1)
}

func TestLoad_MissingPathsAreSkipped(t *testing.T) {
	model, err := hcl_adapter.NewLoader().Load(context.Background(),
		filepath.Join(t.TempDir(), "does-not-exist"), "")

	require.NoError(t, err)
	require.Empty(t, model.Modules)
	require.Empty(t, model.Probes)
}

func TestLoad_DuplicatePathsAreDeduplicated(t *testing.T) {
	tempDir := t.TempDir()
	file := writeHCL(t, tempDir, "modules.hcl", `
		module "export.mod" {}
	`)

	model, err := hcl_adapter.NewLoader().Load(context.Background(), tempDir, file)

	require.NoError(t, err)
	require.Len(t, model.Modules, 1)
}

func TestLoad_RejectsMalformedHCL(t *testing.T) {
	tempDir := t.TempDir()
	writeHCL(t, tempDir, "broken.hcl", `module "x" {`)

	_, err := hcl_adapter.NewLoader().Load(context.Background(), tempDir)

	require.Error(t, err)
}

func TestLoad_RejectsProbeWithoutSymbol(t *testing.T) {
	tempDir := t.TempDir()
	writeHCL(t, tempDir, "probes.hcl", `
		probe "broken" {
			module = "export.mod"
			symbol = ""
		}
	`)

	_, err := hcl_adapter.NewLoader().Load(context.Background(), tempDir)

	require.Error(t, err)
	require.Contains(t, err.Error(), "symbol")
}

func TestLoad_RejectsNonBoolActive(t *testing.T) {
	tempDir := t.TempDir()
	writeHCL(t, tempDir, "modules.hcl", `
		module "export.mod" {
			active = ["nope"]
		}
	`)

	_, err := hcl_adapter.NewLoader().Load(context.Background(), tempDir)

	require.Error(t, err)
	require.Contains(t, err.Error(), "active")
}
