// Package config defines the format-agnostic configuration model: the
// host's declared module snapshot and the compatibility probes to evaluate
// against it. Format-specific loaders (see hcl_adapter) translate their
// source files into this model.
package config
