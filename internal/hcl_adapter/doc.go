// Package hcl_adapter provides the concrete HCL implementation of the
// config.Loader interface: file discovery, parsing, and translation of
// module and probe blocks into the format-agnostic model.
package hcl_adapter
