// Package app contains the core application logic: wiring the configured
// module snapshot, the type universe, and the compatibility guard together,
// and evaluating the configured probes. It is decoupled from any specific
// entrypoint like a CLI.
package app
