// Package diag defines the advisory diagnostic sink used by the
// compatibility pipeline. Diagnostics are human-readable messages aimed at
// the integrator; they never influence the outcome of a check.
package diag

import "log/slog"

// Sink receives a single human-readable diagnostic message.
type Sink interface {
	Record(msg string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(msg string)

// Record implements Sink.
func (f SinkFunc) Record(msg string) {
	f(msg)
}

// LogSink forwards diagnostics to a slog.Logger at Warn level.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink backed by the given logger. A nil logger falls
// back to the process-wide default.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Record implements Sink.
func (s *LogSink) Record(msg string) {
	s.logger.Warn(msg)
}

// Nop returns a sink that discards every message.
func Nop() Sink {
	return SinkFunc(func(string) {})
}
