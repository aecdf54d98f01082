// Package logging assembles structured slog loggers and formatting helpers used
// across memorylane.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so request handlers and the
// album loader can tag log lines with request and session identifiers. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
