// Package logging provides structured logging utilities for the toolkit
// locator components.
//
// It wraps the standard library slog package with shared defaults: JSON
// output to stderr, environment-based level configuration (LOG_LEVEL),
// module/version context injection, and source location tracking for
// debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("ctkloc", version)
//
//	    slog.Info("resolving version", "specifier", "11.2")
//	    slog.Error("fetch failed", "error", err, "url", url)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("ctklocd", version, "debug")
//
// If LOG_LEVEL is not set, the level defaults to INFO.
package logging
