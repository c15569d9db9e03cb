// Package serializer handles output formatting for CLI results (JSON,
// YAML, table) and JSON HTTP responses for the daemon.
package serializer
