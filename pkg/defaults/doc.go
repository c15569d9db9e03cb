// Package defaults centralizes timeout constants shared across the
// locator's HTTP client, server, and CLI layers.
package defaults
