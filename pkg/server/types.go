package server

import (
	"time"
)

// ErrorResponse is the JSON error body returned by all API endpoints.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HealthResponse represents health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// VersionsResponse lists the current version catalog.
type VersionsResponse struct {
	Count    int      `json:"count"`
	Versions []string `json:"versions"`
}

// ResolveResponse is the result of resolving a version specifier.
type ResolveResponse struct {
	Specifier string `json:"specifier"`
	Version   string `json:"version"`
}

// InstallerResponse is the result of locating an installer download.
type InstallerResponse struct {
	Specifier string `json:"specifier"`
	Version   string `json:"version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	URL       string `json:"url"`
}
