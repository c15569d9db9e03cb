// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the CUDA toolkit locator HTTP API.
//
// The server is a stateless frontend over the discovery, resolver, and
// locator packages:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//   - Prometheus metrics on /metrics
//
// # Usage
//
// Basic server startup:
//
//	package main
//
//	import (
//	    "github.com/NVIDIA/cuda-toolkit-locator/pkg/server"
//	)
//
//	func main() {
//	    if err := server.Run(); err != nil {
//	        panic(err)
//	    }
//	}
//
// Custom configuration:
//
//	config := server.NewConfig()
//	config.Port = 9090
//	config.RateLimit = 200  // 200 requests/sec
//	config.RateLimitBurst = 400
//
//	if err := server.RunWithConfig(config); err != nil {
//	    panic(err)
//	}
//
// # API Endpoints
//
// GET /v1/versions - List every known toolkit release
//
//	Example:
//	  curl "http://localhost:8080/v1/versions"
//
// GET /v1/resolve - Resolve a version specifier to a concrete release
//
//	Query parameters:
//	  - version: "latest", an exact release ("12.4.1"), or a
//	    major/major.minor prefix ("12", "12.4")
//
//	Example:
//	  curl "http://localhost:8080/v1/resolve?version=12.4"
//
// GET /v1/installer - Locate the installer download URL
//
//	Query parameters:
//	  - version: specifier as for /v1/resolve
//	  - os: linux or windows
//	  - arch: x86_64 (amd64, x64) or sbsa (arm64, aarch64)
//
//	Example:
//	  curl "http://localhost:8080/v1/installer?version=latest&os=linux&arch=x86_64"
//
// GET /health - Health check (for liveness probe)
//
//	Always returns 200 OK with {"status": "healthy", "timestamp": "..."}
//
// GET /ready - Readiness check (for readiness probe)
//
//	Returns 200 OK when ready, 503 when not ready
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "no release matches version specifier \"99\"",
//	  "details": {"specifier": "99"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Error codes:
//   - INVALID_REQUEST: Invalid request parameter (400)
//   - NOT_FOUND: Specifier matched no release (404)
//   - NO_MATCHING_INSTALLER: No installer in the release manifest (404)
//   - UNSUPPORTED_VERSION: Release below the supported minimum (422)
//   - UNSUPPORTED_PLATFORM: Installer never published for the platform (422)
//   - TRANSPORT_FAILURE: Upstream fetch failed (502)
//   - RATE_LIMIT_EXCEEDED: Too many requests (429)
//   - INTERNAL_ERROR: Server error (500)
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
//   - Kubernetes probes: https://kubernetes.io/docs/tasks/configure-pod-container/configure-liveness-readiness-startup-probes/
package server
