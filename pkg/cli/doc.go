// Package cli implements the command-line interface for the ctkloc tool.
//
// # Overview
//
// The ctkloc CLI discovers published CUDA toolkit releases, resolves
// version specifiers against the live release catalog, and locates
// installer download URLs for a target platform.
//
// # Commands
//
// versions - List every known toolkit release:
//
//	ctkloc versions [--output FILE] [--format json|yaml|table]
//
// Merges the redistributable listing, the toolkit archive page, and the
// opensource listing with the static legacy release table, oldest first.
//
// resolve - Resolve a version specifier:
//
//	ctkloc resolve 12.4 [--format table]
//
// Accepts "latest", an exact release, or a major/major.minor prefix and
// prints the concrete release it selects.
//
// installer - Locate an installer download URL:
//
//	ctkloc installer latest --os linux --arch x86_64
//
// Resolves the specifier and prints the local installer URL for the
// target platform. The os/arch flags default to the host platform.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//
// # Environment Variables
//
//	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/discovery - Release catalog construction
//   - pkg/resolver - Version specifier resolution
//   - pkg/locator - Installer URL location
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/cuda-toolkit-locator/pkg/cli.version=1.0.0'"
package cli
