/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package resolver

import (
	"context"
	"log/slog"
	"strings"
)

// LatestSpecifier selects the newest catalog entry.
const LatestSpecifier = "latest"

// Catalog produces the sorted, deduplicated list of known versions.
// *discovery.Discoverer satisfies it.
type Catalog interface {
	Catalog(ctx context.Context) ([]string, error)
}

// Resolve matches a user-supplied version specifier against an
// ascending-sorted catalog and returns the concrete version it selects.
//
// Matching order:
//  1. "latest" selects the catalog's newest entry.
//  2. An exact catalog entry is returned unchanged.
//  3. Otherwise the specifier is treated as a prefix: among entries
//     starting with specifier+".", the newest wins ("11.2" resolves to
//     the latest 11.2.x patch release).
//
// The boolean result is false when nothing matches. That is an expected
// outcome for the caller to report, not an error.
func Resolve(catalog []string, specifier string) (string, bool) {
	if specifier == LatestSpecifier {
		if len(catalog) == 0 {
			return "", false
		}
		return catalog[len(catalog)-1], true
	}

	for _, v := range catalog {
		if v == specifier {
			return v, true
		}
	}

	// Highest prefix match. The catalog is sorted numerically ascending,
	// so the last matching entry is the newest, never the
	// lexically-largest.
	prefix := specifier + "."
	resolved := ""
	for _, v := range catalog {
		if strings.HasPrefix(v, prefix) {
			resolved = v
		}
	}
	if resolved == "" {
		return "", false
	}

	slog.Debug("resolved version specifier by prefix",
		"specifier", specifier, "version", resolved)
	return resolved, true
}

// ResolveLatest runs a discovery pass and resolves the specifier against
// the fresh catalog.
func ResolveLatest(ctx context.Context, c Catalog, specifier string) (string, bool, error) {
	catalog, err := c.Catalog(ctx)
	if err != nil {
		return "", false, err
	}
	v, ok := Resolve(catalog, specifier)
	return v, ok, nil
}
