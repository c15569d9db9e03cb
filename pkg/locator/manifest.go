/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package locator

import "strings"

// manifestEntry is one record of a checksum manifest: a checksum and the
// installer filename it covers.
type manifestEntry struct {
	Checksum string
	Filename string
}

// parseManifest parses a plain-text checksum manifest, one
// "<checksum> <filename>" record per line. Entries keep the manifest's
// line order so first-match and last-match scans are deterministic.
// Lines without both tokens are skipped.
func parseManifest(body []byte) []manifestEntry {
	lines := strings.Split(string(body), "\n")
	entries := make([]manifestEntry, 0, len(lines))

	for _, line := range lines {
		checksum, filename, ok := strings.Cut(strings.TrimRight(line, "\r"), " ")
		if !ok || checksum == "" || filename == "" {
			continue
		}
		entries = append(entries, manifestEntry{
			Checksum: checksum,
			Filename: filename,
		})
	}
	return entries
}
