/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package locator

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/NVIDIA/cuda-toolkit-locator/pkg/errors"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/fetch"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/version"
)

// Getter is the HTTP collaborator the locator needs to fetch checksum
// manifests. *fetch.Client satisfies it.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Option defines a configuration option for Locator.
type Option func(*Locator)

// WithGetter replaces the HTTP client used for manifest fetches.
func WithGetter(g Getter) Option {
	return func(l *Locator) {
		if g != nil {
			l.client = g
		}
	}
}

// Locator resolves a concrete (version, os, arch) triple to the installer
// download URL. Pre-11 releases route through the static legacy link
// table; 11.x and later releases are matched dynamically against the
// per-release checksum manifest.
type Locator struct {
	client Getter
}

// NewLocator creates a Locator with the given options.
func NewLocator(options ...Option) *Locator {
	l := &Locator{
		client: fetch.NewClient(),
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Locate returns the installer download URL for an already-resolved
// toolkit version on the given platform. The version must be a concrete
// catalog entry; partial specifiers belong to the resolver.
func (l *Locator) Locate(ctx context.Context, ver string, os OS, arch Arch) (string, error) {
	url, err := l.locate(ctx, ver, os, arch)
	if err != nil {
		locateTotal.WithLabelValues(string(os), string(arch), "error").Inc()
		return "", err
	}
	locateTotal.WithLabelValues(string(os), string(arch), "success").Inc()
	return url, nil
}

func (l *Locator) locate(ctx context.Context, ver string, os OS, arch Arch) (string, error) {
	if version.Compare(ver, MinSupportedVersion) < 0 {
		return "", errors.NewWithContext(errors.ErrCodeUnsupportedVersion,
			fmt.Sprintf("version %s is below the minimum supported release %s", ver, MinSupportedVersion),
			map[string]any{"version": ver, "minimum": MinSupportedVersion})
	}

	major := version.Major(ver)

	// ARM64 server installers were never published for pre-11 releases.
	if major <= 10 && os == OSLinux && arch == ArchSBSA {
		return "", errors.NewWithContext(errors.ErrCodeUnsupportedPlatform,
			fmt.Sprintf("version %s was never distributed for linux/sbsa", ver),
			map[string]any{"version": ver, "os": os, "arch": arch})
	}

	if entry, ok := legacyLinks[legacyKey(ver)]; ok {
		if url := entry.url(os, arch); url != "" {
			slog.Debug("resolved installer from legacy link table",
				"version", ver, "os", os, "arch", arch)
			return url, nil
		}
		// Entry exists but the field is empty; fall through to the
		// dynamic path rather than failing here.
	}

	if major <= 10 && ((os == OSLinux && arch == ArchX8664) || os == OSWindows) {
		entry, ok := legacyLinks[legacyKey(ver)]
		if !ok {
			// Discovery merges the legacy table keys into the catalog, so a
			// legacy version without a table entry is a contract violation.
			return "", errors.NewWithContext(errors.ErrCodeInternal,
				fmt.Sprintf("legacy link table has no entry for version %s", ver),
				map[string]any{"version": ver})
		}
		return entry.url(os, arch), nil
	}

	return l.locateFromManifest(ctx, ver, os, arch)
}

// legacyKey maps a pre-11 version to its link table key. The catalog
// carries that era at major.minor granularity, but other listings can
// still surface the full patch spelling; both address the same entry.
func legacyKey(ver string) string {
	if version.Major(ver) <= 10 {
		return version.Truncate(ver, 2)
	}
	return ver
}

// url returns the table field matching the platform, or "" when that
// installer was never published. The Windows field applies to any
// architecture.
func (e legacyLink) url(os OS, arch Arch) string {
	switch {
	case os == OSLinux && arch == ArchX8664:
		return e.LinuxX86URL
	case os == OSLinux && arch == ArchSBSA:
		return e.LinuxARM64URL
	case os == OSWindows:
		return e.WindowsURL
	default:
		return ""
	}
}

// locateFromManifest fetches the release's checksum manifest and scans its
// filenames for the expected installer pattern.
func (l *Locator) locateFromManifest(ctx context.Context, ver string, os OS, arch Arch) (string, error) {
	manifestURL := checksumURL(ver)

	start := time.Now()
	body, err := l.client.Get(ctx, manifestURL)
	if err != nil {
		return "", err
	}
	manifestFetchDuration.Observe(time.Since(start).Seconds())

	entries := parseManifest(body)

	var filename string
	switch os {
	case OSLinux:
		filename = matchLinux(entries, ver, arch)
	case OSWindows:
		filename = matchWindows(entries)
	}

	if filename == "" {
		return "", errors.NewWithContext(errors.ErrCodeNoMatchingInstaller,
			fmt.Sprintf("no installer in manifest for version %s on %s/%s", ver, os, arch),
			map[string]any{"version": ver, "os": os, "arch": arch, "manifest": manifestURL})
	}

	slog.Debug("matched installer filename in manifest",
		"version", ver, "os", os, "arch", arch, "filename", filename)

	return fmt.Sprintf("%s/%s/local_installers/%s", downloadBaseURL, ver, filename), nil
}

// checksumURL computes the manifest location for a release. 11.x and later
// releases follow a uniform pattern; older releases carry their manifest
// URL in the legacy link table.
func checksumURL(ver string) string {
	if version.Major(ver) >= 11 {
		return fmt.Sprintf(checksumURLTemplate, ver)
	}
	return legacyLinks[legacyKey(ver)].ChecksumURL
}

// matchLinux returns the first manifest filename of the form
// cuda_<version>_<driverversion>_linux.run, with a _sbsa suffix before
// .run for the ARM64 server architecture.
func matchLinux(entries []manifestEntry, ver string, arch Arch) string {
	suffix := `_linux\.run`
	if arch == ArchSBSA {
		suffix = `_linux_sbsa\.run`
	}
	pattern := regexp.MustCompile(`^cuda_` + regexp.QuoteMeta(ver) + `_\d+(?:\.\d+){1,2}` + suffix + `$`)

	for _, e := range entries {
		if pattern.MatchString(e.Filename) {
			return e.Filename
		}
	}
	return ""
}

// matchWindows prefers a filename ending in _windows.exe, returning the
// first one found; otherwise it falls back to a _win10.exe filename,
// where the last occurrence wins.
func matchWindows(entries []manifestEntry) string {
	var win10 string
	for _, e := range entries {
		if strings.HasSuffix(e.Filename, "_windows.exe") {
			return e.Filename
		}
		if strings.HasSuffix(e.Filename, "_win10.exe") {
			win10 = e.Filename
		}
	}
	return win10
}
