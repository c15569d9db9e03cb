/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package discovery

import (
	"context"
	"regexp"

	"github.com/NVIDIA/cuda-toolkit-locator/pkg/fetch"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/version"
)

// Upstream listing locations. Each source scrapes one of them.
const (
	RedistListingURL     = "https://developer.download.nvidia.com/compute/cuda/redist/"
	ArchiveListingURL    = "https://developer.nvidia.com/cuda-toolkit-archive"
	OpensourceListingURL = "https://developer.download.nvidia.com/compute/cuda/opensource/"
)

// Getter is the HTTP collaborator sources use to fetch their listing.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Source discovers toolkit versions from one upstream listing. The three
// listings use unrelated formats, so each format change stays isolated to
// one implementation.
type Source interface {
	// Name identifies the source in logs and metrics.
	Name() string
	// Discover fetches the listing and extracts the version strings it
	// advertises. Results may contain duplicates; the merge deduplicates.
	Discover(ctx context.Context) ([]string, error)
}

// DefaultSources returns the production set of sources backed by the
// given HTTP client. A nil client gets the default one.
func DefaultSources(client Getter) []Source {
	if client == nil {
		client = fetch.NewClient()
	}
	return []Source{
		&RedistSource{Client: client, URL: RedistListingURL},
		&ArchiveSource{Client: client, URL: ArchiveListingURL},
		&OpensourceSource{Client: client, URL: OpensourceListingURL},
	}
}

// RedistSource extracts versions from the redistribution manifest index,
// which lists files named redistrib_<version>.json with 2 to 4 numeric
// version components.
type RedistSource struct {
	Client Getter
	URL    string
}

var redistPattern = regexp.MustCompile(`redistrib_(\d+(?:\.\d+){1,3})\.json`)

func (s *RedistSource) Name() string { return "redist" }

func (s *RedistSource) Discover(ctx context.Context) ([]string, error) {
	body, err := s.Client.Get(ctx, s.URL)
	if err != nil {
		return nil, err
	}

	var versions []string
	for _, m := range redistPattern.FindAllStringSubmatch(string(body), -1) {
		versions = append(versions, m[1])
	}
	return versions, nil
}

// ArchiveSource extracts versions from the toolkit archive page two ways:
// textual "CUDA Toolkit <version>" mentions, and hyphenated version
// tokens embedded in the archive hyperlinks. Both extractions are
// unioned.
type ArchiveSource struct {
	Client Getter
	URL    string
}

var (
	archiveTextPattern = regexp.MustCompile(`CUDA Toolkit (\d+\.\d+(?:\.\d+)?)`)
	archiveHrefPattern = regexp.MustCompile(`href="([^"]*)"`)
	archiveLinkPattern = regexp.MustCompile(`cuda(?:-toolkit)?-(\d+-\d+(?:-\d+)?)`)
)

func (s *ArchiveSource) Name() string { return "archive" }

func (s *ArchiveSource) Discover(ctx context.Context) ([]string, error) {
	body, err := s.Client.Get(ctx, s.URL)
	if err != nil {
		return nil, err
	}
	page := string(body)

	var versions []string
	for _, m := range archiveTextPattern.FindAllStringSubmatch(page, -1) {
		versions = append(versions, m[1])
	}
	for _, href := range archiveHrefPattern.FindAllStringSubmatch(page, -1) {
		for _, m := range archiveLinkPattern.FindAllStringSubmatch(href[1], -1) {
			versions = append(versions, dotted(m[1]))
		}
	}
	return versions, nil
}

// dotted converts a hyphenated version token ("11-4-2") to dot notation.
func dotted(token string) string {
	out := []byte(token)
	for i, c := range out {
		if c == '-' {
			out[i] = '.'
		}
	}
	return string(out)
}

// OpensourceSource extracts versions from the opensource directory
// listing, which exposes one directory per release. The listing only
// carries major.minor granularity for the pre-11 era, so discovered
// versions with major <= 10 are normalized to two components.
type OpensourceSource struct {
	Client Getter
	URL    string
}

var opensourceDirPattern = regexp.MustCompile(`>(\d+\.\d+(?:\.\d+)?)/<`)

func (s *OpensourceSource) Name() string { return "opensource" }

func (s *OpensourceSource) Discover(ctx context.Context) ([]string, error) {
	body, err := s.Client.Get(ctx, s.URL)
	if err != nil {
		return nil, err
	}

	var versions []string
	for _, m := range opensourceDirPattern.FindAllStringSubmatch(string(body), -1) {
		versions = append(versions, normalize(m[1]))
	}
	return versions, nil
}

// normalize truncates pre-11 versions to major.minor, the only
// granularity the opensource listing can actually distinguish there.
func normalize(v string) string {
	if version.Major(v) <= 10 {
		return version.Truncate(v, 2)
	}
	return v
}
