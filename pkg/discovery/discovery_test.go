/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package discovery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/cuda-toolkit-locator/pkg/errors"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/locator"
)

// stubSource returns a fixed version list or error.
type stubSource struct {
	name     string
	versions []string
	err      error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Discover(context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.versions, nil
}

func TestCatalogMergesAndSorts(t *testing.T) {
	d := NewDiscoverer(WithSources(
		&stubSource{name: "redist", versions: []string{"11.4.2", "12.4.1"}},
		&stubSource{name: "archive", versions: []string{"11.0.1", "11.4.2", "11.10"}},
		&stubSource{name: "opensource", versions: []string{"11.2", "11.0.1"}},
	))

	catalog, err := d.Catalog(context.Background())
	require.NoError(t, err)

	// sorted ascending, deduplicated, legacy versions merged in
	assert.Equal(t, []string{
		"8.0", "9.2", "10.0", "10.1", "10.2",
		"11.0.1", "11.2", "11.4.2", "11.10", "12.4.1",
	}, catalog)
}

func TestCatalogFiltersBelowMinimum(t *testing.T) {
	d := NewDiscoverer(WithSources(
		&stubSource{name: "redist", versions: []string{"7.5", "6.0", "11.2.0"}},
	))

	catalog, err := d.Catalog(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, catalog, "7.5")
	assert.NotContains(t, catalog, "6.0")
	assert.Contains(t, catalog, "11.2.0")
	assert.Contains(t, catalog, locator.MinSupportedVersion)
}

func TestCatalogIdempotent(t *testing.T) {
	d := NewDiscoverer(WithSources(
		&stubSource{name: "redist", versions: []string{"12.0", "11.8.0"}},
		&stubSource{name: "archive", versions: []string{"11.8.0"}},
	))

	first, err := d.Catalog(context.Background())
	require.NoError(t, err)
	second, err := d.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCatalogFailFast(t *testing.T) {
	failure := errors.NewWithContext(errors.ErrCodeTransportFailure,
		"fetching listing: unexpected status 503", map[string]any{"status": 503})

	d := NewDiscoverer(WithSources(
		&stubSource{name: "redist", versions: []string{"11.2.0"}},
		&stubSource{name: "archive", err: failure},
		&stubSource{name: "opensource", versions: []string{"11.4"}},
	))

	_, err := d.Catalog(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeTransportFailure))
}

func TestCatalogContainsAllLegacyVersions(t *testing.T) {
	d := NewDiscoverer(WithSources(&stubSource{name: "redist"}))

	catalog, err := d.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, locator.LegacyVersions(), catalog)
}

func TestDefaultSources(t *testing.T) {
	sources := DefaultSources(nil)
	require.Len(t, sources, 3)

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name())
	}
	assert.ElementsMatch(t, []string{"redist", "archive", "opensource"}, names)
}
