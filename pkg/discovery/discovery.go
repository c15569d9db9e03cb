/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package discovery

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/cuda-toolkit-locator/pkg/locator"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/version"
)

// Option defines a configuration option for Discoverer.
type Option func(*Discoverer)

// WithSources replaces the default source set. Intended for tests and
// mirror deployments.
func WithSources(sources ...Source) Option {
	return func(d *Discoverer) {
		if len(sources) > 0 {
			d.sources = sources
		}
	}
}

// WithClient sets the HTTP client the default sources are built with.
func WithClient(client Getter) Option {
	return func(d *Discoverer) {
		d.client = client
	}
}

// Discoverer builds the version catalog by querying all upstream listings
// concurrently and merging the results with the static legacy version
// list. The catalog is rebuilt on every call; nothing is cached.
type Discoverer struct {
	client  Getter
	sources []Source
}

// NewDiscoverer creates a Discoverer with the given options.
func NewDiscoverer(options ...Option) *Discoverer {
	d := &Discoverer{}
	for _, opt := range options {
		opt(d)
	}
	if d.sources == nil {
		d.sources = DefaultSources(d.client)
	}
	return d
}

// Catalog fetches all sources concurrently and returns the deduplicated,
// ascending-sorted set of known versions at or above the minimum
// supported release. Any source failure aborts the whole pass; there is
// no degraded partial catalog.
func (d *Discoverer) Catalog(ctx context.Context) ([]string, error) {
	start := time.Now()

	var mu sync.Mutex
	seen := make(map[string]struct{})

	g, gctx := errgroup.WithContext(ctx)
	for _, src := range d.sources {
		src := src
		g.Go(func() error {
			srcStart := time.Now()
			versions, err := src.Discover(gctx)
			if err != nil {
				discoveryTotal.WithLabelValues(src.Name(), "error").Inc()
				return err
			}
			discoveryTotal.WithLabelValues(src.Name(), "success").Inc()
			discoverySourceDuration.WithLabelValues(src.Name()).Observe(time.Since(srcStart).Seconds())

			slog.Debug("discovered versions from source",
				"source", src.Name(), "count", len(versions))

			mu.Lock()
			for _, v := range versions {
				seen[v] = struct{}{}
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The scraped listings do not reliably cover the pre-11 era.
	for _, v := range locator.LegacyVersions() {
		seen[v] = struct{}{}
	}

	catalog := make([]string, 0, len(seen))
	for v := range seen {
		if version.Compare(v, locator.MinSupportedVersion) >= 0 {
			catalog = append(catalog, v)
		}
	}
	version.Sort(catalog)

	catalogSize.Set(float64(len(catalog)))
	slog.Debug("built version catalog",
		"size", len(catalog),
		"duration", time.Since(start).String())

	return catalog, nil
}
