/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package resolver

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCatalog = []string{"10.0", "10.1", "10.2", "11.0.1", "11.0.3"}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		catalog   []string
		specifier string
		want      string
		wantOK    bool
	}{
		{
			name:      "latest returns newest",
			catalog:   sampleCatalog,
			specifier: "latest",
			want:      "11.0.3",
			wantOK:    true,
		},
		{
			name:      "latest on empty catalog",
			catalog:   nil,
			specifier: "latest",
			wantOK:    false,
		},
		{
			name:      "exact match returned unchanged",
			catalog:   sampleCatalog,
			specifier: "10.1",
			want:      "10.1",
			wantOK:    true,
		},
		{
			name:      "major prefix picks highest",
			catalog:   sampleCatalog,
			specifier: "10",
			want:      "10.2",
			wantOK:    true,
		},
		{
			name:      "major.minor prefix picks highest patch",
			catalog:   sampleCatalog,
			specifier: "11.0",
			want:      "11.0.3",
			wantOK:    true,
		},
		{
			name:      "no match",
			catalog:   sampleCatalog,
			specifier: "9.9",
			wantOK:    false,
		},
		{
			name:      "prefix must be followed by a dot",
			catalog:   []string{"11.10.1"},
			specifier: "11.1",
			wantOK:    false,
		},
		{
			name:      "numeric highest wins over lexical",
			catalog:   []string{"11.2.0", "11.2.2", "11.2.10"},
			specifier: "11.2",
			want:      "11.2.10",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.catalog, tt.specifier)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

type stubCatalog struct {
	versions []string
	err      error
}

func (s *stubCatalog) Catalog(context.Context) ([]string, error) {
	return s.versions, s.err
}

func TestResolveLatest(t *testing.T) {
	v, ok, err := ResolveLatest(context.Background(), &stubCatalog{versions: sampleCatalog}, "11")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "11.0.3", v)
}

func TestResolveLatestDiscoveryFailure(t *testing.T) {
	_, _, err := ResolveLatest(context.Background(), &stubCatalog{err: fmt.Errorf("listing down")}, "latest")
	assert.Error(t, err)
}
