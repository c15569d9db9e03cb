/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"fmt"
	"net/http"

	"github.com/NVIDIA/cuda-toolkit-locator/pkg/errors"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/locator"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/resolver"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/serializer"
)

// handleVersions handles GET /v1/versions
func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, string(errors.ErrCodeMethodNotAllowed),
			"Method not allowed", false, nil)
		return
	}

	catalog, err := s.catalog.Catalog(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, VersionsResponse{
		Count:    len(catalog),
		Versions: catalog,
	})
}

// handleResolve handles GET /v1/resolve?version=<specifier>
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, string(errors.ErrCodeMethodNotAllowed),
			"Method not allowed", false, nil)
		return
	}

	specifier := r.URL.Query().Get("version")
	if specifier == "" {
		s.writeError(w, r, http.StatusBadRequest, string(errors.ErrCodeInvalidRequest),
			"missing required query parameter: version", false, nil)
		return
	}

	version, ok, err := resolver.ResolveLatest(r.Context(), s.catalog, specifier)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, http.StatusNotFound, string(errors.ErrCodeNotFound),
			fmt.Sprintf("no release matches version specifier %q", specifier), false,
			map[string]any{"specifier": specifier})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ResolveResponse{
		Specifier: specifier,
		Version:   version,
	})
}

// handleInstaller handles GET /v1/installer?version=<specifier>&os=<os>&arch=<arch>
func (s *Server) handleInstaller(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, string(errors.ErrCodeMethodNotAllowed),
			"Method not allowed", false, nil)
		return
	}

	q := r.URL.Query()
	specifier := q.Get("version")
	if specifier == "" {
		s.writeError(w, r, http.StatusBadRequest, string(errors.ErrCodeInvalidRequest),
			"missing required query parameter: version", false, nil)
		return
	}

	osName, err := locator.ParseOS(q.Get("os"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, string(errors.ErrCodeInvalidRequest),
			err.Error(), false, nil)
		return
	}

	arch, err := locator.ParseArch(q.Get("arch"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, string(errors.ErrCodeInvalidRequest),
			err.Error(), false, nil)
		return
	}

	version, ok, err := resolver.ResolveLatest(r.Context(), s.catalog, specifier)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, http.StatusNotFound, string(errors.ErrCodeNotFound),
			fmt.Sprintf("no release matches version specifier %q", specifier), false,
			map[string]any{"specifier": specifier})
		return
	}

	url, err := s.locator.Locate(r.Context(), version, osName, arch)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, InstallerResponse{
		Specifier: specifier,
		Version:   version,
		OS:        string(osName),
		Arch:      string(arch),
		URL:       url,
	})
}
