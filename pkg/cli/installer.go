/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cuda-toolkit-locator/pkg/discovery"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/fetch"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/locator"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/resolver"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/serializer"
)

// installerResult is the serialized output of the installer command.
type installerResult struct {
	Specifier string `json:"specifier" yaml:"specifier"`
	Version   string `json:"version" yaml:"version"`
	OS        string `json:"os" yaml:"os"`
	Arch      string `json:"arch" yaml:"arch"`
	URL       string `json:"url" yaml:"url"`
}

// TableRows implements serializer.Tabular.
func (r installerResult) TableRows() [][2]string {
	return [][2]string{
		{"Specifier", r.Specifier},
		{"Version", r.Version},
		{"OS", r.OS},
		{"Arch", r.Arch},
		{"URL", r.URL},
	}
}

func installerCmd() *cli.Command {
	return &cli.Command{
		Name:                  "installer",
		EnableShellCompletion: true,
		Usage:                 "Locate the installer download URL for a toolkit release",
		Description: `Resolve a version specifier and locate the matching local installer
download URL for the target platform. Pre-11 releases come from the
static legacy link table; newer releases are matched against the
release's published checksum manifest.

The result can be output in JSON, YAML, or table format.`,
		ArgsUsage: "SPECIFIER",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "os",
				Value: runtime.GOOS,
				Usage: "target operating system (linux, windows)",
			},
			&cli.StringFlag{
				Name:  "arch",
				Value: runtime.GOARCH,
				Usage: "target architecture (x86_64, sbsa; aliases amd64, arm64, aarch64)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			specifier := cmd.Args().First()
			if specifier == "" {
				return fmt.Errorf("missing required argument: version specifier")
			}

			targetOS, err := locator.ParseOS(cmd.String("os"))
			if err != nil {
				return err
			}
			targetArch, err := locator.ParseArch(cmd.String("arch"))
			if err != nil {
				return err
			}

			client := fetch.NewClient(fetch.WithUserAgent(name + "/" + version))
			d := discovery.NewDiscoverer(discovery.WithClient(client))

			resolved, ok, err := resolver.ResolveLatest(ctx, d, specifier)
			if err != nil {
				return fmt.Errorf("error resolving version specifier %q: %w", specifier, err)
			}
			if !ok {
				return fmt.Errorf("no release matches version specifier %q", specifier)
			}

			loc := locator.NewLocator(locator.WithGetter(client))
			url, err := loc.Locate(ctx, resolved, targetOS, targetArch)
			if err != nil {
				return fmt.Errorf("error locating installer for %s on %s/%s: %w",
					resolved, targetOS, targetArch, err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			return ser.Serialize(installerResult{
				Specifier: specifier,
				Version:   resolved,
				OS:        string(targetOS),
				Arch:      string(targetArch),
				URL:       url,
			})
		},
	}
}
