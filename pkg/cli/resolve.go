/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cuda-toolkit-locator/pkg/discovery"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/fetch"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/resolver"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/serializer"
)

// resolveResult is the serialized output of the resolve command.
type resolveResult struct {
	Specifier string `json:"specifier" yaml:"specifier"`
	Version   string `json:"version" yaml:"version"`
}

// TableRows implements serializer.Tabular.
func (r resolveResult) TableRows() [][2]string {
	return [][2]string{
		{"Specifier", r.Specifier},
		{"Version", r.Version},
	}
}

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "resolve",
		EnableShellCompletion: true,
		Usage:                 "Resolve a version specifier to a concrete toolkit release",
		Description: `Resolve a version specifier against the live release catalog:

  latest    the newest known release
  12.4.1    an exact release, returned as-is if known
  12.4      the newest 12.4.x patch release
  12        the newest 12.x release

The result can be output in JSON, YAML, or table format.`,
		ArgsUsage: "SPECIFIER",
		Flags: []cli.Flag{
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

			d := discovery.NewDiscoverer(
				discovery.WithClient(fetch.NewClient(fetch.WithUserAgent(name + "/" + version))),
			)

			resolved, ok, err := resolver.ResolveLatest(ctx, d, specifier)
			if err != nil {
				return fmt.Errorf("error resolving version specifier %q: %w", specifier, err)
			}
			if !ok {
				return fmt.Errorf("no release matches version specifier %q", specifier)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			return ser.Serialize(resolveResult{
				Specifier: specifier,
				Version:   resolved,
			})
		},
	}
}
