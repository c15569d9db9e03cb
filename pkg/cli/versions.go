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
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/serializer"
)

func versionsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "versions",
		Aliases:               []string{"ls"},
		EnableShellCompletion: true,
		Usage:                 "List all known CUDA toolkit releases",
		Description: `Query the NVIDIA download listings and print every discoverable
toolkit release, oldest first. The list merges three upstream sources
with the static legacy release table and drops anything below the
minimum supported release.

The list can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			d := discovery.NewDiscoverer(
				discovery.WithClient(fetch.NewClient(fetch.WithUserAgent(name + "/" + version))),
			)

			catalog, err := d.Catalog(ctx)
			if err != nil {
				return fmt.Errorf("error building version catalog: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			return ser.Serialize(catalog)
		},
	}
}
