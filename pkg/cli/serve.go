/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/api"
)

func serveCmd(s *settings) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the cookbook HTTP API",
		Description: `Start the HTTP API, optionally seeded from a catalog document.

Server tuning (rate limits, shutdown timeout) is read from the environment;
see pkg/server.

# Examples

  cookbook serve --port 8080 --catalog catalog.yaml`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (default: PORT or 8080)",
			},
			catalogFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Run(ctx,
				api.WithCatalog(s.String(cmd, "catalog")),
				api.WithPort(s.Int(cmd, "port")),
				api.WithVersion(version),
			)
		},
	}
}
