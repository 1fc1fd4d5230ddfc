/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/cookbook"
	"github.com/NVIDIA/cookbook/pkg/defaults"
	"github.com/NVIDIA/cookbook/pkg/header"
)

// SummaryDocument is the serialized form of a recipe summary.
type SummaryDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Summary *cookbook.Summary `json:"summary" yaml:"summary"`
}

// TableHeader implements serializer.TableRenderer.
func (d *SummaryDocument) TableHeader() []string {
	return d.Summary.TableHeader()
}

// TableRows implements serializer.TableRenderer.
func (d *SummaryDocument) TableRows() [][]string {
	return d.Summary.TableRows()
}

func summaryCmd(s *settings) *cli.Command {
	return &cli.Command{
		Name:                  "summary",
		EnableShellCompletion: true,
		Usage:                 "Expand a recipe into base ingredients and total cook time",
		Description: `Load a catalog and summarize one recipe.

Nested recipes are expanded recursively: quantities multiply through each
level and the total cook time is the sum of ingredient cook time times
quantity.

# Examples

  cookbook summary --catalog catalog.yaml --name Pancake
  cookbook summary -c https://example.com/catalog.json -n Pancake -t table`,
		Flags: []cli.Flag{
			catalogFlag(),
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Required: true,
				Usage:    "Name of the recipe to summarize",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(s.String(cmd, "format"))
			if err != nil {
				return err
			}

			cb, err := loadCookbook(ctx, s.String(cmd, "catalog"))
			if err != nil {
				return err
			}

			recipeName := cmd.String("name")
			sum, err := cb.Summarize(ctx, recipeName)
			if err != nil {
				return fmt.Errorf("failed to summarize %q: %w", recipeName, err)
			}

			doc := &SummaryDocument{Summary: sum}
			doc.Init(header.KindSummary, version)

			ser := newOutputWriter(cmd, outFormat, s.String(cmd, "output"))
			defer closeWriter(ser)

			return ser.Serialize(ctx, doc)
		},
	}
}

// loadCookbook returns a Cookbook seeded from the catalog at path.
func loadCookbook(ctx context.Context, path string) (*cookbook.Cookbook, error) {
	if path == "" {
		return nil, errors.New("catalog is required (--catalog or COOKBOOK_CATALOG)")
	}

	loadCtx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	cb := cookbook.New()
	n, err := cookbook.LoadCatalog(loadCtx, cb, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %q: %w", path, err)
	}

	slog.Debug("catalog loaded", "path", path, "entries", n)
	return cb, nil
}
