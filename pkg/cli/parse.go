/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/normalize"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Normalize a free-form recipe name",
		ArgsUsage: "TEXT...",
		Description: `Normalize a handwritten name into its display form.

Hyphens and underscores become spaces, characters other than letters and
whitespace are dropped, and each word is capitalized.

# Examples

  cookbook parse "Riz@z RISO00tto!"
  Rizz Risotto

  cookbook parse meatball_-_sub
  Meatball Sub`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return errors.New("text to parse is required")
			}

			raw := strings.Join(cmd.Args().Slice(), " ")
			parsed, ok := normalize.Name(raw)
			if !ok {
				return fmt.Errorf("no usable characters in %q", raw)
			}

			_, err := fmt.Fprintln(outWriter(cmd), parsed)
			return err
		},
	}
}
