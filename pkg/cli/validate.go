/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/cookbook"
	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/header"
)

// Problem describes a recipe that cannot be summarized.
type Problem struct {
	Recipe  string             `json:"recipe" yaml:"recipe"`
	Code    cberrors.ErrorCode `json:"code" yaml:"code"`
	Message string             `json:"message" yaml:"message"`
}

// ValidationReport summarizes a catalog check.
type ValidationReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Catalog     string    `json:"catalog" yaml:"catalog"`
	Entries     int       `json:"entries" yaml:"entries"`
	Ingredients int       `json:"ingredients" yaml:"ingredients"`
	Recipes     int       `json:"recipes" yaml:"recipes"`
	Problems    []Problem `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// TableHeader implements serializer.TableRenderer.
func (r *ValidationReport) TableHeader() []string {
	return []string{"RECIPE", "STATUS", "DETAIL"}
}

// TableRows implements serializer.TableRenderer.
func (r *ValidationReport) TableRows() [][]string {
	rows := [][]string{
		{"(entries)", strconv.Itoa(r.Entries), fmt.Sprintf("%d ingredients, %d recipes", r.Ingredients, r.Recipes)},
	}
	for _, p := range r.Problems {
		rows = append(rows, []string{p.Recipe, string(p.Code), p.Message})
	}
	return rows
}

// Passed reports whether every recipe could be summarized.
func (r *ValidationReport) Passed() bool {
	return len(r.Problems) == 0
}

func validateCmd(s *settings) *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check a catalog document",
		Description: `Load a catalog and summarize every recipe in it.

Registration stops at the first rejected entry. Once loaded, each recipe is
expanded; recipes referencing missing entries or forming a cycle are
reported as problems.

# Examples

  cookbook validate --catalog catalog.yaml
  cookbook validate -c catalog.yaml -t table --fail-on-error`,
		Flags: []cli.Flag{
			catalogFlag(),
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any recipe cannot be summarized",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(s.String(cmd, "format"))
			if err != nil {
				return err
			}

			path := s.String(cmd, "catalog")
			cb, err := loadCookbook(ctx, path)
			if err != nil {
				return err
			}

			report := buildReport(ctx, cb)
			report.Catalog = path
			report.Init(header.KindValidation, version)

			slog.Debug("validation complete",
				"entries", report.Entries,
				"problems", len(report.Problems))

			ser := newOutputWriter(cmd, outFormat, s.String(cmd, "output"))
			defer closeWriter(ser)

			if err := ser.Serialize(ctx, report); err != nil {
				return err
			}

			if s.Bool(cmd, "fail-on-error") && !report.Passed() {
				return fmt.Errorf("validation failed: %d recipe(s) cannot be summarized", len(report.Problems))
			}
			return nil
		},
	}
}

func buildReport(ctx context.Context, cb *cookbook.Cookbook) *ValidationReport {
	report := &ValidationReport{}

	for _, e := range cb.Entries() {
		report.Entries++
		if e.EntryKind() == cookbook.KindIngredient {
			report.Ingredients++
			continue
		}
		report.Recipes++

		if _, err := cb.Summarize(ctx, e.EntryName()); err != nil {
			p := Problem{
				Recipe:  e.EntryName(),
				Code:    cberrors.CodeOf(err),
				Message: err.Error(),
			}
			if p.Code == "" {
				p.Code = cberrors.ErrCodeInternal
			}
			report.Problems = append(report.Problems, p)
		}
	}

	return report
}
