/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/logging"
	"github.com/NVIDIA/cookbook/pkg/serializer"
)

const (
	name           = "cookbook"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags hold parsed state; each command gets its own instance.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func catalogFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage: `Path/URI to a catalog document listing ingredients and recipes.
	Supports: file paths or HTTP/HTTPS URLs. YAML or JSON, chosen by extension.`,
	}
}

// Execute runs the CLI with os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	s := newSettings()

	return &cli.Command{
		Name:                  name,
		Usage:                 "Ingredient and recipe catalog tooling",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `cookbook registers ingredients and recipes, expands recipes into their
base ingredients, and totals their cook time.

Configuration is read from --config, or .cookbook.yaml in $HOME or the
current directory, and from COOKBOOK_* environment variables.
Command-line flags take precedence.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file (default is $HOME/.cookbook.yaml)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := s.load(cmd.String("config")); err != nil {
				return ctx, err
			}
			initLogger(s.String(cmd, "log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			parseCmd(),
			summaryCmd(s),
			validateCmd(s),
			serveCmd(s),
		},
	}
}

// initLogger configures slog once flags and config are parsed so overrides
// like --log-level take effect before any command executes.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
}

func parseOutputFormat(value string) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(value)))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", value)
	}
	return f, nil
}

func outWriter(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// newOutputWriter writes to path, or to the command's writer when path is
// empty.
func newOutputWriter(cmd *cli.Command, format serializer.Format, path string) *serializer.Writer {
	if strings.TrimSpace(path) == "" {
		return serializer.NewWriter(format, outWriter(cmd))
	}
	return serializer.NewFileWriterOrStdout(format, path)
}

func closeWriter(w *serializer.Writer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close serializer", "error", err)
	}
}
