// Package cli implements the command-line interface for the cookbook tool.
//
// # Overview
//
// The cookbook CLI works on catalog documents: YAML or JSON files (or
// http(s) URLs) listing ingredients and recipes. It can summarize a recipe,
// check a whole catalog, and serve the HTTP API.
//
// # Commands
//
// parse - Normalize a free-form name:
//
//	cookbook parse "Riz@z RISO00tto!"
//
// summary - Expand a recipe into base ingredients and total cook time:
//
//	cookbook summary --catalog catalog.yaml --name Pancake [--format yaml|json|table] [--output FILE]
//
// validate - Load a catalog and summarize every recipe in it:
//
//	cookbook validate --catalog catalog.yaml [--fail-on-error]
//
// serve - Run the HTTP API:
//
//	cookbook serve [--port 8080] [--catalog catalog.yaml]
//
// # Global Flags
//
//	--config       Config file (default: $HOME/.cookbook.yaml or ./.cookbook.yaml)
//	--log-level    Logging level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Configuration
//
// Options can also come from the config file or COOKBOOK_* environment
// variables, for example:
//
//	# ~/.cookbook.yaml
//	catalog: /etc/cookbook/catalog.yaml
//	log-level: debug
//
//	COOKBOOK_CATALOG=https://example.com/catalog.json cookbook summary -n Pancake
//
// Flags set on the command line take precedence.
//
// # Output Formats
//
// YAML (default) and JSON write the full document with its header. Table
// renders one row per ingredient followed by the total cook time.
//
// # Exit Codes
//
//	0  Success
//	1  Any error (invalid arguments, rejected catalog, failed summary)
package cli
