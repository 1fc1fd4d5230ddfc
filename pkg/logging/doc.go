// Package logging provides structured logging utilities for the cookbook
// binaries.
//
// # Overview
//
// This package wraps the standard library slog package with shared defaults
// so the CLI and the API server emit the same record shape. It supports
// environment-based log level configuration, module/version context
// injection, and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("cookbookd", version)
//	    slog.Info("entry registered", "name", "Pancake", "kind", "recipe")
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("cookbook", "v1.0.0", "debug")
//	logger.Debug("expanding recipe", "name", "Pancake")
//
// Setting explicit log level (used by the CLI --log-level flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("cookbook", version, "warn")
//
// Bridging to the standard library logger (http.Server.ErrorLog):
//
//	srv.ErrorLog = logging.NewLogLogger(slog.LevelError, false)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug cookbookd
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "entry registered",
//	    "module": "cookbookd",
//	    "version": "v1.0.0",
//	    "name": "Pancake"
//	}
package logging
