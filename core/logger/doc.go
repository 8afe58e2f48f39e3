// Package logger provides a structured logging facility based on Zap.
//
// Audit diagnostics (missing scan roots, malformed metadata, unreadable PDFs)
// are written through this logger to stderr, keeping stdout free for the
// report itself.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Warn("Flat root does not exist", zap.String("root", root))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Audit failed", zap.Error(err))
package logger
