// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and encodings.
//
// # Run Correlation
//
// Import runs are batch operations over many records. The WithRun helper
// attaches a run identifier to the logger so that all per-record log lines
// emitted during one invocation can be correlated after the fact.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Import started")
//
//	// In the import engine:
//	l := logger.WithRun(log, runID)
//	l.Warn("record skipped", zap.String("slug", slug))
package logger
