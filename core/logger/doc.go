// Package logger provides structured logging based on Zap.
//
// Loggers always write to stderr so that the text report printed by the
// compare command can be piped from stdout untouched.
//
// # Configuration
//
//   - Level: debug, info, warn, error. Debug also switches to zap's development config.
//   - Format: console (colored, no stack traces) or json.
//
// # Usage
//
//	log, err := logger.New(&cfg.Log)
//	log.Info("tables loaded", zap.Int("particles", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("audit failed", zap.Error(err))
package logger
