// Package logger provides a structured logging facility based on Zap.
//
// Every command builds one logger from the log section of the configuration
// and passes it down explicitly; nothing in the sync path reaches for a
// global logger.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Sync started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
