// Package logger provides a structured logging facility based on Zap.
//
// The logger is built from a small Config (level and encoding) and is shared by
// the CLI commands and the HTTP features. The reconciliation engine itself never
// logs; callers log around it.
//
// # Context Awareness
//
// WithRayID extracts the ray id stored by the rayid middleware from a Fiber context
// and attaches it to the entry, so every line written while serving a request can
// be correlated. WithTenant adds the Panchayat code.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
