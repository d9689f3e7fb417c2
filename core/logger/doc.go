// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the bot backend and integrates
// with the Fiber web framework through the ray id carried by every request.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Room designs loaded", zap.Int("count", len(data)))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Room lookup failed", zap.Error(err))
package logger
