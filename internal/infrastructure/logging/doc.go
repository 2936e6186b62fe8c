// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Example Usage:
//
//	logger, err := logging.New(logging.Options{Level: "info"})
//	logger.Info("server starting", zap.String("port", "8090"))
package logging
