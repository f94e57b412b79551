// Package logger provides structured logging for pulse using zerolog.
//
// It supports JSON and console output formats, log level configuration,
// and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("pulse").WithComponent("server")
//	log.Info("server started", map[string]interface{}{"addr": addr})
package logger
