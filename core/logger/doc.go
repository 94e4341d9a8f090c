// Package logger provides structured logging built on Go's standard slog
// package: a small factory with functional options plus nil-safe attribute
// helpers for the fields this client emits.
//
// Basic usage:
//
//	import "github.com/creditdost/portal/core/logger"
//
//	log := logger.New(
//		logger.WithService("creditdost"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("session bootstrapped",
//		logger.Component("session"),
//		logger.Event("bootstrap"),
//	)
//
// Attribute helpers return an empty slog.Attr for nil or zero input, so
// call sites never need explicit nil checks:
//
//	log.Error("login failed", logger.Error(err), logger.Endpoint("/api/auth/login"))
package logger
