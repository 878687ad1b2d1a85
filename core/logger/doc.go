// Package logger provides structured logging utilities built on Go's standard slog package.
//
// New builds a *slog.Logger from functional options, and the attribute helpers
// give common keys consistent names across the codebase:
//
//	log := logger.New(
//		logger.WithProduction("ordermail"),
//		logger.WithLevel(slog.LevelInfo),
//	)
//
//	log.Info("order email sent",
//		logger.Component("notifier"),
//		logger.OrderRef(order.OrderRef),
//		logger.Recipient(order.Email),
//		logger.Elapsed(start),
//	)
//
// Helpers that take optional values (Error, OrderRef, Recipient, Tag) return an
// empty slog.Attr for zero input, which slog drops, so callers never need nil
// checks:
//
//	log.Error("send failed", logger.Error(err)) // err may be nil
//
// For tests and for components that accept an optional logger, NewNope returns
// a logger that discards everything.
package logger
