// Package logger builds log/slog loggers for sharedkit services and tools.
//
// New returns a *slog.Logger configured through functional options: output
// format (JSON or text), level, static attributes and context extractors that
// inject request-scoped values such as the request id on every call.
//
//	log := logger.New(
//		logger.FromSettings(settings),
//		logger.WithAttr(logger.Component("kitctl")),
//		logger.WithContextExtractors(httpx.RequestIDExtractor),
//	)
//
// The attribute helpers (Error, RequestID, Component, Path, Kind) keep key
// names consistent across packages.
package logger
