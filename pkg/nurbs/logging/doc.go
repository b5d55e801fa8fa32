// Package logging provides the small logging facade used by the nurbs
// loader and command-line tools.
//
// The Logger interface wraps the context-aware subset of log/slog:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// New binds a Logger to an *slog.Logger (slog.Default() when nil). Discard
// returns a Logger that drops every record; it is what a zero nurbs.Loader
// uses.
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	loader := &nurbs.Loader{Logger: logging.New(slog.New(handler))}
//
// The loader only emits Debug records describing the steps it took. Failures
// are returned to the caller and never logged here; whether to log them is the
// caller's decision.
//
// Paths to private asset bundles can be kept out of logs with Redacted:
//
//	logger.Info(ctx, "asset bundle opened", logging.Redacted("path"))
//	// path="[redacted]"
package logging
