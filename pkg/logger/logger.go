// Package logger provides a structured, levelled logger built on log/slog.
//
// WithCtx returns a logger with the request ID already attached, so every log
// line from a handler is automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order created", "order_id", order.ID, "total", order.TotalPrice)
//	// → time=... level=INFO msg="order created" request_id=a1b2c3d4 order_id=17 total=300
package logger

import (
	"context"
	"log/slog"
	"os"

	"shopapi/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// Setup attaches the optional MongoDB sink when MONGO_LOG_URI is configured.
// Returns a close function that flushes the sink; it is a no-op when the sink
// is disabled or unreachable.
func Setup() func() {
	uri := config.MongoLogURI()
	if uri == "" {
		return func() {}
	}

	mh, err := NewMongoHandler(uri, config.MongoLogDB(), "logs")
	if err != nil {
		L.Warn("mongo log sink unavailable", "error", err)
		return func() {}
	}

	L = slog.New(tee{L.Handler(), mh})
	slog.SetDefault(L)
	return func() { mh.Close() }
}

// tee fans every record out to two handlers. Errors from the secondary
// handler never surface; logging must not fail application code.
type tee struct {
	primary   slog.Handler
	secondary slog.Handler
}

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	return t.primary.Enabled(ctx, level)
}

func (t tee) Handle(ctx context.Context, r slog.Record) error {
	_ = t.secondary.Handle(ctx, r.Clone())
	return t.primary.Handle(ctx, r)
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return tee{t.primary.WithAttrs(attrs), t.secondary.WithAttrs(attrs)}
}

func (t tee) WithGroup(name string) slog.Handler {
	return tee{t.primary.WithGroup(name), t.secondary.WithGroup(name)}
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns a *slog.Logger pre-tagged with the request_id found in ctx,
// or the base logger when the request has none.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Inject stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
