package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// Component returns the context logger tagged with a component name.
// Every use case and adapter logs through one of these.
func Component(ctx context.Context, name string) zerolog.Logger {
	return FromContext(ctx).With().Str("component", name).Logger()
}

// ForTab is Component plus the tab the work belongs to.
func ForTab(ctx context.Context, name string, tabID int64) zerolog.Logger {
	return FromContext(ctx).With().
		Str("component", name).
		Int64("tab_id", tabID).
		Logger()
}

// WithTabID tags every later log line on ctx with tabID. The HTTP layer
// uses it so request logs and use case logs share the tab.
func WithTabID(ctx context.Context, tabID int64) context.Context {
	logger := FromContext(ctx).With().Int64("tab_id", tabID).Logger()
	return WithContext(ctx, logger)
}
