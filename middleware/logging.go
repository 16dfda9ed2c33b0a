package middleware

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/dispatch/handler"
	"github.com/dmitrymomot/dispatch/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging
	Component string
}

// Logging creates a request logging middleware with default configuration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom
// configuration. The log record is emitted after the continuation
// returns, so the measured duration covers everything the stage wraps.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}

	return func(ctx C, next handler.HandlerFunc[C]) handler.Response {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next(ctx)
		}

		r := ctx.Request()
		start := time.Now()

		resp := next(ctx)

		elapsed := time.Since(start)
		level := cfg.LogLevel
		msg := "request handled"
		if elapsed >= cfg.SlowRequestThreshold {
			level = slog.LevelWarn
			msg = "slow request"
		}

		requestID, _ := GetRequestID(ctx)
		cfg.Logger.LogAttrs(ctx, level, msg,
			logger.Component(cfg.Component),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.RequestID(requestID),
			logger.Duration(elapsed),
		)

		return resp
	}
}
