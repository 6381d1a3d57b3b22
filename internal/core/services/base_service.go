package services

import (
	"context"
	"log/slog"

	"github.com/lifetrackhq/lifetrack_backend/internal/middleware"
)

// BaseService provides request-scoped logging helpers shared by all services.
type BaseService struct{}

func (s *BaseService) logger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with the request-scoped logger.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, args ...any) {
	s.logger(ctx).Error(msg, append([]any{slog.Any("error", err)}, args...)...)
}

// LogWarn logs a warning with the request-scoped logger.
func (s *BaseService) LogWarn(ctx context.Context, msg string, args ...any) {
	s.logger(ctx).Warn(msg, args...)
}

// LogInfo logs at info level with the request-scoped logger.
func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	s.logger(ctx).Info(msg, args...)
}

// LogDebug logs at debug level with the request-scoped logger.
func (s *BaseService) LogDebug(ctx context.Context, msg string, args ...any) {
	s.logger(ctx).Debug(msg, args...)
}
