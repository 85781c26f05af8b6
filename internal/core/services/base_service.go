package services

import (
	"log/slog"
)

// BaseService provides common functionality for the calculation services.
type BaseService struct {
	Logger *slog.Logger
}

// GetLogger returns the injected logger or falls back to the default one.
func (s *BaseService) GetLogger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// LogWarn logs a warning with consistent formatting.
func (s *BaseService) LogWarn(msg string, keyvals ...any) {
	s.GetLogger().Warn(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(msg string, keyvals ...any) {
	s.GetLogger().Debug(msg, keyvals...)
}
