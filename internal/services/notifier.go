package services

import (
	"context"

	"go.uber.org/zap"
)

type logNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier that reports notifications to the log.
// The message itself reaches the user through the table snapshot.
func NewLogNotifier(logger *zap.Logger) *logNotifier {
	return &logNotifier{logger: logger}
}

// Notify logs a user notification
func (n *logNotifier) Notify(ctx context.Context, message string, err error) {
	n.logger.Warn("user notification", zap.String("message", message), zap.Error(err))
}
