package service

import "go.uber.org/zap"

// SetLogger replaces the package logger and returns a func restoring it.
func SetLogger(l *zap.SugaredLogger) func() {
	previous := logger
	logger = l
	return func() { logger = previous }
}
