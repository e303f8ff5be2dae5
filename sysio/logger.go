package sysio

import (
	"sync"

	"go.uber.org/zap"
)

var (
	log     *zap.Logger
	logOnce sync.Once
)

// logger returns the package logger, a no-op by default.
func logger() *zap.Logger {
	logOnce.Do(func() {
		if log == nil {
			log = zap.NewNop()
		}
	})
	return log
}

// SetLogger installs a logger for system interface diagnostics.
func SetLogger(l *zap.Logger) {
	log = l
}
