package logger

import "gitlab.com/code-review-relay.net/internal/adapter/logging"

// Logger is the bootstrap logger, used before configuration is loaded.
var Logger = logging.NewZapLogger(false)

func Info(msg string, args ...interface{}) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...interface{}) {
	Logger.Error(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	Logger.Warn(msg, args...)
}
