package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger for every package in the engine.
// Init must be called once before the first render call.
var Log *zap.Logger

func Init() {
	if Log != nil {
		return
	}
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, err := config.Build()
	if err != nil {
		// Fall back to a no-op logger rather than panicking inside the render loop
		Log = zap.NewNop()
		return
	}
	Log = logger
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
