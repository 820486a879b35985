package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

// Init builds the process logger. Development mode uses the console encoder.
func Init(level string, production bool) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentConfig()
	if production {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	sugar = l.Sugar()
	return sugar, nil
}

// Sync flushes buffered entries of the logger built by Init.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
