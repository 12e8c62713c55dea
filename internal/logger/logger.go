package logger

import (
	"fmt"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Init configures the global logger. With a log path set, JSON entries
// go to a daily-rotated file (kept for a week); otherwise console output
// goes to stdout. Debug mode lowers the level and tees to the console.
func Init(logPath string, debug bool) error {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "date",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	console := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), level)

	var core zapcore.Core
	if logPath != "" {
		rotator, err := rotatelogs.New(
			fmt.Sprintf("%s.%%Y-%%m-%%d.log", logPath),
			rotatelogs.WithMaxAge(7*24*time.Hour),
			rotatelogs.WithRotationTime(24*time.Hour))
		if err != nil {
			return fmt.Errorf("failed to set up log rotation: %w", err)
		}
		fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level)
		if debug {
			core = zapcore.NewTee(fileCore, console)
		} else {
			core = fileCore
		}
	} else {
		core = console
	}

	logger = zap.New(core)
	return nil
}

// L returns the global logger.
func L() *zap.Logger {
	return logger
}
