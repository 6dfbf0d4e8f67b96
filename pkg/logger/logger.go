// Package logger builds the application zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	// Level is a zapcore level name, see zapcore.ParseLevel.
	Level string `yaml:"level" default:"info"`
	// File is the rotated log file path; empty disables file output.
	File string `yaml:"file" default:"storage/logs/memos-mirror.log"`
	// Production switches the file sink to JSON encoding.
	Production bool `yaml:"production" default:"false"`
}

// NewLogger builds a logger writing human-readable output to stderr and,
// when configured, rotated output to a file.
func NewLogger(c Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	consoleConfig := zap.NewDevelopmentEncoderConfig()
	consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleConfig),
			zapcore.Lock(os.Stderr),
			level,
		),
	}

	if c.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}

		fileConfig := zap.NewProductionEncoderConfig()
		fileConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		var fileEncoder zapcore.Encoder
		if c.Production {
			fileEncoder = zapcore.NewJSONEncoder(fileConfig)
		} else {
			fileEncoder = zapcore.NewConsoleEncoder(fileConfig)
		}
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(rotator), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
