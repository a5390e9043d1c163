package logger

import (
	"os"

	"github.com/remivalade/MintMyMood/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var sugar *zap.SugaredLogger

func init() {
	// Plain console logger until the application config is built
	logger, _ := zap.NewDevelopment(zap.AddCallerSkip(1))
	sugar = logger.Sugar()

	config.GlobalConfigCallback.AddCallback(func(gCfg config.GlobalConfig) {
		configure(gCfg.LoggerConfig())
	})
}

func configure(cfg config.LoggerConfig) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var cores []zapcore.Core
	if cfg.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stdout),
			level,
		))
	}
	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxFileSize,
			MaxBackups: 5,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.AddSync(fileWriter),
			level,
		))
	}
	if len(cores) == 0 {
		return
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCallerSkip(1))
	sugar = logger.Sugar()
}

func Debug(msg string, args ...interface{}) {
	sugar.Debugf(msg, args...)
}

func Info(msg string, args ...interface{}) {
	sugar.Infof(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	sugar.Warnf(msg, args...)
}

func Error(msg string, args ...interface{}) {
	sugar.Errorf(msg, args...)
}

func Fatal(msg string, args ...interface{}) {
	sugar.Fatalf(msg, args...)
}
