package logger

import (
	"fmt"
	"os"
	"skill_assessment_backend/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ServiceName 每条日志都带的 service 字段
const ServiceName = "skill-assessment"

// Log 在 InitLogger 之前为空操作 logger，便于测试直接使用各包
var Log = zap.NewNop()

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "time",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.MillisDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// levelFor 显式配置优先，否则 debug 模式输出 debug 日志
func levelFor(cfg config.LogConfig, mode string) (zapcore.Level, error) {
	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return zap.InfoLevel, fmt.Errorf("parse log level: %w", err)
		}
		return lvl, nil
	}
	if mode == "debug" {
		return zap.DebugLevel, nil
	}
	return zap.InfoLevel, nil
}

// New 控制台始终输出；File 非空时另写一份 JSON 滚动文件
func New(cfg config.LogConfig, mode string) (*zap.Logger, error) {
	level, err := levelFor(cfg, mode)
	if err != nil {
		return nil, err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level),
	}
	if cfg.File != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     30,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level))
	}

	return zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(zap.String("service", ServiceName)),
	), nil
}

func InitLogger(cfg *config.Config) error {
	l, err := New(cfg.Log, cfg.Server.Mode)
	if err != nil {
		return err
	}
	Log = l
	return nil
}
