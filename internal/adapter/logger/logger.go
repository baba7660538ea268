package logger

import (
	"go.uber.org/zap"
)

// LoggerAdapter implements ports.LoggerPort on top of zap. Production gets
// the JSON config, everything else the development console config.
type LoggerAdapter struct {
	log *zap.Logger
}

func NewLoggerAdapter(env string) *LoggerAdapter {
	var log *zap.Logger
	if env == "production" {
		log, _ = zap.NewProduction()
	} else {
		log, _ = zap.NewDevelopment()
	}
	return &LoggerAdapter{log: log}
}

func (l *LoggerAdapter) Debug(message string, args map[string]interface{}) {
	l.log.Debug(message, fields(args)...)
}

func (l *LoggerAdapter) Info(message string, args map[string]interface{}) {
	l.log.Info(message, fields(args)...)
}

func (l *LoggerAdapter) Warn(message string, args map[string]interface{}) {
	l.log.Warn(message, fields(args)...)
}

func (l *LoggerAdapter) Error(message string, args map[string]interface{}) {
	l.log.Error(message, fields(args)...)
}

func (l *LoggerAdapter) Sync() error {
	return l.log.Sync()
}

func fields(args map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(args))
	for k, v := range args {
		out = append(out, zap.Any(k, v))
	}
	return out
}
