package wails

import (
	"github.com/wailsapp/wails/v2/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger routes Wails' internal log messages into zap.
type ZapLogger struct {
	log *zap.Logger
}

// NewZapLogger wraps log for use as options.App.Logger.
func NewZapLogger(log *zap.Logger) *ZapLogger {
	return &ZapLogger{log: log.Named("wails")}
}

func (l *ZapLogger) Print(message string)   { l.log.Info(message) }
func (l *ZapLogger) Trace(message string)   { l.log.Debug(message) }
func (l *ZapLogger) Debug(message string)   { l.log.Debug(message) }
func (l *ZapLogger) Info(message string)    { l.log.Info(message) }
func (l *ZapLogger) Warning(message string) { l.log.Warn(message) }
func (l *ZapLogger) Error(message string)   { l.log.Error(message) }

// Fatal logs at error level; Wails terminates the process itself after
// reporting a fatal condition.
func (l *ZapLogger) Fatal(message string) { l.log.Error(message, zap.Bool("fatal", true)) }

// LogLevel maps a zap level to the closest Wails level.
func LogLevel(level zapcore.Level) logger.LogLevel {
	switch {
	case level <= zapcore.DebugLevel:
		return logger.DEBUG
	case level == zapcore.InfoLevel:
		return logger.INFO
	case level == zapcore.WarnLevel:
		return logger.WARNING
	default:
		return logger.ERROR
	}
}

var _ logger.Logger = (*ZapLogger)(nil)
