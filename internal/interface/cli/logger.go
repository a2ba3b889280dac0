package cli

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel is the minimum severity a Logger writes
type LogLevel = zapcore.Level

const (
	LogLevelDebug = zapcore.DebugLevel
	LogLevelInfo  = zapcore.InfoLevel
	LogLevelWarn  = zapcore.WarnLevel
	LogLevelError = zapcore.ErrorLevel
)

// Logger provides centralized logging with level control
type Logger struct {
	mu     sync.RWMutex
	level zap.AtomicLevel
	sugar *zap.SugaredLogger
}

// NewLogger creates a new logger with the specified minimum level
func NewLogger(minLevel LogLevel, output io.Writer) *Logger {
	l := &Logger{level: zap.NewAtomicLevelAt(minLevel)}
	l.SetOutput(output)
	return l
}

// SetLevel changes the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.level.SetLevel(level)
}

// GetLevel returns the current minimum log level
func (l *Logger) GetLevel() LogLevel {
	return l.level.Level()
}

// SetOutput changes the output writer
func (l *Logger) SetOutput(output io.Writer) {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(output), l.level)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.sugar = zap.New(core).Sugar()
}

func (l *Logger) logger() *zap.SugaredLogger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sugar
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logger().Debugf(format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.logger().Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logger().Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.logger().Errorf(format, args...)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.logger().Fatalf(format, args...)
}

// Sync flushes buffered log entries
func (l *Logger) Sync() error {
	return l.logger().Sync()
}

// LogLevelFromString converts a string to LogLevel, defaulting to WARN
func LogLevelFromString(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error", "fatal":
		return LogLevelError
	default:
		return LogLevelWarn
	}
}

// Global logger instance
var (
	globalLoggerMu sync.Mutex
	globalLogger   *Logger
)

// InitGlobalLogger initializes the global logger on stderr
func InitGlobalLogger(level string) {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	globalLogger = NewLogger(LogLevelFromString(level), os.Stderr)
}

// GetLogger returns the global logger instance
func GetLogger() *Logger {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	if globalLogger == nil {
		globalLogger = NewLogger(LogLevelWarn, os.Stderr)
	}
	return globalLogger
}

// Debug logs a debug message using the global logger
func Debug(format string, args ...interface{}) {
	GetLogger().Debug(format, args...)
}

// Info logs an info message using the global logger
func Info(format string, args ...interface{}) {
	GetLogger().Info(format, args...)
}

// Warn logs a warning message using the global logger
func Warn(format string, args ...interface{}) {
	GetLogger().Warn(format, args...)
}

// Error logs an error message using the global logger
func Error(format string, args ...interface{}) {
	GetLogger().Error(format, args...)
}
