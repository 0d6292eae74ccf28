// Package logger wraps zap for the application log and keeps the most recent
// lines in memory for the status bar at the bottom of the window.
package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFilePath is the log file, relative to the working directory.
const LogFilePath = "logs/buildstudio.log"

const recentMax = 50

// Logger logs through zap (console + file) and records recent messages.
type Logger struct {
	zl     *zap.Logger
	mu     sync.Mutex
	recent []string
}

// New builds the logger: console output always, file output when the logs
// directory is writable. A missing log file never blocks startup.
func New() *Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stdout),
		zapcore.InfoLevel,
	)
	cores := []zapcore.Core{console}

	if err := os.MkdirAll(filepath.Dir(LogFilePath), 0755); err == nil {
		if f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.Lock(f),
				zapcore.InfoLevel,
			))
		}
	}

	return &Logger{zl: zap.New(zapcore.NewTee(cores...))}
}

func (l *Logger) remember(msg string) {
	l.mu.Lock()
	l.recent = append(l.recent, msg)
	if len(l.recent) > recentMax {
		l.recent = l.recent[len(l.recent)-recentMax:]
	}
	l.mu.Unlock()
}

// Info logs at info level and records the message for the status bar.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.remember(msg)
	l.zl.Info(msg, fields...)
}

// Warn logs at warn level and records the message for the status bar.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.remember(msg)
	l.zl.Warn(msg, fields...)
}

// Error logs at error level and records the message for the status bar.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.remember(msg)
	l.zl.Error(msg, fields...)
}

// Recent returns a copy of the remembered messages, oldest first.
func (l *Logger) Recent() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.recent))
	copy(out, l.recent)
	return out
}

// Last returns the most recent message, or "" when nothing was logged.
func (l *Logger) Last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.recent) == 0 {
		return ""
	}
	return l.recent[len(l.recent)-1]
}

// Sync flushes buffered log entries. Call on shutdown.
func (l *Logger) Sync() {
	_ = l.zl.Sync()
}
