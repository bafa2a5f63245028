// ABOUTME: Logrus-backed logger implementation with structured field support
// ABOUTME: Default production logger for the reader client

package logrus

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger implements the interfaces.Logger contract on top of logrus
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a logger writing text-formatted lines to stderr at info
// level.
func NewLogger() *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &Logger{log: log}
}

// NewDebugLogger creates a logger that also emits debug level messages
func NewDebugLogger() *Logger {
	l := NewLogger()
	l.log.SetLevel(logrus.DebugLevel)
	return l
}

// SetOutput redirects the logger's output stream
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
