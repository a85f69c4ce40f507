// Package log provides leveled logging helpers for the iconview
// application, backed by logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetDebug enables or disables debug-level logging
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects log output, primarily for tests
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Info logs a message at info level
func Info(args ...interface{}) {
	logger.Info(args...)
}

// Infof logs a formatted message at info level
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a message at debug level
func Debug(args ...interface{}) {
	logger.Debug(args...)
}

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a message at warning level
func Warn(args ...interface{}) {
	logger.Warn(args...)
}

// Warnf logs a formatted message at warning level
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs a message at error level
func Error(args ...interface{}) {
	logger.Error(args...)
}

// Errorf logs a formatted message at error level
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
