// Package log is the logging facade of dpswctl. Callers log through the
// Logger interface; the logrus backend, output pattern and appenders are
// chosen once at startup from configuration.
package log

import (
	"sync"
)

type Logger interface {
	Print(args ...interface{})
	Printf(format string, args ...interface{})

	Trace(args ...interface{})
	Tracef(format string, args ...interface{})

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})

	WithField(field string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger

	IsTraceEnabled() bool
	IsDebugEnabled() bool
	IsInfoEnabled() bool
}

var (
	once   sync.Once
	logger Logger = newAdapter(defaultConfig())
)

// GetLogger returns the process-wide logger. Before Init it logs at info
// level to stdout.
func GetLogger() Logger {
	return logger
}

// Init configures the process-wide logger. Only the first call takes
// effect.
func Init(cfg *Config) {
	once.Do(func() {
		logger = newAdapter(cfg)
	})
}
