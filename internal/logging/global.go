package logging

import (
	"github.com/sirupsen/logrus"
)

// global is the shared logrus instance handed out by GetLogger. Packages that
// keep a package-level logger use this as their default and expose SetLogger
// for overrides.
var global = logrus.New()

// GetLogger returns the shared logrus logger instance.
func GetLogger() *logrus.Logger {
	return global
}

// SetAllLogLevels sets the level on both the shared instance and the logrus
// standard logger so loggers created before configuration pick it up too.
func SetAllLogLevels(level logrus.Level) {
	global.SetLevel(level)
	logrus.SetLevel(level)
}
