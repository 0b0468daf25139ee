package store

import (
	"github.com/sirupsen/logrus"
)

var debug = &logger{}

func d(s string, args ...interface{}) {
	debug.debug(s, args...)
}

type logger struct {
	entry           *logrus.Entry
	debuggerEnabled bool
}

func (l *logger) debug(s string, args ...interface{}) {
	if l.debuggerEnabled && l.entry != nil {
		l.entry.Debugf(s, args...)
	}
}

func (l *logger) init(serviceName string, enabled bool) {
	l.debuggerEnabled = enabled
	if enabled {
		l.entry = logrus.WithField("service", serviceName)
	}
}
