// Package logrus adapts a logrus entry to quicvarint.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/quicvarint"
)

var _ quicvarint.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

// New wraps l, or logrus.StandardLogger when l is nil.
func New(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return Logger{E: logrus.NewEntry(l)}
}

func (l Logger) with(f quicvarint.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}

func (l Logger) Debug(msg string, f quicvarint.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f quicvarint.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f quicvarint.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f quicvarint.Fields) { l.with(f).Error(msg) }
