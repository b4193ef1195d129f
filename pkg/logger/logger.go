package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level int
	inner *logrus.Logger
}

func NewLogger(level int) *defaultLogger {
	return newLogger(level, os.Stderr, false)
}

// NewJSONLogger writes one JSON object per line.
func NewJSONLogger(level int, w io.Writer) *defaultLogger {
	return newLogger(level, w, true)
}

func newLogger(level int, w io.Writer, json bool) *defaultLogger {
	inner := logrus.New()
	inner.SetOutput(w)
	inner.SetLevel(logrus.DebugLevel)
	if json {
		inner.SetFormatter(&logrus.JSONFormatter{})
	} else {
		inner.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &defaultLogger{level: level, inner: inner}
}

func ParseLevel(s string) (int, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "", "info":
		return INFO, nil
	case "warn", "warning":
		return WARNING, nil
	case "error":
		return ERROR, nil
	case "silence", "off":
		return SILENCE, nil
	}

	return INFO, fmt.Errorf("invalid log level %q", s)
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	if l.level <= DEBUG {
		l.inner.Debugf(msg, a...)
	}
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	if l.level <= INFO {
		l.inner.Infof(msg, a...)
	}
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	if l.level <= WARNING {
		l.inner.Warnf(msg, a...)
	}
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	if l.level <= ERROR {
		l.inner.Errorf(msg, a...)
	}
}
