// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logsink

import (
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

type logrusSink struct {
	l      *logrus.Logger
	name   string
	values []interface{}
}

var _ logr.LogSink = (*logrusSink)(nil)

// NewLogrus returns a logr.Logger that writes through l.
func NewLogrus(l *logrus.Logger) logr.Logger {
	return logr.New(&logrusSink{l: l})
}

func logrusLevel(v int) logrus.Level {
	if v > 0 {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

func (s *logrusSink) Init(logr.RuntimeInfo) {}

func (s *logrusSink) Enabled(level int) bool {
	return s.l.IsLevelEnabled(logrusLevel(level))
}

func (s *logrusSink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.entry(keysAndValues).WithField("v", level).Log(logrusLevel(level), msg)
}

func (s *logrusSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.entry(keysAndValues).WithError(err).Error(msg)
}

func (s *logrusSink) entry(keysAndValues []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	if s.name != "" {
		fields["logger"] = s.name
	}
	add := func(key string, value interface{}) { fields[key] = value }
	pairs(s.values, add)
	pairs(keysAndValues, add)
	return s.l.WithFields(fields)
}

func (s *logrusSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	s2 := *s
	s2.values = appendValues(s.values, keysAndValues)
	return &s2
}

func (s *logrusSink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.name = joinName(s.name, name)
	return &s2
}
