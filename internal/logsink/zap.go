// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logsink

import (
	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapSink struct {
	l      *zap.Logger
	name   string
	values []interface{}
}

var _ logr.LogSink = (*zapSink)(nil)

// NewZap returns a logr.Logger that writes through l.
func NewZap(l *zap.Logger) logr.Logger {
	return logr.New(&zapSink{l: l})
}

func zapLevel(v int) zapcore.Level {
	if v > 0 {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func (s *zapSink) Init(logr.RuntimeInfo) {}

func (s *zapSink) Enabled(level int) bool {
	return s.l.Core().Enabled(zapLevel(level))
}

func (s *zapSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if ce := s.l.Check(zapLevel(level), msg); ce != nil {
		ce.Write(append(s.fields(keysAndValues), zap.Int("v", level))...)
	}
}

func (s *zapSink) Error(err error, msg string, keysAndValues ...interface{}) {
	if ce := s.l.Check(zapcore.ErrorLevel, msg); ce != nil {
		ce.Write(append(s.fields(keysAndValues), zap.Error(err))...)
	}
}

func (s *zapSink) fields(keysAndValues []interface{}) []zap.Field {
	var fs []zap.Field
	if s.name != "" {
		fs = append(fs, zap.String("logger", s.name))
	}
	add := func(key string, value interface{}) { fs = append(fs, zap.Any(key, value)) }
	pairs(s.values, add)
	pairs(keysAndValues, add)
	return fs
}

func (s *zapSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	s2 := *s
	s2.values = appendValues(s.values, keysAndValues)
	return &s2
}

func (s *zapSink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.name = joinName(s.name, name)
	return &s2
}
