// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logsink

import (
	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
)

type zerologSink struct {
	l      zerolog.Logger
	name   string
	values []interface{}
}

var _ logr.LogSink = (*zerologSink)(nil)

// NewZerolog returns a logr.Logger that writes through l.
func NewZerolog(l zerolog.Logger) logr.Logger {
	return logr.New(&zerologSink{l: l})
}

func zerologLevel(v int) zerolog.Level {
	if v > 0 {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func (s *zerologSink) Init(logr.RuntimeInfo) {}

func (s *zerologSink) Enabled(level int) bool {
	lvl := zerologLevel(level)
	return lvl >= s.l.GetLevel() && lvl >= zerolog.GlobalLevel()
}

func (s *zerologSink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.deliver(s.l.WithLevel(zerologLevel(level)), keysAndValues).Int("v", level).Msg(msg)
}

func (s *zerologSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.deliver(s.l.Error(), keysAndValues).Err(err).Msg(msg)
}

func (s *zerologSink) deliver(ev *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	if s.name != "" {
		ev = ev.Str("logger", s.name)
	}
	add := func(key string, value interface{}) { ev = ev.Interface(key, value) }
	pairs(s.values, add)
	pairs(keysAndValues, add)
	return ev
}

func (s *zerologSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	s2 := *s
	s2.values = appendValues(s.values, keysAndValues)
	return &s2
}

func (s *zerologSink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.name = joinName(s.name, name)
	return &s2
}
