// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logsink

import (
	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-logr/logr"
)

// A go-kit logger cannot report its level filter, so the sink keeps its
// own: debug records pass only when debug is set.
type gokitSink struct {
	l      kitlog.Logger
	debug  bool
	name   string
	values []interface{}
}

var _ logr.LogSink = (*gokitSink)(nil)

// NewGoKit returns a logr.Logger that writes key/value records through l.
// Verbosity above 0 is logged only if debug is true.
func NewGoKit(l kitlog.Logger, debug bool) logr.Logger {
	return logr.New(&gokitSink{l: l, debug: debug})
}

func (s *gokitSink) Init(logr.RuntimeInfo) {}

func (s *gokitSink) Enabled(v int) bool {
	return v == 0 || s.debug
}

func (s *gokitSink) Info(v int, msg string, keysAndValues ...interface{}) {
	l := level.Info(s.l)
	if v > 0 {
		l = level.Debug(s.l)
	}
	l.Log(append(s.keyvals(keysAndValues), "v", v, "msg", msg)...)
}

func (s *gokitSink) Error(err error, msg string, keysAndValues ...interface{}) {
	level.Error(s.l).Log(append(s.keyvals(keysAndValues), "err", err, "msg", msg)...)
}

func (s *gokitSink) keyvals(keysAndValues []interface{}) []interface{} {
	var kvs []interface{}
	if s.name != "" {
		kvs = append(kvs, "logger", s.name)
	}
	add := func(key string, value interface{}) { kvs = append(kvs, key, value) }
	pairs(s.values, add)
	pairs(keysAndValues, add)
	return kvs
}

func (s *gokitSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	s2 := *s
	s2.values = appendValues(s.values, keysAndValues)
	return &s2
}

func (s *gokitSink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.name = joinName(s.name, name)
	return &s2
}
