// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logsink implements logr sinks over zerolog, logrus, zap and
// go-kit.
//
// Verbosity 0 maps to the info level and every higher verbosity to debug.
// Names added with WithName are joined with "/" and reported under the
// "logger" key.
package logsink

import "fmt"

const nameSep = "/"

func joinName(name, elem string) string {
	if name == "" {
		return elem
	}
	return name + nameSep + elem
}

// pairs walks keysAndValues two at a time. Non-string keys are formatted;
// a trailing key without a value is paired with "<no-value>".
func pairs(keysAndValues []interface{}, f func(key string, value interface{})) {
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		var value interface{} = "<no-value>"
		if i+1 < len(keysAndValues) {
			value = keysAndValues[i+1]
		}
		f(key, value)
	}
}

// appendValues returns a new slice holding kvs followed by more.
func appendValues(kvs []interface{}, more []interface{}) []interface{} {
	out := make([]interface{}, 0, len(kvs)+len(more))
	out = append(out, kvs...)
	return append(out, more...)
}
