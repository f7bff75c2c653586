// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"

	"github.com/itsmanjeet/xrand/decimal"
	"github.com/itsmanjeet/xrand/rand"
)

func mustConfig(t *testing.T, environ map[string]string, args ...string) config {
	t.Helper()
	cfg, err := parseConfig(args, environ, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func output(t *testing.T, cfg config) string {
	t.Helper()
	var buf bytes.Buffer
	if err := run(cfg, &buf, logr.Discard()); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestParseConfig(t *testing.T) {
	environ := map[string]string{
		"RANDGEN_SOURCE": "pcg",
		"RANDGEN_TYPE":   "int8",
		"RANDGEN_COUNT":  "3",
		"RANDGEN_SEED":   "from env",
	}
	got := mustConfig(t, environ, "-type", "float64", "-n", "2.5", "-v", "1")
	want := config{
		Source:     "pcg",
		SourceSeed: 1,
		Seed:       "from env",
		Type:       "float64",
		Count:      3,
		N:          "2.5",
		LogFormat:  "console",
		Verbose:    1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want, +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-source", "dice"},
		{"-type", "string"},
		{"-count", "-1"},
		{"-cols", "-2"},
		{"-log-format", "xml"},
		{"-min", "3"},
		{"extra"},
		{"-count", "many"},
	} {
		if _, err := parseConfig(args, map[string]string{}, io.Discard); err == nil {
			t.Errorf("parseConfig(%q) succeeded", args)
		}
	}
	if _, err := parseConfig(nil, map[string]string{"RANDGEN_COUNT": "x"}, io.Discard); err == nil {
		t.Error("bad RANDGEN_COUNT accepted")
	}
}

func TestRunReproducible(t *testing.T) {
	for name := range kinds {
		t.Run(name, func(t *testing.T) {
			cfg := mustConfig(t, map[string]string{}, "-type", name, "-seed", "again", "-count", "20")
			a, b := output(t, cfg), output(t, cfg)
			if a != b {
				t.Errorf("runs differ:\n%s\n%s", a, b)
			}
			if lines := strings.Count(a, "\n"); lines != 20 {
				t.Errorf("got %d lines, want 20", lines)
			}
			cfg.Seed = "other"
			if output(t, cfg) == a {
				t.Error("different seeds printed the same values")
			}
		})
	}
}

func TestRunBounded(t *testing.T) {
	cfg := mustConfig(t, map[string]string{}, "-type", "int16", "-min", "-3", "-n", "7", "-count", "200", "-cols", "10")
	out := output(t, cfg)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 10 {
			t.Fatalf("line %q has %d fields", line, len(fields))
		}
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < -3 || v >= 4 {
				t.Fatalf("value %q outside [-3, 4)", f)
			}
		}
	}
}

func TestRunJSON(t *testing.T) {
	cfg := mustConfig(t, map[string]string{"RANDGEN_JSON": "true"}, "-type", "decimal", "-n", "100", "-count", "5", "-source", "hash")
	var got struct {
		Type   string
		Source string
		Seeded bool
		N      string
		Values []string
	}
	if err := json.Unmarshal([]byte(output(t, cfg)), &got); err != nil {
		t.Fatal(err)
	}
	if got.Type != "decimal" || got.Source != "hash" || !got.Seeded || got.N != "100" {
		t.Errorf("header = %+v", got)
	}
	if len(got.Values) != 5 {
		t.Fatalf("got %d values, want 5", len(got.Values))
	}
	for _, s := range got.Values {
		d, err := parseDecimal(s)
		if err != nil {
			t.Fatal(err)
		}
		if d.Sign() < 0 || d.Cmp(decimal.New(100, 0)) >= 0 {
			t.Errorf("value %s outside [0, 100)", s)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"-type", "uint8", "-n", "0"}, rand.ErrInvalidRange},
		{[]string{"-type", "int8", "-min", "100", "-n", "100"}, rand.ErrInvalidRange},
		{[]string{"-type", "value", "-n", "4"}, rand.ErrUnsupportedType},
	}
	for _, tt := range tests {
		cfg := mustConfig(t, map[string]string{}, tt.args...)
		if err := run(cfg, io.Discard, logr.Discard()); !errors.Is(err, tt.want) {
			t.Errorf("run(%q) = %v, want %v", tt.args, err, tt.want)
		}
	}
	cfg := mustConfig(t, map[string]string{}, "-type", "uint8", "-n", "300")
	if err := run(cfg, io.Discard, logr.Discard()); err == nil {
		t.Error("out-of-range -n accepted")
	}
}

func TestLoggerFormats(t *testing.T) {
	for _, format := range logFormats {
		t.Run(format, func(t *testing.T) {
			var logs bytes.Buffer
			cfg := mustConfig(t, map[string]string{}, "-log-format", format, "-v", "1", "-count", "1")
			if err := run(cfg, io.Discard, newLogger(cfg, &logs)); err != nil {
				t.Fatal(err)
			}
			for _, msg := range []string{"generator created", "drawn"} {
				if !strings.Contains(logs.String(), msg) {
					t.Errorf("log output lacks %q:\n%s", msg, logs.String())
				}
			}

			logs.Reset()
			cfg.Verbose = 0
			if err := run(cfg, io.Discard, newLogger(cfg, &logs)); err != nil {
				t.Fatal(err)
			}
			if logs.Len() != 0 {
				t.Errorf("quiet run logged:\n%s", logs.String())
			}
		})
	}
}
