// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/samber/lo"
	"golang.org/x/xerrors"
)

// config holds the settings for one run. Environment variables supply the
// defaults and command-line flags override them.
type config struct {
	Source     string `env:"RANDGEN_SOURCE" envDefault:"shift"`
	SourceSeed uint64 `env:"RANDGEN_SOURCE_SEED" envDefault:"1"`
	Seed       string `env:"RANDGEN_SEED"`
	Unseeded   bool   `env:"RANDGEN_UNSEEDED"`
	Type       string `env:"RANDGEN_TYPE" envDefault:"uint64"`
	Count      int    `env:"RANDGEN_COUNT" envDefault:"10"`
	Min        string `env:"RANDGEN_MIN"`
	N          string `env:"RANDGEN_N"`
	Cols       int    `env:"RANDGEN_COLS"`
	JSON       bool   `env:"RANDGEN_JSON"`
	LogFormat  string `env:"RANDGEN_LOG_FORMAT" envDefault:"console"`
	Verbose    int    `env:"RANDGEN_VERBOSE"`
}

var (
	sourceNames = []string{"shift", "pcg", "hash", "platform"}
	logFormats  = []string{"console", "json", "logrus", "zap", "logfmt"}
)

// parseConfig reads environ, then args. Output from the flag package goes
// to errOut.
func parseConfig(args []string, environ map[string]string, errOut io.Writer) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, xerrors.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("randgen", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		io.WriteString(errOut, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Source, "source", cfg.Source, "entropy source: shift, pcg, hash or platform")
	fs.Uint64Var(&cfg.SourceSeed, "source-seed", cfg.SourceSeed, "seed of a deterministic source")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "generator seed text")
	fs.BoolVar(&cfg.Unseeded, "unseeded", cfg.Unseeded, "key the generator from the source alone")
	fs.StringVar(&cfg.Type, "type", cfg.Type, "element type: "+kindList())
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of values")
	fs.StringVar(&cfg.Min, "min", cfg.Min, "lower bound (requires -n)")
	fs.StringVar(&cfg.N, "n", cfg.N, "width of the range [min, min+n)")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "values per output line")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "write a JSON document")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console, json, logrus, zap or logfmt")
	fs.IntVar(&cfg.Verbose, "v", cfg.Verbose, "log verbosity")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 0 {
		return cfg, xerrors.Errorf("unexpected arguments: %q", fs.Args())
	}
	return cfg, cfg.validate()
}

func (cfg config) validate() error {
	switch {
	case !lo.Contains(sourceNames, cfg.Source):
		return xerrors.Errorf("unknown source %q", cfg.Source)
	case !lo.Contains(logFormats, cfg.LogFormat):
		return xerrors.Errorf("unknown log format %q", cfg.LogFormat)
	case cfg.Count < 0:
		return xerrors.Errorf("negative count %d", cfg.Count)
	case cfg.Cols < 0:
		return xerrors.Errorf("negative column count %d", cfg.Cols)
	case cfg.Min != "" && cfg.N == "":
		return xerrors.New("-min requires -n")
	}
	if _, ok := kinds[cfg.Type]; !ok {
		return xerrors.Errorf("unknown type %q", cfg.Type)
	}
	return nil
}
