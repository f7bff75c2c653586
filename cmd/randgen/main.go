// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Randgen prints values drawn from a seeded generator. Two runs with the
// same deterministic source, source seed and seed print the same values.
//
// Usage:
//
//	randgen [-source shift|pcg|hash|platform] [-source-seed n] [-seed text]
//	        [-type t] [-count k] [-n width [-min lower]] [-cols c] [-json]
//
// Every flag has an environment default named RANDGEN_ followed by the flag
// name in upper case, with '-' written as '_'.
package main

import (
	"encoding/binary"
	"flag"
	"io"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	kitlog "github.com/go-kit/kit/log"
	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"

	"github.com/itsmanjeet/xrand/internal/logsink"
	"github.com/itsmanjeet/xrand/rand"
	"github.com/itsmanjeet/xrand/source"
)

const usage = "Usage: randgen [flags]\n"

func main() {
	log.SetFlags(0)
	log.SetPrefix("randgen: ")

	cfg, err := parseConfig(os.Args[1:], env.ToMap(os.Environ()), os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		log.Print(err)
		os.Exit(2)
	}
	if err := run(cfg, os.Stdout, newLogger(cfg, os.Stderr)); err != nil {
		log.Fatal(err)
	}
}

// run draws cfg.Count values and writes them to w.
func run(cfg config, w io.Writer, logger logr.Logger) error {
	src, err := newSource(cfg)
	if err != nil {
		return err
	}
	g, err := newGenerator(cfg, src, logger)
	if err != nil {
		return err
	}
	open, ok := kinds[cfg.Type]
	if !ok {
		return xerrors.Errorf("unknown type %q: %w", cfg.Type, rand.ErrUnsupportedType)
	}
	pull, err := open(g, cfg.Min, cfg.N)
	if err != nil {
		return err
	}
	vals := pull(cfg.Count)
	logger.V(1).Info("drawn", "type", cfg.Type, "count", len(vals))
	if cfg.JSON {
		return writeJSON(w, cfg, vals)
	}
	return writeText(w, vals, cfg.Cols)
}

func newSource(cfg config) (rand.Source, error) {
	switch cfg.Source {
	case "shift":
		return source.NewShift(cfg.SourceSeed), nil
	case "pcg":
		return source.NewPCG(cfg.SourceSeed), nil
	case "hash":
		return source.NewHash(binary.LittleEndian.AppendUint64(nil, cfg.SourceSeed)), nil
	case "platform":
		return source.NewPlatform(), nil
	}
	return nil, xerrors.Errorf("unknown source %q", cfg.Source)
}

func newGenerator(cfg config, src rand.Source, logger logr.Logger) (*rand.Generator, error) {
	opt := rand.WithLogger(logger)
	if cfg.Unseeded {
		return rand.New(src, opt)
	}
	return rand.NewFromText(src, cfg.Seed, opt)
}

// newLogger returns a logger writing to w in cfg.LogFormat. Generator
// events are logged at verbosity 1, so they appear only with -v.
func newLogger(cfg config, w io.Writer) logr.Logger {
	var logger logr.Logger
	switch cfg.LogFormat {
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		if cfg.Verbose > 0 {
			l.SetLevel(logrus.DebugLevel)
		}
		logger = logsink.NewLogrus(l)
	case "zap":
		level := zapcore.InfoLevel
		if cfg.Verbose > 0 {
			level = zapcore.DebugLevel
		}
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		logger = logsink.NewZap(zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)))
	case "logfmt":
		l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
		l = kitlog.With(l, "ts", kitlog.DefaultTimestampUTC)
		logger = logsink.NewGoKit(l, cfg.Verbose > 0)
	default:
		var out io.Writer = zerolog.ConsoleWriter{Out: w}
		if cfg.LogFormat == "json" {
			out = w
		}
		level := zerolog.InfoLevel
		if cfg.Verbose > 0 {
			level = zerolog.DebugLevel
		}
		logger = logsink.NewZerolog(zerolog.New(out).With().Timestamp().Logger().Level(level))
	}
	return logger.WithName("randgen")
}
