// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// report is the document written by -json.
type report struct {
	Type   string        `json:"type"`
	Source string        `json:"source"`
	Seeded bool          `json:"seeded"`
	Min    string        `json:"min,omitempty"`
	N      string        `json:"n,omitempty"`
	Values []interface{} `json:"values"`
}

func writeJSON(w io.Writer, cfg config, vals []interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(report{
		Type:   cfg.Type,
		Source: cfg.Source,
		Seeded: !cfg.Unseeded,
		Min:    cfg.Min,
		N:      cfg.N,
		Values: vals,
	})
}

// writeText prints cols values per line, or one per line if cols is 0.
func writeText(w io.Writer, vals []interface{}, cols int) error {
	if cols == 0 {
		cols = 1
	}
	for _, row := range lo.Chunk(vals, cols) {
		fields := lo.Map(row, func(v interface{}, _ int) string { return fmt.Sprint(v) })
		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return nil
}
