// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/sgview/highlight"
)

// parseEvent parses one ray sample: a node id for a hit,
// or "-" (or an empty string) for no hit.
func parseEvent(s string) (highlight.Event, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return highlight.NoHit(), nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return highlight.Event{}, fmt.Errorf("bad ray sample %q: want a node id or -", s)
	}
	return highlight.HitNode(id), nil
}

// parseScript parses a comma or space separated list of ray samples.
func parseScript(script string) ([]highlight.Event, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	evs := make([]highlight.Event, 0, len(fields))
	for _, f := range fields {
		ev, err := parseEvent(f)
		if err != nil {
			return nil, err
		}
		evs = append(evs, ev)
	}
	return evs, nil
}
