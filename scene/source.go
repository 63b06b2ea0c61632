// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strings"
)

// Source selects which of the two node lists of a payload is built.
type Source int32

const (
	// GroundTruth selects the annotated gt_nodes list.
	GroundTruth Source = iota

	// Detected selects the detected_nodes list produced by perception.
	Detected
)

var sourceNames = [...]string{GroundTruth: "GroundTruth", Detected: "Detected"}

// String returns the name of the source.
func (s Source) String() string {
	if s < 0 || int(s) >= len(sourceNames) {
		return fmt.Sprintf("Source(%d)", int32(s))
	}
	return sourceNames[s]
}

// Key returns the JSON field name of the node list for this source.
func (s Source) Key() string {
	if s == Detected {
		return "detected_nodes"
	}
	return "gt_nodes"
}

// SetString sets the source from its name, case insensitively.
// "gt" and "detected" are also accepted.
func (s *Source) SetString(str string) error {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "groundtruth", "gt", "gt_nodes":
		*s = GroundTruth
	case "detected", "det", "detected_nodes":
		*s = Detected
	default:
		return fmt.Errorf("scene.Source: unknown source %q", str)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Source) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}
