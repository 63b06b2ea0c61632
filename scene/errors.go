// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "fmt"

// ParseError is returned when the payload is not a JSON object of
// the expected shape. No graph is produced.
type ParseError struct {
	// Err is the underlying decoding error.
	Err error
}

func (e *ParseError) Error() string {
	return "scene: parse error: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// DuplicateNodeError is returned when two node records of the
// selected list share the same id.
type DuplicateNodeError struct {
	ID int
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("scene: duplicate node id %d", e.ID)
}

// MalformedNodeError is returned when a node record has a position,
// extent or rotation of the wrong length, a non-finite value, or a
// negative extent.
type MalformedNodeError struct {
	ID int

	// Field is the JSON field at fault.
	Field string

	// Reason describes what is wrong with the field.
	Reason string
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("scene: node %d: malformed %s: %s", e.ID, e.Field, e.Reason)
}

// DropReason is why an interaction did not become an edge.
type DropReason int32

const (
	// DropUnresolved is an interaction whose target id is not a node
	// of the selected list.
	DropUnresolved DropReason = iota

	// DropSelfLoop is an interaction targeting its own source node.
	DropSelfLoop

	// DropDegenerate is an interaction between two nodes at the same
	// position, which has no direction.
	DropDegenerate
)

var dropNames = [...]string{DropUnresolved: "unresolved", DropSelfLoop: "self-loop", DropDegenerate: "degenerate"}

func (r DropReason) String() string {
	if r < 0 || int(r) >= len(dropNames) {
		return fmt.Sprintf("DropReason(%d)", int32(r))
	}
	return dropNames[r]
}

// DroppedEdge records an interaction that was omitted from the graph.
// It is not an error: the build continues without the edge.
type DroppedEdge struct {
	Source      int
	Target      int
	Description string
	Reason      DropReason
}

func (d DroppedEdge) String() string {
	return fmt.Sprintf("%d -> %d %q: %v", d.Source, d.Target, d.Description, d.Reason)
}
