// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlight tracks which node the pointing ray is locked onto
// and turns the per-tick ray samples into enter and exit deltas.
//
// A [Machine] is driven synchronously from a single control loop,
// one [Event] per tick. It is not safe for concurrent use.
package highlight

import "fmt"

// Event is the classified result of one ray sample:
// either a hit on a node, or no hit.
type Event struct {
	// Node is the id of the hit node. It is meaningless when Hit is false.
	Node int

	// Hit is whether the ray is over a node.
	Hit bool
}

// HitNode returns the event for a ray over the node with the given id.
func HitNode(id int) Event {
	return Event{Node: id, Hit: true}
}

// NoHit returns the event for a ray that is not over any node.
func NoHit() Event {
	return Event{}
}

func (ev Event) String() string {
	if !ev.Hit {
		return "NoHit"
	}
	return fmt.Sprintf("HitNode(%d)", ev.Node)
}

// Kinds of [Delta].
const (
	// Enter shows the node label and all of its incident edges.
	Enter Kind = iota

	// Exit hides the node label and all of its incident edges.
	Exit
)

// Kind is whether a [Delta] shows or hides.
type Kind int32

func (k Kind) String() string {
	switch k {
	case Enter:
		return "enter"
	case Exit:
		return "exit"
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// Delta is a visibility change for one node: its label plus its full
// outgoing and incoming edge lists.
type Delta struct {
	Kind Kind
	Node int
}

// Visible returns whether the delta makes the node's label and edges visible.
func (d Delta) Visible() bool {
	return d.Kind == Enter
}

func (d Delta) String() string {
	return fmt.Sprintf("%v(%d)", d.Kind, d.Node)
}

// Machine is the highlight state: idle, or active on exactly one node.
// The zero value is idle and ready to use.
type Machine struct {
	active int
	has    bool
}

// Active returns the id of the active node, and false if idle.
func (m *Machine) Active() (int, bool) {
	return m.active, m.has
}

// IsActive returns whether the given node is the active node.
func (m *Machine) IsActive(id int) bool {
	return m.has && m.active == id
}

// Step applies one ray sample and returns the deltas to apply, in order:
//
//	idle      + HitNode(b)      -> enter(b)
//	active(a) + HitNode(a)      -> nothing
//	active(a) + HitNode(b), b≠a -> exit(a), enter(b)
//	active(a) + NoHit           -> exit(a)
//	idle      + NoHit           -> nothing
//
// When moving between nodes the exit always precedes the enter, so the
// previous node is fully hidden before the new one becomes active.
func (m *Machine) Step(ev Event) []Delta {
	switch {
	case ev.Hit && m.IsActive(ev.Node):
		return nil
	case ev.Hit:
		ds := m.Reset()
		m.active, m.has = ev.Node, true
		return append(ds, Delta{Kind: Enter, Node: ev.Node})
	default:
		return m.Reset()
	}
}

// Reset returns the machine to idle, returning the exit delta of the
// previously active node if there was one. It is used when the graph
// is replaced.
func (m *Machine) Reset() []Delta {
	if !m.has {
		return nil
	}
	d := Delta{Kind: Exit, Node: m.active}
	m.active, m.has = 0, false
	return []Delta{d}
}

func (m *Machine) String() string {
	if !m.has {
		return "Idle"
	}
	return fmt.Sprintf("Active(%d)", m.active)
}
