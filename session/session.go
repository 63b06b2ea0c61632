// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session ties a built scene graph, its highlight state and a
// presenter together for the lifetime of a viewer session.
//
// A Session is driven from a single control loop: Load and Tick must
// not be called concurrently.
package session

import (
	"log/slog"

	"cogentcore.org/sgview/config"
	"cogentcore.org/sgview/highlight"
	"cogentcore.org/sgview/present"
	"cogentcore.org/sgview/scene"
)

// Session owns the current graph and highlight state.
type Session struct {
	// Config is the configuration the session builds graphs with.
	Config *config.Config

	// Presenter draws the graph.
	Presenter present.Presenter

	graph   *scene.Graph
	machine highlight.Machine
	loads   int
}

// New returns a new session with no graph.
func New(cfg *config.Config, p present.Presenter) *Session {
	return &Session{Config: cfg, Presenter: p}
}

// Graph returns the current graph, or nil before the first
// successful [Session.Load].
func (ss *Session) Graph() *scene.Graph {
	return ss.graph
}

// Active returns the id of the active node, and false if none.
func (ss *Session) Active() (int, bool) {
	return ss.machine.Active()
}

// Loads returns the number of successful loads.
func (ss *Session) Loads() int {
	return ss.loads
}

// Load builds a graph from the given payload text and, if that
// succeeds, replaces the current graph with it: the active node is
// exited, the old visuals are cleared and the new graph is shown.
// If the build fails, the current graph and highlight state are
// left untouched and the error is returned.
func (ss *Session) Load(text []byte) (*scene.Graph, error) {
	g, err := scene.Build(text, ss.Config.Source, ss.Config.BuildOptions()...)
	if err != nil {
		return nil, err
	}
	if ss.graph != nil {
		present.Apply(ss.Presenter, ss.graph, ss.machine.Reset())
		ss.Presenter.Clear()
	}
	ss.graph = g
	ss.loads++
	ss.Presenter.Show(g)
	slog.Info("loaded scene graph", "source", g.Source, "nodes", g.NumNodes(), "edges", g.NumEdges(), "dropped", len(g.Dropped))
	for _, d := range g.Dropped {
		slog.Debug("dropped interaction", "edge", d.String())
	}
	return g, nil
}

// Tick applies one ray sample. A hit on a node that is not in the
// current graph, which can happen across a reload, counts as no hit.
// The deltas applied to the presenter are returned.
func (ss *Session) Tick(ev highlight.Event) []highlight.Delta {
	if ev.Hit && !ss.graph.HasNode(ev.Node) {
		ev = highlight.NoHit()
	}
	ds := ss.machine.Step(ev)
	if len(ds) > 0 {
		present.Apply(ss.Presenter, ss.graph, ds)
	}
	return ds
}
