// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"fmt"
	"image/color"
	"time"

	"cogentcore.org/sgview/scene"
)

// Recorder is a [Presenter] that keeps the visibility state a real
// presenter would have, and a log of the calls it received.
type Recorder struct {
	Style Style

	// Graph is the graph currently shown, or nil.
	Graph *scene.Graph

	// Labels is the visibility of each node label.
	Labels map[int]bool

	// Edges is the visibility of each edge.
	Edges map[scene.EdgeKey]bool

	// Faces is the current box face color of each node.
	Faces map[int]color.NRGBA

	// Calls is a log of the calls received, for example "show 3/2",
	// "on 1", "off 1" and "clear".
	Calls []string
}

// NewRecorder returns a new [Recorder] with the given style.
func NewRecorder(st Style) *Recorder {
	return &Recorder{Style: st}
}

func (rc *Recorder) Show(g *scene.Graph) {
	rc.Graph = g
	rc.Labels = make(map[int]bool, g.NumNodes())
	rc.Edges = make(map[scene.EdgeKey]bool, g.NumEdges())
	rc.Faces = make(map[int]color.NRGBA, g.NumNodes())
	for id, nd := range g.Nodes() {
		rc.Labels[id] = false
		rc.Faces[id] = rc.Style.FaceColor(nd, false)
	}
	for k := range g.Edges() {
		rc.Edges[k] = false
	}
	rc.Calls = append(rc.Calls, fmt.Sprintf("show %d/%d", g.NumNodes(), g.NumEdges()))
}

func (rc *Recorder) SetNodeActive(nd *scene.Node, edges []*scene.Edge, on bool) {
	rc.Labels[nd.ID] = on
	rc.Faces[nd.ID] = rc.Style.FaceColor(nd, on)
	for _, ed := range edges {
		rc.Edges[ed.Key] = on
	}
	if on {
		rc.Calls = append(rc.Calls, fmt.Sprintf("on %d", nd.ID))
	} else {
		rc.Calls = append(rc.Calls, fmt.Sprintf("off %d", nd.ID))
	}
}

func (rc *Recorder) Clear() {
	rc.Graph = nil
	rc.Labels = nil
	rc.Edges = nil
	rc.Faces = nil
	rc.Calls = append(rc.Calls, "clear")
}

// VisibleEdges returns the keys of the visible edges in graph order.
func (rc *Recorder) VisibleEdges() []scene.EdgeKey {
	var ks []scene.EdgeKey
	for k := range rc.Graph.Edges() {
		if rc.Edges[k] {
			ks = append(ks, k)
		}
	}
	return ks
}

// VisibleLabels returns the ids of the nodes with a visible label in graph order.
func (rc *Recorder) VisibleLabels() []int {
	var ids []int
	for id := range rc.Graph.Nodes() {
		if rc.Labels[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Arrows returns the arrow markers of the visible edges in graph order,
// the given time after they became visible.
func (rc *Recorder) Arrows(elapsed time.Duration) []Arrow {
	var as []Arrow
	for k, ed := range rc.Graph.Edges() {
		if rc.Edges[k] {
			as = append(as, rc.Style.Arrow(ed, elapsed))
		}
	}
	return as
}
