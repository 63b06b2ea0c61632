// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package present defines the boundary between the scene graph core
// and whatever draws it, and provides presenters that record or log
// what would be drawn.
package present

import (
	"image/color"
	"time"

	"cogentcore.org/sgview/colors"
	"cogentcore.org/sgview/highlight"
	"cogentcore.org/sgview/math32"
	"cogentcore.org/sgview/scene"
)

// Presenter creates and updates the visuals of a scene graph.
// All methods are called from the control loop that drives the
// [highlight.Machine].
type Presenter interface {
	// Show creates the visuals for a newly built graph. Node boxes are
	// visible; labels and edges start hidden.
	Show(g *scene.Graph)

	// SetNodeActive shows or hides the label of the given node and all
	// of the given incident edges, and applies or removes the highlight tint.
	SetNodeActive(nd *scene.Node, edges []*scene.Edge, on bool)

	// Clear discards all visuals of the current graph.
	Clear()
}

// Apply applies the given highlight deltas for graph g to p, in order.
// Deltas for nodes not in g are skipped.
func Apply(p Presenter, g *scene.Graph, ds []highlight.Delta) {
	for _, d := range ds {
		nd, ok := g.Node(d.Node)
		if !ok {
			continue
		}
		p.SetNodeActive(nd, g.IncidentEdges(d.Node), d.Visible())
	}
}

// Style holds the drawing constants shared by presenters.
type Style struct {
	// FaceAlpha is the alpha of the box faces of an idle node.
	FaceAlpha float32

	// HighlightAlpha is the alpha of the box faces of the active node.
	HighlightAlpha float32

	// LineWidth is the width of edge lines.
	LineWidth float32

	// ArrowScale is the scale of the arrow marker that travels along edges.
	ArrowScale float32

	// ArrowPeriod is the time the arrow marker takes to travel an edge.
	ArrowPeriod time.Duration
}

// DefaultStyle returns the default [Style].
func DefaultStyle() Style {
	return Style{
		FaceAlpha:      0.2,
		HighlightAlpha: 0.4,
		LineWidth:      0.02,
		ArrowScale:     0.5,
		ArrowPeriod:    2 * time.Second,
	}
}

// FaceColor returns the color of the box faces of the given node.
func (st *Style) FaceColor(nd *scene.Node, active bool) color.NRGBA {
	if active {
		return colors.WithAlpha(colors.Highlight, st.HighlightAlpha)
	}
	return colors.WithAlpha(nd.Color, st.FaceAlpha)
}

// WireColor returns the color of the box wireframe of the given node.
func (st *Style) WireColor(nd *scene.Node, active bool) color.RGBA {
	if active {
		return colors.Highlight
	}
	return nd.Color
}

// Arrow is the placement of the arrow marker of one edge.
type Arrow struct {
	Key   scene.EdgeKey
	Pos   math32.Vector3
	Rot   math32.Quat
	Scale float32
}

// Arrow returns the placement of the arrow marker of the given edge
// after the given time since the edge became visible.
func (st *Style) Arrow(ed *scene.Edge, elapsed time.Duration) Arrow {
	return Arrow{
		Key:   ed.Key,
		Pos:   ed.ArrowPosition(elapsed, st.ArrowPeriod),
		Rot:   ed.ArrowRotation(),
		Scale: st.ArrowScale,
	}
}
