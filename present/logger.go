// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"log/slog"

	"cogentcore.org/sgview/scene"
)

// Logger is a [Presenter] that reports what would be drawn through slog.
type Logger struct {
	Style Style

	// Log is the logger to write to; [slog.Default] if nil.
	Log *slog.Logger
}

func (lg *Logger) logger() *slog.Logger {
	if lg.Log == nil {
		return slog.Default()
	}
	return lg.Log
}

func (lg *Logger) Show(g *scene.Graph) {
	l := lg.logger()
	l.Info("show scene graph", "source", g.Source, "nodes", g.NumNodes(), "edges", g.NumEdges(), "dropped", len(g.Dropped))
	for _, nd := range g.Nodes() {
		l.Debug("node", "id", nd.ID, "name", nd.Name, "pos", nd.Pose.Pos, "extent", nd.Pose.Extent, "rot", nd.Pose.Rot, "face", hexNRGBA(lg.Style.FaceColor(nd, false)), "label", nd.LabelAnchor())
	}
	for _, ed := range g.Edges() {
		ar := lg.Style.Arrow(ed, 0)
		l.Debug("edge", "key", ed.Key, "label", ed.Label, "label_at", ed.LabelAnchor(), "gradient", ed.Gradient, "width", lg.Style.LineWidth, "arrow_rot", ar.Rot, "arrow_scale", ar.Scale, "arrow_period", lg.Style.ArrowPeriod)
	}
	for _, d := range g.Dropped {
		l.Debug("dropped interaction", "source", d.Source, "target", d.Target, "reason", d.Reason)
	}
}

func (lg *Logger) SetNodeActive(nd *scene.Node, edges []*scene.Edge, on bool) {
	labels := make([]string, len(edges))
	for i, ed := range edges {
		labels[i] = ed.Key.String() + " " + ed.Label
	}
	lg.logger().Info("highlight", "node", nd.ID, "name", nd.Name, "on", on, "edges", labels)
}

func (lg *Logger) Clear() {
	lg.logger().Debug("clear scene graph")
}
