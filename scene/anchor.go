// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"time"

	"cogentcore.org/sgview/math32"
)

const (
	// NodeLabelOffset is the height of a node label above the node center.
	NodeLabelOffset = 0.5

	// EdgeLabelOffset is the height of an edge label above the edge midpoint.
	EdgeLabelOffset = 0.1
)

// LabelAnchor returns where the node name label is placed.
func (nd *Node) LabelAnchor() math32.Vector3 {
	return nd.Pose.Pos.Add(math32.Up().MulScalar(NodeLabelOffset))
}

// Midpoint returns the point halfway between the endpoints.
func (ed *Edge) Midpoint() math32.Vector3 {
	return ed.PointAt(0.5)
}

// PointAt returns the point at parameter t along the edge.
func (ed *Edge) PointAt(t float32) math32.Vector3 {
	return ed.From.Pos.Lerp(ed.To.Pos, t)
}

// LabelAnchor returns where the edge description label is placed.
func (ed *Edge) LabelAnchor() math32.Vector3 {
	return ed.Midpoint().Add(math32.Up().MulScalar(EdgeLabelOffset))
}

// ArrowRotation returns the orientation of the arrow marker that
// travels along the edge, which points its +Z axis at the target.
func (ed *Edge) ArrowRotation() math32.Quat {
	return math32.LookRotation(ed.Vector(), math32.Up())
}

// ArrowParam returns the position parameter in [0, 1) of the arrow
// marker after the given elapsed time, for an arrow that travels from
// source to target once per period and then starts over.
// A non-positive period keeps the arrow at the source.
func ArrowParam(elapsed, period time.Duration) float32 {
	if period <= 0 {
		return 0
	}
	r := elapsed % period
	if r < 0 {
		r += period
	}
	return float32(float64(r) / float64(period))
}

// ArrowPosition returns the position of the arrow marker along the
// edge after the given elapsed time. See [ArrowParam].
func (ed *Edge) ArrowPosition(elapsed, period time.Duration) math32.Vector3 {
	return ed.PointAt(ArrowParam(elapsed, period))
}
