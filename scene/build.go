// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/sgview/colors"
	"cogentcore.org/sgview/math32"
)

// Option configures a [Build].
type Option func(bo *buildOptions)

type buildOptions struct {
	edgeAlpha float32
}

// WithEdgeAlpha sets the constant alpha of edge gradients.
// The default is [colors.DefaultEdgeAlpha].
func WithEdgeAlpha(alpha float32) Option {
	return func(bo *buildOptions) {
		bo.edgeAlpha = alpha
	}
}

// Build parses the given payload text and builds the graph of the
// node list selected by src. It either returns a complete graph or
// an error and no graph: a [*ParseError], [*DuplicateNodeError] or
// [*MalformedNodeError]. An absent or empty node list is not an
// error and yields an empty graph.
//
// Interactions that cannot become edges are recorded in
// [Graph.Dropped] rather than failing the build.
func Build(text []byte, src Source, opts ...Option) (*Graph, error) {
	pl, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return BuildPayload(pl, src, opts...)
}

// BuildPayload builds the graph of an already decoded payload.
// See [Build].
func BuildPayload(pl *Payload, src Source, opts ...Option) (*Graph, error) {
	bo := buildOptions{edgeAlpha: colors.DefaultEdgeAlpha}
	for _, opt := range opts {
		opt(&bo)
	}
	recs := pl.Nodes(src)
	g := &Graph{Source: src}

	// all nodes first: interactions may refer to nodes listed later
	for i := range recs {
		rec := &recs[i]
		if rec.ID == nil {
			return nil, &ParseError{Err: fmt.Errorf("%s[%d] has no id", src.Key(), i)}
		}
		for j, ir := range rec.Interactions {
			if ir.Target == nil {
				return nil, &ParseError{Err: fmt.Errorf("%s[%d].interactions[%d] has no target_object_idx", src.Key(), i, j)}
			}
		}
		nd, err := newNode(rec)
		if err != nil {
			return nil, err
		}
		if err := g.nodes.Add(nd.ID, nd); err != nil {
			return nil, &DuplicateNodeError{ID: nd.ID}
		}
	}

	seqs := map[[2]int]int{}
	for i := range recs {
		rec := &recs[i]
		srcID := *rec.ID
		from := g.nodes.At(srcID)
		for _, ir := range rec.Interactions {
			tgtID := *ir.Target
			drop := DroppedEdge{Source: srcID, Target: tgtID, Description: ir.Description}
			to, ok := g.nodes.AtTry(tgtID)
			switch {
			case !ok:
				drop.Reason = DropUnresolved
			case to == from:
				drop.Reason = DropSelfLoop
			case to.Pose.Pos.Sub(from.Pose.Pos).IsZero():
				drop.Reason = DropDegenerate
			default:
				pair := [2]int{srcID, tgtID}
				key := EdgeKey{Source: srcID, Target: tgtID, Seq: seqs[pair]}
				seqs[pair]++
				ed := &Edge{
					Key:      key,
					Label:    ir.Description,
					From:     from.Pose,
					To:       to.Pose,
					Gradient: colors.NewGradient(from.Color, to.Color, bo.edgeAlpha),
				}
				g.edges.Add(key, ed)
				from.Out = append(from.Out, key)
				to.In = append(to.In, key)
				continue
			}
			g.Dropped = append(g.Dropped, drop)
		}
	}
	return g, nil
}

// newNode validates a record and returns its node in the viewer frame.
func newNode(rec *NodeRecord) (*Node, error) {
	id := *rec.ID
	pos, err := vector3(id, "position", rec.Position)
	if err != nil {
		return nil, err
	}
	ext, err := vector3(id, "bbox_extent", rec.Extent)
	if err != nil {
		return nil, err
	}
	if ext.CheckNonNegative() != nil {
		return nil, &MalformedNodeError{ID: id, Field: "bbox_extent", Reason: fmt.Sprintf("negative component in %v", ext)}
	}
	var rot []float32
	switch len(rec.Rotation) {
	case 0:
	case 4:
		rot = float32s(rec.Rotation)
		q, _ := math32.QuatFromSlice(rot)
		if !q.IsFinite() {
			return nil, &MalformedNodeError{ID: id, Field: "rotation", Reason: fmt.Sprintf("non-finite value in %v", rec.Rotation)}
		}
	default:
		return nil, &MalformedNodeError{ID: id, Field: "rotation", Reason: fmt.Sprintf("need 0 or 4 values, got %d", len(rec.Rotation))}
	}
	return &Node{
		ID:    id,
		Name:  rec.Name,
		Pose:  Transform(pos, ext, rot),
		Color: colors.ForNode(id),
	}, nil
}

// vector3 converts the values of a 3 vector field, failing unless
// there are exactly three values, all finite as float32.
func vector3(id int, field string, vals []float64) (math32.Vector3, error) {
	v, err := math32.Vector3FromSlice(float32s(vals))
	if err != nil {
		return v, &MalformedNodeError{ID: id, Field: field, Reason: fmt.Sprintf("need 3 values, got %d", len(vals))}
	}
	if !v.IsFinite() {
		return v, &MalformedNodeError{ID: id, Field: field, Reason: fmt.Sprintf("non-finite value in %v", vals)}
	}
	return v, nil
}

// float32s converts the values to float32. Values outside the
// float32 range become infinite.
func float32s(vals []float64) []float32 {
	fs := make([]float32, len(vals))
	for i, v := range vals {
		fs[i] = float32(v)
	}
	return fs
}
