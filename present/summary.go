// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"fmt"
	"image/color"
	"io"

	"cogentcore.org/sgview/math32"
	"cogentcore.org/sgview/scene"
	"gopkg.in/yaml.v3"
)

// Summary is a plain description of a built graph, in viewer frame
// coordinates, suitable for encoding.
type Summary struct {
	Source  string        `yaml:"source"`
	Nodes   []NodeSummary `yaml:"nodes"`
	Edges   []EdgeSummary `yaml:"edges"`
	Dropped []string      `yaml:"dropped,omitempty"`
}

// NodeSummary describes one node.
type NodeSummary struct {
	ID     int        `yaml:"id"`
	Name   string     `yaml:"name"`
	Pos    [3]float32 `yaml:"pos,flow"`
	Extent [3]float32 `yaml:"extent,flow"`
	Rot    [4]float32 `yaml:"rot,flow"`
	Color  string     `yaml:"color"`
	Label  [3]float32 `yaml:"label,flow"`
	Out    []string   `yaml:"out,omitempty,flow"`
	In     []string   `yaml:"in,omitempty,flow"`
}

// EdgeSummary describes one edge.
type EdgeSummary struct {
	Key     string     `yaml:"key"`
	Label   string     `yaml:"label"`
	From    string     `yaml:"from"`
	To      string     `yaml:"to"`
	LabelAt [3]float32 `yaml:"label_at,flow"`
	Arrow   [4]float32 `yaml:"arrow,flow"`
}

// Summarize returns the [Summary] of the given graph.
func Summarize(g *scene.Graph) *Summary {
	sm := &Summary{Source: g.Source.String()}
	for _, nd := range g.Nodes() {
		ps := nd.Pose
		sm.Nodes = append(sm.Nodes, NodeSummary{
			ID:     nd.ID,
			Name:   nd.Name,
			Pos:    vec3(ps.Pos),
			Extent: vec3(ps.Extent),
			Rot:    quat(ps.Rot),
			Color:  hexRGBA(nd.Color),
			Label:  vec3(nd.LabelAnchor()),
			Out:    keyStrings(nd.Out),
			In:     keyStrings(nd.In),
		})
	}
	for _, ed := range g.Edges() {
		sm.Edges = append(sm.Edges, EdgeSummary{
			Key:     ed.Key.String(),
			Label:   ed.Label,
			From:    hexNRGBA(ed.ColorAt(0)),
			To:      hexNRGBA(ed.ColorAt(1)),
			LabelAt: vec3(ed.LabelAnchor()),
			Arrow:   quat(ed.ArrowRotation()),
		})
	}
	for _, d := range g.Dropped {
		sm.Dropped = append(sm.Dropped, d.String())
	}
	return sm
}

// WriteYAML writes the [Summary] of the given graph to w as YAML.
func WriteYAML(w io.Writer, g *scene.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Summarize(g)); err != nil {
		return err
	}
	return enc.Close()
}

func keyStrings(ks []scene.EdgeKey) []string {
	if len(ks) == 0 {
		return nil
	}
	ss := make([]string, len(ks))
	for i, k := range ks {
		ss[i] = k.String()
	}
	return ss
}

func hexRGBA(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func hexNRGBA(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func vec3(v math32.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func quat(q math32.Quat) [4]float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}
}
