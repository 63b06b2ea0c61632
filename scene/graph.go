// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"
	"iter"
	"slices"

	"cogentcore.org/sgview/base/keylist"
	"cogentcore.org/sgview/colors"
	"cogentcore.org/sgview/math32"
)

// EdgeKey identifies an edge by its ordered pair of endpoint ids.
// Seq distinguishes repeated interactions between the same pair:
// the first is 0, the next 1, and so on.
type EdgeKey struct {
	Source int
	Target int
	Seq    int
}

func (k EdgeKey) String() string {
	if k.Seq == 0 {
		return fmt.Sprintf("%d->%d", k.Source, k.Target)
	}
	return fmt.Sprintf("%d->%d#%d", k.Source, k.Target, k.Seq)
}

// Node is an object of the scene, drawn as an oriented bounding box.
// Nodes are owned by their [Graph] and must not be modified.
type Node struct {
	ID   int
	Name string
	Pose Pose

	// Color is the opaque color of the node, from [colors.ForNode].
	Color color.RGBA

	// Out lists the edges with this node as source, in interaction order.
	Out []EdgeKey

	// In lists the edges with this node as target, in the order
	// they were added.
	In []EdgeKey
}

// Incident returns all edges touching the node: outgoing then incoming.
func (nd *Node) Incident() []EdgeKey {
	inc := make([]EdgeKey, 0, len(nd.Out)+len(nd.In))
	inc = append(inc, nd.Out...)
	return append(inc, nd.In...)
}

func (nd *Node) String() string {
	return fmt.Sprintf("node %d %q", nd.ID, nd.Name)
}

// Edge is a directed, labeled relation between two nodes.
// Edges are owned by their [Graph] and must not be modified.
type Edge struct {
	Key   EdgeKey
	Label string

	// From and To are the poses of the source and target nodes.
	From Pose
	To   Pose

	// Gradient runs from the source node color to the target node color.
	Gradient colors.Gradient
}

// ColorAt returns the edge color at parameter t along the edge,
// where 0 is the source end and 1 the target end.
func (ed *Edge) ColorAt(t float32) color.NRGBA {
	return ed.Gradient.At(t)
}

// Vector returns the vector from the source position to the target position.
func (ed *Edge) Vector() math32.Vector3 {
	return ed.To.Pos.Sub(ed.From.Pos)
}

// Direction returns the unit direction from source to target.
func (ed *Edge) Direction() math32.Vector3 {
	return ed.Vector().Normal()
}

// Length returns the distance between the endpoints.
func (ed *Edge) Length() float32 {
	return ed.Vector().Length()
}

func (ed *Edge) String() string {
	return fmt.Sprintf("edge %v %q", ed.Key, ed.Label)
}

// Graph is a built scene graph. It is immutable once [Build] returns it,
// and is replaced as a whole on reload.
type Graph struct {
	// Source is the node list the graph was built from.
	Source Source

	// Dropped lists interactions that were omitted, in input order.
	Dropped []DroppedEdge

	// nodes holds the nodes keyed by id, in input order.
	nodes keylist.List[int, *Node]

	// edges holds the edges in node order, then interaction order.
	edges keylist.List[EdgeKey, *Edge]
}

// Nodes returns an iterator over the nodes by id, in input order.
func (g *Graph) Nodes() iter.Seq2[int, *Node] {
	if g == nil {
		return func(yield func(int, *Node) bool) {}
	}
	return g.nodes.All()
}

// Edges returns an iterator over the edges by key, in node order
// and then interaction order.
func (g *Graph) Edges() iter.Seq2[EdgeKey, *Edge] {
	if g == nil {
		return func(yield func(EdgeKey, *Edge) bool) {}
	}
	return g.edges.All()
}

// NodeIDs returns the node ids in input order.
func (g *Graph) NodeIDs() []int {
	if g == nil {
		return nil
	}
	return slices.Clone(g.nodes.Keys)
}

// EdgeKeys returns the edge keys in the order of [Graph.Edges].
func (g *Graph) EdgeKeys() []EdgeKey {
	if g == nil {
		return nil
	}
	return slices.Clone(g.edges.Keys)
}

// Node returns the node with the given id, and whether it exists.
func (g *Graph) Node(id int) (*Node, bool) {
	if g == nil {
		return nil, false
	}
	return g.nodes.AtTry(id)
}

// Edge returns the edge with the given key, and whether it exists.
func (g *Graph) Edge(key EdgeKey) (*Edge, bool) {
	if g == nil {
		return nil, false
	}
	return g.edges.AtTry(key)
}

// HasNode returns whether the graph has a node with the given id.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.Node(id)
	return ok
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int {
	if g == nil {
		return 0
	}
	return g.nodes.Len()
}

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int {
	if g == nil {
		return 0
	}
	return g.edges.Len()
}

// IncidentEdges returns the edges touching the node with the given id,
// outgoing then incoming. It returns nil for an unknown id.
func (g *Graph) IncidentEdges(id int) []*Edge {
	nd, ok := g.Node(id)
	if !ok {
		return nil
	}
	inc := nd.Incident()
	eds := make([]*Edge, len(inc))
	for i, k := range inc {
		eds[i] = g.edges.At(k)
	}
	return eds
}

// Check verifies the structural invariants of the graph: every edge
// has both endpoints, and every node lists exactly the edges where it
// is source in Out and target in In.
func (g *Graph) Check() error {
	outs := map[int]int{}
	ins := map[int]int{}
	for k, ed := range g.edges.All() {
		if ed.Key != k {
			return fmt.Errorf("edge %v stored under key %v", ed.Key, k)
		}
		if !g.HasNode(k.Source) || !g.HasNode(k.Target) {
			return fmt.Errorf("edge %v has a missing endpoint", k)
		}
		outs[k.Source]++
		ins[k.Target]++
	}
	for id, nd := range g.nodes.All() {
		if len(nd.Out) != outs[id] || len(nd.In) != ins[id] {
			return fmt.Errorf("node %d lists %d/%d edges, graph has %d/%d", id, len(nd.Out), len(nd.In), outs[id], ins[id])
		}
		for _, k := range nd.Out {
			if k.Source != id || !g.edges.Has(k) {
				return fmt.Errorf("node %d lists bad outgoing edge %v", id, k)
			}
		}
		for _, k := range nd.In {
			if k.Target != id || !g.edges.Has(k) {
				return fmt.Errorf("node %d lists bad incoming edge %v", id, k)
			}
		}
	}
	return nil
}
