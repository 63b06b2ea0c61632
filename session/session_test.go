// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"testing"

	"cogentcore.org/sgview/config"
	"cogentcore.org/sgview/highlight"
	"cogentcore.org/sgview/present"
	"cogentcore.org/sgview/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roomA = `{
  "gt_nodes": [
    {"id": 1, "name": "chair", "position": [0, 0, 0], "bbox_extent": [1, 1, 1],
     "interactions": [{"target_object_idx": 2, "description": "next to"}]},
    {"id": 2, "name": "table", "position": [2, 0, 0], "bbox_extent": [1, 1, 1]}
  ],
  "detected_nodes": [
    {"id": 8, "name": "box", "position": [0, 0, 0], "bbox_extent": [1, 1, 1]}
  ]
}`

const roomB = `{
  "gt_nodes": [
    {"id": 2, "name": "desk", "position": [0, 0, 0], "bbox_extent": [1, 1, 1]},
    {"id": 3, "name": "monitor", "position": [0, 0, 1], "bbox_extent": [0.5, 0.1, 0.4],
     "interactions": [{"target_object_idx": 2, "description": "on"}]}
  ]
}`

func newSession() (*Session, *present.Recorder) {
	cfg := config.New()
	rc := present.NewRecorder(cfg.Style())
	return New(cfg, rc), rc
}

func TestTickBeforeLoad(t *testing.T) {
	ss, rc := newSession()
	assert.Nil(t, ss.Graph())
	assert.Empty(t, ss.Tick(highlight.HitNode(1)))
	assert.Empty(t, ss.Tick(highlight.NoHit()))
	assert.Empty(t, rc.Calls)
}

func TestSessionHighlight(t *testing.T) {
	ss, rc := newSession()
	g, err := ss.Load([]byte(roomA))
	require.NoError(t, err)
	assert.Equal(t, g, ss.Graph())
	assert.Equal(t, 1, ss.Loads())

	ds := ss.Tick(highlight.HitNode(1))
	assert.Equal(t, []highlight.Delta{{Kind: highlight.Enter, Node: 1}}, ds)
	assert.Equal(t, []scene.EdgeKey{{Source: 1, Target: 2}}, rc.VisibleEdges())
	assert.Equal(t, []int{1}, rc.VisibleLabels())

	assert.Empty(t, ss.Tick(highlight.HitNode(1)))

	ds = ss.Tick(highlight.HitNode(2))
	assert.Equal(t, []highlight.Delta{{Kind: highlight.Exit, Node: 1}, {Kind: highlight.Enter, Node: 2}}, ds)
	assert.Equal(t, []int{2}, rc.VisibleLabels())
	assert.Equal(t, []scene.EdgeKey{{Source: 1, Target: 2}}, rc.VisibleEdges())

	ds = ss.Tick(highlight.NoHit())
	assert.Equal(t, []highlight.Delta{{Kind: highlight.Exit, Node: 2}}, ds)
	assert.Empty(t, rc.VisibleEdges())
}

func TestStaleHit(t *testing.T) {
	ss, rc := newSession()
	_, err := ss.Load([]byte(roomA))
	require.NoError(t, err)

	ss.Tick(highlight.HitNode(1))
	ds := ss.Tick(highlight.HitNode(99))
	assert.Equal(t, []highlight.Delta{{Kind: highlight.Exit, Node: 1}}, ds, "unknown id is no hit")
	_, active := ss.Active()
	assert.False(t, active)
	assert.Empty(t, rc.VisibleLabels())
}

func TestReload(t *testing.T) {
	ss, rc := newSession()
	_, err := ss.Load([]byte(roomA))
	require.NoError(t, err)
	ss.Tick(highlight.HitNode(1))

	g, err := ss.Load([]byte(roomB))
	require.NoError(t, err)
	assert.Equal(t, g, ss.Graph())
	assert.Equal(t, 2, ss.Loads())
	_, active := ss.Active()
	assert.False(t, active, "reload exits the active node")
	assert.Equal(t, []string{"show 2/1", "on 1", "off 1", "clear", "show 2/1"}, rc.Calls)
	assert.Empty(t, rc.VisibleEdges())

	// node 1 is gone after the reload
	assert.Empty(t, ss.Tick(highlight.HitNode(1)))
	ds := ss.Tick(highlight.HitNode(2))
	assert.Equal(t, []highlight.Delta{{Kind: highlight.Enter, Node: 2}}, ds)
	assert.Equal(t, []scene.EdgeKey{{Source: 3, Target: 2}}, rc.VisibleEdges())
}

func TestFailedReloadKeepsState(t *testing.T) {
	ss, rc := newSession()
	g, err := ss.Load([]byte(roomA))
	require.NoError(t, err)
	ss.Tick(highlight.HitNode(2))
	ncalls := len(rc.Calls)

	for _, bad := range []string{
		`{"gt_nodes": [`,
		`{"gt_nodes": [{"id": 1, "position": [0,0,0], "bbox_extent": [1,1,1]}, {"id": 1, "position": [1,0,0], "bbox_extent": [1,1,1]}]}`,
		`{"gt_nodes": [{"id": 1, "position": [0,0], "bbox_extent": [1,1,1]}]}`,
	} {
		ng, err := ss.Load([]byte(bad))
		assert.Error(t, err)
		assert.Nil(t, ng)
	}
	assert.Equal(t, g, ss.Graph())
	id, active := ss.Active()
	assert.True(t, active)
	assert.Equal(t, 2, id)
	assert.Len(t, rc.Calls, ncalls, "failed loads do not touch the presenter")
	assert.Equal(t, 1, ss.Loads())
}

func TestDetectedSource(t *testing.T) {
	ss, _ := newSession()
	ss.Config.Source = scene.Detected
	g, err := ss.Load([]byte(roomA))
	require.NoError(t, err)
	assert.Equal(t, []int{8}, g.NodeIDs())
}
