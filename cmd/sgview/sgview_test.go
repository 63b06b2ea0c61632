// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"testing"

	"cogentcore.org/sgview/config"
	"cogentcore.org/sgview/highlight"
	"cogentcore.org/sgview/present"
	"cogentcore.org/sgview/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = "../../scene/testdata/scene_graph_401.json"

func TestParseScript(t *testing.T) {
	evs, err := parseScript("1,1, 2 -,,3")
	require.NoError(t, err)
	assert.Equal(t, []highlight.Event{
		highlight.HitNode(1),
		highlight.HitNode(1),
		highlight.HitNode(2),
		highlight.NoHit(),
		highlight.HitNode(3),
	}, evs)

	evs, err = parseScript("")
	require.NoError(t, err)
	assert.Empty(t, evs)

	_, err = parseScript("1,x")
	assert.Error(t, err)
}

func TestParseEvent(t *testing.T) {
	ev, err := parseEvent(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, highlight.HitNode(7), ev)

	ev, err = parseEvent("-")
	require.NoError(t, err)
	assert.Equal(t, highlight.NoHit(), ev)

	_, err = parseEvent("1.5")
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	cfg := config.New()
	ss := session.New(cfg, present.NewRecorder(cfg.Style()))
	require.NoError(t, reload(ss, testScene, io.Discard))

	evs, err := parseScript("0,0,-,2,99")
	require.NoError(t, err)
	var buf bytes.Buffer
	replay(&buf, ss, evs, 0)
	want := "0 HitNode(0) enter(0)\n" +
		"2 NoHit exit(0)\n" +
		"3 HitNode(2) enter(2)\n" +
		"4 HitNode(99) exit(2)\n"
	assert.Equal(t, want, buf.String())
}

func TestBuildCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-q", "build", "--format", "text", testScene})
	require.NoError(t, cmd.Execute())
	s := out.String()
	assert.Contains(t, s, "GroundTruth: 4 nodes, 3 edges, 2 dropped")
	assert.Contains(t, s, "dropped ")

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-q", "--source", "Detected", "build", testScene})
	require.NoError(t, cmd.Execute())
	s = out.String()
	assert.Contains(t, s, "source: Detected")
	assert.Contains(t, s, "name: couch")
	assert.Contains(t, s, "key: 10->11")
}

func TestBuildCommandErrors(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-q", "build", "--format", "xml", testScene})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-q", "--source", "Imagined", "build", testScene})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-q", "build", "testdata/missing.json"})
	assert.Error(t, cmd.Execute())
}
