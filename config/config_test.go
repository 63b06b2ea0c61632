// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"cogentcore.org/sgview/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The default struct tags document the values set by Defaults.
func TestDefaultsMatchTags(t *testing.T) {
	cfg := New()
	v := reflect.ValueOf(cfg).Elem()
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("default")
		require.True(t, ok, "field %s has no default tag", f.Name)
		assert.Equal(t, tag, fmt.Sprint(v.Field(i).Interface()), "field %s", f.Name)
	}
	assert.NoError(t, cfg.Validate())
}

func TestScenePath(t *testing.T) {
	cfg := New()
	assert.Equal(t, filepath.Join("UnityData", "scene_graph_401.json"), cfg.ScenePath())
	cfg.Room = "12"
	cfg.DataDir = "/data"
	assert.Equal(t, filepath.Join("/data", "scene_graph_12.json"), cfg.ScenePath())
}

func TestStyle(t *testing.T) {
	cfg := New()
	st := cfg.Style()
	assert.Equal(t, float32(0.2), st.FaceAlpha)
	assert.Equal(t, float32(0.4), st.HighlightAlpha)
	assert.Equal(t, 2*time.Second, st.ArrowPeriod)
	assert.Equal(t, 16*time.Millisecond, cfg.Tick())
	assert.Len(t, cfg.BuildOptions(), 1)
}

func TestReadTOML(t *testing.T) {
	cfg := New()
	err := cfg.ReadTOML([]byte(`
Room = "402"
Source = "Detected"
EdgeAlpha = 0.5
`))
	require.NoError(t, err)
	assert.Equal(t, "402", cfg.Room)
	assert.Equal(t, scene.Detected, cfg.Source)
	assert.Equal(t, float32(0.5), cfg.EdgeAlpha)
	assert.Equal(t, float32(0.2), cfg.FaceAlpha, "missing keys keep their values")
}

func TestReadTOMLErrors(t *testing.T) {
	bad := []string{
		`Source = "Both"`,
		`Unknown = 1`,
		`EdgeAlpha = 1.5`,
		`Room = ""`,
		`TickMillis = 0`,
		`LineWidth = -1`,
		`Room = `,
	}
	for _, s := range bad {
		cfg := New()
		assert.Error(t, cfg.ReadTOML([]byte(s)), s)
	}
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sgview.toml")
	cfg := New()
	cfg.Room = "77"
	cfg.Source = scene.Detected
	cfg.LineWidth = 0.05
	require.NoError(t, cfg.Save(fn))

	got := New()
	require.NoError(t, got.Open(fn))
	assert.Equal(t, cfg, got)

	assert.Error(t, got.Open(filepath.Join(t.TempDir(), "missing.toml")))
}
