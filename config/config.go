// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the settings of a viewer session,
// loaded from and saved to TOML files.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/sgview/present"
	"cogentcore.org/sgview/scene"
	"github.com/pelletier/go-toml/v2"
)

// Config contains the configuration information that controls
// which scene is loaded and how it is drawn. The default values
// are given in the default struct tags and set by [Config.Defaults].
type Config struct {

	// DataDir is the directory holding the scene graph files.
	DataDir string `default:"UnityData"`

	// Room is the id of the room whose scene graph is loaded,
	// from the file scene_graph_{Room}.json in [Config.DataDir].
	Room string `default:"401"`

	// Source selects which node list of the scene graph is shown.
	Source scene.Source `default:"GroundTruth"`

	// EdgeAlpha is the alpha of edge gradients.
	EdgeAlpha float32 `default:"0.8"`

	// FaceAlpha is the alpha of the box faces of an idle node.
	FaceAlpha float32 `default:"0.2"`

	// HighlightAlpha is the alpha of the box faces of the active node.
	HighlightAlpha float32 `default:"0.4"`

	// LineWidth is the width of edge lines.
	LineWidth float32 `default:"0.02"`

	// ArrowScale is the scale of the arrow marker on edges.
	ArrowScale float32 `default:"0.5"`

	// ArrowSeconds is the time in seconds the arrow marker takes to
	// travel from source to target.
	ArrowSeconds float32 `default:"2"`

	// TickMillis is the interval between ray samples when replaying
	// a scripted sequence.
	TickMillis int `default:"16"`
}

// New returns a new [Config] with default values.
func New() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Defaults sets the default values.
func (cfg *Config) Defaults() {
	cfg.DataDir = "UnityData"
	cfg.Room = "401"
	cfg.Source = scene.GroundTruth
	cfg.EdgeAlpha = 0.8
	cfg.FaceAlpha = 0.2
	cfg.HighlightAlpha = 0.4
	cfg.LineWidth = 0.02
	cfg.ArrowScale = 0.5
	cfg.ArrowSeconds = 2
	cfg.TickMillis = 16
}

// Validate returns an error if any setting is out of range.
func (cfg *Config) Validate() error {
	if cfg.Room == "" {
		return fmt.Errorf("config: Room must not be empty")
	}
	for _, a := range []struct {
		name string
		v    float32
	}{{"EdgeAlpha", cfg.EdgeAlpha}, {"FaceAlpha", cfg.FaceAlpha}, {"HighlightAlpha", cfg.HighlightAlpha}} {
		if a.v < 0 || a.v > 1 {
			return fmt.Errorf("config: %s must be in [0, 1], got %g", a.name, a.v)
		}
	}
	if cfg.LineWidth < 0 || cfg.ArrowScale < 0 || cfg.ArrowSeconds < 0 {
		return fmt.Errorf("config: LineWidth, ArrowScale and ArrowSeconds must not be negative")
	}
	if cfg.TickMillis <= 0 {
		return fmt.Errorf("config: TickMillis must be positive, got %d", cfg.TickMillis)
	}
	return nil
}

// ScenePath returns the path of the scene graph file for [Config.Room].
func (cfg *Config) ScenePath() string {
	return filepath.Join(cfg.DataDir, "scene_graph_"+cfg.Room+".json")
}

// Tick returns the replay tick interval.
func (cfg *Config) Tick() time.Duration {
	return time.Duration(cfg.TickMillis) * time.Millisecond
}

// Style returns the drawing [present.Style] for this configuration.
func (cfg *Config) Style() present.Style {
	return present.Style{
		FaceAlpha:      cfg.FaceAlpha,
		HighlightAlpha: cfg.HighlightAlpha,
		LineWidth:      cfg.LineWidth,
		ArrowScale:     cfg.ArrowScale,
		ArrowPeriod:    time.Duration(float64(cfg.ArrowSeconds) * float64(time.Second)),
	}
}

// BuildOptions returns the [scene.Build] options for this configuration.
func (cfg *Config) BuildOptions() []scene.Option {
	return []scene.Option{scene.WithEdgeAlpha(cfg.EdgeAlpha)}
}

// Open reads the TOML file at the given path over the current
// values, so that settings missing from the file keep their values.
func (cfg *Config) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return cfg.ReadTOML(b)
}

// ReadTOML reads the given TOML text over the current values.
// Unknown keys are an error.
func (cfg *Config) ReadTOML(b []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return cfg.Validate()
}

// Save writes the configuration to the given file as TOML.
func (cfg *Config) Save(filename string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
