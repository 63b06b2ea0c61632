// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sgview loads scene graph files and drives a viewer session
// from the command line: it can summarize a built graph, replay a
// scripted sequence of ray samples, and reload the graph whenever
// its file changes.
package main

import (
	"os"

	"cogentcore.org/sgview/base/errors"
	"cogentcore.org/sgview/config"
	"cogentcore.org/sgview/logx"
	"cogentcore.org/sgview/scene"
	"github.com/spf13/cobra"
)

// app holds the settings shared by all commands.
type app struct {
	cfg        *config.Config
	configFile string
	source     string
	room       string
	dataDir    string
	vv, v, q   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.New()}
	root := &cobra.Command{
		Use:           "sgview",
		Short:         "Inspect annotated 3D scene graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "TOML configuration file")
	pf.StringVar(&a.source, "source", "", "node list to show: GroundTruth or Detected")
	pf.StringVar(&a.room, "room", "", "room id of the scene graph file")
	pf.StringVar(&a.dataDir, "data", "", "directory holding the scene graph files")
	pf.BoolVar(&a.vv, "vv", false, "debug output")
	pf.BoolVarP(&a.v, "verbose", "v", false, "verbose output")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only show errors")

	root.AddCommand(a.buildCmd(), a.replayCmd(), a.watchCmd())
	return root
}

// setup applies the logging flags, the configuration file and the
// flag overrides, in that order.
func (a *app) setup() error {
	logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
	logx.SetDefaultLogger()
	if a.configFile != "" {
		if err := a.cfg.Open(a.configFile); err != nil {
			return errors.Log(err)
		}
	}
	if a.source != "" {
		var src scene.Source
		if err := src.SetString(a.source); err != nil {
			return errors.Log(err)
		}
		a.cfg.Source = src
	}
	if a.room != "" {
		a.cfg.Room = a.room
	}
	if a.dataDir != "" {
		a.cfg.DataDir = a.dataDir
	}
	return errors.Log(a.cfg.Validate())
}

// scenePath returns the file named on the command line,
// or the configured scene file.
func (a *app) scenePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.ScenePath()
}
